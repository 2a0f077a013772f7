package noise

import "math"

// Modifiers transform the output of a single source pointwise. The
// source is evaluated over the grid first, then the value buffer is
// rewritten in place on the evaluated copy.

// Abs outputs the absolute value of its source.
type Abs struct {
	Source FieldFn
}

// NewAbs returns a modifier yielding |source|.
func NewAbs(source FieldFn) Abs {
	return Abs{Source: source}
}

func (a Abs) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := a.Source.ProcessField2D(field)
	mapValues(out.Values(), math.Abs)
	return out
}

func (a Abs) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := a.Source.ProcessField3D(field)
	mapValues(out.Values(), math.Abs)
	return out
}

// Negate outputs the negation of its source.
type Negate struct {
	Source FieldFn
}

// NewNegate returns a modifier yielding -source.
func NewNegate(source FieldFn) Negate {
	return Negate{Source: source}
}

func (n Negate) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := n.Source.ProcessField2D(field)
	mapValues(out.Values(), func(v float64) float64 { return -v })
	return out
}

func (n Negate) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := n.Source.ProcessField3D(field)
	mapValues(out.Values(), func(v float64) float64 { return -v })
	return out
}

// Clamp restricts its source's output to [LowerBound, UpperBound].
type Clamp struct {
	Source     FieldFn
	LowerBound float64
	UpperBound float64
}

// NewClamp returns a modifier clamping source to [-1, 1].
func NewClamp(source FieldFn) Clamp {
	return Clamp{Source: source, LowerBound: -1.0, UpperBound: 1.0}
}

// SetBounds returns a copy with the given bounds, reordered if given
// reversed.
func (c Clamp) SetBounds(lower, upper float64) Clamp {
	if lower > upper {
		lower, upper = upper, lower
	}
	c.LowerBound = lower
	c.UpperBound = upper
	return c
}

func (c Clamp) clamp(v float64) float64 {
	return clampf(v, c.LowerBound, c.UpperBound)
}

func (c Clamp) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := c.Source.ProcessField2D(field)
	mapValues(out.Values(), c.clamp)
	return out
}

func (c Clamp) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := c.Source.ProcessField3D(field)
	mapValues(out.Values(), c.clamp)
	return out
}

// ScaleBias applies the affine map value*Scale + Bias.
type ScaleBias struct {
	Source FieldFn
	Scale  float64
	Bias   float64
}

// NewScaleBias returns an identity ScaleBias (scale 1, bias 0) over
// source.
func NewScaleBias(source FieldFn) ScaleBias {
	return ScaleBias{Source: source, Scale: 1.0, Bias: 0.0}
}

// SetScale returns a copy with the given scale.
func (s ScaleBias) SetScale(scale float64) ScaleBias {
	s.Scale = scale
	return s
}

// SetBias returns a copy with the given bias.
func (s ScaleBias) SetBias(bias float64) ScaleBias {
	s.Bias = bias
	return s
}

func (s ScaleBias) apply(v float64) float64 {
	return v*s.Scale + s.Bias
}

func (s ScaleBias) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := s.Source.ProcessField2D(field)
	mapValues(out.Values(), s.apply)
	return out
}

func (s ScaleBias) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := s.Source.ProcessField3D(field)
	mapValues(out.Values(), s.apply)
	return out
}

// Exponent remaps its source through a power curve: the value is
// rescaled from [-1, 1] to [0, 1], raised to Exp, then rescaled back.
// Exp 1 is close to the identity for in-range input.
type Exponent struct {
	Source FieldFn
	Exp    float64
}

// NewExponent returns an Exponent modifier with exponent 1 over source.
func NewExponent(source FieldFn) Exponent {
	return Exponent{Source: source, Exp: 1.0}
}

// SetExponent returns a copy with the given exponent.
func (e Exponent) SetExponent(exp float64) Exponent {
	e.Exp = exp
	return e
}

func (e Exponent) apply(v float64) float64 {
	return scaleShift(math.Pow(math.Abs((v+1.0)/2.0), e.Exp), 2.0)
}

func (e Exponent) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := e.Source.ProcessField2D(field)
	mapValues(out.Values(), e.apply)
	return out
}

func (e Exponent) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := e.Source.ProcessField3D(field)
	mapValues(out.Values(), e.apply)
	return out
}
