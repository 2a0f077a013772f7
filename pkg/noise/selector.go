package noise

// Selectors pick or mix between two sources under a third control
// source. All three sources are evaluated over the same grid, then
// merged pointwise.

// Blend linearly interpolates between two sources, with the control
// output as the interpolation parameter. Control values outside [0, 1]
// extrapolate rather than clamp.
type Blend struct {
	Source1 FieldFn
	Source2 FieldFn
	Control FieldFn
}

// NewBlend returns a selector interpolating from source1 (control 0) to
// source2 (control 1).
func NewBlend(source1, source2, control FieldFn) Blend {
	return Blend{Source1: source1, Source2: source2, Control: control}
}

func (b Blend) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := b.Source1.ProcessField2D(field)
	other := b.Source2.ProcessField2D(field)
	control := b.Control.ProcessField2D(field)
	blendValues(out.Values(), other.Values(), control.Values())
	return out
}

func (b Blend) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := b.Source1.ProcessField3D(field)
	other := b.Source2.ProcessField3D(field)
	control := b.Control.ProcessField3D(field)
	blendValues(out.Values(), other.Values(), control.Values())
	return out
}

func blendValues(dst, src, control []float64) {
	for i := range dst {
		dst[i] = lerp(dst[i], src[i], control[i])
	}
}

// Select outputs Source2 where the control output falls strictly inside
// [LowerBound, UpperBound] and Source1 elsewhere. A positive Falloff
// widens each boundary into a smoothstep transition band of that
// half-width.
type Select struct {
	Source1 FieldFn
	Source2 FieldFn
	Control FieldFn

	LowerBound float64
	UpperBound float64
	Falloff    float64
}

// NewSelect returns a selector with bounds (0, 1) and no falloff.
func NewSelect(source1, source2, control FieldFn) Select {
	return Select{
		Source1:    source1,
		Source2:    source2,
		Control:    control,
		LowerBound: 0.0,
		UpperBound: 1.0,
	}
}

// SetBounds returns a copy with the given selection interval, reordered
// if given reversed.
func (s Select) SetBounds(lower, upper float64) Select {
	if lower > upper {
		lower, upper = upper, lower
	}
	s.LowerBound = lower
	s.UpperBound = upper
	return s
}

// SetFalloff returns a copy with the given transition half-width.
func (s Select) SetFalloff(falloff float64) Select {
	s.Falloff = falloff
	return s
}

// pick resolves one point given the two source values and the control
// value.
func (s Select) pick(a, b, control float64) float64 {
	if s.Falloff > 0.0 {
		switch {
		case control < s.LowerBound-s.Falloff:
			return a
		case control < s.LowerBound+s.Falloff:
			lowerCurve := s.LowerBound - s.Falloff
			upperCurve := s.LowerBound + s.Falloff
			return lerp(a, b, sCurve3((control-lowerCurve)/(upperCurve-lowerCurve)))
		case control < s.UpperBound-s.Falloff:
			return b
		case control < s.UpperBound+s.Falloff:
			lowerCurve := s.UpperBound - s.Falloff
			upperCurve := s.UpperBound + s.Falloff
			return lerp(b, a, sCurve3((control-lowerCurve)/(upperCurve-lowerCurve)))
		default:
			return a
		}
	}
	if control > s.LowerBound && control < s.UpperBound {
		return b
	}
	return a
}

func (s Select) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := s.Source1.ProcessField2D(field)
	other := s.Source2.ProcessField2D(field)
	control := s.Control.ProcessField2D(field)
	s.selectValues(out.Values(), other.Values(), control.Values())
	return out
}

func (s Select) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := s.Source1.ProcessField3D(field)
	other := s.Source2.ProcessField3D(field)
	control := s.Control.ProcessField3D(field)
	s.selectValues(out.Values(), other.Values(), control.Values())
	return out
}

func (s Select) selectValues(dst, src, control []float64) {
	for i := range dst {
		dst[i] = s.pick(dst[i], src[i], control[i])
	}
}
