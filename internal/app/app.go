//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gradientNames = []string{"gray", "terrain", "rainbow"}

// Viewer displays rendered noise maps and lets the user cycle
// generators, gradients and seeds interactively.
type Viewer struct {
	cfg    Config
	canvas *ebiten.Image
	status string
	err    error
}

// NewViewer constructs a Viewer and renders the initial map.
func NewViewer(cfg Config) *Viewer {
	v := &Viewer{cfg: cfg}
	v.rebuild()
	return v
}

// rebuild regenerates the displayed map from the current config.
func (v *Viewer) rebuild() {
	m, err := v.cfg.BuildMap()
	if err != nil {
		v.err = err
		return
	}
	img, err := v.cfg.Render(m)
	if err != nil {
		v.err = err
		return
	}

	if v.canvas == nil {
		v.canvas = ebiten.NewImage(v.cfg.Width, v.cfg.Height)
	}
	v.canvas.WritePixels(img.Pix)
	v.status = fmt.Sprintf("%s / %s / %s  seed=%d  [G]en [P]roj [C]olor [S]eed [Q]uit",
		v.cfg.Generator, v.cfg.Projection, v.cfg.Gradient, v.cfg.Seed)
	v.err = nil
}

func cycle(names []string, current string) string {
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Update handles key input.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.cfg.Generator = cycle(GeneratorNames, v.cfg.Generator)
		v.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.cfg.Projection = cycle([]string{"plane", "cylinder", "sphere"}, v.cfg.Projection)
		v.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.cfg.Gradient = cycle(gradientNames, v.cfg.Gradient)
		v.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.cfg.Seed = uint(time.Now().UnixNano() & 0xffffffff)
		v.rebuild()
	}
	return nil
}

// Draw blits the rendered map and the status line.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.canvas != nil {
		screen.DrawImage(v.canvas, nil)
	}
	if v.err != nil {
		ebitenutil.DebugPrint(screen, v.err.Error())
		return
	}
	ebitenutil.DebugPrint(screen, v.status)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
