//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key help strip along the bottom edge of the window.
type Overlay struct {
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. The help strip starts
// visible.
func NewOverlay() *Overlay {
	o := &Overlay{show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the strip on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.show = !o.show
	}
}

// Draw renders the strip when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show {
		return
	}
	b := screen.Bounds()
	top := b.Dy() - helpLineHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), helpLineHeight)
	op.GeoM.Translate(0, float64(top))
	op.ColorM.Scale(0, 0, 0, 0.6)
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, HelpText, basicfont.Face7x13, panelPadding, top+13, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
