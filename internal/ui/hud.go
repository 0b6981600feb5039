//go:build ebiten

package ui

import (
	"image/color"

	"tileplane/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the app's parameter snapshot in a panel at the top-left of
// the window. Boolean rows are clickable toggles.
type HUD struct {
	app     core.App
	visible bool
	title   string
	rows    []Row

	setter core.BoolParameterSetter
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD for the provided app.
func NewHUD(app core.App) *HUD {
	h := &HUD{app: app, visible: true, title: Title(app.Name())}
	if setter, ok := app.(core.BoolParameterSetter); ok {
		h.setter = setter
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update refreshes the snapshot and handles clicks on toggle rows. It
// reports whether the click was consumed, so the host does not start a drag.
func (h *HUD) Update() bool {
	if h == nil {
		return false
	}
	provider, ok := h.app.(core.ParameterProvider)
	if !ok {
		h.rows = Rows(h.title, core.ParameterSnapshot{})
	} else {
		h.rows = Rows(h.title, provider.Parameters())
	}
	if !h.visible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	w, hh := PanelSize(h.rows)
	if mx < 0 || mx >= w || my < 0 || my >= hh {
		return false
	}
	i := RowAt(h.rows, my)
	if i >= 0 && h.rows[i].Key != "" && h.setter != nil {
		h.setter.SetBoolParameter(h.rows[i].Key, !h.rows[i].Value)
	}
	return true
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.rows) == 0 {
		return
	}
	w, hh := PanelSize(h.rows)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hh))
	op.ColorM.Scale(16.0/255.0, 16.0/255.0, 20.0/255.0, 0.8)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, r := range h.rows {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		switch {
		case r.Header:
			col = color.RGBA{R: 200, G: 200, B: 120, A: 255}
		case r.Key != "" && !r.Value:
			col = color.RGBA{R: 140, G: 140, B: 150, A: 255}
		}
		y := panelPadding + i*lineHeight + labelBaseline
		text.Draw(screen, r.Text, face, panelPadding, y, col)
	}
}
