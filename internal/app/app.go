//go:build ebiten

package app

import (
	"tileplane/internal/core"
	"tileplane/internal/render"
	"tileplane/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core app to the ebiten.Game interface. It owns the frame and
// turns ebiten input into app events.
type Game struct {
	app     core.App
	frame   *core.Frame
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	wheelScale float64
	lastX      float64
	lastY      float64
	down       bool
}

// New constructs a Game for the provided app with an initial frame size.
func New(app core.App, w, h int, wheelScale float64) *Game {
	return &Game{
		app:        app,
		frame:      core.NewFrame(w, h),
		painter:    render.NewFramePainter(w, h),
		hud:        ui.NewHUD(app),
		overlay:    ui.NewOverlay(),
		wheelScale: wheelScale,
	}
}

// Update handles input and forwards it to the app.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		if r, ok := g.app.(core.ViewResetter); ok {
			r.ResetView()
		}
	}
	g.toggle(ebiten.KeyE, "show_edges")
	g.toggle(ebiten.KeyP, "show_points")
	g.toggle(ebiten.KeyB, "show_bounds")

	g.overlay.Update()
	consumed := g.hud.Update()

	cx, cy := ebiten.CursorPosition()
	m := core.Mouse{X: float64(cx), Y: float64(cy), Down: g.down}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !consumed:
		g.down = true
		m.Down = true
		g.app.OnMouseDown(m)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.down:
		g.down = false
		m.Down = false
		g.app.OnMouseUp(m)
	}
	if m.X != g.lastX || m.Y != g.lastY {
		g.lastX, g.lastY = m.X, m.Y
		g.app.OnMouseMove(m)
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.app.OnScroll(-dx*g.wheelScale, -dy*g.wheelScale)
	}
	return nil
}

func (g *Game) toggle(key ebiten.Key, param string) {
	if !inpututil.IsKeyJustPressed(key) {
		return
	}
	provider, ok := g.app.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := g.app.(core.BoolParameterSetter)
	if !ok {
		return
	}
	p, ok := provider.Parameters().Lookup(param)
	if !ok || p.Type != core.ParamTypeBool {
		return
	}
	setter.SetBoolParameter(param, p.Value != "true")
}

// Draw ticks the app into the frame and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.app.Tick(g.frame)
	g.painter.Blit(screen, g.frame)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size; the frame is resized to match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.frame.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
