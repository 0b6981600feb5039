// Package view maps world space to screen space and turns pointer input into
// camera movement.
package view

import "tileplane/internal/geom"

// Camera is the scroll offset of the viewport in world space.
type Camera struct {
	ScrollX, ScrollY float64
}

// WorldToScreen maps a world position to screen pixels.
func (c Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: p.X - c.ScrollX, Y: p.Y - c.ScrollY}
}

// ScreenToWorld maps screen pixels to a world position.
func (c Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: p.X + c.ScrollX, Y: p.Y + c.ScrollY}
}

// Controller applies drag and scroll-wheel input to a Camera. A press anywhere
// on the canvas starts a drag; while dragging, the cursor delta is subtracted
// from the scroll offset so the world follows the cursor.
type Controller struct {
	Camera

	dragging     bool
	lastX, lastY float64
}

// MouseDown begins a drag at (x, y).
func (c *Controller) MouseDown(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// MouseMove pans by the cursor delta while dragging.
func (c *Controller) MouseMove(x, y float64) {
	if !c.dragging {
		return
	}
	c.ScrollX -= x - c.lastX
	c.ScrollY -= y - c.lastY
	c.lastX, c.lastY = x, y
}

// MouseUp ends the drag.
func (c *Controller) MouseUp() { c.dragging = false }

// Scroll adds the wheel delta to the scroll offset.
func (c *Controller) Scroll(dx, dy float64) {
	c.ScrollX += dx
	c.ScrollY += dy
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Reset returns the camera to the origin and cancels any drag.
func (c *Controller) Reset() {
	c.Camera = Camera{}
	c.dragging = false
}
