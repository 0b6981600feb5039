//go:build ebiten

package render

import (
	"tileplane/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a core.Frame into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{}
	fp.resize(w, h)
	return fp
}

func (fp *FramePainter) resize(w, h int) {
	if fp.img != nil {
		fp.img.Dispose()
	}
	fp.w, fp.h = w, h
	fp.img = ebiten.NewImage(w, h)
}

// Blit uploads the frame and draws it at the top-left of dst. The image is
// reallocated when the frame size changes.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *core.Frame) {
	if f.W <= 0 || f.H <= 0 || len(f.Pix) != f.W*f.H*4 {
		return
	}
	if f.W != fp.w || f.H != fp.h {
		fp.resize(f.W, f.H)
	}
	opaque(f.Pix)
	fp.img.WritePixels(f.Pix)
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
