package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"tileplane/internal/core"
)

// FrameImage wraps the frame's pixels as an image without copying.
func FrameImage(f *core.Frame) *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.W * 4,
		Rect:   image.Rect(0, 0, f.W, f.H),
	}
}

// WritePNG encodes the frame as PNG.
func WritePNG(w io.Writer, f *core.Frame) error {
	if len(f.Pix) != f.W*f.H*4 {
		return fmt.Errorf("render: frame is %dx%d but holds %d bytes", f.W, f.H, len(f.Pix))
	}
	if err := png.Encode(w, FrameImage(f)); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// opaque forces the alpha channel of buf to 255.
func opaque(buf []byte) {
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 255
	}
}
