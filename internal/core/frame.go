package core

// Frame is a row-major RGBA8 pixel buffer (R, G, B, A per pixel).
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Resize reallocates the pixel buffer when the dimensions change and reports
// whether it did.
func (f *Frame) Resize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if f.W == w && f.H == h && len(f.Pix) == 4*w*h {
		return false
	}
	f.W, f.H = w, h
	f.Pix = make([]byte, 4*w*h)
	return true
}

// Index returns the byte offset of pixel (x, y).
func (f *Frame) Index(x, y int) int { return (y*f.W + x) * 4 }

// Contains reports whether (x, y) addresses a pixel inside the frame.
func (f *Frame) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}
