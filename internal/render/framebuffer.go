package render

import "image/color"

// FrameBuffer is a row-major RGBA pixel array of 4*Width*Height bytes.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a zeroed buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}
}

func (fb *FrameBuffer) offset(x, y int) int { return (y*fb.Width + x) * 4 }

// SetRGBA writes one pixel.
func (fb *FrameBuffer) SetRGBA(x, y int, c color.RGBA) {
	i := fb.offset(x, y)
	p := fb.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// RGBAAt reads one pixel.
func (fb *FrameBuffer) RGBAAt(x, y int) color.RGBA {
	i := fb.offset(x, y)
	p := fb.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// FillColumn paints rows [y0, y1) of column x.
func (fb *FrameBuffer) FillColumn(x, y0, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		fb.SetRGBA(x, y, c)
	}
}
