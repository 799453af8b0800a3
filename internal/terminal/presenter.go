// Package terminal shows frames in a character terminal through tcell and turns key
// events into movement intents.
package terminal

import (
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top pixel of a cell in the foreground color and the bottom pixel
// in the background color, giving two pixel rows per text row.
const upperHalf = '▀'

// Canvas is the part of tcell.Screen the presenter writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// FrameSize returns the frame dimensions that fill cols x rows cells, leaving
// statusRows text rows free at the bottom.
func FrameSize(cols, rows, statusRows int) (width, height int) {
	rows -= statusRows
	if cols < 1 || rows < 1 {
		return 0, 0
	}
	return cols, rows * 2
}

// Present copies fb into the canvas starting at the top-left cell. An odd final pixel
// row is paired with black.
func Present(c Canvas, fb *render.FrameBuffer) {
	for y := 0; y < fb.Height; y += 2 {
		for x := 0; x < fb.Width; x++ {
			top := fb.RGBAAt(x, y)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)))
			if y+1 < fb.Height {
				bottom := fb.RGBAAt(x, y+1)
				style = style.Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			} else {
				style = style.Background(tcell.ColorBlack)
			}
			c.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
}

// DrawText writes s on row y from column x, clipped to width.
func DrawText(c Canvas, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
