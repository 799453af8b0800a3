package render

import (
	"image/color"
	"math"

	"raycaster/internal/raycast"
)

// maxLineHeight bounds the projected wall height for near-zero distances.
const maxLineHeight = 1 << 24

// WallSpan is the on-screen extent of one wall strip. Rows [Start, End) are wall;
// LineHeight is the unclipped projected height.
type WallSpan struct {
	LineHeight int
	Start      int
	End        int
}

// ProjectWall computes the wall span for a perpendicular distance on a screen of the
// given height. Start and End are clamped to [0, screenHeight-1].
func ProjectWall(distance float64, screenHeight int) WallSpan {
	lh := float64(screenHeight) / distance
	lineHeight := maxLineHeight
	if lh < maxLineHeight && !math.IsNaN(lh) {
		lineHeight = int(lh)
	}

	start := -lineHeight/2 + screenHeight/2
	if start < 0 {
		start = 0
	}
	end := lineHeight/2 + screenHeight/2
	if end >= screenHeight {
		end = screenHeight - 1
	}
	return WallSpan{LineHeight: lineHeight, Start: start, End: end}
}

// Background holds the solid colors above and below the wall strip.
type Background struct {
	Ceiling color.RGBA
	Floor   color.RGBA
}

// DefaultBackground matches the original black backdrop.
var DefaultBackground = Background{
	Ceiling: color.RGBA{A: 255},
	Floor:   color.RGBA{A: 255},
}

// RenderColumn writes the full column x of fb: ceiling, the shaded wall span, then floor.
// It touches no other column.
func RenderColumn(hit raycast.Hit, x int, fb *FrameBuffer, shader Shader, bg Background) {
	span := ProjectWall(hit.Distance, fb.Height)
	fb.FillColumn(x, 0, span.Start, bg.Ceiling)
	shader.PaintWall(fb, x, hit, span)
	fb.FillColumn(x, span.End, fb.Height, bg.Floor)
}
