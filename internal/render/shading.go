package render

import (
	"fmt"
	"image/color"

	"raycaster/internal/raycast"
)

// ShadingMode selects how wall spans are colored.
type ShadingMode string

const (
	ShadingTextured ShadingMode = "textured"
	ShadingFlat     ShadingMode = "flat"
)

// ParseShadingMode accepts "textured" or "flat".
func ParseShadingMode(s string) (ShadingMode, error) {
	switch m := ShadingMode(s); m {
	case ShadingTextured, ShadingFlat:
		return m, nil
	}
	return "", fmt.Errorf("unknown shading mode %q", s)
}

// Shader paints the wall rows [span.Start, span.End) of column x.
type Shader interface {
	Mode() ShadingMode
	PaintWall(fb *FrameBuffer, x int, hit raycast.Hit, span WallSpan)
}

// PaletteEntry is the color pair for one material: Bright for X-side hits, Dark for
// Y-side hits.
type PaletteEntry struct {
	Bright color.RGBA
	Dark   color.RGBA
}

// DefaultPalette maps codes 1..5 to red, green, blue, white and yellow.
var DefaultPalette = []PaletteEntry{
	{Bright: color.RGBA{255, 0, 0, 255}, Dark: color.RGBA{128, 0, 0, 255}},
	{Bright: color.RGBA{0, 128, 0, 255}, Dark: color.RGBA{0, 64, 0, 255}},
	{Bright: color.RGBA{0, 0, 255, 255}, Dark: color.RGBA{0, 0, 128, 255}},
	{Bright: color.RGBA{255, 255, 255, 255}, Dark: color.RGBA{128, 128, 128, 255}},
	{Bright: color.RGBA{255, 255, 0, 255}, Dark: color.RGBA{128, 128, 0, 255}},
}

// FlatShader fills the span with one color per material and side.
type FlatShader struct {
	palette []PaletteEntry
}

// NewFlatShader uses DefaultPalette when palette is empty.
func NewFlatShader(palette []PaletteEntry) *FlatShader {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &FlatShader{palette: palette}
}

// Mode reports ShadingFlat.
func (s *FlatShader) Mode() ShadingMode { return ShadingFlat }

// Color returns the fill for a cell code. Codes past the palette use its last entry.
func (s *FlatShader) Color(code int, side bool) color.RGBA {
	i := code - 1
	if i < 0 {
		i = 0
	}
	if i >= len(s.palette) {
		i = len(s.palette) - 1
	}
	if side {
		return s.palette[i].Dark
	}
	return s.palette[i].Bright
}

// PaintWall fills the span with the material color, darkened on side hits.
func (s *FlatShader) PaintWall(fb *FrameBuffer, x int, hit raycast.Hit, span WallSpan) {
	fb.FillColumn(x, span.Start, span.End, s.Color(int(hit.Cell), hit.Side))
}

// TextureShader samples the atlas texture of the hit cell, halving the color channels
// of Y-side hits.
type TextureShader struct {
	atlas *Atlas
}

// NewTextureShader binds a shader to an atlas.
func NewTextureShader(atlas *Atlas) *TextureShader {
	return &TextureShader{atlas: atlas}
}

// Mode reports ShadingTextured.
func (s *TextureShader) Mode() ShadingMode { return ShadingTextured }

// PaintWall samples one texture column down the span, halving side hits.
func (s *TextureShader) PaintWall(fb *FrameBuffer, x int, hit raycast.Hit, span WallSpan) {
	if span.Start >= span.End {
		return
	}
	size := s.atlas.Size()
	mask := size - 1
	id := int(hit.Cell) - 1

	texX := int(hit.WallFraction*float64(size)) & mask

	// Map the unclipped strip [0, LineHeight) onto [0, size), skipping rows cut off
	// by the top clamp.
	step := float64(size) / float64(span.LineHeight)
	texPos := float64(span.Start-fb.Height/2+span.LineHeight/2) * step

	for y := span.Start; y < span.End; y++ {
		texY := int(texPos) & mask
		texPos += step

		c := s.atlas.TexelAt(id, texX, texY)
		if hit.Side {
			c = darken(c)
		}
		fb.SetRGBA(x, y, c)
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R >> 1, G: c.G >> 1, B: c.B >> 1, A: c.A}
}
