// Package render turns hit records into pixels: texture atlas, shading strategies,
// column spans and the double-buffered frame pipeline.
package render

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrTextureSize = errors.New("texture size must be a positive power of two")
	ErrTextureData = errors.New("texture data does not match texture size")
)

// Atlas holds square RGBA textures of one shared power-of-two size. Texture id is the
// cell code minus one.
type Atlas struct {
	size     int
	textures [][]byte
}

// NewAtlas validates and wraps row-major RGBA texel slices, each size*size*4 bytes.
// The slices are used as-is and must not be modified afterwards.
func NewAtlas(size int, textures [][]byte) (*Atlas, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTextureSize, size)
	}
	want := size * size * 4
	for i, tex := range textures {
		if len(tex) != want {
			return nil, fmt.Errorf("%w: texture %d has %d bytes, want %d", ErrTextureData, i, len(tex), want)
		}
	}
	return &Atlas{size: size, textures: textures}, nil
}

// Size returns the side length of every texture.
func (a *Atlas) Size() int { return a.size }

// Len returns the number of textures.
func (a *Atlas) Len() int { return len(a.textures) }

// TexelAt returns one texel. Out-of-range ids or coordinates panic.
func (a *Atlas) TexelAt(id, x, y int) color.RGBA {
	if x < 0 || x >= a.size || y < 0 || y >= a.size {
		panic(fmt.Sprintf("render: texel (%d,%d) outside %dx%d texture", x, y, a.size, a.size))
	}
	tex := a.textures[id]
	i := (y*a.size + x) * 4
	return color.RGBA{R: tex[i], G: tex[i+1], B: tex[i+2], A: tex[i+3]}
}
