package render

import "image/color"

// pattern produces the texel at (x, y) of a size*size texture.
type pattern func(x, y, size int) color.RGBA

// proceduralPatterns are the eight classic generated wall textures, in atlas order.
var proceduralPatterns = []pattern{
	// red with black cross
	func(x, y, size int) color.RGBA {
		if x == y || x == size-y-1 {
			return color.RGBA{A: 255}
		}
		return color.RGBA{R: 254, A: 255}
	},
	// sloped greyscale
	func(x, y, size int) color.RGBA {
		v := slope(x, y, size)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	},
	// sloped yellow gradient
	func(x, y, size int) color.RGBA {
		v := slope(x, y, size)
		return color.RGBA{R: v, G: v, A: 255}
	},
	// xor greyscale
	func(x, y, size int) color.RGBA {
		v := xor(x, y, size)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	},
	// xor green
	func(x, y, size int) color.RGBA {
		return color.RGBA{G: xor(x, y, size), A: 255}
	},
	// red bricks
	func(x, y, size int) color.RGBA {
		mortar := size / 4
		if mortar < 1 {
			mortar = 1
		}
		if x%mortar == 0 || y%mortar == 0 {
			return color.RGBA{A: 255}
		}
		return color.RGBA{R: 192, A: 255}
	},
	// red gradient
	func(x, y, size int) color.RGBA {
		return color.RGBA{R: uint8(y * 256 / size), A: 255}
	},
	// flat grey
	func(x, y, size int) color.RGBA {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	},
}

func slope(x, y, size int) uint8 { return uint8(y*128/size + x*128/size) }

func xor(x, y, size int) uint8 { return uint8((x * 256 / size) ^ (y * 256 / size)) }

// GenerateProceduralAtlas builds an atlas of the eight generated textures at the given
// power-of-two size.
func GenerateProceduralAtlas(size int) (*Atlas, error) {
	if size <= 0 || size&(size-1) != 0 {
		return NewAtlas(size, nil)
	}
	textures := make([][]byte, len(proceduralPatterns))
	for i, p := range proceduralPatterns {
		tex := make([]byte, size*size*4)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := p(x, y, size)
				o := (y*size + x) * 4
				tex[o], tex[o+1], tex[o+2], tex[o+3] = c.R, c.G, c.B, c.A
			}
		}
		textures[i] = tex
	}
	return NewAtlas(size, textures)
}
