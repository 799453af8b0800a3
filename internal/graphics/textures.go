// Package graphics decodes wall texture images into a render atlas.
package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"raycaster/internal/render"
)

// textureExtensions are tried in order for each texture id.
var textureExtensions = []string{".png", ".bmp"}

// LoadTextureDir loads textures 1..count from dir, named by cell code ("1.png",
// "2.bmp", ...). Each image is scaled to size*size.
func LoadTextureDir(dir string, size, count int) (*render.Atlas, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", render.ErrTextureSize, size)
	}

	textures := make([][]byte, count)
	for code := 1; code <= count; code++ {
		path, err := findTexture(dir, code)
		if err != nil {
			return nil, err
		}
		img, err := decodeImage(path)
		if err != nil {
			return nil, err
		}
		textures[code-1] = toRGBA(img, size).Pix
	}
	return render.NewAtlas(size, textures)
}

func findTexture(dir string, code int) (string, error) {
	base := filepath.Join(dir, strconv.Itoa(code))
	for _, ext := range textureExtensions {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("texture %d: %w", code, err)
		}
	}
	return "", fmt.Errorf("texture %d in %s: %w", code, dir, os.ErrNotExist)
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}

// toRGBA converts img to a size*size RGBA image with a tight stride.
func toRGBA(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	src := img.Bounds()
	if src.Dx() == size && src.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}
	return dst
}
