package graphics

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"raycaster/internal/render"
)

func writeImage(t *testing.T, path string, size int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoadTextureDir(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	writeImage(t, filepath.Join(dir, "1.png"), 8, red)
	writeImage(t, filepath.Join(dir, "2.bmp"), 32, blue)

	atlas, err := LoadTextureDir(dir, 16, 2)
	if err != nil {
		t.Fatalf("LoadTextureDir: %v", err)
	}
	if atlas.Len() != 2 || atlas.Size() != 16 {
		t.Fatalf("expected 2 textures of 16px, got %d of %d", atlas.Len(), atlas.Size())
	}
	if got := atlas.TexelAt(0, 3, 12); got != red {
		t.Errorf("upscaled png texel: got %v want %v", got, red)
	}
	if got := atlas.TexelAt(1, 15, 0); got != blue {
		t.Errorf("downscaled bmp texel: got %v want %v", got, blue)
	}
}

func TestLoadTextureDirErrors(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "1.png"), 4, color.RGBA{A: 255})

	if _, err := LoadTextureDir(dir, 4, 2); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing texture: expected os.ErrNotExist, got %v", err)
	}
	if _, err := LoadTextureDir(dir, 12, 1); !errors.Is(err, render.ErrTextureSize) {
		t.Errorf("bad size: expected ErrTextureSize, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "2.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTextureDir(dir, 4, 2); err == nil {
		t.Error("expected decode error for corrupt texture")
	}
}
