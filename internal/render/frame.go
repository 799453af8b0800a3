package render

import (
	"errors"
	"fmt"

	"raycaster/internal/camera"
	"raycaster/internal/raycast"
	"raycaster/internal/world"
)

var (
	ErrMissingTexture = errors.New("no texture for cell code")
	ErrFrameSize      = errors.New("frame dimensions must be positive")
)

// ColumnRunner calls fn once for every column in [0, numColumns) and returns when all
// calls have finished. Calls may run concurrently.
type ColumnRunner interface {
	RenderColumns(numColumns int, fn func(column int))
}

type sequentialRunner struct{}

func (sequentialRunner) RenderColumns(numColumns int, fn func(int)) {
	for x := 0; x < numColumns; x++ {
		fn(x)
	}
}

// FrameOptions configures a FrameRenderer.
type FrameOptions struct {
	Width, Height int
	Grid          *world.Grid
	Atlas         *Atlas         // optional; required for textured shading
	Palette       []PaletteEntry // optional; DefaultPalette when empty
	Shading       ShadingMode
	Background    Background
	Columns       ColumnRunner // optional; sequential when nil
}

// FrameRenderer produces complete frames into two alternating buffers. It is not safe
// for concurrent use; Render, SetShading and ToggleShading must be called from one
// goroutine.
type FrameRenderer struct {
	width, height int
	grid          *world.Grid
	bg            Background
	columns       ColumnRunner

	flat     *FlatShader
	textured *TextureShader
	shader   Shader

	buffers [2]*FrameBuffer
	back    int
	center  raycast.Hit
}

// NewFrameRenderer validates the options. Every non-zero code in the grid must have an
// atlas texture when an atlas is given.
func NewFrameRenderer(opts FrameOptions) (*FrameRenderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, opts.Width, opts.Height)
	}
	if opts.Grid == nil {
		return nil, errors.New("frame renderer requires a grid")
	}

	fr := &FrameRenderer{
		width:   opts.Width,
		height:  opts.Height,
		grid:    opts.Grid,
		bg:      opts.Background,
		columns: opts.Columns,
		flat:    NewFlatShader(opts.Palette),
	}
	if fr.columns == nil {
		fr.columns = sequentialRunner{}
	}

	if opts.Atlas != nil {
		if maxCode := int(opts.Grid.MaxCode()); maxCode > opts.Atlas.Len() {
			return nil, fmt.Errorf("%w %d: atlas has %d textures", ErrMissingTexture, maxCode, opts.Atlas.Len())
		}
		fr.textured = NewTextureShader(opts.Atlas)
	}

	mode := opts.Shading
	if mode == "" {
		mode = ShadingTextured
		if fr.textured == nil {
			mode = ShadingFlat
		}
	}
	if err := fr.SetShading(mode); err != nil {
		return nil, err
	}

	for i := range fr.buffers {
		fr.buffers[i] = NewFrameBuffer(opts.Width, opts.Height)
	}
	return fr, nil
}

// SetShading switches the shading strategy for subsequent frames.
func (fr *FrameRenderer) SetShading(mode ShadingMode) error {
	switch mode {
	case ShadingFlat:
		fr.shader = fr.flat
	case ShadingTextured:
		if fr.textured == nil {
			return fmt.Errorf("%w: textured shading needs an atlas", ErrMissingTexture)
		}
		fr.shader = fr.textured
	default:
		return fmt.Errorf("unknown shading mode %q", mode)
	}
	return nil
}

// ToggleShading flips between flat and textured shading. Without an atlas it stays flat.
func (fr *FrameRenderer) ToggleShading() ShadingMode {
	if fr.shader.Mode() == ShadingTextured {
		fr.shader = fr.flat
	} else if fr.textured != nil {
		fr.shader = fr.textured
	}
	return fr.shader.Mode()
}

// Shading returns the active shading mode.
func (fr *FrameRenderer) Shading() ShadingMode { return fr.shader.Mode() }

// Size returns the frame dimensions.
func (fr *FrameRenderer) Size() (int, int) { return fr.width, fr.height }

// CenterHit returns the hit record of the middle column of the last frame.
func (fr *FrameRenderer) CenterHit() raycast.Hit { return fr.center }

// Render draws a complete frame for the camera pose and returns it. The returned buffer
// stays unchanged until the call after next.
func (fr *FrameRenderer) Render(cam camera.Camera) *FrameBuffer {
	fb := fr.buffers[fr.back]
	shader := fr.shader
	mid := fr.width / 2

	fr.columns.RenderColumns(fr.width, func(x int) {
		hit := raycast.CastColumn(cam, x, fr.width, fr.grid)
		if x == mid {
			fr.center = hit
		}
		RenderColumn(hit, x, fb, shader, fr.bg)
	})

	fr.back ^= 1
	return fb
}
