package render

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"sync"
	"testing"

	"raycaster/internal/camera"
	"raycaster/internal/raycast"
	"raycaster/internal/world"
)

func gridFrom(t *testing.T, lines ...string) *world.Grid {
	t.Helper()
	rows := make([][]world.Cell, len(lines))
	for y, line := range lines {
		for _, ch := range line {
			rows[y] = append(rows[y], world.Cell(ch-'0'))
		}
	}
	g, err := world.NewGrid(rows)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func uniformTexture(size int, c color.RGBA) []byte {
	tex := make([]byte, size*size*4)
	for i := 0; i < len(tex); i += 4 {
		tex[i], tex[i+1], tex[i+2], tex[i+3] = c.R, c.G, c.B, c.A
	}
	return tex
}

type goroutineRunner struct{}

func (goroutineRunner) RenderColumns(n int, fn func(int)) {
	var wg sync.WaitGroup
	for x := 0; x < n; x++ {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			fn(x)
		}(x)
	}
	wg.Wait()
}

func TestNewAtlas(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		tex     [][]byte
		wantErr error
	}{
		{"valid", 4, [][]byte{make([]byte, 64)}, nil},
		{"zero size", 0, nil, ErrTextureSize},
		{"not power of two", 6, [][]byte{make([]byte, 144)}, ErrTextureSize},
		{"short texture", 4, [][]byte{make([]byte, 63)}, ErrTextureData},
		{"long texture", 4, [][]byte{make([]byte, 64), make([]byte, 68)}, ErrTextureData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAtlas(tt.size, tt.tex)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAtlasTexelAt(t *testing.T) {
	tex := make([]byte, 2*2*4)
	copy(tex[(1*2+0)*4:], []byte{1, 2, 3, 4})
	a, err := NewAtlas(2, [][]byte{tex})
	if err != nil {
		t.Fatal(err)
	}
	if got := a.TexelAt(0, 0, 1); got != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("unexpected texel %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range texel")
		}
	}()
	a.TexelAt(0, 2, 0)
}

func TestGenerateProceduralAtlas(t *testing.T) {
	a, err := GenerateProceduralAtlas(64)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 8 || a.Size() != 64 {
		t.Fatalf("expected 8 textures of 64px, got %d of %d", a.Len(), a.Size())
	}
	if got := a.TexelAt(7, 10, 20); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("flat grey texture: got %v", got)
	}
	if got := a.TexelAt(0, 5, 5); got != (color.RGBA{A: 255}) {
		t.Errorf("cross diagonal should be black, got %v", got)
	}
	if got := a.TexelAt(0, 5, 6); got != (color.RGBA{R: 254, A: 255}) {
		t.Errorf("cross background should be red, got %v", got)
	}

	if _, err := GenerateProceduralAtlas(48); !errors.Is(err, ErrTextureSize) {
		t.Errorf("expected ErrTextureSize, got %v", err)
	}
}

func TestProjectWallBounds(t *testing.T) {
	const h = 480
	for _, d := range []float64{1e-6, 0.01, 0.5, 1, 2, 7.3, 100, 1e9, 1e30} {
		span := ProjectWall(d, h)
		if span.Start > span.End {
			t.Errorf("distance %v: start %d > end %d", d, span.Start, span.End)
		}
		if span.Start < 0 || span.End >= h {
			t.Errorf("distance %v: span [%d,%d] outside screen", d, span.Start, span.End)
		}
	}

	span := ProjectWall(1, h)
	if span.LineHeight != h || span.Start != 0 || span.End != h-1 {
		t.Errorf("unit distance should fill the screen, got %+v", span)
	}
	span = ProjectWall(4, h)
	if span.LineHeight != 120 || span.Start != 180 || span.End != 300 {
		t.Errorf("distance 4: got %+v", span)
	}
}

func TestFlatShaderPalette(t *testing.T) {
	s := NewFlatShader(nil)
	tests := []struct {
		code int
		side bool
		want color.RGBA
	}{
		{1, false, color.RGBA{255, 0, 0, 255}},
		{1, true, color.RGBA{128, 0, 0, 255}},
		{2, false, color.RGBA{0, 128, 0, 255}},
		{4, true, color.RGBA{128, 128, 128, 255}},
		{5, false, color.RGBA{255, 255, 0, 255}},
		{9, true, color.RGBA{128, 128, 0, 255}},
	}
	for _, tt := range tests {
		if got := s.Color(tt.code, tt.side); got != tt.want {
			t.Errorf("code %d side %v: got %v want %v", tt.code, tt.side, got, tt.want)
		}
	}
}

func TestRenderColumnFlatFillsSpan(t *testing.T) {
	fb := NewFrameBuffer(3, 100)
	bg := Background{Ceiling: color.RGBA{1, 1, 1, 255}, Floor: color.RGBA{2, 2, 2, 255}}
	hit := raycast.Hit{Cell: 3, Distance: 2}

	RenderColumn(hit, 1, fb, NewFlatShader(nil), bg)

	span := ProjectWall(2, 100)
	for y := 0; y < 100; y++ {
		want := bg.Ceiling
		switch {
		case y >= span.End:
			want = bg.Floor
		case y >= span.Start:
			want = color.RGBA{0, 0, 255, 255}
		}
		if got := fb.RGBAAt(1, y); got != want {
			t.Fatalf("row %d: got %v want %v", y, got, want)
		}
		if got := fb.RGBAAt(0, y); got != (color.RGBA{}) {
			t.Fatalf("neighbouring column was written at row %d", y)
		}
	}
}

func TestTextureSamplingRoundTrip(t *testing.T) {
	wall := color.RGBA{200, 100, 50, 255}
	atlas, err := NewAtlas(16, [][]byte{uniformTexture(16, wall)})
	if err != nil {
		t.Fatal(err)
	}
	g := gridFrom(t, "111", "101", "111")
	fb := NewFrameBuffer(64, 48)
	shader := NewTextureShader(atlas)
	bg := Background{Ceiling: color.RGBA{9, 9, 9, 255}, Floor: color.RGBA{7, 7, 7, 255}}

	for _, angle := range []float64{0, 0.4, math.Pi / 2, 2.2, math.Pi, 4.1, 5.9} {
		cam := camera.NewCamera(1.5, 1.5, angle, math.Pi/3)
		for x := 0; x < fb.Width; x++ {
			hit := raycast.CastColumn(cam, x, fb.Width, g)
			RenderColumn(hit, x, fb, shader, bg)

			want := wall
			if hit.Side {
				want = color.RGBA{100, 50, 25, 255}
			}
			span := ProjectWall(hit.Distance, fb.Height)
			for y := span.Start; y < span.End; y++ {
				if got := fb.RGBAAt(x, y); got != want {
					t.Fatalf("angle %v column %d row %d: got %v want %v", angle, x, y, got, want)
				}
			}
		}
	}
}

func TestTextureShaderStepsThroughTexture(t *testing.T) {
	// Texture with a distinct row index in the red channel.
	const size = 4
	tex := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			o := (y*size + x) * 4
			tex[o], tex[o+3] = byte(y), 255
		}
	}
	atlas, err := NewAtlas(size, [][]byte{tex})
	if err != nil {
		t.Fatal(err)
	}
	fb := NewFrameBuffer(1, 8)
	hit := raycast.Hit{Cell: 1, Distance: 1}
	span := ProjectWall(hit.Distance, fb.Height)

	NewTextureShader(atlas).PaintWall(fb, 0, hit, span)

	// Full-height strip of 8 rows maps two screen rows per texel row.
	for y := span.Start; y < span.End; y++ {
		if got := fb.RGBAAt(0, y).R; int(got) != y/2 {
			t.Errorf("row %d sampled texture row %d, want %d", y, got, y/2)
		}
	}
}

func TestNewFrameRendererValidation(t *testing.T) {
	g := world.DefaultGrid()
	small, err := NewAtlas(4, [][]byte{make([]byte, 64), make([]byte, 64)})
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewFrameRenderer(FrameOptions{Width: 10, Height: 10, Grid: g, Atlas: small})
	if !errors.Is(err, ErrMissingTexture) {
		t.Errorf("expected ErrMissingTexture, got %v", err)
	}
	_, err = NewFrameRenderer(FrameOptions{Width: 10, Height: 10, Grid: g, Shading: ShadingTextured})
	if !errors.Is(err, ErrMissingTexture) {
		t.Errorf("textured without atlas: expected ErrMissingTexture, got %v", err)
	}
	_, err = NewFrameRenderer(FrameOptions{Width: 0, Height: 10, Grid: g})
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("expected ErrFrameSize, got %v", err)
	}

	fr, err := NewFrameRenderer(FrameOptions{Width: 10, Height: 10, Grid: g})
	if err != nil {
		t.Fatal(err)
	}
	if fr.Shading() != ShadingFlat {
		t.Errorf("without an atlas the default should be flat, got %v", fr.Shading())
	}
	if fr.ToggleShading() != ShadingFlat {
		t.Error("toggle without atlas must stay flat")
	}
}

func TestFrameRendererOverwritesEveryPixel(t *testing.T) {
	atlas, err := GenerateProceduralAtlas(32)
	if err != nil {
		t.Fatal(err)
	}
	fr, err := NewFrameRenderer(FrameOptions{
		Width: 80, Height: 60,
		Grid:       world.DefaultGrid(),
		Atlas:      atlas,
		Background: Background{Ceiling: color.RGBA{10, 20, 30, 255}, Floor: color.RGBA{40, 50, 60, 255}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, fb := range fr.buffers {
		for i := range fb.Pix {
			fb.Pix[i] = 0x5a
		}
	}

	cam := camera.NewCamera(world.DefaultSpawnX, world.DefaultSpawnY, math.Pi, math.Pi/3)
	for _, mode := range []ShadingMode{ShadingTextured, ShadingFlat} {
		if err := fr.SetShading(mode); err != nil {
			t.Fatal(err)
		}
		fb := fr.Render(cam)
		for i := 3; i < len(fb.Pix); i += 4 {
			if fb.Pix[i] != 255 {
				t.Fatalf("%s: pixel %d not written", mode, i/4)
			}
		}
	}
}

func TestFrameRendererDoubleBuffers(t *testing.T) {
	fr, err := NewFrameRenderer(FrameOptions{Width: 16, Height: 12, Grid: world.DefaultGrid()})
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.NewCamera(world.DefaultSpawnX, world.DefaultSpawnY, math.Pi, math.Pi/3)

	first := fr.Render(cam)
	snapshot := append([]byte(nil), first.Pix...)

	cam.Rotate(1)
	second := fr.Render(cam)
	if first == second {
		t.Fatal("consecutive frames must use different buffers")
	}
	if !bytes.Equal(first.Pix, snapshot) {
		t.Error("previous frame was modified by the next render")
	}
	if third := fr.Render(cam); third != first {
		t.Error("buffers should alternate")
	}
}

func TestFrameRendererParallelMatchesSequential(t *testing.T) {
	atlas, err := GenerateProceduralAtlas(64)
	if err != nil {
		t.Fatal(err)
	}
	opts := FrameOptions{Width: 120, Height: 90, Grid: world.DefaultGrid(), Atlas: atlas}
	seq, err := NewFrameRenderer(opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Columns = goroutineRunner{}
	par, err := NewFrameRenderer(opts)
	if err != nil {
		t.Fatal(err)
	}

	cam := camera.NewCamera(12.3, 9.7, 0.8, math.Pi/3)
	a := seq.Render(cam)
	b := par.Render(cam)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("parallel frame differs from sequential frame")
	}
	if seq.CenterHit() != par.CenterHit() {
		t.Errorf("center hits differ: %+v vs %+v", seq.CenterHit(), par.CenterHit())
	}
}

func TestShaderModes(t *testing.T) {
	atlas, err := GenerateProceduralAtlas(8)
	if err != nil {
		t.Fatal(err)
	}
	shaders := []struct {
		shader Shader
		want   ShadingMode
	}{
		{NewFlatShader(nil), ShadingFlat},
		{NewTextureShader(atlas), ShadingTextured},
	}
	for _, tt := range shaders {
		if got := tt.shader.Mode(); got != tt.want {
			t.Errorf("Mode() = %v, want %v", got, tt.want)
		}
	}
}
