package terminal

import (
	"image/color"
	"testing"
	"time"

	"raycaster/internal/camera"
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCanvas map[[2]int]cell

func (f fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f[[2]int{x, y}] = cell{primary, style}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		cols, rows, status int
		w, h               int
	}{
		{80, 25, 1, 80, 48},
		{10, 1, 0, 10, 2},
		{10, 1, 1, 0, 0},
		{0, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		w, h := FrameSize(tt.cols, tt.rows, tt.status)
		if w != tt.w || h != tt.h {
			t.Errorf("FrameSize(%d,%d,%d) = %dx%d, want %dx%d", tt.cols, tt.rows, tt.status, w, h, tt.w, tt.h)
		}
	}
}

func TestPresentPairsRows(t *testing.T) {
	fb := render.NewFrameBuffer(2, 3)
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	green := color.RGBA{0, 128, 0, 255}
	for x := 0; x < 2; x++ {
		fb.SetRGBA(x, 0, red)
		fb.SetRGBA(x, 1, blue)
		fb.SetRGBA(x, 2, green)
	}

	canvas := fakeCanvas{}
	Present(canvas, fb)

	if len(canvas) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(canvas))
	}
	top := canvas[[2]int{1, 0}]
	if top.r != upperHalf {
		t.Errorf("expected half block, got %q", top.r)
	}
	if want := tcell.StyleDefault.Foreground(rgb(red)).Background(rgb(blue)); top.style != want {
		t.Errorf("row 0 style mismatch")
	}
	if want := tcell.StyleDefault.Foreground(rgb(green)).Background(tcell.ColorBlack); canvas[[2]int{0, 1}].style != want {
		t.Errorf("odd last row should pair with black")
	}
}

func TestDrawTextClips(t *testing.T) {
	canvas := fakeCanvas{}
	DrawText(canvas, 2, 0, 5, "hello", tcell.StyleDefault)
	if len(canvas) != 3 || canvas[[2]int{4, 0}].r != 'l' {
		t.Errorf("expected 'hel' in columns 2..4, got %v", canvas)
	}
}

func TestKeyHold(t *testing.T) {
	k := NewKeyHold(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	if a := k.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), t0); a != ActionNone {
		t.Errorf("arrow should not be an action, got %v", a)
	}
	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), t0.Add(100*time.Millisecond))

	if got := k.Active(t0.Add(120 * time.Millisecond)); got != camera.MoveForward|camera.RotateRight {
		t.Errorf("expected forward+right, got %v", got)
	}
	if got := k.Active(t0.Add(200 * time.Millisecond)); got != camera.RotateRight {
		t.Errorf("forward should have expired, got %v", got)
	}
	if got := k.Active(t0.Add(time.Second)); got != 0 {
		t.Errorf("all intents should have expired, got %v", got)
	}
}

func TestKeyHoldActions(t *testing.T) {
	k := NewKeyHold(time.Second)
	now := time.Now()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionToggleShading},
		{"strafe", tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.HandleKey(tt.ev, now); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if !k.Active(now).Has(camera.StrafeLeft) {
		t.Error("',' should strafe left")
	}
}
