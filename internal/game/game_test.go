package game

import (
	"strings"
	"testing"

	"raycaster/internal/camera"
	"raycaster/internal/engine"
	"raycaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputHandlerPoll(t *testing.T) {
	held := map[ebiten.Key]bool{}
	ih := newInputHandler(func(k ebiten.Key) bool { return held[k] })

	held[ebiten.KeyUp] = true
	held[ebiten.KeyD] = true
	held[ebiten.KeyQ] = true
	held[ebiten.KeyTab] = true

	st := ih.Poll()
	want := camera.MoveForward | camera.RotateRight | camera.StrafeLeft
	if st.Intents != want {
		t.Errorf("expected %v, got %v", want, st.Intents)
	}
	if !st.ToggleShading || st.ToggleHUD || st.Quit {
		t.Errorf("unexpected toggles %+v", st)
	}

	st = ih.Poll()
	if st.ToggleShading {
		t.Error("holding Tab must toggle only once")
	}

	held = map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyS: true}
	ih = newInputHandler(func(k ebiten.Key) bool { return held[k] })
	if got := ih.Poll().Intents; got != camera.MoveForward|camera.MoveBackward {
		t.Errorf("opposing keys are both reported, got %v", got)
	}
}

func TestWindowDrag(t *testing.T) {
	var d windowDrag

	if dx, dy := d.update(true, 100, 50, 2); dx != 0 || dy != 0 {
		t.Errorf("grab tick should not move, got %d,%d", dx, dy)
	}
	if dx, dy := d.update(true, 110, 45, 2); dx != 20 || dy != -10 {
		t.Errorf("expected scaled offset (20,-10), got %d,%d", dx, dy)
	}
	d.update(false, 0, 0, 2)
	if d.grabbing {
		t.Error("release should end the drag")
	}
}

func TestHUDLines(t *testing.T) {
	st := engine.Status{X: 22, Y: 12, AngleDegrees: 180, Shading: render.ShadingFlat, AheadCell: 1, AheadDist: 21}
	lines := hudLines(st, 60, 30, map[string]interface{}{"columns_per_frame": 640.0, "goroutines": 12})
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"FPS: 60.0", "Pos: 22.00, 12.00", "Heading: 180", "Shading: flat", "wall 1 at 21.00", "Cols/frame: 640  Goroutines: 12"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q in:\n%s", want, joined)
		}
	}
}

func TestHUDLinesWithoutStats(t *testing.T) {
	for _, line := range hudLines(engine.Status{}, 0, 0, nil) {
		if strings.HasPrefix(line, "Cols/frame") || strings.HasPrefix(line, "Ahead") {
			t.Errorf("unexpected line %q", line)
		}
	}
}
