package game

import (
	"raycaster/internal/camera"
	"raycaster/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each intent to the keys that trigger it.
var keyBindings = []struct {
	intent camera.Intents
	keys   []ebiten.Key
}{
	{camera.MoveForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	{camera.MoveBackward, []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	{camera.RotateLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
	{camera.RotateRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
	{camera.StrafeLeft, []ebiten.Key{ebiten.KeyQ}},
	{camera.StrafeRight, []ebiten.Key{ebiten.KeyE}},
}

// InputHandler samples the keyboard once per tick
type InputHandler struct {
	pressed       func(ebiten.Key) bool
	shadingToggle *keytracker.KeyStateTracker
	hudToggle     *keytracker.KeyStateTracker
	quit          *keytracker.KeyStateTracker
}

// InputState is one tick's worth of input.
type InputState struct {
	Intents       camera.Intents
	ToggleShading bool
	ToggleHUD     bool
	Quit          bool
}

// NewInputHandler creates a new input handler reading ebiten's keyboard state
func NewInputHandler() *InputHandler {
	return newInputHandler(ebiten.IsKeyPressed)
}

func newInputHandler(pressed func(ebiten.Key) bool) *InputHandler {
	return &InputHandler{
		pressed:       pressed,
		shadingToggle: keytracker.New(ebiten.KeyTab),
		hudToggle:     keytracker.New(ebiten.KeySlash),
		quit:          keytracker.New(ebiten.KeyEscape),
	}
}

// Poll reads the held movement keys and the toggle edges.
func (ih *InputHandler) Poll() InputState {
	var st InputState
	for _, b := range keyBindings {
		for _, key := range b.keys {
			if ih.pressed(key) {
				st.Intents |= b.intent
				break
			}
		}
	}
	st.ToggleShading = ih.shadingToggle.Observe(ih.pressed)
	st.ToggleHUD = ih.hudToggle.Observe(ih.pressed)
	st.Quit = ih.quit.Observe(ih.pressed)
	return st
}
