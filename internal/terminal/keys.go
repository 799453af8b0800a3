package terminal

import (
	"time"

	"raycaster/internal/camera"

	"github.com/gdamore/tcell/v2"
)

// Action is a one-shot command from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleShading
)

// KeyHold derives held movement keys from key events. Terminals report presses and
// auto-repeats but never releases, so an intent stays active for a hold window after
// its latest event.
type KeyHold struct {
	hold time.Duration
	last map[camera.Intents]time.Time
}

// NewKeyHold creates a tracker whose intents expire hold after the last key event.
func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{hold: hold, last: make(map[camera.Intents]time.Time)}
}

// HandleKey records ev at now and returns any one-shot action it carries.
func (k *KeyHold) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyTab:
		return ActionToggleShading
	case tcell.KeyUp:
		k.press(camera.MoveForward, now)
	case tcell.KeyDown:
		k.press(camera.MoveBackward, now)
	case tcell.KeyLeft:
		k.press(camera.RotateLeft, now)
	case tcell.KeyRight:
		k.press(camera.RotateRight, now)
	case tcell.KeyRune:
		return k.handleRune(ev.Rune(), now)
	}
	return ActionNone
}

func (k *KeyHold) handleRune(r rune, now time.Time) Action {
	switch r {
	case 'q', 'Q':
		return ActionQuit
	case 'w', 'W':
		k.press(camera.MoveForward, now)
	case 's', 'S':
		k.press(camera.MoveBackward, now)
	case 'a', 'A':
		k.press(camera.RotateLeft, now)
	case 'd', 'D':
		k.press(camera.RotateRight, now)
	case ',':
		k.press(camera.StrafeLeft, now)
	case '.':
		k.press(camera.StrafeRight, now)
	}
	return ActionNone
}

func (k *KeyHold) press(intent camera.Intents, now time.Time) {
	k.last[intent] = now
}

// Active returns the intents whose last key event is within the hold window.
func (k *KeyHold) Active(now time.Time) camera.Intents {
	var in camera.Intents
	for intent, at := range k.last {
		if now.Sub(at) < k.hold {
			in |= intent
		} else {
			delete(k.last, intent)
		}
	}
	return in
}
