// Package keytracker turns ebiten's level-triggered key state into edge events.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a group of equivalent keys.
type KeyStateTracker struct {
	Keys        []ebiten.Key
	prevPressed bool
}

// New returns a tracker that fires when any of keys goes down.
func New(keys ...ebiten.Key) *KeyStateTracker {
	return &KeyStateTracker{Keys: keys}
}

// Observe feeds the tracker one sample taken with pressed (ebiten.IsKeyPressed in the
// game) and reports whether none of the keys was down last tick but one is now.
func (k *KeyStateTracker) Observe(pressed func(ebiten.Key) bool) bool {
	down := false
	for _, key := range k.Keys {
		if pressed(key) {
			down = true
			break
		}
	}
	justPressed := down && !k.prevPressed
	k.prevPressed = down
	return justPressed
}
