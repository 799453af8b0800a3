package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestObserveRisingEdge(t *testing.T) {
	k := New(ebiten.KeyTab, ebiten.KeyF1)
	held := map[ebiten.Key]bool{}
	pressed := func(key ebiten.Key) bool { return held[key] }

	if k.Observe(pressed) {
		t.Error("nothing pressed yet")
	}
	held[ebiten.KeyTab] = true
	if !k.Observe(pressed) {
		t.Error("expected edge on first press")
	}
	if k.Observe(pressed) {
		t.Error("holding the key must not repeat")
	}
	held[ebiten.KeyF1] = true
	if k.Observe(pressed) {
		t.Error("second equivalent key while the first is held is not a new press")
	}
	held[ebiten.KeyTab], held[ebiten.KeyF1] = false, false
	k.Observe(pressed)
	held[ebiten.KeyF1] = true
	if !k.Observe(pressed) {
		t.Error("expected edge after release")
	}
}
