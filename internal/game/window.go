package game

// windowDrag moves a borderless window while the left mouse button is held. The grab
// point stays under the cursor, so each tick the window shifts by how far the cursor
// has drifted from it.
type windowDrag struct {
	grabbing     bool
	grabX, grabY int
}

// update takes the button state and cursor position in screen pixels and returns the
// window offset to apply in window pixels.
func (d *windowDrag) update(pressed bool, cursorX, cursorY int, scale float64) (dx, dy int) {
	if !pressed {
		d.grabbing = false
		return 0, 0
	}
	if !d.grabbing {
		d.grabbing = true
		d.grabX, d.grabY = cursorX, cursorY
		return 0, 0
	}
	return int(float64(cursorX-d.grabX) * scale), int(float64(cursorY-d.grabY) * scale)
}
