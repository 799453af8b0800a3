package collision

import "math"

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// IsBlocked reports whether the continuous point (x, y) lies in a blocking tile.
// Points outside the world bounds are always blocked and never handed to the checker.
func IsBlocked(tc TileChecker, x, y float64) bool {
	tileX := int(math.Floor(x))
	tileY := int(math.Floor(y))

	width, height := tc.GetWorldBounds()
	if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
		return true
	}
	return tc.IsTileBlocking(tileX, tileY)
}

// SlideResult describes the outcome of a SlideMove.
type SlideResult struct {
	X, Y     float64
	BlockedX bool
	BlockedY bool
}

// SlideMove applies the displacement (dx, dy) one axis at a time. X is tested with Y held
// at its old value, then Y is tested against the already-updated X. A rejected axis keeps
// its old coordinate while the other axis may still move, which lets a mover slide along
// a wall it hits diagonally.
func SlideMove(tc TileChecker, x, y, dx, dy float64) SlideResult {
	res := SlideResult{X: x, Y: y}

	if dx != 0 {
		if IsBlocked(tc, x+dx, y) {
			res.BlockedX = true
		} else {
			res.X = x + dx
		}
	}

	if dy != 0 {
		if IsBlocked(tc, res.X, y+dy) {
			res.BlockedY = true
		} else {
			res.Y = y + dy
		}
	}

	return res
}
