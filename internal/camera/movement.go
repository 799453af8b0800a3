package camera

import (
	"math"
	"strings"

	"raycaster/internal/collision"
)

// Intents is a de-duplicated set of directional flags sampled once per tick.
type Intents uint8

const (
	MoveForward Intents = 1 << iota
	MoveBackward
	StrafeLeft
	StrafeRight
	RotateLeft
	RotateRight
)

var intentNames = []struct {
	flag Intents
	name string
}{
	{MoveForward, "forward"},
	{MoveBackward, "backward"},
	{StrafeLeft, "strafe-left"},
	{StrafeRight, "strafe-right"},
	{RotateLeft, "rotate-left"},
	{RotateRight, "rotate-right"},
}

// Has reports whether every flag in f is set.
func (i Intents) Has(f Intents) bool { return i&f == f }

func (i Intents) String() string {
	if i == 0 {
		return "none"
	}
	var parts []string
	for _, n := range intentNames {
		if i.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// axis folds a pair of opposing intents into -1, 0 or +1.
func (i Intents) axis(neg, pos Intents) float64 {
	v := 0.0
	if i.Has(pos) {
		v++
	}
	if i.Has(neg) {
		v--
	}
	return v
}

// maxSubStep is the widest gap between path samples of a long move.
const maxSubStep = 0.5

// Controller advances a Camera from intents. Speeds are in grid units per second and
// radians per second.
type Controller struct {
	Grid          collision.TileChecker
	MoveSpeed     float64
	RotationSpeed float64
}

// NewController creates a movement controller bound to a grid.
func NewController(grid collision.TileChecker, moveSpeed, rotationSpeed float64) *Controller {
	return &Controller{
		Grid:          grid,
		MoveSpeed:     moveSpeed,
		RotationSpeed: rotationSpeed,
	}
}

// Advance mutates cam in place for one tick of length dt seconds. Translation is
// resolved per axis against the grid, then both Direction and Plane are rotated.
// It reports whether any axis of the translation was rejected.
func (mc *Controller) Advance(cam *Camera, in Intents, dt float64) (blocked bool) {
	if dt <= 0 || in == 0 {
		return false
	}

	step := mc.MoveSpeed * dt
	forward := in.axis(MoveBackward, MoveForward)
	strafe := in.axis(StrafeLeft, StrafeRight)

	if forward != 0 || strafe != 0 {
		d := cam.Direction.Scale(forward * step).Add(cam.Plane.Scale(strafe * step))
		blocked = mc.translate(cam, d)
	}

	if turn := in.axis(RotateLeft, RotateRight); turn != 0 {
		cam.Rotate(turn * mc.RotationSpeed * dt)
	}
	return blocked
}

// translate resolves each axis against its full destination first, as SlideMove does.
// An axis whose destination is free but whose path crosses a wall is rejected too, so
// a long step cannot tunnel. A rejected axis keeps its old coordinate.
func (mc *Controller) translate(cam *Camera, d Vec2) (blocked bool) {
	x, y := cam.Position.X, cam.Position.Y

	res := collision.SlideMove(mc.Grid, x, y, d.X, d.Y)
	if !res.BlockedX && !mc.pathClear(x, y, d.X, 0) {
		res = collision.SlideMove(mc.Grid, x, y, 0, d.Y)
		res.BlockedX = true
	}
	if !res.BlockedY && !mc.pathClear(res.X, y, 0, d.Y) {
		res.Y = y
		res.BlockedY = true
	}

	cam.Position = Vec2{X: res.X, Y: res.Y}
	return res.BlockedX || res.BlockedY
}

// pathClear samples the segment from (x, y) to (x+dx, y+dy) at most maxSubStep apart,
// excluding both ends, and reports whether every sample is free.
func (mc *Controller) pathClear(x, y, dx, dy float64) bool {
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxSubStep))
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n)
		if collision.IsBlocked(mc.Grid, x+dx*f, y+dy*f) {
			return false
		}
	}
	return true
}
