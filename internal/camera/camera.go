package camera

import "math"

// Vec2 is a 2D vector in grid units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rotate returns v rotated by angle radians. In the y-down grid frame a positive angle
// turns clockwise as seen on the map.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Camera is the viewer pose. Position is a continuous grid coordinate, Direction points
// forward and Plane is perpendicular to Direction with |Plane|/|Direction| = tan(fov/2).
// Plane points to the viewer's right, so screen column 0 looks along Direction - Plane.
type Camera struct {
	Position  Vec2
	Direction Vec2
	Plane     Vec2
}

// NewCamera builds a camera at (x, y) looking along the unit vector at angle radians
// (0 = east, pi/2 = south on the y-down grid) with the given horizontal field of view.
func NewCamera(x, y, angle, fov float64) Camera {
	dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	return Camera{
		Position:  Vec2{X: x, Y: y},
		Direction: dir,
		Plane:     Vec2{X: -dir.Y, Y: dir.X}.Scale(math.Tan(fov / 2)),
	}
}

// Rotate turns both Direction and Plane by the same angle so they stay perpendicular.
// Positive angles turn right.
func (c *Camera) Rotate(angle float64) {
	c.Direction = c.Direction.Rotate(angle)
	c.Plane = c.Plane.Rotate(angle)
}

// FOV returns the horizontal field of view in radians.
func (c Camera) FOV() float64 {
	return 2 * math.Atan2(c.Plane.Len(), c.Direction.Len())
}

// Angle returns the facing angle in radians.
func (c Camera) Angle() float64 {
	return math.Atan2(c.Direction.Y, c.Direction.X)
}
