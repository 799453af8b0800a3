// Package raycast implements the per-column DDA grid traversal.
package raycast

import (
	"math"

	"raycaster/internal/camera"
	"raycaster/internal/world"
)

// sentinelDelta replaces |1/d| for a zero or non-finite ray component so that axis is
// never the limiting one.
const sentinelDelta = 1e30

// minPerpDistance keeps the projected wall height finite when the camera sits on a wall face.
const minPerpDistance = 1e-6

// Hit is the result of casting one screen column.
type Hit struct {
	Cell         world.Cell // Code of the first non-empty cell hit
	Distance     float64    // Perpendicular distance to the wall (prevents fisheye effect)
	Side         bool       // True if the last step crossed a horizontal grid line (Y axis)
	WallFraction float64    // Hit position along the wall face in [0, 1)
	MapX, MapY   int        // Hit cell
	Steps        int        // Grid-line crossings performed
}

// CameraX maps column 0..width-1 onto [-1, 1).
func CameraX(column, width int) float64 {
	return 2*float64(column)/float64(width) - 1
}

// RayDirection returns Direction + Plane*CameraX(column, width).
func RayDirection(cam camera.Camera, column, width int) camera.Vec2 {
	return cam.Direction.Add(cam.Plane.Scale(CameraX(column, width)))
}

// CastColumn casts the ray for one screen column through grid. The camera must be
// strictly inside the bordered map; the loop then ends on the border at the latest.
func CastColumn(cam camera.Camera, column, width int, grid *world.Grid) Hit {
	return Cast(cam.Position, RayDirection(cam, column, width), grid)
}

// Cast marches a ray from pos along dir until it enters a non-empty cell.
func Cast(pos, dir camera.Vec2, grid *world.Grid) Hit {
	deltaDistX := deltaDistance(dir.X)
	deltaDistY := deltaDistance(dir.Y)

	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if dir.X < 0 {
		stepX = -1
		sideDistX = (pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - pos.X) * deltaDistX
	}
	if dir.Y < 0 {
		stepY = -1
		sideDistY = (pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - pos.Y) * deltaDistY
	}

	hit := Hit{}
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			hit.Side = false
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			hit.Side = true
		}
		hit.Steps++

		if cell := grid.CellAt(mapY, mapX); cell != world.CellEmpty {
			hit.Cell = cell
			break
		}
	}

	if hit.Side {
		hit.Distance = sideDistY - deltaDistY
	} else {
		hit.Distance = sideDistX - deltaDistX
	}
	if hit.Distance < minPerpDistance {
		hit.Distance = minPerpDistance
	}
	hit.MapX, hit.MapY = mapX, mapY

	// Texture coordinate runs along the axis that was not advanced.
	var wallX float64
	if hit.Side {
		wallX = pos.X + hit.Distance*dir.X
	} else {
		wallX = pos.Y + hit.Distance*dir.Y
	}
	wallX -= math.Floor(wallX)

	// Fix texture mirroring on wall faces based on ray direction
	if (!hit.Side && dir.X > 0) || (hit.Side && dir.Y < 0) {
		wallX = 1 - wallX
	}
	switch {
	case math.IsNaN(wallX):
		wallX = 0
	case wallX >= 1:
		wallX = math.Nextafter(1, 0)
	}
	hit.WallFraction = wallX

	return hit
}

func deltaDistance(d float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return sentinelDelta
	}
	return math.Abs(1 / d)
}
