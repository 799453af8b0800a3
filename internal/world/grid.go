package world

import (
	"errors"
	"fmt"
)

// Cell is a grid cell code. Zero is empty floor; any other value names a wall material.
type Cell uint8

// CellEmpty is the only traversable cell code.
const CellEmpty Cell = 0

var (
	ErrEmptyMap   = errors.New("map has no cells")
	ErrRaggedMap  = errors.New("map rows have inconsistent width")
	ErrOpenBorder = errors.New("map border is not fully enclosed")
)

// Grid is an immutable row-major tile map indexed [row][col], row = Y and col = X.
// It is built once and shared read-only between movement and rendering.
type Grid struct {
	width  int
	height int
	cells  []Cell
	max    Cell
}

// NewGrid copies rows into a Grid. Every border cell must be non-empty so that rays and
// movement can never leave the array.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	height := len(rows)
	width := len(rows[0])
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, 0, width*height),
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedMap, y, len(row), width)
		}
		for _, c := range row {
			if c > g.max {
				g.max = c
			}
		}
		g.cells = append(g.cells, row...)
	}

	for x := 0; x < width; x++ {
		if g.cells[x] == CellEmpty {
			return nil, fmt.Errorf("%w: empty cell at row 0, col %d", ErrOpenBorder, x)
		}
		if g.cells[(height-1)*width+x] == CellEmpty {
			return nil, fmt.Errorf("%w: empty cell at row %d, col %d", ErrOpenBorder, height-1, x)
		}
	}
	for y := 0; y < height; y++ {
		if g.cells[y*width] == CellEmpty {
			return nil, fmt.Errorf("%w: empty cell at row %d, col 0", ErrOpenBorder, y)
		}
		if g.cells[y*width+width-1] == CellEmpty {
			return nil, fmt.Errorf("%w: empty cell at row %d, col %d", ErrOpenBorder, y, width-1)
		}
	}

	return g, nil
}

// MustNewGrid is NewGrid for literal tables known to be valid.
func MustNewGrid(rows [][]Cell) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic("invalid grid: " + err.Error())
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// MaxCode returns the largest cell code present in the map.
func (g *Grid) MaxCode() Cell { return g.max }

// InBounds reports whether (row, col) addresses a cell of the map.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellAt returns the code at (row, col). Out-of-range access is a programming error
// and panics rather than being clamped.
func (g *Grid) CellAt(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("world: cell (%d, %d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return g.cells[row*g.width+col]
}

// IsTileBlocking reports whether the tile at (tileX, tileY) blocks movement.
func (g *Grid) IsTileBlocking(tileX, tileY int) bool {
	return g.CellAt(tileY, tileX) != CellEmpty
}

// GetWorldBounds returns the grid size in tiles.
func (g *Grid) GetWorldBounds() (width, height int) {
	return g.width, g.height
}
