package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MapData contains a loaded map and its optional spawn marker.
type MapData struct {
	Grid     *Grid
	StartX   int
	StartY   int
	HasStart bool
}

// LoadMap loads a map from the specified file path.
func LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return data, nil
}

// ParseMap reads the text map format: one row per line, digits are cell codes, '.' is
// empty floor and '+' is an empty spawn cell. Blank lines and lines starting with '#'
// are skipped.
func ParseMap(r io.Reader) (*MapData, error) {
	var rows [][]Cell
	data := &MapData{StartX: -1, StartY: -1}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		y := len(rows)
		row := make([]Cell, 0, len(line))
		for x, char := range line {
			cell, isStart, err := parseMapCharacter(char)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", y+1, x+1, err)
			}
			if isStart {
				if data.HasStart {
					return nil, fmt.Errorf("line %d: duplicate spawn marker", y+1)
				}
				data.StartX, data.StartY, data.HasStart = x, y, true
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map data: %w", err)
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	data.Grid = grid
	return data, nil
}

func parseMapCharacter(char rune) (Cell, bool, error) {
	switch {
	case char == '+':
		return CellEmpty, true, nil
	case char == '.':
		return CellEmpty, false, nil
	case char >= '0' && char <= '9':
		return Cell(char - '0'), false, nil
	}
	return CellEmpty, false, fmt.Errorf("unknown map character %q", char)
}
