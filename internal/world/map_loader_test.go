package world

import (
	"path/filepath"
	"testing"
)

func TestBundledMaps(t *testing.T) {
	t.Run("world.map matches the built-in grid", func(t *testing.T) {
		data, err := LoadMap(filepath.Join("..", "..", "assets", "world.map"))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		want := DefaultGrid()
		if data.Grid.Width() != want.Width() || data.Grid.Height() != want.Height() {
			t.Fatalf("size %dx%d, want %dx%d", data.Grid.Width(), data.Grid.Height(), want.Width(), want.Height())
		}
		for row := 0; row < want.Height(); row++ {
			for col := 0; col < want.Width(); col++ {
				if got := data.Grid.CellAt(row, col); got != want.CellAt(row, col) {
					t.Fatalf("cell (%d,%d) = %d, want %d", col, row, got, want.CellAt(row, col))
				}
			}
		}
		if data.HasStart {
			t.Error("world.map relies on the configured spawn")
		}
	})

	t.Run("maze.map has a spawn marker", func(t *testing.T) {
		data, err := LoadMap(filepath.Join("..", "..", "assets", "maze.map"))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !data.HasStart || data.StartX != 1 || data.StartY != 1 {
			t.Errorf("expected spawn at (1,1), got %v (%d,%d)", data.HasStart, data.StartX, data.StartY)
		}
		if data.Grid.MaxCode() != 5 {
			t.Errorf("expected max code 5, got %d", data.Grid.MaxCode())
		}
	})
}
