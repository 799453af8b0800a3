package world

// Demo world spawn pose: cell (22, 12) facing west.
const (
	DefaultSpawnX = 22.0
	DefaultSpawnY = 12.0
)

var defaultRows = []string{
	"111111111111111111111111",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000222220000303030001",
	"100000200020000000000001",
	"100000200020000300030001",
	"100000200020000000000001",
	"100000220220000303030001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"144444444000000000000001",
	"140400004000000000000001",
	"140000504000000000000001",
	"140400004000000000000001",
	"140444444000000000000001",
	"140000000000000000000001",
	"144444444000000000000001",
	"111111111111111111111111",
}

// DefaultGrid returns the built-in 24x24 demo world.
func DefaultGrid() *Grid {
	rows := make([][]Cell, len(defaultRows))
	for y, line := range defaultRows {
		rows[y] = make([]Cell, len(line))
		for x, ch := range line {
			rows[y][x] = Cell(ch - '0')
		}
	}
	return MustNewGrid(rows)
}
