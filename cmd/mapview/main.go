// Command mapview draws .map files top-down with the spawn point and a preview of the
// rays the renderer would cast from it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"raycaster/internal/camera"
	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
	previewRays  = 24
	turnStep     = math.Pi / 16
)

type mapInfo struct {
	Name           string
	Grid           *world.Grid
	SpawnX, SpawnY float64
	Err            error
}

type viewer struct {
	maps     []mapInfo
	mapIndex int
	palette  *render.FlatShader
	angle    float64
	fov      float64
}

func main() {
	dir := flag.String("dir", "assets", "directory to scan for .map files")
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}

	maps, err := loadMaps(*dir, cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	v := &viewer{
		maps:    maps,
		palette: render.NewFlatShader(render.DefaultPalette),
		angle:   cfg.GetSpawnAngle(),
		fov:     cfg.GetCameraFOV(),
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Raycaster Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// loadMaps returns the built-in map followed by every .map file in dir, sorted by name.
// Files that fail to parse are kept with their error so the viewer can show it.
func loadMaps(dir string, cfg *config.Config) ([]mapInfo, error) {
	maps := []mapInfo{{
		Name:   "built-in",
		Grid:   world.DefaultGrid(),
		SpawnX: cfg.Camera.SpawnX,
		SpawnY: cfg.Camera.SpawnY,
	}}

	paths, err := filepath.Glob(filepath.Join(dir, "*.map"))
	if err != nil {
		return maps, fmt.Errorf("failed to list maps: %w", err)
	}
	sort.Strings(paths)
	for _, path := range paths {
		info := mapInfo{Name: filepath.Base(path), SpawnX: cfg.Camera.SpawnX, SpawnY: cfg.Camera.SpawnY}
		data, err := world.LoadMap(path)
		if err != nil {
			info.Err = err
		} else {
			info.Grid = data.Grid
			if data.HasStart {
				info.SpawnX, info.SpawnY = float64(data.StartX)+0.5, float64(data.StartY)+0.5
			}
		}
		maps = append(maps, info)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return maps, fmt.Errorf("map directory: %w", statErr)
		}
	}
	return maps, nil
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex--
		if v.mapIndex < 0 {
			v.mapIndex = len(v.maps) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.angle -= turnStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.angle += turnStep
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Name, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	hits := v.previewHits(m)
	v.drawMapPanel(screen, m, hits, padding, padding, mapAreaW, mapAreaH)
	drawSidebar(screen, m, hits, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

// previewHits casts a fan of rays from the spawn across the field of view.
func (v *viewer) previewHits(m mapInfo) []rayHit {
	cam := camera.NewCamera(m.SpawnX, m.SpawnY, v.angle, v.fov)
	hits := make([]rayHit, previewRays)
	for i := range hits {
		hit := raycast.CastColumn(cam, i, previewRays, m.Grid)
		dir := raycast.RayDirection(cam, i, previewRays)
		hits[i] = rayHit{Hit: hit, End: cam.Position.Add(dir.Scale(hit.Distance))}
	}
	return hits
}

type rayHit struct {
	raycast.Hit
	End camera.Vec2
}

// cellColor picks the map color of a cell: walls use the flat palette, empty cells the
// floor tone.
func (v *viewer) cellColor(c world.Cell) color.RGBA {
	if c == world.CellEmpty {
		return color.RGBA{35, 35, 45, 255}
	}
	return v.palette.Color(int(c), false)
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, m mapInfo, hits []rayHit, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	worldW, worldH := m.Grid.Width(), m.Grid.Height()
	tileSize := max(2, min(w/worldW, h/worldH))
	originX := x + (w-worldW*tileSize)/2
	originY := y + (h-worldH*tileSize)/2

	for row := 0; row < worldH; row++ {
		for col := 0; col < worldW; col++ {
			drawX := originX + col*tileSize
			drawY := originY + row*tileSize
			vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(tileSize-1), float32(tileSize-1), v.cellColor(m.Grid.CellAt(row, col)), false)
		}
	}

	toScreen := func(p camera.Vec2) (float32, float32) {
		return float32(float64(originX) + p.X*float64(tileSize)), float32(float64(originY) + p.Y*float64(tileSize))
	}
	sx, sy := toScreen(camera.Vec2{X: m.SpawnX, Y: m.SpawnY})
	for _, hit := range hits {
		ex, ey := toScreen(hit.End)
		vector.StrokeLine(screen, sx, sy, ex, ey, 1, color.RGBA{255, 255, 120, 160}, true)
	}

	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, sx, sy, radius, color.RGBA{50, 200, 255, 255}, true)
	vector.StrokeCircle(screen, sx, sy, radius, 1, color.RGBA{255, 255, 255, 255}, true)

	ebitenutil.DebugPrintAt(screen, m.Name, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Q/E to turn, Esc to quit", x+12, y+24)
}

func drawSidebar(screen *ebiten.Image, m mapInfo, hits []rayHit, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	center := hits[len(hits)/2]
	lines := []string{
		fmt.Sprintf("Cells: %dx%d", m.Grid.Width(), m.Grid.Height()),
		fmt.Sprintf("Highest wall code: %d", m.Grid.MaxCode()),
		fmt.Sprintf("Spawn: %.1f, %.1f", m.SpawnX, m.SpawnY),
		"",
		fmt.Sprintf("Center ray: wall %d", center.Cell),
		fmt.Sprintf("  distance %.2f", center.Distance),
		fmt.Sprintf("  steps %d", center.Steps),
		"",
		"Cyan: spawn  Yellow: rays",
	}
	row := y + 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}
