// Package engine ties the grid, camera, movement and frame renderer into one session
// that any front end can drive: Tick once per simulation step, Render once per frame.
package engine

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"raycaster/internal/camera"
	"raycaster/internal/config"
	"raycaster/internal/graphics"
	"raycaster/internal/render"
	"raycaster/internal/threading"
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/world"
)

var ErrBadSpawn = errors.New("spawn position is not an empty cell")

// Session owns the world state of one run. It is not safe for concurrent use.
type Session struct {
	grid       *world.Grid
	camera     camera.Camera
	controller *camera.Controller
	renderer   *render.FrameRenderer
	frameOpts  render.FrameOptions
	threading  *threading.ThreadingComponents
	dt         float64
	alerts     alertThrottle
}

// Options override parts of the configuration that front ends decide at runtime.
type Options struct {
	Width, Height int     // zero keeps the configured screen size
	TickDuration  float64 // seconds; zero uses 1/TPS
}

// NewSession builds a session from configuration. Errors describe the first
// construction step that failed and abort startup.
func NewSession(cfg *config.Config, opts Options) (*Session, error) {
	grid, spawnX, spawnY, err := loadWorld(cfg)
	if err != nil {
		return nil, err
	}
	row, col := int(math.Floor(spawnY)), int(math.Floor(spawnX))
	if !grid.InBounds(row, col) || grid.CellAt(row, col) != world.CellEmpty {
		return nil, fmt.Errorf("%w: (%.2f, %.2f)", ErrBadSpawn, spawnX, spawnY)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.GetScreenWidth(), cfg.GetScreenHeight()
	}
	dt := opts.TickDuration
	if dt <= 0 {
		dt = cfg.GetTickDuration()
	}

	shading, err := render.ParseShadingMode(cfg.Graphics.Shading)
	if err != nil {
		return nil, err
	}
	atlas, err := loadAtlas(cfg, grid)
	if err != nil {
		return nil, err
	}

	tc := threading.NewThreadingComponents(cfg.Performance.Workers, cfg.Performance.MinFPS, cfg.Performance.MaxMemoryMB)
	frameOpts := render.FrameOptions{
		Width:   width,
		Height:  height,
		Grid:    grid,
		Atlas:   atlas,
		Palette: palette(cfg),
		Shading: shading,
		Background: render.Background{
			Ceiling: config.RGBA(cfg.Graphics.CeilingColor),
			Floor:   config.RGBA(cfg.Graphics.FloorColor),
		},
		Columns: tc.ParallelRenderer,
	}
	renderer, err := render.NewFrameRenderer(frameOpts)
	if err != nil {
		tc.Shutdown()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Session{
		grid:       grid,
		camera:     camera.NewCamera(spawnX, spawnY, cfg.GetSpawnAngle(), cfg.GetCameraFOV()),
		controller: camera.NewController(grid, cfg.GetMoveSpeed(), cfg.GetRotationSpeed()),
		renderer:   renderer,
		frameOpts:  frameOpts,
		threading:  tc,
		dt:         dt,
		alerts:     alertThrottle{interval: time.Duration(cfg.Performance.AlertInterval) * time.Second},
	}, nil
}

// loadWorld returns the grid and spawn point. A spawn marker in the map file wins over
// the configured spawn.
func loadWorld(cfg *config.Config) (*world.Grid, float64, float64, error) {
	if cfg.World.MapFile == "" {
		return world.DefaultGrid(), cfg.Camera.SpawnX, cfg.Camera.SpawnY, nil
	}
	data, err := world.LoadMap(cfg.World.MapFile)
	if err != nil {
		return nil, 0, 0, err
	}
	if data.HasStart {
		return data.Grid, float64(data.StartX) + 0.5, float64(data.StartY) + 0.5, nil
	}
	return data.Grid, cfg.Camera.SpawnX, cfg.Camera.SpawnY, nil
}

// loadAtlas decodes the texture directory when one is configured and falls back to the
// procedural textures if that fails.
func loadAtlas(cfg *config.Config, grid *world.Grid) (*render.Atlas, error) {
	size := cfg.Graphics.TextureSize
	if dir := cfg.Graphics.TextureDir; dir != "" {
		atlas, err := graphics.LoadTextureDir(dir, size, int(grid.MaxCode()))
		if err == nil {
			return atlas, nil
		}
		log.Printf("Warning: Failed to load textures from %s, using generated textures: %v", dir, err)
	}
	return render.GenerateProceduralAtlas(size)
}

func palette(cfg *config.Config) []render.PaletteEntry {
	entries := make([]render.PaletteEntry, 0, len(cfg.Graphics.Palette))
	for _, p := range cfg.Graphics.Palette {
		entries = append(entries, render.PaletteEntry{
			Bright: config.RGBA(p.Bright),
			Dark:   config.RGBA(p.Dark),
		})
	}
	return entries
}

// Tick advances the camera by one fixed simulation step.
func (s *Session) Tick(in camera.Intents) {
	s.threading.PerformanceMonitor.RecordTick()
	if s.controller.Advance(&s.camera, in, s.dt) {
		s.threading.PerformanceMonitor.RecordBlockedMove()
	}
}

// Render produces the frame for the current camera pose. The buffer stays valid until
// the call after next.
func (s *Session) Render() *render.FrameBuffer {
	timer := s.threading.PerformanceMonitor.StartRender()
	fb := s.renderer.Render(s.camera)
	timer.EndRender(fb.Width)
	return fb
}

// Resize rebuilds the frame renderer for a new output size. The shading mode carries
// over; the camera is untouched.
func (s *Session) Resize(width, height int) error {
	if w, h := s.renderer.Size(); w == width && h == height {
		return nil
	}
	opts := s.frameOpts
	opts.Width, opts.Height = width, height
	opts.Shading = s.renderer.Shading()
	renderer, err := render.NewFrameRenderer(opts)
	if err != nil {
		return err
	}
	s.renderer, s.frameOpts = renderer, opts
	return nil
}

// Camera returns a copy of the current pose.
func (s *Session) Camera() camera.Camera { return s.camera }

// Grid returns the session's map.
func (s *Session) Grid() *world.Grid { return s.grid }

// FrameSize returns the rendered frame dimensions.
func (s *Session) FrameSize() (int, int) { return s.renderer.Size() }

// ToggleShading switches between flat and textured walls.
func (s *Session) ToggleShading() render.ShadingMode { return s.renderer.ToggleShading() }

// Monitor exposes the performance monitor to front ends.
func (s *Session) Monitor() *monitoring.PerformanceMonitor { return s.threading.PerformanceMonitor }

// Metrics returns the current frame and tick counters.
func (s *Session) Metrics() monitoring.FrameMetrics { return s.threading.GetPerformanceMetrics() }

// DetailedStats returns the monitor's full statistics, including memory and goroutine
// counts. It reads runtime memory stats, so callers should not poll it every frame.
func (s *Session) DetailedStats() map[string]interface{} {
	return s.threading.GetDetailedPerformanceStats()
}

// Status is a snapshot for overlays.
type Status struct {
	X, Y         float64
	AngleDegrees float64
	Shading      render.ShadingMode
	AheadCell    world.Cell
	AheadDist    float64
}

// Status reports the pose and what the center column of the last frame hit.
func (s *Session) Status() Status {
	angle := s.camera.Angle() * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	hit := s.renderer.CenterHit()
	return Status{
		X:            s.camera.Position.X,
		Y:            s.camera.Position.Y,
		AngleDegrees: angle,
		Shading:      s.renderer.Shading(),
		AheadCell:    hit.Cell,
		AheadDist:    hit.Distance,
	}
}

// Close stops the render workers.
func (s *Session) Close() {
	s.threading.Shutdown()
}
