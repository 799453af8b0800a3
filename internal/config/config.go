package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Movement    MovementConfig    `yaml:"movement"`
	Camera      CameraConfig      `yaml:"camera"`
	World       WorldConfig       `yaml:"world"`
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Performance PerformanceConfig `yaml:"performance"`
	Terminal    TerminalConfig    `yaml:"terminal"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	WindowTitle  string  `yaml:"window_title"`
	TPS          int     `yaml:"tps"`
	Scale        float64 `yaml:"scale"`
	Borderless   bool    `yaml:"borderless"`
	DragWindow   bool    `yaml:"drag_window"`
	HideCursor   bool    `yaml:"hide_cursor"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // grid units per second
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // degrees
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	SpawnAngle  float64 `yaml:"spawn_angle"` // degrees, 0 = east, 90 = south
}

type WorldConfig struct {
	MapFile string `yaml:"map_file"` // empty uses the built-in map
}

type GraphicsConfig struct {
	Shading      string         `yaml:"shading"` // textured | flat
	TextureSize  int            `yaml:"texture_size"`
	TextureDir   string         `yaml:"texture_dir"` // empty uses procedural textures
	CeilingColor [3]int         `yaml:"ceiling_color"`
	FloorColor   [3]int         `yaml:"floor_color"`
	Palette      []PaletteColor `yaml:"palette"`
}

// PaletteColor is the flat shading pair for one material, indexed by cell code - 1.
type PaletteColor struct {
	Bright [3]int `yaml:"bright"`
	Dark   [3]int `yaml:"dark"`
}

type PerformanceConfig struct {
	Workers       int     `yaml:"workers"` // 0 = one per CPU
	MinFPS        float64 `yaml:"min_fps"`
	MaxMemoryMB   float64 `yaml:"max_memory_mb"`
	AlertInterval int     `yaml:"alert_interval_seconds"`
	ShowHUD       bool    `yaml:"show_hud"`
}

type TerminalConfig struct {
	FPS       int `yaml:"fps"`
	KeyHoldMs int `yaml:"key_hold_ms"` // how long a key press keeps its intent active
}

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			WindowTitle:  "Raycaster",
			TPS:          30,
			Scale:        1,
			DragWindow:   true,
			HideCursor:   true,
		},
		Movement: MovementConfig{
			MoveSpeed:     5.0,
			RotationSpeed: 3.0,
		},
		Camera: CameraConfig{
			FieldOfView: 2 * math.Atan(0.66) * 180 / math.Pi,
			SpawnX:      22,
			SpawnY:      12,
			SpawnAngle:  180,
		},
		Graphics: GraphicsConfig{
			Shading:      "textured",
			TextureSize:  64,
			CeilingColor: [3]int{0, 0, 0},
			FloorColor:   [3]int{0, 0, 0},
		},
		Performance: PerformanceConfig{
			MinFPS:        25,
			MaxMemoryMB:   500,
			AlertInterval: 5,
			ShowHUD:       true,
		},
		Terminal: TerminalConfig{
			FPS:       30,
			KeyHoldMs: 150,
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the renderer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Display.ScreenWidth > 0 && c.Display.ScreenHeight > 0,
		"screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	check(c.Display.TPS > 0, "tps %d", c.Display.TPS)
	check(c.Display.Scale > 0, "scale %v", c.Display.Scale)
	check(c.Movement.MoveSpeed >= 0, "move_speed %v", c.Movement.MoveSpeed)
	check(c.Movement.RotationSpeed >= 0, "rotation_speed %v", c.Movement.RotationSpeed)
	check(c.Camera.FieldOfView > 0 && c.Camera.FieldOfView < 180, "field_of_view %v", c.Camera.FieldOfView)
	check(c.Graphics.Shading == "textured" || c.Graphics.Shading == "flat", "shading %q", c.Graphics.Shading)
	check(c.Graphics.TextureSize > 0 && c.Graphics.TextureSize&(c.Graphics.TextureSize-1) == 0,
		"texture_size %d is not a power of two", c.Graphics.TextureSize)
	check(validColor(c.Graphics.CeilingColor), "ceiling_color %v", c.Graphics.CeilingColor)
	check(validColor(c.Graphics.FloorColor), "floor_color %v", c.Graphics.FloorColor)
	for i, p := range c.Graphics.Palette {
		check(validColor(p.Bright) && validColor(p.Dark), "palette entry %d", i+1)
	}
	check(c.Performance.Workers >= 0, "workers %d", c.Performance.Workers)
	check(c.Terminal.FPS > 0, "terminal fps %d", c.Terminal.FPS)
	check(c.Terminal.KeyHoldMs > 0, "key_hold_ms %d", c.Terminal.KeyHoldMs)

	return errors.Join(errs...)
}

func validColor(c [3]int) bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// RGBA converts a [r, g, b] triple to an opaque color.
func RGBA(c [3]int) color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotationSpeed() float64 {
	return c.Movement.RotationSpeed
}

// GetCameraFOV returns the field of view in radians.
func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// GetSpawnAngle returns the spawn facing in radians.
func (c *Config) GetSpawnAngle() float64 {
	return c.Camera.SpawnAngle * math.Pi / 180
}

// GetTickDuration returns the fixed simulation step in seconds.
func (c *Config) GetTickDuration() float64 {
	return 1 / float64(c.Display.TPS)
}
