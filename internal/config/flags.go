package config

import (
	"errors"
	"flag"
	"log"
	"os"
)

// Flags are command-line overrides applied on top of the loaded file.
type Flags struct {
	ConfigPath string
	Shading    string
	Workers    int
	MapFile    string
}

// NewFlags returns flags that leave the file configuration untouched.
func NewFlags() *Flags {
	return &Flags{ConfigPath: "config.yaml", Workers: -1}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to the YAML configuration file")
	fs.StringVar(&f.Shading, "shading", f.Shading, "override shading mode (textured|flat)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "override render worker count (0 = CPU count)")
	fs.StringVar(&f.MapFile, "map", f.MapFile, "override map file")
}

// Apply copies set overrides into c and revalidates it.
func (f *Flags) Apply(c *Config) error {
	if f.Shading != "" {
		c.Graphics.Shading = f.Shading
	}
	if f.Workers >= 0 {
		c.Performance.Workers = f.Workers
	}
	if f.MapFile != "" {
		c.World.MapFile = f.MapFile
	}
	return c.Validate()
}

// Load reads the configuration file, falling back to the defaults when it does not
// exist, and applies the overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := LoadConfig(f.ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: %s not found, using default configuration", f.ConfigPath)
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := f.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
