package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the cavegen run configuration.
type Config struct {
	Seed          int64  `yaml:"seed"`
	GeneratorType string `yaml:"generator_type"` // "default" or "flat"
	FlatHeight    int    `yaml:"flat_height"`
	Dimension     int    `yaml:"dimension"`
	ParamsPath    string `yaml:"params"` // cave parameters file, empty = built-in defaults

	// Region of chunks to generate, inclusive.
	MinChunkX int `yaml:"min_chunk_x"`
	MinChunkZ int `yaml:"min_chunk_z"`
	MaxChunkX int `yaml:"max_chunk_x"`
	MaxChunkZ int `yaml:"max_chunk_z"`

	Workers int    `yaml:"workers"`
	OutDir  string `yaml:"out_dir"`
	Trace   bool   `yaml:"trace"`   // write every carve decision
	SliceY  int    `yaml:"slice_y"` // print an ASCII slice at this Y, -1 = off
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GeneratorType: "default",
		FlatHeight:    100,
		MinChunkX:     -2,
		MinChunkZ:     -2,
		MaxChunkX:     2,
		MaxChunkZ:     2,
		Workers:       4,
		OutDir:        "./out",
		SliceY:        -1,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.GeneratorType {
	case "default", "flat":
	default:
		return fmt.Errorf("unknown generator %q", c.GeneratorType)
	}
	if c.MinChunkX > c.MaxChunkX || c.MinChunkZ > c.MaxChunkZ {
		return fmt.Errorf("empty region %d,%d..%d,%d", c.MinChunkX, c.MinChunkZ, c.MaxChunkX, c.MaxChunkZ)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	merge(explicitFlags, "seed", &cfg.Seed, fromFile.Seed)
	merge(explicitFlags, "generator", &cfg.GeneratorType, fromFile.GeneratorType)
	merge(explicitFlags, "flat-height", &cfg.FlatHeight, fromFile.FlatHeight)
	merge(explicitFlags, "dimension", &cfg.Dimension, fromFile.Dimension)
	merge(explicitFlags, "params", &cfg.ParamsPath, fromFile.ParamsPath)
	merge(explicitFlags, "min-x", &cfg.MinChunkX, fromFile.MinChunkX)
	merge(explicitFlags, "min-z", &cfg.MinChunkZ, fromFile.MinChunkZ)
	merge(explicitFlags, "max-x", &cfg.MaxChunkX, fromFile.MaxChunkX)
	merge(explicitFlags, "max-z", &cfg.MaxChunkZ, fromFile.MaxChunkZ)
	merge(explicitFlags, "workers", &cfg.Workers, fromFile.Workers)
	merge(explicitFlags, "out", &cfg.OutDir, fromFile.OutDir)
	merge(explicitFlags, "trace", &cfg.Trace, fromFile.Trace)
	merge(explicitFlags, "slice-y", &cfg.SliceY, fromFile.SliceY)
}

func merge[T any](explicit map[string]bool, name string, dst *T, v T) {
	if !explicit[name] {
		*dst = v
	}
}
