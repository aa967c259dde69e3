package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"terraingen/internal/util"
	"terraingen/pkg/terrain"
)

// Ranges accepted by the viewer controls
const (
	MinChunkSize = 64
	MaxChunkSize = 512
	MinNumChunks = 1
	MaxNumChunks = 16
	MinOctaves   = 1
	MaxOctaves   = 10
	MinBias      = 0.1
	MaxBias      = 1.0
)

// Config represents the main configuration
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig contains window and projection settings
type GraphicsConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	VSync     bool    `yaml:"vsync"`
	FrameRate int     `yaml:"framerate"`
	FOV       float32 `yaml:"fov"` // degrees
}

// TerrainConfig contains the generation parameters
type TerrainConfig struct {
	ChunkSize  int     `yaml:"chunk_size"`
	NumChunks  int     `yaml:"num_chunks"`
	Octaves    int     `yaml:"octaves"`
	Bias       float32 `yaml:"bias"`
	BaseStep   int     `yaml:"base_step"`   // 0 = half the world side
	Seed       int64   `yaml:"seed"`        // Optional: 0 means random
	Workers    int     `yaml:"workers"`     // 0 = GOMAXPROCS
	WaterLevel float32 `yaml:"water_level"` // height of the water plane
}

// LoggingConfig selects the log level and an optional log file
type LoggingConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	NoColor bool   `yaml:"no_color"` // plain console output even on a terminal
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     1366,
			Height:    768,
			VSync:     true,
			FrameRate: 60,
			FOV:       45,
		},
		Terrain: TerrainConfig{
			ChunkSize:  256,
			NumChunks:  8,
			Octaves:    5,
			Bias:       0.5,
			BaseStep:   0,
			Seed:       0,
			Workers:    0,
			WaterLevel: -0.1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Clamp pulls the terrain settings into the ranges the controls allow.
// It returns true if anything changed.
func (t *TerrainConfig) Clamp() bool {
	before := *t
	t.ChunkSize = util.ClampInt(t.ChunkSize, MinChunkSize, MaxChunkSize)
	t.NumChunks = util.ClampInt(t.NumChunks, MinNumChunks, MaxNumChunks)
	t.Octaves = util.ClampInt(t.Octaves, MinOctaves, MaxOctaves)
	if t.Bias != t.Bias { // NaN
		t.Bias = MinBias
	}
	t.Bias = util.Clamp(t.Bias, MinBias, MaxBias)
	if t.BaseStep < 0 {
		t.BaseStep = 0
	}
	if t.Workers < 0 {
		t.Workers = 0
	}
	return before != *t
}

// ToParams converts the settings to generator parameters.
func (t TerrainConfig) ToParams() terrain.Params {
	return terrain.Params{
		ChunkSize: t.ChunkSize,
		NumChunks: t.NumChunks,
		Octaves:   t.Octaves,
		Bias:      t.Bias,
		BaseStep:  t.BaseStep,
	}
}

// Validate reports every setting outside its allowed range
func (c *Config) Validate() error {
	var problems []string

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		problems = append(problems, "graphics width and height must be positive")
	}
	if c.Graphics.FrameRate < 0 {
		problems = append(problems, "graphics.framerate cannot be negative")
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		problems = append(problems, "graphics.fov must be between 0 and 180 degrees")
	}

	t := c.Terrain
	if t.ChunkSize < MinChunkSize || t.ChunkSize > MaxChunkSize {
		problems = append(problems, fmt.Sprintf("terrain.chunk_size must be in [%d, %d]", MinChunkSize, MaxChunkSize))
	}
	if t.NumChunks < MinNumChunks || t.NumChunks > MaxNumChunks {
		problems = append(problems, fmt.Sprintf("terrain.num_chunks must be in [%d, %d]", MinNumChunks, MaxNumChunks))
	}
	if t.Octaves < MinOctaves || t.Octaves > MaxOctaves {
		problems = append(problems, fmt.Sprintf("terrain.octaves must be in [%d, %d]", MinOctaves, MaxOctaves))
	}
	if !(t.Bias >= MinBias && t.Bias <= MaxBias) {
		problems = append(problems, fmt.Sprintf("terrain.bias must be in [%.1f, %.1f]", MinBias, MaxBias))
	}
	if t.BaseStep < 0 {
		problems = append(problems, "terrain.base_step cannot be negative")
	}
	if t.Workers < 0 {
		problems = append(problems, "terrain.workers cannot be negative")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// LoadConfig loads the configuration from a file. A missing or broken file
// returns the defaults together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
