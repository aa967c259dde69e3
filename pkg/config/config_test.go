package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
	if err := cfg.Terrain.ToParams().Validate(); err != nil {
		t.Fatalf("default terrain params rejected: %v", err)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "chunk size below range",
			mutate:  func(cfg *Config) { cfg.Terrain.ChunkSize = 32 },
			wantErr: "terrain.chunk_size must be in [64, 512]",
		},
		{
			name:    "too many chunks",
			mutate:  func(cfg *Config) { cfg.Terrain.NumChunks = 17 },
			wantErr: "terrain.num_chunks must be in [1, 16]",
		},
		{
			name:    "zero octaves",
			mutate:  func(cfg *Config) { cfg.Terrain.Octaves = 0 },
			wantErr: "terrain.octaves must be in [1, 10]",
		},
		{
			name:    "nan bias",
			mutate:  func(cfg *Config) { cfg.Terrain.Bias = float32(math.NaN()) },
			wantErr: "terrain.bias must be in [0.1, 1.0]",
		},
		{
			name:    "negative workers",
			mutate:  func(cfg *Config) { cfg.Terrain.Workers = -1 },
			wantErr: "terrain.workers cannot be negative",
		},
		{
			name:    "zero window",
			mutate:  func(cfg *Config) { cfg.Graphics.Width = 0 },
			wantErr: "graphics width and height must be positive",
		},
		{
			name:    "flat fov",
			mutate:  func(cfg *Config) { cfg.Graphics.FOV = 180 },
			wantErr: "graphics.fov must be between 0 and 180 degrees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestTerrainClamp(t *testing.T) {
	tc := TerrainConfig{ChunkSize: 1000, NumChunks: 0, Octaves: 12, Bias: 0, BaseStep: -4, Workers: -2}
	if !tc.Clamp() {
		t.Fatal("Clamp should report a change")
	}
	want := TerrainConfig{ChunkSize: 512, NumChunks: 1, Octaves: 10, Bias: 0.1, BaseStep: 0, Workers: 0}
	if tc != want {
		t.Fatalf("clamped = %+v, want %+v", tc, want)
	}
	if tc.Clamp() {
		t.Fatal("second Clamp should be a no-op")
	}

	nan := DefaultConfig().Terrain
	nan.Bias = float32(math.NaN())
	nan.Clamp()
	if nan.Bias != MinBias {
		t.Fatalf("NaN bias clamped to %v", nan.Bias)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if cfg.Terrain != DefaultConfig().Terrain {
		t.Fatalf("expected default terrain settings, got %+v", cfg.Terrain)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
terrain:
  chunk_size: 128
  octaves: 7
  bias: 0.25
  seed: 99
logging:
  level: debug
  no_color: true
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Terrain.ChunkSize != 128 || cfg.Terrain.Octaves != 7 || cfg.Terrain.Bias != 0.25 || cfg.Terrain.Seed != 99 {
		t.Fatalf("terrain overrides not applied: %+v", cfg.Terrain)
	}
	if cfg.Terrain.NumChunks != 8 {
		t.Fatalf("unset num_chunks should keep default 8, got %d", cfg.Terrain.NumChunks)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.NoColor || cfg.Graphics.Width != 1366 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("terrain: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "error parsing config") {
		t.Fatalf("err = %v, want parse error", err)
	}
	if cfg.Terrain != DefaultConfig().Terrain {
		t.Fatal("broken file must fall back to defaults")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Terrain.Seed = 424242
	cfg.Terrain.WaterLevel = 0.05

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("loaded %+v, want %+v", loaded, cfg)
	}
}
