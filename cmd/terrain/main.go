package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"terraingen/internal/logger"
	"terraingen/pkg/config"
	"terraingen/pkg/engine"
	"terraingen/pkg/terrain"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	headless := flag.Bool("headless", false, "Generate the terrain once, log statistics and exit")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	cfg, loadErr := config.LoadConfig(*configPath)

	logg, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logg.Close()

	if loadErr != nil {
		logg.Warn(loadErr)
	}

	if cfg.Terrain.Clamp() {
		logg.Warnf("terrain settings clamped to the supported ranges: %+v", cfg.Terrain)
	}
	if err := cfg.Validate(); err != nil {
		logg.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			logg.Fatal(err)
		}
		logg.Infof("configuration written to %s", *writeConfig)
		return
	}

	gen := terrain.NewGenerator(logg, cfg.Terrain.Workers)
	world := terrain.NewWorld(gen, logg, cfg.Terrain.ToParams())

	logg.Info("Generating initial terrain...")
	if _, err := world.Regenerate(context.Background(), cfg.Terrain.ToParams(), cfg.Terrain.Seed); err != nil {
		logg.Fatalf("Failed to generate terrain: %v", err)
	}

	if *headless {
		set := world.Current()
		vertices, triangles := set.Stats()
		logg.Infof("seed %d: %d chunks, %d vertices, %d triangles", set.Seed, len(set.Chunks), vertices, triangles)
		return
	}

	viewer, err := engine.NewEngine(cfg, logg, world)
	if err != nil {
		logg.Errorf("Failed to initialize viewer: %v", err)
		logg.Close()
		os.Exit(1)
	}

	logg.Info("Viewer initialized, starting render loop...")
	viewer.Run()
}

func newLogger(cfg config.LoggingConfig) (*logger.Logger, error) {
	var (
		l   *logger.Logger
		err error
	)
	if cfg.File == "" {
		l = logger.NewLogger(cfg.Level)
	} else if l, err = logger.NewMultiLogger(cfg.Level, cfg.File); err != nil {
		return nil, err
	}

	if cfg.NoColor {
		l.EnableColors(false)
	}
	return l, nil
}
