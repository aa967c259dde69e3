package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"terraingen/internal/logger"
	"terraingen/pkg/config"
	"terraingen/pkg/terrain"
)

// Engine is the interactive terrain viewer
type Engine struct {
	window   *glfw.Window
	config   *config.Config
	logger   *logger.Logger
	world    *terrain.World
	renderer *TerrainRenderer
	input    *InputHandler

	// settings are the terrain parameters edited from the keyboard. They and
	// pending are only touched on the render thread.
	settings   config.TerrainConfig
	pending    *regenRequest
	generating atomic.Bool
	jobs       sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc

	isRunning bool
	frameRate int
}

// NewEngine opens the window and prepares GL state. The world is shared
// with the caller, who may already have generated the first chunk set.
func NewEngine(cfg *config.Config, log *logger.Logger, world *terrain.World) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Graphics.Width, cfg.Graphics.Height, "Terrain Generation", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}
	window.MakeContextCurrent()
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	log.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := NewTerrainRenderer(cfg.Graphics, cfg.Terrain.WaterLevel)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize terrain renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		window:    window,
		config:    cfg,
		logger:    log,
		world:     world,
		renderer:  renderer,
		input:     NewInputHandler(window),
		settings:  cfg.Terrain,
		ctx:       ctx,
		cancel:    cancel,
		frameRate: cfg.Graphics.FrameRate,
	}

	window.SetFramebufferSizeCallback(e.resizeCallback)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return e, nil
}

// Run starts the main loop
func (e *Engine) Run() {
	e.isRunning = true
	e.logger.Info("N: new seed, Up/Down: octaves, Left/Right: bias, PgUp/PgDn: chunks, +/-: chunk size, right mouse: cursor")

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()

		e.processInput()
		e.dispatchRegeneration()

		// Upload a freshly swapped chunk set, if any, then draw
		uploaded := e.renderer.Generation()
		e.renderer.Sync(e.world.Current())
		if gen := e.renderer.Generation(); gen != uploaded {
			e.logger.Debugf("uploaded terrain generation %d", gen)
		}
		e.renderer.Render()

		e.window.SwapBuffers()
		glfw.PollEvents()

		if e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

func (e *Engine) processInput() {
	e.input.Update()

	if e.input.IsMouseButtonPressed(glfw.MouseButtonRight) {
		e.input.ToggleCursor()
	}

	for _, action := range e.input.Actions() {
		switch action {
		case ActionQuit:
			e.isRunning = false
		case ActionReseed:
			e.queueRegeneration(action, true)
		default:
			next, changed := applyAction(e.settings, action)
			if !changed {
				continue
			}
			e.settings = next
			e.queueRegeneration(action, false)
		}
	}
}

// regenRequest is a regeneration waiting for the worker to become free.
type regenRequest struct {
	action Action
	reseed bool
}

// queueRegeneration records a request. Requests made while a build is
// running collapse into one, keeping any reseed.
func (e *Engine) queueRegeneration(action Action, reseed bool) {
	if e.pending != nil {
		reseed = reseed || e.pending.reseed
	}
	e.pending = &regenRequest{action: action, reseed: reseed}
}

// dispatchRegeneration starts the pending request on a background goroutine
// once the previous build has finished. The build uses the settings as they
// are at dispatch time, so edits made during a build are applied by the
// next one.
func (e *Engine) dispatchRegeneration() {
	if e.pending == nil || !e.generating.CompareAndSwap(false, true) {
		return
	}
	req := *e.pending
	e.pending = nil

	params := e.settings.ToParams()
	e.logger.Infof("%v: regenerating with chunk size %d, %d chunks, %d octaves, bias %.2f",
		req.action, params.ChunkSize, params.NumChunks, params.Octaves, params.Bias)

	e.jobs.Add(1)
	go func() {
		defer e.jobs.Done()
		defer e.generating.Store(false)

		var err error
		if req.reseed {
			_, err = e.world.Regenerate(e.ctx, params, 0)
		} else {
			_, err = e.world.Update(e.ctx, params)
		}
		if err != nil {
			e.logger.Warnf("%v failed: %v", req.action, err)
		}
	}()
}

func (e *Engine) resizeCallback(_ *glfw.Window, width int, height int) {
	e.logger.Debugf("Window resized to %dx%d", width, height)
	e.config.Graphics.Width = width
	e.config.Graphics.Height = height
	e.renderer.UpdateResolution(width, height)
}

func (e *Engine) cleanup() {
	e.logger.Info("Shutting down viewer...")
	e.cancel()
	e.jobs.Wait()
	e.renderer.Close()
	glfw.Terminate()
}
