// Package game runs the interactive simulator: window, input, machine and
// renderer tied together in one frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wirebender/internal/config"
	"github.com/Faultbox/wirebender/internal/engine/debug"
	"github.com/Faultbox/wirebender/internal/engine/input"
	"github.com/Faultbox/wirebender/internal/engine/renderer"
	"github.com/Faultbox/wirebender/internal/engine/window"
	"github.com/Faultbox/wirebender/internal/logger"
	"github.com/Faultbox/wirebender/internal/scene"
	"github.com/Faultbox/wirebender/internal/sim"
	"github.com/Faultbox/wirebender/pkg/batch"
)

// Game is the main simulator instance.
type Game struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	machine *sim.Machine
	batch   *batch.Batch
	shots   *debug.ScreenshotCapture

	wireframe   bool
	captureNext bool
}

// New creates the window, GL renderer and machine described by cfg.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing simulator",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("size_multiplier", cfg.Wire.SizeMultiplier),
	)

	style := scene.StyleFrom(cfg.Render)
	machine, err := sim.New(sim.Options{
		SizeMultiplier: cfg.Wire.SizeMultiplier,
		Duration:       cfg.Animation.Duration,
		Style:          style,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}

	g := &Game{
		config:    cfg,
		log:       log,
		input:     input.New(),
		machine:   machine,
		batch:     batch.New(),
		shots:     debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "wbm"),
		wireframe: cfg.Render.Wireframe,
	}

	// Window first, it owns the GL context.
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		Background: style.Background,
		Samples:    g.window.Samples(),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	log.Info("simulator initialized")
	return g, nil
}

// Run starts the frame loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting frame loop")

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}

		now := time.Now()
		if resized, _, _ := g.input.Resized(); resized {
			g.renderer.Resize(g.window.DrawableSize())
		}
		for _, c := range g.input.Commands() {
			g.dispatch(c, now)
		}

		g.machine.Update(now)
		g.render(now)

		if g.captureNext {
			g.captureNext = false
			g.screenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// dispatch applies one command.
func (g *Game) dispatch(c input.Command, now time.Time) {
	if in, ok := intentFor(c); ok {
		// Rejections and busy frames are logged by the machine.
		if _, err := g.machine.Handle(in, now); err != nil {
			g.log.Debug("intent ignored", zap.Stringer("intent", in), zap.Error(err))
		}
		return
	}

	switch c {
	case input.CommandQuit:
		g.running = false
	case input.CommandScreenshot:
		g.captureNext = true
	case input.CommandWireframe:
		g.wireframe = !g.wireframe
		g.log.Info("draw mode", zap.Stringer("mode", g.drawMode()))
	case input.CommandReset:
		g.machine.Reset()
		g.log.Info("wire reset")
	}
}

// intentFor maps the arrow commands to machine intents.
func intentFor(c input.Command) (sim.Intent, bool) {
	switch c {
	case input.CommandUp:
		return sim.IntentUp, true
	case input.CommandDown:
		return sim.IntentDown, true
	case input.CommandLeft:
		return sim.IntentLeft, true
	case input.CommandRight:
		return sim.IntentRight, true
	default:
		return 0, false
	}
}

func (g *Game) drawMode() renderer.Mode {
	if g.wireframe {
		return renderer.Lines
	}
	return renderer.Triangles
}

// render draws the current frame into the back buffer.
func (g *Game) render(now time.Time) {
	g.renderer.Begin()
	g.machine.Draw(g.batch, g.renderer.Aspect(), now)
	g.renderer.Draw(g.batch, g.drawMode())
	g.renderer.End()
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved",
		zap.String("path", path),
		zap.Stringer("program", g.machine.Program()),
	)
}

// Close cleans up simulator resources.
func (g *Game) Close() {
	g.log.Info("closing simulator")

	g.batch.Release()
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
