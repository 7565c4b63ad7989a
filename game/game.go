// Package game wires the world to raylib: window input, audio, drawing and
// telemetry. Headless runs skip everything that needs a window.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/input"
	"github.com/pthm-cable/treedee/renderer"
	"github.com/pthm-cable/treedee/sim"
	"github.com/pthm-cable/treedee/telemetry"
	"github.com/pthm-cable/treedee/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	RunID          string
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	opts  Options
	world *sim.World
	input input.Source

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	// Graphics, nil when headless
	textures   *renderer.Textures
	scene      *renderer.Scene
	hud        *ui.HUD
	pausePanel *ui.PausePanel
	audio      *Audio

	paused bool
}

// NewGameWithOptions creates a game. Unless headless, the raylib window and
// audio device must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	world, err := sim.NewWorld(cfg, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir, opts.RunID)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		world:     world,
		collector: telemetry.NewCollector(opts.RunID, opts.StatsWindowSec, nominalDT(cfg, opts.Headless)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    output,
	}
	world.AddListener(g.collector)
	world.AddListener(sim.ListenerFunc(g.logEvent))

	if opts.Headless {
		g.input = input.NewScript()
		return g, nil
	}

	if err := g.initGraphics(); err != nil {
		g.Unload()
		return nil, err
	}
	return g, nil
}

// initGraphics loads assets and builds the renderers.
func (g *Game) initGraphics() error {
	textures, err := renderer.LoadTextures(g.cfg.Assets)
	if err != nil {
		return err
	}
	g.textures = textures

	audio, err := LoadAudio(g.cfg.Assets)
	if err != nil {
		return err
	}
	g.audio = audio
	g.world.AddListener(audio)

	g.scene = renderer.NewScene(textures)
	g.hud = ui.NewHUD()
	g.pausePanel = ui.NewPausePanel(g.cfg.Player.LookSpeed)
	g.input = NewRaylibInput()

	rl.DisableCursor()
	slog.Info("assets loaded", "dir", g.cfg.Assets.Dir)
	return nil
}

const controlsLegend = "WASD move  SHIFT sprint  SPACE jump  CLICK throw  E/Q zoom  TAB stats  P pause"

// nominalDT is the frame time used to convert frames to seconds in telemetry.
func nominalDT(cfg *config.Config, headless bool) float64 {
	if headless {
		return cfg.Derived.HeadlessDT
	}
	return cfg.Derived.ReferenceDT
}

// Update samples input and advances the world by the last frame time.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)

	frame := g.input.Sample()
	if frame.IsPressed(input.Pause) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		return
	}

	g.step(frame, float64(rl.GetFrameTime()))
}

// UpdateHeadless advances the world by one fixed frame of scripted input.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)
	frame := g.input.Sample()

	g.step(frame, g.cfg.Derived.HeadlessDT)
	g.perf.EndFrame()
}

func (g *Game) step(frame input.Frame, dt float64) {
	g.world.HandleInput(frame, dt)

	g.perf.StartPhase(telemetry.PhaseUpdate)
	g.world.Update(dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// Draw renders the 3D scene and the overlay.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	g.scene.Draw(g.world)
	g.hud.Draw(ui.HUDDataFor(g.world.Player, w, h))
	if g.paused {
		g.hud.DrawControls(h, controlsLegend)
		if g.pausePanel.Draw(w, h, &g.world.Player.Cam.LookSpeed) {
			g.setPaused(false)
		}
	}
	rl.EndDrawing()

	g.perf.EndFrame()
}

// setPaused freezes the world and frees the cursor for the pause panel.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.opts.Headless {
		return
	}
	if paused {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

// Paused reports whether the world is frozen.
func (g *Game) Paused() bool { return g.paused }

// World returns the simulated world.
func (g *Game) World() *sim.World { return g.world }

// Frame returns the number of completed world updates.
func (g *Game) Frame() uint64 { return g.world.Frame() }

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if g.scene != nil {
		g.scene.Unload()
	}
	g.textures.Unload()
	g.audio.Unload()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
