// internal/host/host.go
package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-sparkles/internal/app"
	"go-sparkles/internal/config"
	"go-sparkles/internal/event"
	"go-sparkles/internal/input"
	"go-sparkles/internal/logging"
	"go-sparkles/internal/state"
	"go-sparkles/internal/ui"
)

const (
	BackendEbiten = "ebiten"
	BackendRaylib = "raylib"

	PointerGlobal = "global" // курсор ОС через robotgo
	PointerWindow = "window" // курсор внутри окна
)

// Options configures an overlay run.
type Options struct {
	Config  *config.Config
	Backend string
	Pointer string
	Logger  *slog.Logger
}

func (o *Options) validate() error {
	if o.Config == nil {
		return fmt.Errorf("host: nil config")
	}
	switch o.Pointer {
	case "":
		o.Pointer = PointerGlobal
	case PointerGlobal, PointerWindow:
	default:
		return fmt.Errorf("host: unknown pointer source %q (valid: global, window)", o.Pointer)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return nil
}

// Run opens the overlay with the selected backend and blocks until the
// window is closed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	opts.Logger.Info("starting overlay",
		"backend", opts.Backend,
		"pointer", opts.Pointer,
		"mode", opts.Config.Emission.Mode,
		"variant", opts.Config.Particle.Variant,
		"fps", opts.Config.Screen.FPS)

	switch opts.Backend {
	case BackendEbiten, "":
		return RunEbiten(ctx, opts)
	case BackendRaylib:
		return RunRaylib(ctx, opts)
	default:
		return fmt.Errorf("host: unknown backend %q (valid: ebiten, raylib)", opts.Backend)
	}
}

// overlay is the backend-independent part of a host: state machine,
// simulation, HUD and frame timing.
type overlay struct {
	sim            *app.Simulation
	stateMachine   *state.StateMachine
	hud            *ui.HUD
	logger         *slog.Logger
	lastUpdateTime time.Time
}

func newOverlay(opts Options, width, height int, window input.Source) (*overlay, error) {
	pointer := window
	if opts.Pointer == PointerGlobal {
		pointer = GlobalPointer()
	}

	sim, err := app.NewSimulation(opts.Config, width, height, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewRunState(sm, sim, pointer))

	o := &overlay{
		sim:            sim,
		stateMachine:   sm,
		logger:         opts.Logger,
		lastUpdateTime: time.Now(),
	}
	if opts.Config.Debug.HUD {
		o.hud = ui.NewHUD()
	}
	sim.EventDispatcher.Subscribe(event.PauseToggled, event.ListenerFunc(func(e event.Event) {
		paused := e.Data.(bool)
		if o.hud != nil {
			o.hud.Paused = paused
		}
		o.logger.Info("pause toggled", "paused", paused, "live", sim.Arena.Len())
	}))
	return o, nil
}

// step advances the state machine by one host frame. The wall-clock time
// between steps only feeds the HUD; the simulation is frame-stepped.
func (o *overlay) step() {
	now := time.Now()
	if o.hud != nil {
		o.hud.FrameTime = now.Sub(o.lastUpdateTime)
	}
	o.lastUpdateTime = now
	o.stateMachine.Update()
}

func (o *overlay) togglePause() {
	state.TogglePause(o.stateMachine, o.sim.EventDispatcher)
}

// hudLines returns nil when the HUD is disabled.
func (o *overlay) hudLines() []string {
	if o.hud == nil {
		return nil
	}
	return o.hud.Lines(o.sim)
}

func (o *overlay) done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
