// internal/app/simulation.go
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go-sparkles/internal/component"
	"go-sparkles/internal/config"
	"go-sparkles/internal/entity"
	"go-sparkles/internal/event"
	"go-sparkles/internal/logging"
	"go-sparkles/internal/system"
	"go-sparkles/internal/utils"
	"go-sparkles/pkg/render"
	pkgutils "go-sparkles/pkg/utils"
)

// Simulation owns the particle world and runs one tick per host frame:
// decide, spawn, update and cull. Drawing is a separate call.
type Simulation struct {
	cfg             *config.Config
	Rng             *utils.PRNGService
	Arena           *entity.Arena
	EmissionSystem  *system.EmissionSystem
	Spawner         *system.Spawner
	ParticleSystem  *system.ParticleSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Stats           *Stats
	logger          *slog.Logger
	bounds          component.Bounds
	prevOrigin      pkgutils.Vec2
	origin          pkgutils.Vec2
	primed          bool
	Frame           uint64
}

// NewSimulation wires the systems for a validated config and a surface of
// width x height pixels.
func NewSimulation(cfg *config.Config, width, height int, logger *slog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	rng := utils.NewPRNGService(cfg.Seed)
	spawner, err := system.NewSpawner(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	dispatcher := event.NewDispatcher()
	arena := entity.NewArena(256)
	s := &Simulation{
		cfg:             cfg,
		Rng:             rng,
		Arena:           arena,
		EmissionSystem:  system.NewEmissionSystem(cfg.Emission),
		Spawner:         spawner,
		ParticleSystem:  system.NewParticleSystem(arena, dispatcher),
		RenderSystem:    system.NewRenderSystem(arena),
		EventDispatcher: dispatcher,
		Stats:           NewStats(dispatcher),
		logger:          logger,
	}
	s.Resize(width, height)

	if cfg.Debug.PrintSpeed {
		dispatcher.Subscribe(event.PointerSampled, event.ListenerFunc(func(e event.Event) {
			d := e.Data.(system.Decision)
			s.logger.Info("pointer speed", "px_per_frame", d.Speed, "spawn", d.Count)
		}))
	}

	logger.Debug("simulation ready",
		"seed", rng.Seed(),
		"mode", cfg.Emission.Mode,
		"variant", cfg.Particle.Variant,
		"width", width, "height", height)
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Resize changes the bounds used for particles spawned from now on.
func (s *Simulation) Resize(width, height int) {
	s.bounds = component.Bounds{Width: float64(width), Height: float64(height)}
}

// Bounds returns the current visible area.
func (s *Simulation) Bounds() component.Bounds {
	return s.bounds
}

// Origin converts a raw pointer sample into the emission origin. Fixed mode
// applies the configured cursor offset; dynamic mode emits at the tip.
func (s *Simulation) Origin(x, y int) pkgutils.Vec2 {
	p := pkgutils.V2(float64(x), float64(y))
	if s.EmissionSystem.Fixed() {
		p = p.Sub(s.cfg.Emission.Offset)
	}
	return p
}

// LastOrigin returns the emission origin of the most recent tick.
func (s *Simulation) LastOrigin() pkgutils.Vec2 {
	return s.origin
}

// Tick advances the world by one frame for the given pointer sample.
// The first sample only primes the previous position, so no burst is
// emitted for the jump from (0, 0).
func (s *Simulation) Tick(pointerX, pointerY int) system.Decision {
	s.origin = s.Origin(pointerX, pointerY)
	if !s.primed {
		s.prevOrigin = s.origin
		s.primed = true
	}

	d := s.EmissionSystem.Decide(s.prevOrigin, s.origin)
	s.EventDispatcher.Dispatch(event.Event{Type: event.PointerSampled, Data: d})

	for i := 0; i < d.Count; i++ {
		s.Arena.Add(s.Spawner.Spawn(s.bounds, s.origin, d.Velocity, d.Jitter))
	}
	if d.Count > 0 {
		s.EventDispatcher.Dispatch(event.Event{Type: event.ParticlesSpawned, Data: d.Count})
	}

	s.ParticleSystem.Update()

	s.prevOrigin = s.origin
	s.Frame++
	s.Stats.Live = s.Arena.Len()
	if ctx := context.Background(); s.logger.Enabled(ctx, logging.LevelTrace) {
		s.logger.Log(ctx, logging.LevelTrace, "tick",
			"frame", s.Frame, "speed", d.Speed, "spawned", d.Count, "live", s.Stats.Live)
	}
	return d
}

// Draw paints every live particle.
func (s *Simulation) Draw(surface render.Surface) {
	s.RenderSystem.Draw(surface)
}

// Reprime forgets the previous pointer sample, so the next tick measures
// no motion. Live particles are kept.
func (s *Simulation) Reprime() {
	s.primed = false
}
