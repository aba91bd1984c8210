// internal/system/spawner.go
package system

import (
	"fmt"

	"go-sparkles/internal/component"
	"go-sparkles/internal/config"
	"go-sparkles/internal/utils"
	"go-sparkles/pkg/render"
	pkgutils "go-sparkles/pkg/utils"
)

// Spawner builds particles. All of its randomness comes from rng.
type Spawner struct {
	particle    config.ParticleConfig
	base        render.HSV
	randomColor bool
	aging       *component.AgingParams
	rng         *utils.PRNGService
}

// NewSpawner prepares a spawner for a validated config.
func NewSpawner(cfg *config.Config, rng *utils.PRNGService) (*Spawner, error) {
	base, err := cfg.BaseColor()
	if err != nil {
		return nil, fmt.Errorf("spawner base colour: %w", err)
	}
	return &Spawner{
		particle:    cfg.Particle,
		base:        base,
		randomColor: cfg.Color.Random,
		aging:       component.NewAgingParams(cfg.Color),
		rng:         rng,
	}, nil
}

// Spawn creates one particle at origin. Its velocity is the pointer velocity
// plus uniform jitter in [-jitter, jitter] per axis, slowed by the velocity
// scale divisor and clamped to the configured maximum.
func (s *Spawner) Spawn(bounds component.Bounds, origin, pointerVel pkgutils.Vec2, jitter float64) component.Particle {
	col := s.base
	if s.randomColor {
		col = render.FromRGB255(uint8(s.rng.Intn(256)), uint8(s.rng.Intn(256)), uint8(s.rng.Intn(256)))
	}

	vel := pointerVel.Add(pkgutils.V2(s.rng.Symmetric(jitter), s.rng.Symmetric(jitter)))
	vel = vel.Div(s.particle.VelocityScaleDivisor).ClampLen(s.particle.VelocityClamp)

	k := component.NewKinetic(bounds, origin, vel, s.particle.Gravity, s.particle.Drag,
		component.Renderable{Color: col, Size: s.particle.Size})
	if s.particle.Variant == config.VariantKinetic {
		return k
	}
	return component.NewSparkle(k, s.particle.Lifetime, s.aging, s.rng)
}
