// internal/component/particle.go
package component

import "go-sparkles/pkg/render"

// Particle is the capability set the simulation loop relies on.
// Variants are chosen when the particle is spawned.
type Particle interface {
	Update()
	IsAlive() bool
	Draw(surface render.Surface)
}

var (
	_ Particle = (*Kinetic)(nil)
	_ Particle = (*Sparkle)(nil)
)

// Noise is the random source used by ageing particles.
type Noise interface {
	Uniform(lo, hi float64) float64
}
