// internal/entity/ecs.go
package entity

import "go-sparkles/internal/component"

// Arena owns the live particles in spawn order. Particles flag themselves
// dead during Update; Compact drops them once per frame so the slice is
// never modified while it is being iterated.
type Arena struct {
	particles []component.Particle
}

// NewArena creates an empty arena with room for capacity particles.
func NewArena(capacity int) *Arena {
	return &Arena{
		particles: make([]component.Particle, 0, capacity),
	}
}

// Add appends a freshly spawned particle.
func (a *Arena) Add(p component.Particle) {
	a.particles = append(a.particles, p)
}

// Len returns the number of particles currently held, dead ones included
// until the next Compact.
func (a *Arena) Len() int {
	return len(a.particles)
}

// Particles exposes the backing slice for read-only iteration.
func (a *Arena) Particles() []component.Particle {
	return a.particles
}

// UpdateAll steps every live particle exactly once.
func (a *Arena) UpdateAll() {
	for _, p := range a.particles {
		if p.IsAlive() {
			p.Update()
		}
	}
}

// Compact removes dead particles, keeping the order of the survivors,
// and returns how many were removed.
func (a *Arena) Compact() int {
	n := 0
	for _, p := range a.particles {
		if p.IsAlive() {
			a.particles[n] = p
			n++
		}
	}
	removed := len(a.particles) - n
	for i := n; i < len(a.particles); i++ {
		a.particles[i] = nil
	}
	a.particles = a.particles[:n]
	return removed
}
