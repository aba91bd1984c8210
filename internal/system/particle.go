// internal/system/particle.go
package system

import (
	"go-sparkles/internal/entity"
	"go-sparkles/internal/event"
)

// ParticleSystem steps every live particle and culls the dead ones.
type ParticleSystem struct {
	arena           *entity.Arena
	eventDispatcher *event.Dispatcher
}

func NewParticleSystem(arena *entity.Arena, eventDispatcher *event.Dispatcher) *ParticleSystem {
	return &ParticleSystem{arena: arena, eventDispatcher: eventDispatcher}
}

// Update runs one frame and returns the number of particles removed.
func (s *ParticleSystem) Update() int {
	s.arena.UpdateAll()
	removed := s.arena.Compact()
	if removed > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ParticlesExpired, Data: removed})
	}
	return removed
}
