// internal/app/stats.go
package app

import (
	"go-sparkles/internal/event"
	"go-sparkles/internal/system"
)

// Stats accumulates per-run counters from simulation events.
type Stats struct {
	Frames    uint64
	Spawned   uint64
	Expired   uint64
	Live      int
	LastSpeed float64
	MaxSpeed  float64
	LastCount int
	MaxCount  int
}

// NewStats subscribes a fresh Stats to the dispatcher.
func NewStats(d *event.Dispatcher) *Stats {
	st := &Stats{}
	d.Subscribe(event.PointerSampled, st)
	d.Subscribe(event.ParticlesSpawned, st)
	d.Subscribe(event.ParticlesExpired, st)
	return st
}

func (st *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerSampled:
		d := e.Data.(system.Decision)
		st.Frames++
		st.LastSpeed = d.Speed
		st.LastCount = d.Count
		if d.Speed > st.MaxSpeed {
			st.MaxSpeed = d.Speed
		}
		if d.Count > st.MaxCount {
			st.MaxCount = d.Count
		}
	case event.ParticlesSpawned:
		st.Spawned += uint64(e.Data.(int))
	case event.ParticlesExpired:
		st.Expired += uint64(e.Data.(int))
	}
}
