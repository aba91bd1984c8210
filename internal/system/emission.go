// internal/system/emission.go
package system

import (
	"go-sparkles/internal/config"
	"go-sparkles/pkg/utils"
)

// Decision is the emission controller's verdict for one frame.
type Decision struct {
	Velocity utils.Vec2 // смещение указателя за кадр
	Speed    float64    // |Velocity|, пикселей за кадр
	Count    int        // сколько частиц создать
	Jitter   float64    // полуширина случайной добавки к скорости
}

// EmissionSystem decides how many particles to spawn from pointer motion.
// It is pure: the same positions always give the same Decision.
type EmissionSystem struct {
	mode          string
	fixedCount    int
	fixedJitter   float64
	jitterDivisor float64
	thresholds    []float64
	counts        []int
}

// NewEmissionSystem copies the emission table out of cfg.
func NewEmissionSystem(cfg config.EmissionConfig) *EmissionSystem {
	return &EmissionSystem{
		mode:          cfg.Mode,
		fixedCount:    cfg.FixedCount,
		fixedJitter:   cfg.FixedJitter,
		jitterDivisor: cfg.JitterDivisor,
		thresholds:    append([]float64(nil), cfg.Thresholds...),
		counts:        append([]int(nil), cfg.Counts...),
	}
}

// Decide compares the previous and current emission origins.
func (s *EmissionSystem) Decide(prev, curr utils.Vec2) Decision {
	vel := curr.Sub(prev)
	speed := vel.Len()
	return Decision{
		Velocity: vel,
		Speed:    speed,
		Count:    s.CountFor(speed),
		Jitter:   s.JitterFor(speed),
	}
}

// CountFor returns the spawn count for a pointer speed.
func (s *EmissionSystem) CountFor(speed float64) int {
	if s.mode == config.ModeFixed {
		return s.fixedCount
	}
	if speed == 0 {
		return 0
	}
	for i, th := range s.thresholds {
		if speed < th {
			return s.counts[i]
		}
	}
	return s.counts[len(s.counts)-1]
}

// JitterFor returns the jitter magnitude for a pointer speed.
func (s *EmissionSystem) JitterFor(speed float64) float64 {
	if s.mode == config.ModeFixed {
		return s.fixedJitter
	}
	return speed / s.jitterDivisor
}

// Fixed reports whether the controller ignores pointer speed.
func (s *EmissionSystem) Fixed() bool {
	return s.mode == config.ModeFixed
}
