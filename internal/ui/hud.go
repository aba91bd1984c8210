// internal/ui/hud.go
package ui

import (
	"fmt"
	"time"

	"go-sparkles/internal/app"
)

// HUD formats the debug overlay text. Backends draw the lines themselves.
type HUD struct {
	X, Y       int // левый верхний угол
	LineHeight int
	Paused     bool
	FrameTime  time.Duration // время последнего кадра, задаёт хост
}

func NewHUD() *HUD {
	return &HUD{X: 8, Y: 16, LineHeight: 14}
}

// Lines returns the overlay text for the current frame.
func (h *HUD) Lines(sim *app.Simulation) []string {
	st := sim.Stats
	lines := []string{
		fmt.Sprintf("speed %6.1f px/f  spawn %2d", st.LastSpeed, st.LastCount),
		fmt.Sprintf("live %5d  spawned %d  expired %d", st.Live, st.Spawned, st.Expired),
		fmt.Sprintf("max speed %.1f  frame %d  %.1f ms", st.MaxSpeed, sim.Frame,
			float64(h.FrameTime.Microseconds())/1000),
	}
	if h.Paused {
		lines = append(lines, "PAUSED (F9)")
	}
	return lines
}

// LinePos returns the baseline position of line i.
func (h *HUD) LinePos(i int) (x, y int) {
	return h.X, h.Y + i*h.LineHeight
}
