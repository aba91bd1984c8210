// internal/state/game_state.go
package state

import (
	"go-sparkles/internal/app"
	"go-sparkles/internal/event"
	"go-sparkles/internal/input"
	"go-sparkles/internal/ui"
	"go-sparkles/pkg/render"
)

var _ State = (*RunState)(nil)

// RunState samples the pointer and ticks the simulation every frame.
type RunState struct {
	sm      *StateMachine
	sim     *app.Simulation
	pointer input.Source
	marker  *ui.PositionMarker
}

func NewRunState(sm *StateMachine, sim *app.Simulation, pointer input.Source) *RunState {
	var marker *ui.PositionMarker
	if sim.Config().Debug.MarkPosition {
		marker = ui.NewPositionMarker()
	}
	return &RunState{sm: sm, sim: sim, pointer: pointer, marker: marker}
}

// Enter re-primes the pointer sample, so resuming after a pause does not
// count the distance moved while paused as one frame of motion.
func (s *RunState) Enter() {
	s.sim.Reprime()
}

func (s *RunState) Update() {
	x, y := s.pointer.Position()
	s.sim.Tick(x, y)
}

func (s *RunState) Draw(surface render.Surface) {
	s.sim.Draw(surface)
	if s.marker != nil {
		s.marker.Draw(surface, s.sim.LastOrigin())
	}
}

func (s *RunState) Exit() {}

// Simulation returns the simulation driven by this state.
func (s *RunState) Simulation() *app.Simulation {
	return s.sim
}

// TogglePause switches between the running state and a pause over it.
func TogglePause(sm *StateMachine, d *event.Dispatcher) {
	switch cur := sm.Current().(type) {
	case *PauseState:
		sm.SetState(cur.previousState)
		d.Dispatch(event.Event{Type: event.PauseToggled, Data: false})
	case nil:
	default:
		sm.SetState(NewPauseState(sm, cur))
		d.Dispatch(event.Event{Type: event.PauseToggled, Data: true})
	}
}
