// internal/state/pause_state.go
package state

import "go-sparkles/pkg/render"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the world: nothing is ticked, the previous state keeps
// drawing its last frame.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {}

func (s *PauseState) Draw(surface render.Surface) {
	if s.previousState != nil {
		s.previousState.Draw(surface)
	}
}

func (s *PauseState) Exit() {}
