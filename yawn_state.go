package neko

import "github.com/rmcsoft/neko/audio"

type yawnState struct{}

// NewYawnState creates the yawn state. It is a one tick insert into the
// still cycle: its iteration is the still counter and is handed back unchanged.
func NewYawnState() State {
	return &yawnState{}
}

func (s *yawnState) Name() StateName {
	return StateYawn
}

func (s *yawnState) Decide(n int, near bool) Transition {
	if !near {
		return Transition{Goto: StateStill}
	}

	return Transition{
		Sprite:     string(StateYawn),
		Next:       StateStill,
		Iteration:  n,
		DelayTicks: 1,
	}
}

func (s *yawnState) GetSound() audio.Cue {
	return audio.Sigh
}
