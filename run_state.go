package neko

import "github.com/rmcsoft/neko/audio"

type runState struct{}

// NewRunState creates the run state. It is the only state that moves the character.
func NewRunState() State {
	return &runState{}
}

func (s *runState) Name() StateName {
	return StateRun
}

func (s *runState) Decide(n int, near bool) Transition {
	n, next := toggle(n)

	if near {
		return Transition{Goto: StateStill}
	}

	return Transition{
		Sprite:     string(StateRun),
		Frame:      n,
		Facing:     true,
		Move:       true,
		Next:       StateRun,
		Iteration:  next,
		DelayTicks: 1,
	}
}

func (s *runState) GetSound() audio.Cue {
	return audio.NoCue
}
