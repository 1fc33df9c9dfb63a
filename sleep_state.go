package neko

import "github.com/rmcsoft/neko/audio"

type sleepState struct{}

// NewSleepState creates the sleep state
func NewSleepState() State {
	return &sleepState{}
}

func (s *sleepState) Name() StateName {
	return StateSleep
}

func (s *sleepState) Decide(n int, near bool) Transition {
	n, next := toggle(n)

	// wake up!
	if !near {
		return Transition{Goto: StateStill}
	}

	return Transition{
		Sprite:     string(StateSleep),
		Frame:      n,
		Next:       StateSleep,
		Iteration:  next,
		DelayTicks: 2,
	}
}

func (s *sleepState) GetSound() audio.Cue {
	return audio.NoCue
}
