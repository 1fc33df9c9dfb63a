package neko

import "github.com/rmcsoft/neko/audio"

type alertState struct{}

// NewAlertState creates the alert state, shown for two ticks before running
func NewAlertState() State {
	return &alertState{}
}

func (s *alertState) Name() StateName {
	return StateAlert
}

func (s *alertState) Decide(n int, near bool) Transition {
	return Transition{
		Sprite:     string(StateAlert),
		Next:       StateRun,
		Iteration:  1,
		DelayTicks: 2,
	}
}

func (s *alertState) GetSound() audio.Cue {
	return audio.Chirp
}
