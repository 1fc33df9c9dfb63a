package neko

import "github.com/rmcsoft/neko/audio"

type itchState struct {
	ticks, count int
}

// NewItchState creates the itch bout that can replace the yawns of the still cycle.
// Each of the count frames lasts ticks ticks; then the character yawns and
// resumes the still cycle where the yawns end.
func NewItchState(ticks, count int) State {
	return &itchState{ticks: ticks, count: count}
}

func (s *itchState) Name() StateName {
	return StateItch
}

func (s *itchState) Decide(n int, near bool) Transition {
	if n < 1 {
		n = 1
	}

	if !near {
		return Transition{Goto: StateAlert}
	}

	frame, done := frames(n, s.ticks, s.count)
	if done {
		return Transition{Goto: StateYawn, Iteration: stillBoutTo + 1}
	}

	return Transition{
		Sprite:     string(StateItch),
		Frame:      frame,
		Next:       StateItch,
		Iteration:  n + 1,
		DelayTicks: 1,
	}
}

func (s *itchState) GetSound() audio.Cue {
	return audio.NoCue
}
