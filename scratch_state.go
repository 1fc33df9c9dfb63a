package neko

import "github.com/rmcsoft/neko/audio"

type scratchState struct {
	ticks, count int
	noAlert      bool
}

// NewScratchState creates the scratch bout. The character scratches facing
// the pointer along one of the four major directions. With noAlert set the
// bout is not interrupted when the pointer goes away.
func NewScratchState(ticks, count int, noAlert bool) State {
	return &scratchState{ticks: ticks, count: count, noAlert: noAlert}
}

func (s *scratchState) Name() StateName {
	return StateScratch
}

func (s *scratchState) Decide(n int, near bool) Transition {
	if n < 1 {
		n = 1
	}

	if !near && !s.noAlert {
		return Transition{Goto: StateAlert}
	}

	frame, done := frames(n, s.ticks, s.count)
	if done {
		return Transition{Goto: StateYawn, Iteration: stillBoutTo + 1}
	}

	return Transition{
		Sprite:      string(StateScratch),
		Frame:       frame,
		Facing:      true,
		MajorFacing: true,
		Next:        StateScratch,
		Iteration:   n + 1,
		DelayTicks:  1,
	}
}

func (s *scratchState) GetSound() audio.Cue {
	return audio.NoCue
}
