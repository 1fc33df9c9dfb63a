package neko

import "github.com/rmcsoft/neko/audio"

// Still counter milestones
const (
	stillBoutFrom  = 15
	stillBoutTo    = 18
	stillSleepFrom = 21
)

type stillState struct {
	idle StateName
}

// NewStillState creates the idle state. Its iteration counts idle ticks:
// a few yawns start at 15 and the character falls asleep after 20.
func NewStillState() State {
	return &stillState{idle: StateYawn}
}

func (s *stillState) Name() StateName {
	return StateStill
}

func (s *stillState) Decide(n int, near bool) Transition {
	if n < 1 {
		n = 1
	}
	next := (n + 1) & 0xFF

	if !near {
		return Transition{Goto: StateAlert}
	}
	if stillBoutFrom <= n && n <= stillBoutTo {
		if s.idle != StateYawn && s.idle != "" {
			return Transition{Goto: s.idle, Iteration: 1}
		}
		return Transition{Goto: StateYawn, Iteration: next}
	}
	if n >= stillSleepFrom {
		return Transition{Goto: StateSleep}
	}

	return Transition{
		Sprite:     string(StateStill),
		Next:       StateStill,
		Iteration:  next,
		DelayTicks: 1,
	}
}

func (s *stillState) GetSound() audio.Cue {
	return audio.NoCue
}
