package neko

import (
	"fmt"

	"github.com/rmcsoft/neko/audio"
)

// StateName names a behavioral state
type StateName string

// Behavioral states
const (
	StateAlert StateName = "alert"
	StateStill StateName = "still"
	StateYawn  StateName = "yawn"
	StateSleep StateName = "sleep"
	StateRun   StateName = "run"

	StateItch    StateName = "itch"
	StateScratch StateName = "scratch"
)

// State defines an interface for states.
// Decide must be pure: it only looks at the iteration and the pointer proximity.
type State interface {
	Name() StateName
	Decide(n int, near bool) Transition
	GetSound() audio.Cue
}

// States is set of states.
type States = map[StateName]State

// DefaultStates returns the stock states tuned with DefaultOptions
func DefaultStates() States {
	return StatesFor(DefaultOptions)
}

// StatesFor returns the stock states tuned with opts
func StatesFor(opts Options) States {
	return States{
		StateStill:   &stillState{idle: opts.IdleState()},
		StateYawn:    NewYawnState(),
		StateSleep:   NewSleepState(),
		StateAlert:   NewAlertState(),
		StateRun:     NewRunState(),
		StateItch:    NewItchState(opts.ItchTicks, opts.ItchCount),
		StateScratch: NewScratchState(opts.ScratchTicks, opts.ScratchCount, opts.ScratchDisableAlert),
	}
}

// NextTransition runs the decision of a single state
func NextTransition(states States, name StateName, n int, near bool) (Transition, error) {
	state, ok := states[name]
	if !ok {
		return Transition{}, fmt.Errorf("Can't find state with name '%s'", name)
	}
	return state.Decide(n, near), nil
}

// frames splits an idle bout iteration into its frame (1 or 2) and reports
// whether the bout is over. Each frame lasts ticks ticks and the bout has count frames.
func frames(n, ticks, count int) (frame int, done bool) {
	if ticks < 1 {
		ticks = 1
	}
	if count < 1 {
		count = 1
	}
	i := (n - 1) / ticks
	return i%2 + 1, i >= count
}

// toggle alternates 1 and 2; anything else is normalized to 1 first
func toggle(n int) (cur, next int) {
	if n != 1 && n != 2 {
		n = 1
	}
	return n, (n & 1) + 1
}
