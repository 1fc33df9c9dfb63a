package neko

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"github.com/rmcsoft/neko/audio"
	"github.com/rmcsoft/neko/events"
	"github.com/sirupsen/logrus"
)

// maxHops bounds the same-tick hand-overs between states
const maxHops = 8

// Display renders the character. It is the only output of the state machine.
type Display interface {
	// Render selects the sprite with the given name
	Render(sprite string) error
	// MoveTo commits the character position
	MoveTo(p Point) error
}

// SoundPlayer plays the cue of a state being entered
type SoundPlayer interface {
	Play(cue audio.Cue)
}

// Character is animated character
type Character struct {
	mu sync.Mutex

	opts    Options
	states  States
	display Display
	pointer *PointerTracker
	sound   SoundPlayer

	fsm   *fsm.FSM
	edges map[edge]string

	pos       Point
	pending   StateName
	iteration int

	multiplexer *events.EventSourceMultiplexer
	timerID     events.IDEventSource
	timerArmed  bool
}

// NewCharacter creates new a Character in the still state.
// A nil states map means the stock states tuned with opts.
func NewCharacter(opts Options, states States, display Display, pointer *PointerTracker) (*Character, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Directions().Validate(); err != nil {
		return nil, err
	}
	if display == nil {
		return nil, errors.New("display is required")
	}
	if pointer == nil {
		pointer = NewPointerTracker()
	}
	if states == nil {
		states = StatesFor(opts)
	}
	if _, ok := states[StateStill]; !ok {
		return nil, fmt.Errorf("Can't find state with name '%s'", StateStill)
	}
	if idle := opts.IdleState(); idle != StateYawn {
		if _, ok := states[idle]; !ok {
			return nil, fmt.Errorf("Can't find state with name '%s'", idle)
		}
	}

	c := &Character{
		opts:      opts,
		states:    states,
		display:   display,
		pointer:   pointer,
		edges:     indexEventDescs(DefaultEventDescs),
		pending:   StateStill,
		iteration: 1,
	}

	c.fsm = fsm.NewFSM(
		string(StateStill),
		DefaultEventDescs,
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				c.enterStateCallback(e)
			},
		},
	)

	return c, nil
}

// SetSoundPlayer sets the player used for state cues
func (c *Character) SetSoundPlayer(sound SoundPlayer) {
	c.mu.Lock()
	c.sound = sound
	c.mu.Unlock()
}

// SetPosition places the character without rendering
func (c *Character) SetPosition(p Point) {
	c.mu.Lock()
	c.pos = p
	c.mu.Unlock()
}

// Position returns the character position
func (c *Character) Position() Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// State returns the state that was run last
func (c *Character) State() StateName {
	return StateName(c.fsm.Current())
}

// Pending returns the state and iteration scheduled for the next tick
func (c *Character) Pending() (StateName, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.iteration
}

// Pointer returns the pointer tracker the character follows
func (c *Character) Pointer() *PointerTracker {
	return c.pointer
}

// Step runs the scheduled state once and returns the delay before the next step
func (c *Character) Step() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	name, n := c.pending, c.iteration
	for hops := 0; ; hops++ {
		state, ok := c.states[name]
		if !ok {
			logrus.Errorf("Can't find state with name '%s'", name)
			name, n = StateStill, 1
			continue
		}
		c.enter(name)

		near := c.pointer.Nearby(c.pos, c.opts.Dmax)
		tr := state.Decide(n, near)
		logrus.Debugf("%s(%d) near=%v: %v", name, n, near, tr)

		if !tr.Immediate() {
			c.apply(tr)
			c.pending, c.iteration = tr.Next, tr.Iteration
			ticks := tr.DelayTicks
			if ticks < 1 {
				ticks = 1
			}
			return c.opts.Tick * time.Duration(ticks)
		}

		if hops >= maxHops {
			logrus.Errorf("State '%s' keeps handing over, waiting a tick", name)
			c.pending, c.iteration = name, n
			return c.opts.Tick
		}
		name, n = tr.Goto, tr.Iteration
	}
}

// Run drives the character until ctx is cancelled or a Quit event arrives.
// Pointer events from the sources update the pointer tracker.
func (c *Character) Run(ctx context.Context, sources ...events.EventSource) error {
	c.multiplexer = events.NewEventSourceMultiplexer()
	defer func() {
		c.multiplexer.Close()
		c.timerArmed = false
	}()

	for _, source := range sources {
		c.multiplexer.AddEventSource(source)
	}

	if err := c.display.MoveTo(c.Position()); err != nil {
		logrus.Warn("Can't commit position: ", err)
	}
	c.transit(c.Step())

	for {
		e, err := c.multiplexer.NextEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		switch e.Name {
		case events.PointerMovedEventName:
			data, err := e.GetPointerMovedEventData()
			if err != nil {
				logrus.Warn(err)
				continue
			}
			c.pointer.Update(Point{data.X, data.Y})
		case events.TickEventName:
			c.transit(c.Step())
		case events.QuitEventName:
			logrus.Info("Quit requested")
			return nil
		}
	}
}

// transit arms the single tick timer, replacing the previous one
func (c *Character) transit(d time.Duration) {
	if c.timerArmed {
		c.multiplexer.RemoveEventSource(c.timerID)
	}
	c.timerID = c.multiplexer.AddEventSource(
		events.NewTimerEventSource("TransitTimer", d, events.NewTickEvent()))
	c.timerArmed = true
}

// enter moves the fsm to the state about to run
func (c *Character) enter(name StateName) {
	cur := StateName(c.fsm.Current())
	if cur == name {
		return
	}

	event, ok := c.edges[edge{cur, name}]
	if !ok {
		logrus.Errorf("No transition from '%s' to '%s'", cur, name)
		return
	}
	if err := c.fsm.Event(event); err != nil {
		logrus.Errorf("Transition '%s' failed: %v", event, err)
	}
}

func (c *Character) enterStateCallback(e *fsm.Event) {
	logrus.Infof("%s: %s -> %s", e.Event, e.Src, e.Dst)

	state, ok := c.states[StateName(e.Dst)]
	if !ok || c.sound == nil {
		return
	}
	if cue := state.GetSound(); cue != audio.NoCue {
		c.sound.Play(cue)
	}
}

func (c *Character) apply(tr Transition) {
	m := c.pointer.Position()

	if tr.Move {
		MakeStep(&c.pos, m, c.opts.Step)
		if err := c.display.MoveTo(c.pos); err != nil {
			logrus.Warn("Can't commit position: ", err)
		}
	}

	var dir Direction
	if tr.Facing {
		table := c.opts.Directions()
		if tr.MajorFacing {
			table = MajorDirections
		}
		dir = DirectionTo(c.pos, m, table)
	}
	c.render(DisplayName(tr.Sprite, tr.Frame, dir))
}

func (c *Character) render(sprite string) {
	if !IsKnownSprite(sprite) {
		logrus.Warnf("Unknown sprite '%s', not rendered", sprite)
		return
	}
	if err := c.display.Render(sprite); err != nil {
		logrus.Warnf("Can't render '%s': %v", sprite, err)
	}
}
