package neko

import (
	"fmt"

	"github.com/looplab/fsm"
)

// Transition is the outcome of a state decision.
//
// When Goto is set the state hands over to another state within the same tick
// and nothing is rendered. Otherwise the character renders Sprite and runs
// Next with Iteration after DelayTicks ticks.
type Transition struct {
	Goto StateName

	// Sprite is the base sprite name; Frame and the facing direction decorate it
	Sprite string
	Frame  int
	Facing bool
	// MajorFacing limits the facing direction to n, e, s and w
	MajorFacing bool
	// Move steps the character toward the pointer before rendering
	Move bool

	Next       StateName
	Iteration  int
	DelayTicks int
}

// Immediate reports whether the transition hands over within the same tick
func (t Transition) Immediate() bool {
	return t.Goto != ""
}

func (t Transition) String() string {
	if t.Immediate() {
		return fmt.Sprintf("goto %s(%d)", t.Goto, t.Iteration)
	}
	return fmt.Sprintf("render %s/%d, %s(%d) after %d ticks", t.Sprite, t.Frame, t.Next, t.Iteration, t.DelayTicks)
}

// EventDescs is a shorthand for defining the transition map
type EventDescs = []fsm.EventDesc

// Edge names
const (
	EventStartle = "startle"
	EventYawn    = "yawn"
	EventDoze    = "doze"
	EventChase   = "chase"
	EventSettle  = "settle"
	EventItch    = "itch"
	EventScratch = "scratch"
)

// DefaultEventDescs are the allowed state changes
var DefaultEventDescs = EventDescs{
	{Name: EventStartle, Src: []string{string(StateStill), string(StateItch), string(StateScratch)}, Dst: string(StateAlert)},
	{Name: EventYawn, Src: []string{string(StateStill), string(StateItch), string(StateScratch)}, Dst: string(StateYawn)},
	{Name: EventDoze, Src: []string{string(StateStill)}, Dst: string(StateSleep)},
	{Name: EventChase, Src: []string{string(StateAlert)}, Dst: string(StateRun)},
	{Name: EventItch, Src: []string{string(StateStill)}, Dst: string(StateItch)},
	{Name: EventScratch, Src: []string{string(StateStill)}, Dst: string(StateScratch)},
	{Name: EventSettle, Src: []string{string(StateYawn), string(StateSleep), string(StateRun)}, Dst: string(StateStill)},
}

type edge struct {
	src, dst StateName
}

func indexEventDescs(descs EventDescs) map[edge]string {
	edges := make(map[edge]string)
	for _, desc := range descs {
		for _, src := range desc.Src {
			edges[edge{StateName(src), StateName(desc.Dst)}] = desc.Name
		}
	}
	return edges
}
