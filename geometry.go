package neko

import (
	"fmt"
	"math"
	"sort"
)

const π = math.Pi

// Point is a pair of screen coordinates. Y grows downwards.
type Point struct {
	X, Y float64
}

// Direction is a compass label used to pick a directional sprite
type Direction string

// Compass directions
const (
	DirN  Direction = "n"
	DirNE Direction = "ne"
	DirE  Direction = "e"
	DirSE Direction = "se"
	DirS  Direction = "s"
	DirSW Direction = "sw"
	DirW  Direction = "w"
	DirNW Direction = "nw"
)

// Sector maps a reference angle to a direction label.
type Sector struct {
	Angle     float64
	Direction Direction
	// Half is the half width of the sector; zero means π/8.
	Half float64
}

func (s Sector) half() float64 {
	if s.Half == 0 {
		return π / 8
	}
	return s.Half
}

// DirectionTable is an ordered list of sectors. The first matching sector wins.
type DirectionTable []Sector

// DefaultDirections is the eight-way table. E appears twice, at π and -π.
var DefaultDirections = DirectionTable{
	{Angle: 0, Direction: DirW},
	{Angle: π * 1 / 4, Direction: DirNW},
	{Angle: π / 2, Direction: DirN},
	{Angle: π * 3 / 4, Direction: DirNE},
	{Angle: π, Direction: DirE},
	{Angle: -π * 1 / 4, Direction: DirSW},
	{Angle: -π / 2, Direction: DirS},
	{Angle: -π * 3 / 4, Direction: DirSE},
	{Angle: -π, Direction: DirE},
}

// MajorDirections keeps only the four major directions of DefaultDirections.
var MajorDirections = DirectionTable{
	{Angle: 0, Direction: DirW, Half: π / 4},
	{Angle: π / 2, Direction: DirN, Half: π / 4},
	{Angle: π, Direction: DirE, Half: π / 4},
	{Angle: -π / 2, Direction: DirS, Half: π / 4},
	{Angle: -π, Direction: DirE, Half: π / 4},
}

// Validate checks that the sectors cover the whole [-π, π] range.
func (t DirectionTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("direction table is empty")
	}

	type span struct{ lo, hi float64 }
	spans := make([]span, 0, len(t))
	for _, s := range t {
		if s.Direction == "" {
			return fmt.Errorf("sector at angle %.3f has no direction", s.Angle)
		}
		spans = append(spans, span{s.Angle - s.half(), s.Angle + s.half()})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	const eps = 1e-9
	covered := -π
	for _, sp := range spans {
		if sp.lo > covered+eps {
			return fmt.Errorf("direction table has a gap between %.3f and %.3f", covered, sp.lo)
		}
		if sp.hi > covered {
			covered = sp.hi
		}
	}
	if covered < π-eps {
		return fmt.Errorf("direction table has a gap between %.3f and %.3f", covered, π)
	}
	return nil
}

// Distance returns the euclidean distance between p and the pointer m
func Distance(p, m Point) float64 {
	dx := p.X - m.X
	dy := p.Y - m.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DirectionTo classifies the angle between p and the pointer m.
// A nil table means DefaultDirections. It returns an empty label if no sector matches.
func DirectionTo(p, m Point, table DirectionTable) Direction {
	if table == nil {
		table = DefaultDirections
	}

	dx := p.X - m.X
	dy := p.Y - m.Y
	α := math.Atan2(dy, dx)

	for _, s := range table {
		β := α - s.Angle
		if -s.half() <= β && β <= s.half() {
			return s.Direction
		}
	}
	return ""
}

// PointerNearby reports whether p is within dmax of the pointer m (inclusive)
func PointerNearby(p, m Point, dmax float64) bool {
	return Distance(p, m) <= dmax
}
