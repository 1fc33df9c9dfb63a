package neko

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionTo(t *testing.T) {
	cases := []struct {
		name string
		p, m Point
		want Direction
	}{
		{"south", Point{0, 0}, Point{0, 1}, DirS},
		{"south east", Point{0, 0}, Point{1, 1}, DirSE},
		{"exactly east", Point{0, 0}, Point{1, 0}, DirE},
		{"east below", Point{0, 0}, Point{1, .1}, DirE},
		{"east above", Point{0, 0}, Point{1, -.1}, DirE},
		{"north east", Point{0, 0}, Point{1, -1}, DirNE},
		{"north", Point{0, 0}, Point{0, -1}, DirN},
		{"north west", Point{0, 0}, Point{-1, -1}, DirNW},
		{"west", Point{0, 0}, Point{-1, 0}, DirW},
		{"south west", Point{0, 0}, Point{-1, 1}, DirSW},
		{"on the pointer", Point{7, 7}, Point{7, 7}, DirW},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DirectionTo(c.p, c.m, nil))
		})
	}
}

func TestDirectionTo_AlwaysLabelled(t *testing.T) {
	eight := map[Direction]bool{DirN: true, DirNE: true, DirE: true, DirSE: true, DirS: true, DirSW: true, DirW: true, DirNW: true}
	four := map[Direction]bool{DirN: true, DirE: true, DirS: true, DirW: true}

	m := Point{100, 100}
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		p := Point{m.X + 10*math.Cos(rad), m.Y + 10*math.Sin(rad)}

		assert.True(t, eight[DirectionTo(p, m, DefaultDirections)], "angle %d", deg)
		assert.True(t, four[DirectionTo(p, m, MajorDirections)], "angle %d", deg)
	}
}

func TestDirectionTo_FirstMatchWins(t *testing.T) {
	table := DirectionTable{
		{Angle: 0, Direction: DirN, Half: math.Pi},
		{Angle: 0, Direction: DirS, Half: math.Pi},
	}
	assert.Equal(t, DirN, DirectionTo(Point{1, 0}, Point{}, table))
}

func TestDirectionTo_NoMatch(t *testing.T) {
	table := DirectionTable{{Angle: math.Pi / 2, Direction: DirN}}
	assert.Equal(t, Direction(""), DirectionTo(Point{1, 0}, Point{}, table))
}

func TestDirectionTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultDirections.Validate())
	assert.NoError(t, MajorDirections.Validate())

	var evenOnly DirectionTable
	for i, s := range DefaultDirections {
		if i&1 == 0 {
			evenOnly = append(evenOnly, s)
		}
	}
	assert.Error(t, evenOnly.Validate(), "major directions with the narrow sectors leave gaps")

	assert.Error(t, DirectionTable{}.Validate())
	assert.Error(t, DirectionTable{{Angle: 0, Half: 4}}.Validate(), "unlabelled sector")
}

func TestDistance_TranslationInvariant(t *testing.T) {
	cases := []struct {
		p, m, shift Point
	}{
		{Point{0, 0}, Point{3, 4}, Point{10, -20}},
		{Point{-5, 2}, Point{7, 7}, Point{0.5, 0.25}},
		{Point{1e3, 1e3}, Point{1e3, 1e3}, Point{-1e3, 42}},
	}

	for _, c := range cases {
		moved := Distance(Point{c.p.X + c.shift.X, c.p.Y + c.shift.Y}, Point{c.m.X + c.shift.X, c.m.Y + c.shift.Y})
		assert.InDelta(t, Distance(c.p, c.m), moved, 1e-9)
	}
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
}

func TestPointerNearby(t *testing.T) {
	m := Point{0, 0}
	assert.True(t, PointerNearby(Point{15, 0}, m, 15), "boundary is inclusive")
	assert.False(t, PointerNearby(Point{15.01, 0}, m, 15))
	assert.True(t, PointerNearby(Point{0, 0}, m, 0))
}
