package neko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeStep(t *testing.T) {
	p := Point{30, 0}
	m := Point{0, 0}

	MakeStep(&p, m, 15)
	assert.Equal(t, Point{15, 0}, p)

	MakeStep(&p, m, 15)
	assert.Equal(t, Point{0, 0}, p)

	MakeStep(&p, m, 15)
	assert.Equal(t, Point{0, 0}, p, "no movement on the pointer")
}

func TestMakeStep_Diagonal(t *testing.T) {
	p := Point{30, 40}
	MakeStep(&p, Point{0, 0}, 15)
	assert.InDelta(t, 21, p.X, 1e-9)
	assert.InDelta(t, 28, p.Y, 1e-9)
}

func TestMakeStep_Overshoots(t *testing.T) {
	p := Point{10, 0}
	MakeStep(&p, Point{0, 0}, 15)
	assert.InDelta(t, -5, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}
