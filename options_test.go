package neko

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	require.NoError(t, DefaultOptions.Validate())
	assert.Equal(t, 300*time.Millisecond, DefaultOptions.Tick)
	assert.Equal(t, 15.0, DefaultOptions.Dmax)
	assert.Equal(t, 15.0, DefaultOptions.Step)
	assert.Equal(t, StateYawn, DefaultOptions.IdleState())
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"zero tick", Options{Tick: 0, Dmax: 1, Step: 1}},
		{"zero step", Options{Tick: time.Second, Dmax: 1, Step: 0}},
		{"negative dmax", Options{Tick: time.Second, Dmax: -1, Step: 1}},
		{"unknown still transition", Options{Tick: time.Second, Dmax: 1, Step: 1, StillTransition: StateSleep}},
		{"negative itch count", Options{Tick: time.Second, Dmax: 1, Step: 1, ItchCount: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.opts.Validate())
		})
	}
}

func TestOptions_Directions(t *testing.T) {
	assert.Equal(t, DefaultDirections, Options{}.Directions())
	assert.Equal(t, MajorDirections, Options{FourWay: true}.Directions())
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte("dt: 100\ndmax: 20\nfour_way: true\n"), DefaultOptions)
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, opts.Tick)
	assert.Equal(t, 20.0, opts.Dmax)
	assert.Equal(t, 15.0, opts.Step, "absent keys keep the base value")
	assert.True(t, opts.FourWay)
}

func TestParseOptions_IdleBout(t *testing.T) {
	doc := "still_transition: scratch\nscratch_ticks: 3\nscratch_count: 2\nscratch_disable_alert: false\nitch_count: 4\n"
	opts, err := ParseOptions([]byte(doc), DefaultOptions)
	require.NoError(t, err)

	assert.Equal(t, StateScratch, opts.IdleState())
	assert.Equal(t, 3, opts.ScratchTicks)
	assert.Equal(t, 2, opts.ScratchCount)
	assert.False(t, opts.ScratchDisableAlert)
	assert.Equal(t, 4, opts.ItchCount)
	assert.Equal(t, 1, opts.ItchTicks)

	_, err = ParseOptions([]byte("still_transition: dance\n"), DefaultOptions)
	assert.Error(t, err)
}

func TestOptions_IdleState(t *testing.T) {
	assert.Equal(t, StateYawn, Options{}.IdleState())
	assert.Equal(t, StateItch, Options{StillTransition: StateItch}.IdleState())
}

func TestParseOptions_Invalid(t *testing.T) {
	_, err := ParseOptions([]byte("step: 0\n"), DefaultOptions)
	assert.Error(t, err)

	_, err = ParseOptions([]byte("dt: [1, 2\n"), DefaultOptions)
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neko.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("step: 5\n"), 0o644))

	opts, err := LoadOptions(path, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 5.0, opts.Step)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"), DefaultOptions)
	assert.Error(t, err)
}
