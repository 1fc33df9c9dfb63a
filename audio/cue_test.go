package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, smp := range buf[:k] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestSweepGenerator(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewSweepGenerator(sr, 100, 200, 100*time.Millisecond, 0.5)

	n, peak := drain(g)
	assert.Equal(t, sr.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.0)
	assert.NoError(t, g.Err())
}

func TestNewCueStreamer(t *testing.T) {
	assert.Nil(t, NewCueStreamer(NoCue, SampleRate))

	for _, cue := range []Cue{Chirp, Sigh} {
		s := NewCueStreamer(cue, SampleRate)
		require.NotNil(t, s, cue.String())
		n, _ := drain(s)
		assert.Greater(t, n, 0)
	}
}

func TestCue_String(t *testing.T) {
	assert.Equal(t, "chirp", Chirp.String())
	assert.Equal(t, "sigh", Sigh.String())
	assert.Equal(t, "none", NoCue.String())
}
