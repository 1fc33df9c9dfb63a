package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate cues are synthesized at for playback
const SampleRate = beep.SampleRate(44100)

// Cue identifies a short sound effect
type Cue int

// Available cues
const (
	NoCue Cue = iota
	// Chirp is a short rising sweep, played when the character is startled
	Chirp
	// Sigh is a slow falling sweep, played on yawn
	Sigh
)

func (c Cue) String() string {
	switch c {
	case Chirp:
		return "chirp"
	case Sigh:
		return "sigh"
	}
	return "none"
}

// SweepGenerator generates a finite sine sweep with a fade-in/fade-out envelope
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	total     int
	pos       int
	phase     float64
}

// NewSweepGenerator creates a sweep from one frequency to another over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		total:     sr.N(d),
	}
}

// NewCueStreamer returns the streamer for the cue, nil for NoCue
func NewCueStreamer(cue Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case Chirp:
		return NewSweepGenerator(sr, 700, 1400, 120*time.Millisecond, 0.25)
	case Sigh:
		return NewSweepGenerator(sr, 420, 180, 450*time.Millisecond, 0.2)
	}
	return nil
}

// Stream implements beep.Streamer
func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Triangle envelope avoids clicks at both ends
		env := 1 - math.Abs(2*progress-1)
		v := g.amplitude * env * math.Sin(g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer
func (g *SweepGenerator) Err() error {
	return nil
}
