// Package speaker plays audio cues through the default output device.
// It is kept apart from package audio because the device backend needs cgo.
package speaker

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/rmcsoft/neko/audio"
)

// Player plays cues through the default audio device.
// An uninitialized Player is muted.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a new muted Player; call Init to open the device
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := beepspeaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	beepspeaker.Play(p.mixer)
	p.initialized = true
	logrus.Debug("Audio initialized")
	return nil
}

// Play starts the cue and returns immediately
func (p *Player) Play(cue audio.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := audio.NewCueStreamer(cue, audio.SampleRate)
	if streamer == nil {
		return
	}

	logrus.Debugf("Playing %s", cue)
	beepspeaker.Lock()
	p.mixer.Add(streamer)
	beepspeaker.Unlock()
}

// Close stops all sounds and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	beepspeaker.Lock()
	p.mixer.Clear()
	beepspeaker.Unlock()
	beepspeaker.Close()
	p.initialized = false
}
