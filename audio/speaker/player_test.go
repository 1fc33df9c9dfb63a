package speaker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmcsoft/neko/audio"
)

func TestPlayer_MutedUntilInit(t *testing.T) {
	p := NewPlayer()
	p.Play(audio.Chirp)
	p.Close()
	assert.False(t, p.initialized)
}
