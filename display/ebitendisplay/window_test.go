package ebitendisplay

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmcsoft/neko"
	"github.com/rmcsoft/neko/events"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(Config{Width: 0, Height: 100})
	assert.Error(t, err)
}

func TestNew_MissingAssetDir(t *testing.T) {
	_, err := New(Config{Width: 100, Height: 100, AssetDir: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestWindow_Display(t *testing.T) {
	w, err := New(Config{Width: 320, Height: 240})
	require.NoError(t, err)

	require.NoError(t, w.Render("nerun2"))
	require.NoError(t, w.MoveTo(neko.Point{X: 10, Y: 20}))
	assert.Error(t, w.Render("dance"))

	sprite, pos := w.Current()
	assert.Equal(t, "nerun2", sprite)
	assert.Equal(t, neko.Point{X: 10, Y: 20}, pos)
}

func TestWindow_Reload(t *testing.T) {
	dir := t.TempDir()
	w, err := New(Config{Width: 320, Height: 240, AssetDir: dir, AssetExt: "png"})
	require.NoError(t, err)
	require.True(t, w.sprites["still"].Placeholder)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "still.png"), pngBytes(t, 16, 16), 0o644))
	w.Reload("still")
	assert.False(t, w.sprites["still"].Placeholder)
	assert.Equal(t, 16, w.sprites["still"].Image.Bounds().Dx())
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir, "png")
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "yawn.png"), pngBytes(t, 8, 8), 0o644))

	select {
	case name := <-watcher.Events:
		assert.Equal(t, "yawn", name)
	case <-time.After(2 * time.Second):
		t.Fatal("no sprite change reported")
	}
}

func TestCursorPoller(t *testing.T) {
	x, y := 5, 6
	poll := newCursorPoller(func() (int, int) { return x, y })

	e := poll()
	require.NotNil(t, e)
	data, err := e.GetPointerMovedEventData()
	require.NoError(t, err)
	assert.Equal(t, events.PointerMovedEventData{X: 5, Y: 6}, data)

	assert.Nil(t, poll(), "unchanged cursor")

	x = 7
	assert.NotNil(t, poll())
}
