package ebitendisplay

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/rmcsoft/neko"
	"github.com/rmcsoft/neko/events"
)

var backgroundColor = color.RGBA{26, 26, 46, 255}

// cursorPollPeriod is roughly one frame at 60 TPS
const cursorPollPeriod = 16 * time.Millisecond

// Config describes the window
type Config struct {
	Width, Height int
	// AssetDir holds <sprite>.<AssetExt> files; empty means placeholders only
	AssetDir string
	AssetExt string
}

// Window is a neko.Display backed by an ebiten game
type Window struct {
	mu       sync.Mutex
	cfg      Config
	fsys     fs.FS
	sprites  map[string]Sprite
	images   map[string]*ebiten.Image
	current  string
	pos      neko.Point
	watcher  *Watcher
	quitting bool
}

// New loads the sprites and creates the window state.
// The window opens when Run is called.
func New(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.AssetExt == "" {
		cfg.AssetExt = "gif"
	}

	w := &Window{
		cfg:    cfg,
		images: make(map[string]*ebiten.Image),
	}

	if cfg.AssetDir != "" {
		if _, err := os.Stat(cfg.AssetDir); err != nil {
			return nil, err
		}
		w.fsys = os.DirFS(cfg.AssetDir)
	}

	logrus.Debug("Loading sprites")
	w.sprites, _ = LoadSprites(w.fsys, cfg.AssetExt)
	return w, nil
}

// Render implements neko.Display
func (w *Window) Render(sprite string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sprites[sprite]; !ok {
		return fmt.Errorf("no sprite named '%s'", sprite)
	}
	w.current = sprite
	return nil
}

// MoveTo implements neko.Display
func (w *Window) MoveTo(p neko.Point) error {
	w.mu.Lock()
	w.pos = p
	w.mu.Unlock()
	return nil
}

// Current returns the selected sprite and the committed position
func (w *Window) Current() (string, neko.Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current, w.pos
}

// Reload reloads one sprite from the asset directory
func (w *Window) Reload(name string) {
	if w.fsys == nil {
		return
	}

	sprite, err := LoadSprite(w.fsys, name, w.cfg.AssetExt)
	if err != nil {
		logrus.Warnf("Can't reload '%s': %v", name, err)
		sprite = NewPlaceholder(name)
	}

	w.mu.Lock()
	w.sprites[name] = sprite
	delete(w.images, name)
	w.mu.Unlock()
	logrus.Infof("Sprite '%s' reloaded", name)
}

// Watch reloads sprites when their files change, until the watcher stops
func (w *Window) Watch() error {
	if w.cfg.AssetDir == "" {
		return nil
	}

	watcher, err := NewWatcher(w.cfg.AssetDir, w.cfg.AssetExt)
	if err != nil {
		return err
	}
	w.watcher = watcher

	go func() {
		for {
			select {
			case name, ok := <-watcher.Events:
				if !ok {
					return
				}
				w.Reload(name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Warn("Sprite watcher: ", err)
			}
		}
	}()
	return nil
}

// PointerSource reports cursor moves inside the window
func (w *Window) PointerSource() events.EventSource {
	return events.NewPollEventSource("WindowCursor", cursorPollPeriod, newCursorPoller(ebiten.CursorPosition))
}

// newCursorPoller emits an event whenever the cursor position changes
func newCursorPoller(cursor func() (int, int)) events.PollFunc {
	lastX, lastY, first := 0, 0, true
	return func() *events.Event {
		x, y := cursor()
		if !first && x == lastX && y == lastY {
			return nil
		}
		first = false
		lastX, lastY = x, y
		return events.NewPointerMovedEvent(float64(x), float64(y))
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// It must be called from the main goroutine.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer func() {
		if w.watcher != nil {
			w.watcher.Close()
		}
	}()

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close asks the game loop to stop
func (w *Window) Close() {
	w.mu.Lock()
	w.quitting = true
	w.mu.Unlock()
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.quitting {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current == "" {
		return
	}

	sprite := w.sprites[w.current]
	img, ok := w.images[w.current]
	if !ok {
		img = ebiten.NewImageFromImage(sprite.Image)
		w.images[w.current] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w.pos.X, w.pos.Y)
	screen.DrawImage(img, op)

	if sprite.Placeholder {
		ebitenutil.DebugPrintAt(screen, sprite.Name, int(w.pos.X)+2, int(w.pos.Y)+8)
	}
}

// Layout implements ebiten.Game
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
