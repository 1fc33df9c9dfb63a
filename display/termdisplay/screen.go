// Package termdisplay draws the character in a terminal and reports mouse motion.
package termdisplay

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/rmcsoft/neko"
	"github.com/rmcsoft/neko/events"
)

// A terminal cell is treated as CellWidth x CellHeight units
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

var (
	characterStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	pointerStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Screen is a neko.Display and an events.EventSource backed by a tcell screen
type Screen struct {
	mu      sync.Mutex
	screen  tcell.Screen
	sprite  string
	pos     neko.Point
	pointer neko.Point

	eventChan chan *events.Event
	quit      chan struct{}
	once      sync.Once
}

// New initializes the tcell screen and starts reading its input
func New(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen:    screen,
		eventChan: make(chan *events.Event, 16),
		quit:      make(chan struct{}),
	}

	go s.run()
	return s, nil
}

// Render implements neko.Display
func (s *Screen) Render(sprite string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sprite = sprite
	s.draw()
	return nil
}

// MoveTo implements neko.Display
func (s *Screen) MoveTo(p neko.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos = p
	s.draw()
	return nil
}

// Name implements events.EventSource
func (s *Screen) Name() string {
	return "TerminalInput"
}

// Events implements events.EventSource
func (s *Screen) Events() chan *events.Event {
	return s.eventChan
}

// Close implements events.EventSource. The screen stays usable until Fini.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.Close()
	s.screen.Fini()
}

// CellOf converts a position to the terminal cell holding it
func CellOf(p neko.Point) (x, y int) {
	return int(p.X / CellWidth), int(p.Y / CellHeight)
}

// PointOf converts a terminal cell to a position
func PointOf(x, y int) neko.Point {
	return neko.Point{X: float64(x) * CellWidth, Y: float64(y) * CellHeight}
}

func (s *Screen) draw() {
	s.screen.Clear()

	px, py := CellOf(s.pointer)
	s.screen.SetContent(px, py, '+', nil, pointerStyle)

	if s.sprite != "" {
		x, y := CellOf(s.pos)
		for _, r := range Glyph(s.sprite) {
			s.screen.SetContent(x, y, r, nil, characterStyle)
			x++
		}
	}

	s.screen.Show()
}

func (s *Screen) run() {
	defer close(s.eventChan)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		var e *events.Event
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			x, y := ev.Position()
			s.mu.Lock()
			s.pointer = PointOf(x, y)
			s.draw()
			s.mu.Unlock()
			e = events.NewPointerMovedEvent(float64(x)*CellWidth, float64(y)*CellHeight)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				logrus.Debug("Quit key pressed")
				e = events.NewQuitEvent()
			}
		case *tcell.EventResize:
			s.mu.Lock()
			s.screen.Sync()
			s.draw()
			s.mu.Unlock()
		}

		if e == nil {
			continue
		}
		select {
		case s.eventChan <- e:
		case <-s.quit:
			return
		}
	}
}
