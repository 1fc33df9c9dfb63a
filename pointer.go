package neko

import "sync"

// PointerTracker holds the latest known pointer position.
// The zero value is ready to use and reports (0,0).
type PointerTracker struct {
	mu  sync.RWMutex
	pos Point
}

// NewPointerTracker creates new PointerTracker
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Update stores the latest pointer sample. Last writer wins.
func (t *PointerTracker) Update(p Point) {
	t.mu.Lock()
	t.pos = p
	t.mu.Unlock()
}

// Position returns the latest pointer sample
func (t *PointerTracker) Position() Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pos
}

// Distance returns the distance from p to the pointer
func (t *PointerTracker) Distance(p Point) float64 {
	return Distance(p, t.Position())
}

// Nearby reports whether p is within dmax of the pointer
func (t *PointerTracker) Nearby(p Point, dmax float64) bool {
	return PointerNearby(p, t.Position(), dmax)
}
