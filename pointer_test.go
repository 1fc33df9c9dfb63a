package neko

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTracker(t *testing.T) {
	tr := NewPointerTracker()
	assert.Equal(t, Point{}, tr.Position())

	tr.Update(Point{3, 4})
	tr.Update(Point{6, 8})
	assert.Equal(t, Point{6, 8}, tr.Position(), "last writer wins")
	assert.Equal(t, 10.0, tr.Distance(Point{}))
	assert.True(t, tr.Nearby(Point{}, 10))
	assert.False(t, tr.Nearby(Point{}, 9.99))
}

func TestPointerTracker_Concurrent(t *testing.T) {
	var tr PointerTracker
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Update(Point{float64(i), float64(i)})
				p := tr.Position()
				assert.Equal(t, p.X, p.Y, "coordinates are written together")
			}
		}(i)
	}
	wg.Wait()
}
