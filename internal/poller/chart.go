package poller

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
)

// Window is a bounded sliding window of chart points. The zero value is not
// usable; build one with NewWindow.
type Window struct {
	capacity int
	intn     func(n int) int

	mu     sync.Mutex
	points []model.ChartPoint
}

// NewWindow returns an empty window holding at most capacity points.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = chartCapacity
	}
	return &Window{
		capacity: capacity,
		intn:     rand.Intn,
		points:   make([]model.ChartPoint, 0, capacity),
	}
}

// Seed replaces the content with placeholder points "Block 0".."Block N-1".
func (w *Window) Seed() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.points = w.points[:0]
	for i := 0; i < w.capacity; i++ {
		w.points = append(w.points, model.ChartPoint{
			Label: fmt.Sprintf("Block %d", i),
			Value: float64(w.intn(chartSeedMax)),
		})
	}
}

// Push appends p and evicts the oldest points beyond capacity.
func (w *Window) Push(p model.ChartPoint) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.points = append(w.points, p)
	if over := len(w.points) - w.capacity; over > 0 {
		w.points = append(w.points[:0], w.points[over:]...)
	}
}

// Points returns a copy of the window, oldest first.
func (w *Window) Points() []model.ChartPoint {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]model.ChartPoint(nil), w.points...)
}

// Len returns the number of points held.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.points)
}
