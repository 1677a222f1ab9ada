package game

import "github.com/vovakirdan/snek/internal/core"

// maxPending is how many un-applied direction requests are remembered.
const maxPending = 2

// DirectionManager buffers steering input between committed steps and
// decides which direction is actually applied.
type DirectionManager struct {
	current core.Direction
	queue   [maxPending]core.Direction
	head    int // index of the oldest pending entry
	n       int // number of pending entries
}

// NewDirectionManager returns a manager that is idle with nothing pending.
func NewDirectionManager() *DirectionManager {
	return &DirectionManager{current: core.DirIdle}
}

// Go queues a requested direction. When the queue is full the oldest
// request is dropped to make room.
func (m *DirectionManager) Go(dir core.Direction) {
	if m.n == maxPending {
		m.head = (m.head + 1) % maxPending
		m.n--
	}
	m.queue[(m.head+m.n)%maxPending] = dir
	m.n++
}

// Update applies the oldest pending request, if any. A request that
// directly reverses the current direction is consumed and discarded.
func (m *DirectionManager) Update() {
	if m.n == 0 {
		return
	}
	next := m.queue[m.head]
	m.head = (m.head + 1) % maxPending
	m.n--

	if m.current.Reverses(next) {
		return
	}
	m.current = next
}

// Current returns the direction being applied.
func (m *DirectionManager) Current() core.Direction {
	return m.current
}

// Pending returns the number of queued requests.
func (m *DirectionManager) Pending() int {
	return m.n
}
