package game

import (
	"slices"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// startBody is the body every game begins with, tail first.
var startBody = []core.Position{{X: 2, Y: 3}, {X: 3, Y: 3}}

// SnekManager owns the snake body and its sub-step timing.
type SnekManager struct {
	body       []core.Position // tail at index 0, head last
	offset     float64         // fraction of the current step elapsed, [0,1)
	lastUpdate time.Time
}

// NewSnekManager returns the starting two-segment snake, stamped at now.
func NewSnekManager(now time.Time) *SnekManager {
	return &SnekManager{
		body:       slices.Clone(startBody),
		lastUpdate: now,
	}
}

// Head returns the most recently added segment.
func (s *SnekManager) Head() core.Position {
	if len(s.body) == 0 {
		panic("game: snake body is empty")
	}
	return s.body[len(s.body)-1]
}

// Update commits one step: newHead is appended, the offset resets and the
// step is stamped at now. Unless growing, the tail is dropped so the length
// stays the same.
func (s *SnekManager) Update(isGrowing bool, newHead core.Position, now time.Time) {
	s.body = append(s.body, newHead)
	s.offset = 0
	s.lastUpdate = now

	if !isGrowing {
		s.body = slices.Delete(s.body, 0, 1)
	}
}

// Contains reports whether any segment occupies p.
func (s *SnekManager) Contains(p core.Position) bool {
	return slices.Contains(s.body, p)
}

// Body returns a copy of the segments, tail first.
func (s *SnekManager) Body() []core.Position {
	return slices.Clone(s.body)
}

// Len returns the number of segments.
func (s *SnekManager) Len() int {
	return len(s.body)
}

// Offset returns the interpolation offset for rendering.
func (s *SnekManager) Offset() float64 {
	return s.offset
}

// SinceUpdate returns the time elapsed since the last committed step.
func (s *SnekManager) SinceUpdate(now time.Time) time.Duration {
	return now.Sub(s.lastUpdate)
}
