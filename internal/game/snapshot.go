package game

import "github.com/vovakirdan/snek/internal/core"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Columns   int
	Rows      int
	Body      []core.Position // tail first, head last
	Food      core.Position
	Direction core.Direction
	Pending   int
	Offset    float64
	Score     int
	Growing   bool
}

// Snapshot captures the current state. The returned body is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Columns:   g.cfg.Columns,
		Rows:      g.cfg.Rows,
		Body:      g.snek.Body(),
		Food:      g.food.Position(),
		Direction: g.dirMgr.Current(),
		Pending:   g.dirMgr.Pending(),
		Offset:    g.snek.Offset(),
		Score:     g.score,
		Growing:   g.isGrowing,
	}
}

// Head returns the last body segment of the snapshot.
func (s Snapshot) Head() core.Position {
	return s.Body[len(s.Body)-1]
}

// SegmentDirection returns the direction segment i is travelling: toward
// the next segment for body cells, the current direction for the head.
func (s Snapshot) SegmentDirection(i int) core.Direction {
	if i >= len(s.Body)-1 {
		return s.Direction
	}
	cur, next := s.Body[i], s.Body[i+1]
	switch {
	case next.X > cur.X:
		return core.DirRight
	case next.X < cur.X:
		return core.DirLeft
	case next.Y > cur.Y:
		return core.DirDown
	case next.Y < cur.Y:
		return core.DirUp
	default:
		return core.DirIdle
	}
}
