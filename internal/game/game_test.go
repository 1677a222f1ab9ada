package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T, cfg Settings) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g, err := New(cfg, WithClock(clock), WithSeed(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, clock
}

// setCurrent forces the applied direction without going through the queue.
func setCurrent(g *Game, dir core.Direction) {
	g.dirMgr.current = dir
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Settings
	}{
		{"too narrow", Settings{Columns: 3, Rows: 25, Speed: time.Second}},
		{"too short", Settings{Columns: 25, Rows: 0, Speed: time.Second}},
		{"zero speed", Settings{Columns: 25, Rows: 25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("New() error = %v, expected ErrInvalidSettings", err)
			}
		})
	}
}

func TestTickMovesRight(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())

	out := g.Tick([]core.Command{core.CommandGoRight})
	if out.Stepped {
		t.Fatal("no step should be committed before the interval elapses")
	}

	clock.Advance(150 * time.Millisecond)
	out = g.Tick(nil)
	if !out.Stepped || out.Grew {
		t.Fatalf("Tick() = %+v, expected a plain step", out)
	}

	body := g.Snek().Body()
	expected := []core.Position{{X: 3, Y: 3}, {X: 4, Y: 3}}
	if len(body) != len(expected) {
		t.Fatalf("body = %v, expected %v", body, expected)
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
}

func TestTickOutOfBoundsRestartsBeforeGate(t *testing.T) {
	g, _ := newTestGame(t, DefaultSettings())
	g.snek.body = []core.Position{{X: 1, Y: 0}, {X: 0, Y: 0}}
	g.score = 5
	setCurrent(g, core.DirLeft)

	if g.Peek() != (core.Position{X: -1, Y: 0}) {
		t.Fatalf("Peek() = %v, expected (-1, 0)", g.Peek())
	}

	// No time has passed: the bounds check does not wait for the step gate.
	out := g.Tick(nil)
	if !out.Restarted || out.Reason != ReasonOutOfBounds {
		t.Fatalf("Tick() = %+v, expected an out-of-bounds restart", out)
	}
	if out.FinalScore != 5 || out.FinalLength != 2 {
		t.Errorf("final score/length = %d/%d, expected 5/2", out.FinalScore, out.FinalLength)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 after restart", g.Score())
	}
	if g.Snek().Head() != (core.Position{X: 3, Y: 3}) || g.Snek().Len() != 2 {
		t.Errorf("body = %v, expected the starting body", g.Snek().Body())
	}
	if g.Directions().Current() != core.DirIdle {
		t.Error("direction should reset to idle")
	}
}

func TestTickTurnOffBoardRestarts(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	g.snek.body = []core.Position{{X: 2, Y: 0}, {X: 3, Y: 0}}
	setCurrent(g, core.DirRight)

	g.Tick([]core.Command{core.CommandGoUp})
	clock.Advance(150 * time.Millisecond)
	out := g.Tick(nil)

	if !out.Restarted || out.Reason != ReasonOutOfBounds {
		t.Fatalf("Tick() = %+v, expected an out-of-bounds restart", out)
	}
}

func TestTickEatsFood(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	g.food.position = core.Position{X: 4, Y: 3}
	setCurrent(g, core.DirRight)

	clock.Advance(150 * time.Millisecond)
	out := g.Tick(nil)

	if !out.Stepped || !out.Grew {
		t.Fatalf("Tick() = %+v, expected a growing step", out)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if !g.IsGrowing() {
		t.Error("IsGrowing() should be true after eating")
	}
	if g.Snek().Len() != 3 {
		t.Errorf("Len() = %d, expected 3", g.Snek().Len())
	}
	if g.Snek().Contains(g.Food().Position()) {
		t.Errorf("food relocated onto the snake at %v", g.Food().Position())
	}

	// Next plain step clears the growth flag.
	g.food.position = core.Position{X: 20, Y: 20}
	clock.Advance(150 * time.Millisecond)
	g.Tick(nil)
	if g.IsGrowing() {
		t.Error("IsGrowing() should reset on a plain step")
	}
	if g.Snek().Len() != 3 {
		t.Errorf("Len() = %d, expected 3", g.Snek().Len())
	}
}

// loopBody is a snake whose head at (4,5) travels left, with its tail at (3,5):
//
//	(3,4) (4,4) (5,4)
//	(3,5) (4,5) (5,5)
func loopBody() []core.Position {
	return []core.Position{
		{X: 3, Y: 5}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5},
	}
}

func TestTickSelfCollisionRestarts(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	g.snek.body = loopBody()
	setCurrent(g, core.DirLeft)

	g.Tick([]core.Command{core.CommandGoUp})
	clock.Advance(150 * time.Millisecond)
	out := g.Tick(nil)

	if !out.Restarted || out.Reason != ReasonSelfCollision {
		t.Fatalf("Tick() = %+v, expected a self-collision restart", out)
	}
	if out.FinalLength != 6 {
		t.Errorf("FinalLength = %d, expected 6", out.FinalLength)
	}
}

func TestTickMayEnterTailCell(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	g.snek.body = loopBody()
	setCurrent(g, core.DirLeft)

	clock.Advance(150 * time.Millisecond)
	out := g.Tick(nil)

	if out.Restarted {
		t.Fatalf("Tick() = %+v, moving into the tail cell should be allowed", out)
	}
	if g.Snek().Head() != (core.Position{X: 3, Y: 5}) {
		t.Errorf("Head() = %v, expected (3, 5)", g.Snek().Head())
	}
}

func TestTickIdleDoesNothing(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	before := g.Snek().Body()

	clock.Advance(time.Second)
	out := g.Tick([]core.Command{core.CommandPlay})

	if out != (Outcome{}) {
		t.Errorf("Tick() = %+v, expected nothing to happen while idle", out)
	}
	after := g.Snek().Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("body changed while idle: %v -> %v", before, after)
		}
	}
}

func TestTickOffset(t *testing.T) {
	g, clock := newTestGame(t, DefaultSettings())
	setCurrent(g, core.DirRight)

	clock.Advance(75 * time.Millisecond)
	g.Tick(nil)
	if off := g.Snek().Offset(); off < 0.49 || off > 0.51 {
		t.Errorf("Offset() = %f, expected 0.5", off)
	}

	clock.Advance(75 * time.Millisecond)
	g.Tick(nil)
	if g.Snek().Offset() != 0 {
		t.Errorf("Offset() = %f, expected 0 after a step", g.Snek().Offset())
	}

	clock.Advance(149 * time.Millisecond)
	g.Tick(nil)
	if off := g.Snek().Offset(); off < 0 || off >= 1 {
		t.Errorf("Offset() = %f, expected within [0, 1)", off)
	}
}

func TestTickQuitStopsProcessing(t *testing.T) {
	g, _ := newTestGame(t, DefaultSettings())

	out := g.Tick([]core.Command{core.CommandGoUp, core.CommandQuit, core.CommandGoDown})
	if !out.Quit {
		t.Fatal("expected Quit outcome")
	}
	if g.Directions().Pending() != 1 {
		t.Errorf("Pending() = %d, expected only the command before Quit", g.Directions().Pending())
	}
}

func TestRestartKeepsSettings(t *testing.T) {
	cfg := Settings{Columns: 12, Rows: 9, Speed: 90 * time.Millisecond}
	g, _ := newTestGame(t, cfg)
	g.score = 3

	g.Restart()
	if g.Settings() != cfg {
		t.Errorf("Settings() = %+v, expected %+v", g.Settings(), cfg)
	}
	if g.Score() != 0 {
		t.Error("Restart should zero the score")
	}
}

func TestTickLengthInvariant(t *testing.T) {
	g, clock := newTestGame(t, Settings{Columns: 8, Rows: 8, Speed: 100 * time.Millisecond})
	rng := rand.New(rand.NewSource(11))
	steer := []core.Command{core.CommandGoUp, core.CommandGoDown, core.CommandGoLeft, core.CommandGoRight}

	for i := 0; i < 3000; i++ {
		var cmds []core.Command
		if rng.Intn(3) == 0 {
			cmds = append(cmds, steer[rng.Intn(len(steer))])
		}
		clock.Advance(time.Duration(rng.Intn(60)) * time.Millisecond)

		before := g.Snek().Len()
		out := g.Tick(cmds)

		switch {
		case out.Restarted:
			if g.Snek().Len() != 2 {
				t.Fatalf("tick %d: length %d after restart, expected 2", i, g.Snek().Len())
			}
		case out.Grew:
			if g.Snek().Len() != before+1 {
				t.Fatalf("tick %d: length %d after growing, expected %d", i, g.Snek().Len(), before+1)
			}
		default:
			if g.Snek().Len() != before {
				t.Fatalf("tick %d: length changed from %d to %d", i, before, g.Snek().Len())
			}
		}

		for _, p := range g.Snek().Body() {
			if !g.Settings().Contains(p) {
				t.Fatalf("tick %d: segment %v outside the board", i, p)
			}
		}
		if g.Snek().Len() < 2 {
			t.Fatalf("tick %d: body shorter than 2", i)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := Settings{Columns: 10, Rows: 10, Speed: 100 * time.Millisecond}
	g1, c1 := newTestGame(t, cfg)
	g2, c2 := newTestGame(t, cfg)

	script := []core.Command{core.CommandGoRight, core.CommandGoDown, core.CommandGoLeft, core.CommandGoUp}
	for i := 0; i < 400; i++ {
		var cmds []core.Command
		if i%7 == 0 {
			cmds = []core.Command{script[(i/7)%len(script)]}
		}
		c1.Advance(50 * time.Millisecond)
		c2.Advance(50 * time.Millisecond)
		g1.Tick(cmds)
		g2.Tick(cmds)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Food != s2.Food || s1.Head() != s2.Head() || s1.Direction != s2.Direction {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
}

func TestSnapshotSegmentDirection(t *testing.T) {
	g, _ := newTestGame(t, DefaultSettings())
	g.snek.body = loopBody()
	setCurrent(g, core.DirLeft)

	snap := g.Snapshot()
	expected := []core.Direction{
		core.DirUp, core.DirRight, core.DirRight, core.DirDown, core.DirLeft, core.DirLeft,
	}
	for i, dir := range expected {
		if got := snap.SegmentDirection(i); got != dir {
			t.Errorf("SegmentDirection(%d) = %v, expected %v", i, got, dir)
		}
	}

	snap.Body[0] = core.Position{X: 99, Y: 99}
	if g.Snek().Contains(core.Position{X: 99, Y: 99}) {
		t.Error("Snapshot body should be a copy")
	}
}
