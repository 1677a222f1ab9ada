// Package game implements the snake simulation: movement, growth, collision
// detection, food placement and direction arbitration, advanced on a fixed
// wall-clock interval. It knows nothing about terminals or key codes; the
// platform feeds it abstract commands and renders its Snapshot.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// RestartReason explains why a run ended.
type RestartReason int

const (
	ReasonNone RestartReason = iota
	ReasonOutOfBounds
	ReasonSelfCollision
)

func (r RestartReason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonSelfCollision:
		return "self collision"
	default:
		return "none"
	}
}

// Outcome reports what one call to Tick did.
type Outcome struct {
	Quit      bool          // A Quit command was received; nothing else was processed
	Stepped   bool          // A step was committed
	Grew      bool          // The committed step ate food
	Restarted bool          // The run ended and the game was reset
	Reason    RestartReason // Why the run ended
	// FinalScore and FinalLength describe the run that just ended.
	FinalScore  int
	FinalLength int
}

// Game aggregates the snake, the food, the direction manager and the board
// settings. It is owned by a single goroutine; Tick is the only mutator
// besides Restart.
type Game struct {
	cfg       Settings
	clock     Clock
	rng       *rand.Rand
	snek      *SnekManager
	food      *FoodFactory
	dirMgr    *DirectionManager
	isGrowing bool
	score     int
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithSeed seeds food placement. 0 means seed from the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a game on the given board. Settings are validated first.
func New(cfg Settings, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		clock: SystemClock(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.Restart()
	return g, nil
}

// Restart resets the snake, food, direction and score. Settings, clock
// and RNG carry over.
func (g *Game) Restart() {
	g.snek = NewSnekManager(g.clock.Now())
	g.food = NewFoodFactory(g.rng, g.snek, g.cfg)
	g.dirMgr = NewDirectionManager()
	g.isGrowing = false
	g.score = 0
}

// Tick consumes the commands collected during one frame and advances the
// simulation. A step is committed only once the configured speed has
// elapsed since the previous one; in between only the offset moves.
func (g *Game) Tick(cmds []core.Command) Outcome {
	for _, cmd := range cmds {
		if cmd == core.CommandQuit {
			return Outcome{Quit: true}
		}
		if dir, ok := cmd.Direction(); ok {
			g.dirMgr.Go(dir)
		}
	}

	// Checked before the step gate so leaving the board is caught on the
	// frame it becomes inevitable.
	if g.IsPositionOutside(g.Peek()) {
		return g.endRun(ReasonOutOfBounds)
	}

	if !g.IsSnekUpdating() {
		g.UpdateOffset()
		return Outcome{}
	}

	g.dirMgr.Update()
	head := g.snek.Head()
	next := g.Peek()

	switch {
	case next == head:
		return Outcome{}
	case g.IsPositionOutside(next):
		return g.endRun(ReasonOutOfBounds)
	case g.IsPositionOnBody(next):
		return g.endRun(ReasonSelfCollision)
	}

	g.isGrowing = g.IsPositionOnFood(next)
	g.snek.Update(g.isGrowing, next, g.clock.Now())
	if g.isGrowing {
		g.score++
		// After the commit, so the new head already counts as occupied.
		g.food.Relocate(g.snek, g.cfg)
	}

	return Outcome{Stepped: true, Grew: g.isGrowing}
}

func (g *Game) endRun(reason RestartReason) Outcome {
	out := Outcome{
		Restarted:   true,
		Reason:      reason,
		FinalScore:  g.score,
		FinalLength: g.snek.Len(),
	}
	g.Restart()
	return out
}

// Peek returns where the head would be after one step in the current direction.
func (g *Game) Peek() core.Position {
	return g.snek.Head().Add(g.dirMgr.Current().Vector())
}

// IsPositionOutside reports whether p is off the board.
func (g *Game) IsPositionOutside(p core.Position) bool {
	return !g.cfg.Contains(p)
}

// IsPositionOnBody reports whether p hits the body. The tail segment is
// excluded because it moves away during the same step.
func (g *Game) IsPositionOnBody(p core.Position) bool {
	body := g.snek.body
	for i := 1; i < len(body); i++ {
		if body[i] == p {
			return true
		}
	}
	return false
}

// IsPositionOnFood reports whether p is the food cell.
func (g *Game) IsPositionOnFood(p core.Position) bool {
	return g.food.Position() == p
}

// IsSnekUpdating reports whether a full step interval has elapsed.
func (g *Game) IsSnekUpdating() bool {
	return g.snek.SinceUpdate(g.clock.Now()) >= g.cfg.Speed
}

// UpdateOffset recomputes the interpolation offset from the time elapsed
// in the current step.
func (g *Game) UpdateOffset() {
	elapsed := g.snek.SinceUpdate(g.clock.Now())
	off := float64(elapsed) / float64(g.cfg.Speed)
	g.snek.offset = core.ClampF(off, 0, math.Nextafter(1, 0))
}

// Score returns the number of food eaten in the current run.
func (g *Game) Score() int {
	return g.score
}

// IsGrowing reports whether the last committed step ate food.
func (g *Game) IsGrowing() bool {
	return g.isGrowing
}

// Settings returns the board settings.
func (g *Game) Settings() Settings {
	return g.cfg
}

// Snek returns the snake state.
func (g *Game) Snek() *SnekManager {
	return g.snek
}

// Food returns the food state.
func (g *Game) Food() *FoodFactory {
	return g.food
}

// Directions returns the direction manager.
func (g *Game) Directions() *DirectionManager {
	return g.dirMgr
}
