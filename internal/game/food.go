package game

import (
	"math/rand"

	"github.com/vovakirdan/snek/internal/core"
)

// startFood is where the first food appears when it fits the board.
var startFood = core.Position{X: 10, Y: 10}

// neighborOffsets is the fixed search order of the fallback: up, left, right, down.
var neighborOffsets = [4]core.Position{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// FoodFactory owns the food position and decides where it goes next.
type FoodFactory struct {
	rng      *rand.Rand
	position core.Position
}

// NewFoodFactory places the first food. The fixed starting cell is used
// unless it is off the board or under the snake, then it is relocated.
func NewFoodFactory(rng *rand.Rand, snek *SnekManager, cfg Settings) *FoodFactory {
	f := &FoodFactory{
		rng:      rng,
		position: startFood,
	}
	if !cfg.Contains(f.position) || snek.Contains(f.position) {
		f.Relocate(snek, cfg)
	}
	return f
}

// Position returns the current food cell.
func (f *FoodFactory) Position() core.Position {
	return f.position
}

// Relocate moves the food to a uniformly random cell. If that cell is
// under the snake, the first free neighbor of the body is used instead.
// On a full board the drawn cell is kept.
func (f *FoodFactory) Relocate(snek *SnekManager, cfg Settings) {
	food := core.Position{
		X: f.rng.Intn(cfg.Columns),
		Y: f.rng.Intn(cfg.Rows),
	}

	if snek.Contains(food) {
		if free, ok := findUnoccupiedCell(snek, cfg); ok {
			food = free
		}
	}

	f.position = food
}

// findUnoccupiedCell scans body segments in order and returns the first
// in-bounds, unoccupied neighbor.
func findUnoccupiedCell(snek *SnekManager, cfg Settings) (core.Position, bool) {
	if snek.Len() >= cfg.Cells() {
		return core.Position{}, false
	}

	for _, seg := range snek.body {
		for _, off := range neighborOffsets {
			p := seg.Add(off)
			if cfg.Contains(p) && !snek.Contains(p) {
				return p, true
			}
		}
	}
	return core.Position{}, false
}
