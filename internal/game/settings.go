package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// MinBoardSide is the smallest accepted board extent. The starting body
// reaches column 3 on row 3, so anything smaller cannot hold it.
const MinBoardSide = 4

// ErrInvalidSettings is wrapped by every Settings validation failure.
var ErrInvalidSettings = errors.New("game: invalid settings")

// Settings holds the static board parameters. They never change during a game.
type Settings struct {
	Columns int
	Rows    int
	Speed   time.Duration // Interval between committed steps
}

// DefaultSettings returns the classic 25x25 board at 150ms per step.
func DefaultSettings() Settings {
	return Settings{
		Columns: 25,
		Rows:    25,
		Speed:   150 * time.Millisecond,
	}
}

// Validate checks that the settings can hold a game.
func (s Settings) Validate() error {
	if s.Columns < MinBoardSide || s.Rows < MinBoardSide {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidSettings, s.Columns, s.Rows, MinBoardSide, MinBoardSide)
	}
	if s.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %s", ErrInvalidSettings, s.Speed)
	}
	return nil
}

// Contains reports whether p lies within [0, Columns) x [0, Rows).
func (s Settings) Contains(p core.Position) bool {
	return p.X >= 0 && p.X < s.Columns && p.Y >= 0 && p.Y < s.Rows
}

// Cells returns the number of cells on the board.
func (s Settings) Cells() int {
	return s.Columns * s.Rows
}
