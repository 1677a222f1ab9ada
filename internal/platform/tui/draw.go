package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/game"
)

const hudHeight = 2

// ErrScreenTooSmall is returned by DrawGame when the board does not fit.
var ErrScreenTooSmall = errors.New("tui: screen too small for board")

// HUD carries the text shown above the board.
type HUD struct {
	Title   string
	Best    int
	LastRun string // Summary of the previous run, empty before the first one
}

// boardLayout maps board cells to screen cells.
type boardLayout struct {
	frame core.Rect
	cellW int
}

func (l boardLayout) cell(p core.Position) (int, int) {
	return l.frame.X + 1 + p.X*l.cellW, l.frame.Y + 1 + p.Y
}

// layoutBoard centers the board below the HUD. Cells are two characters
// wide when that fits, to compensate for tall terminal glyphs.
func layoutBoard(screenW, screenH, columns, rows int) (boardLayout, bool) {
	h := rows + 2
	if screenH < h+hudHeight {
		return boardLayout{}, false
	}
	for _, cellW := range []int{2, 1} {
		w := columns*cellW + 2
		if w <= screenW {
			return boardLayout{
				frame: core.NewRect((screenW-w)/2, hudHeight, w, h),
				cellW: cellW,
			}, true
		}
	}
	return boardLayout{}, false
}

// interpolate returns where a segment is drawn part way through a step.
func interpolate(p core.Position, dir core.Direction, offset float64) core.Position {
	v := dir.Vector()
	return core.Position{
		X: p.X + int(math.Round(float64(v.X)*offset)),
		Y: p.Y + int(math.Round(float64(v.Y)*offset)),
	}
}

// DrawGame renders a snapshot into dst. It never touches the game itself.
func DrawGame(dst *core.Screen, snap game.Snapshot, hud HUD) error {
	dst.Clear()
	drawHUD(dst, snap, hud)

	layout, ok := layoutBoard(dst.Width(), dst.Height(), snap.Columns, snap.Rows)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", snap.Columns+2, snap.Rows+2+hudHeight))
		return fmt.Errorf("%w: %dx%d board on %dx%d screen",
			ErrScreenTooSmall, snap.Columns, snap.Rows, dst.Width(), dst.Height())
	}

	dst.DrawBox(layout.frame, core.ColorGray)

	fx, fy := layout.cell(snap.Food)
	dst.SetColored(fx, fy, '●', core.ColorRed)

	bounds := game.Settings{Columns: snap.Columns, Rows: snap.Rows}
	last := len(snap.Body) - 1
	for i, seg := range snap.Body {
		p := interpolate(seg, snap.SegmentDirection(i), snap.Offset)
		if !bounds.Contains(p) {
			p = seg
		}

		color := core.ColorGreen
		if i == last {
			color = core.ColorBrightGreen
			if snap.Growing && snap.Offset < 0.5 {
				color = core.ColorBrightYellow
			}
		}

		x, y := layout.cell(p)
		for c := 0; c < layout.cellW; c++ {
			dst.SetColored(x+c, y, '█', color)
		}
	}

	return nil
}

func drawHUD(dst *core.Screen, snap game.Snapshot, hud HUD) {
	parts := []string{
		" " + hud.Title,
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Best: %d", max(hud.Best, snap.Score)),
		fmt.Sprintf("Length: %d", len(snap.Body)),
	}
	if hud.LastRun != "" {
		parts = append(parts, "Last: "+hud.LastRun)
	}
	dst.DrawTextColored(0, 0, strings.Join(parts, "  "), core.ColorBrightWhite)

	status := fmt.Sprintf(" %s", snap.Direction)
	if snap.Direction == core.DirIdle {
		status = " press an arrow key to start"
	}
	if snap.Pending > 0 {
		status += fmt.Sprintf(" +%d queued", snap.Pending)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
	dst.DrawTextColored(2, 1, status+" ", core.ColorGray)
}
