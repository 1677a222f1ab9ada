package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/game"
	"github.com/vovakirdan/snek/internal/logging"
	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Variant   registry.Variant
	Store     *storage.Store // May be nil, runs are then not persisted
	Logger    *log.Logger
	SessionID string
	Runtime   core.RuntimeConfig
	Clock     game.Clock // Defaults to the system clock
}

// GameModel runs one board variant: it collects commands between frames
// and hands them to the simulation once per frame.
type GameModel struct {
	game      *game.Game
	variant   registry.Variant
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	sessionID string
	frameRate int
	keyMapper *KeyMapper
	queue     core.CommandQueue
	best      int
	lastRun   string
	tooSmall  bool
	quitting  bool
}

// NewGameModel creates a game model for the given variant.
func NewGameModel(opts GameOptions) (GameModel, error) {
	gameOpts := []game.Option{game.WithSeed(opts.Runtime.Seed)}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, game.WithClock(opts.Clock))
	}

	g, err := game.New(opts.Variant.Settings, gameOpts...)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: cannot start %q: %w", opts.Variant.ID, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := GameModel{
		game:      g,
		variant:   opts.Variant,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:     opts.Store,
		logger:    logger.With("variant", opts.Variant.ID),
		sessionID: opts.SessionID,
		frameRate: opts.Runtime.FrameRate,
		keyMapper: NewKeyMapper(),
	}

	if m.store != nil {
		if hs, err := m.store.HighScore(m.variant.ID); err != nil {
			m.logger.Warn("cannot load high score", "error", err)
		} else {
			m.best = hs
		}
	}

	m.draw()
	return m, nil
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		m.queue.Push(m.keyMapper.MapKey(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.draw()
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}
	return m, nil
}

func (m GameModel) handleFrame() (tea.Model, tea.Cmd) {
	out := m.game.Tick(m.queue.Drain())
	if out.Quit {
		m.quitting = true
		return m, nil
	}
	if out.Restarted {
		m.recordRun(out)
	}

	m.draw()
	return m, frameCmd(m.frameRate)
}

// recordRun remembers and persists a finished run. Empty runs are not saved.
func (m *GameModel) recordRun(out game.Outcome) {
	m.lastRun = fmt.Sprintf("%d (%s)", out.FinalScore, out.Reason)
	m.logger.Info("run ended",
		"score", out.FinalScore,
		"length", out.FinalLength,
		"reason", out.Reason.String(),
	)

	if out.FinalScore > m.best {
		m.best = out.FinalScore
	}
	if m.store == nil || out.FinalScore == 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		VariantID: m.variant.ID,
		SessionID: m.sessionID,
		Score:     out.FinalScore,
		Length:    out.FinalLength,
		Reason:    out.Reason.String(),
	})
	if err != nil {
		m.logger.Error("cannot save score", "error", err)
	}
}

// draw renders the current snapshot into the screen buffer. Layout
// failures are logged once per transition, not every frame.
func (m *GameModel) draw() {
	err := DrawGame(m.screen, m.game.Snapshot(), HUD{
		Title:   m.variant.Title,
		Best:    m.best,
		LastRun: m.lastRun,
	})

	tooSmall := errors.Is(err, ErrScreenTooSmall)
	if tooSmall && !m.tooSmall {
		m.logger.Debug("board does not fit", "error", err)
	}
	m.tooSmall = tooSmall
}

// saveScreenshot writes the current screen to ~/.snek/screenshots.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snek", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.variant.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the simulation asked to stop.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Snapshot exposes the simulation state, mostly for tests.
func (m GameModel) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// Best returns the best score known for this variant.
func (m GameModel) Best() int {
	return m.best
}
