package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/game"
	"github.com/vovakirdan/snek/internal/logging"
	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/storage"
)

type appState int

const (
	stateMenu appState = iota
	stateGame
	stateScores
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Store     *storage.Store
	Logger    *log.Logger
	Runtime   core.RuntimeConfig
	SessionID string // Generated when empty
	Variant   string // Skip the menu and start this variant right away
	Clock     game.Clock
}

// AppModel manages the full session flow: menu, game and scoreboard.
// It is the top-level model for both local play and SSH sessions.
type AppModel struct {
	opts       AppOptions
	logger     *log.Logger
	state      appState
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewAppModel creates the session model. It fails only when opts.Variant
// names an unknown or unplayable variant.
func NewAppModel(opts AppOptions) (AppModel, error) {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	m := AppModel{
		opts:   opts,
		logger: opts.Logger.With("session", opts.SessionID),
	}

	if opts.Variant != "" {
		v, err := registry.Lookup(opts.Variant)
		if err != nil {
			return AppModel{}, err
		}
		if err := m.startGame(v); err != nil {
			return AppModel{}, err
		}
		return m, nil
	}

	m.openMenu()
	return m, nil
}

func (m *AppModel) openMenu() {
	m.state = stateMenu
	m.menu = NewMenuModel(m.opts.Store, m.logger, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

func (m *AppModel) openScores(variantID string) {
	m.state = stateScores
	m.scoreboard = NewScoreboardModel(m.opts.Store, m.logger, variantID, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

func (m *AppModel) startGame(v registry.Variant) error {
	gm, err := NewGameModel(GameOptions{
		Variant:   v,
		Store:     m.opts.Store,
		Logger:    m.logger,
		SessionID: m.opts.SessionID,
		Runtime:   m.opts.Runtime,
		Clock:     m.opts.Clock,
	})
	if err != nil {
		return err
	}
	m.logger.Info("game started", "variant", v.ID)
	m.game = gm
	m.state = stateGame
	return nil
}

// Init starts the frame loop when the session opens straight into a game.
func (m AppModel) Init() tea.Cmd {
	if m.state == stateGame {
		return m.game.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case EntryScores:
		m.openScores("")
		return m, nil
	case EntryPlay:
		if err := m.startGame(selected.Variant); err != nil {
			m.logger.Error("cannot start game", "error", err)
			m.openMenu()
			return m, nil
		}
		return m, m.game.Init()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		return m.quit()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("session closed")
	return m, tea.Quit
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting reports whether the session has ended.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts AppOptions) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
