package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/storage"
)

// MenuEntryKind distinguishes what a menu entry does when selected.
type MenuEntryKind int

const (
	EntryPlay MenuEntryKind = iota
	EntryScores
	EntryQuit
)

// MenuItem represents a selectable line in the main menu.
type MenuItem struct {
	Kind    MenuEntryKind
	Variant registry.Variant // Set for EntryPlay only
	Label   string
}

// MenuModel is the Bubble Tea model for the main menu.
// It never quits the program itself; the owner reads Selected and IsQuitting.
type MenuModel struct {
	items     []MenuItem
	best      map[string]int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a menu listing one Play entry per registered variant.
func NewMenuModel(store *storage.Store, logger *log.Logger, width, height int) MenuModel {
	variants := registry.List()
	items := make([]MenuItem, 0, len(variants)+2)
	best := make(map[string]int, len(variants))

	for _, v := range variants {
		items = append(items, MenuItem{
			Kind:    EntryPlay,
			Variant: v,
			Label:   fmt.Sprintf("Play %s (%dx%d)", v.Title, v.Settings.Columns, v.Settings.Rows),
		})
		if store == nil {
			continue
		}
		hs, err := store.HighScore(v.ID)
		if err != nil {
			logger.Warn("cannot load high score", "variant", v.ID, "error", err)
			continue
		}
		best[v.ID] = hs
	}

	items = append(items,
		MenuItem{Kind: EntryScores, Label: "High scores"},
		MenuItem{Kind: EntryQuit, Label: "Quit"},
	)

	return MenuModel{
		items:     items,
		best:      best,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) MenuModel {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == EntryQuit {
			m.quitting = true
			break
		}
		m.selected = &selected

	case MenuActionScoreboard:
		m.selected = &MenuItem{Kind: EntryScores}
	}
	return m
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  S N E K  ", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Label
		if item.Kind == EntryPlay {
			if hs := m.best[item.Variant.ID]; hs > 0 {
				line += fmt.Sprintf("  best %d", hs)
			}
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil if none selected yet.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
