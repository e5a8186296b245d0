// Package tui provides the terminal card preview for bingocard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bingocard/internal/app"
	"github.com/dbmrq/bingocard/internal/card"
	"github.com/dbmrq/bingocard/internal/config"
	"github.com/dbmrq/bingocard/internal/tui/components"
	"github.com/dbmrq/bingocard/internal/tui/styles"
)

// Model is the Bubble Tea model for the card preview.
type Model struct {
	// Components
	header    *components.Header
	grid      *components.Grid
	statusBar *components.StatusBar
	help      help.Model
	keys      keyMap

	// State
	title      string
	freeSquare string
	players    []string
	tiles      []string
	cards      []*card.Card
	selected   int
	seed       int64
	shuffles   int

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a preview model over the cards of a dry run.
func New(result *app.Result, cfg *config.Config) *Model {
	m := &Model{
		header:     components.NewHeader(),
		grid:       components.NewGrid(),
		statusBar:  components.NewStatusBar(),
		help:       help.New(),
		keys:       defaultKeyMap(),
		title:      cfg.Card.Title,
		freeSquare: cfg.Card.FreeSquare,
		cards:      result.Cards,
		seed:       result.Seed,
	}
	for _, c := range result.Cards {
		m.players = append(m.players, c.Player)
	}
	if result.Tiles != nil {
		m.tiles = result.Tiles.Tiles
	}
	m.statusBar.SetReport(len(m.tiles), result.Report)
	m.sync()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ReshuffledMsg:
		if msg.Err != nil {
			m.statusBar.SetError(msg.Err.Error())
			return m, nil
		}
		m.cards = msg.Cards
		m.seed = msg.Seed
		m.shuffles++
		if m.selected >= len(m.cards) {
			m.selected = 0
		}
		m.statusBar.SetError("")
		m.statusBar.SetMessage(fmt.Sprintf("reshuffled %d×", m.shuffles))
		m.sync()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if len(m.cards) > 0 {
			m.selected = (m.selected + 1) % len(m.cards)
			m.sync()
		}

	case key.Matches(msg, m.keys.Prev):
		if len(m.cards) > 0 {
			m.selected = (m.selected - 1 + len(m.cards)) % len(m.cards)
			m.sync()
		}

	case key.Matches(msg, m.keys.Reshuffle):
		return m, m.reshuffle()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// reshuffle regenerates every card from the next seed, so a reshuffled
// preview can be reproduced with --seed.
func (m *Model) reshuffle() tea.Cmd {
	seed := m.seed + 1
	if seed == 0 {
		seed = 1
	}
	players := m.players
	tileList := m.tiles
	freeSquare := m.freeSquare

	return func() tea.Msg {
		cards, err := card.NewGenerator(seed, freeSquare).GenerateAll(players, tileList)
		return ReshuffledMsg{Cards: cards, Seed: seed, Err: err}
	}
}

// sync pushes the selected card into the components.
func (m *Model) sync() {
	if len(m.cards) == 0 {
		m.grid.SetCard(nil)
		return
	}
	c := m.cards[m.selected]
	m.header.SetData(components.HeaderData{
		Title:  m.title,
		Player: c.Player,
		Index:  m.selected,
		Total:  len(m.cards),
		Seed:   m.seed,
	})
	m.grid.SetCard(c)
}

// Selected returns the card currently shown, or nil.
func (m *Model) Selected() *card.Card {
	if len(m.cards) == 0 {
		return nil
	}
	return m.cards[m.selected]
}

// Seed returns the seed of the cards currently shown.
func (m *Model) Seed() int64 {
	return m.seed
}

// View renders the preview.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.cards) == 0 {
		return styles.MutedTextStyle.Render("No cards to preview.") + "\n"
	}

	m.statusBar.SetHelp(m.help.View(m.keys))

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Padding(0, 1).Render(m.grid.View()))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(m.cards))
	for i, c := range m.cards {
		if i == m.selected {
			tabs[i] = styles.ActiveTabStyle.Render(c.Player)
		} else {
			tabs[i] = styles.TabStyle.Render(c.Player)
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// Run starts the preview and blocks until the user quits.
func Run(result *app.Result, cfg *config.Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(result, cfg), opts...)
	_, err := p.Run()
	return err
}
