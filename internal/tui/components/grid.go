package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbmrq/bingocard/internal/card"
	"github.com/dbmrq/bingocard/internal/tui/styles"
)

// Grid renders one card as a bordered 5×5 table.
type Grid struct {
	card *card.Card
}

// NewGrid creates an empty Grid.
func NewGrid() *Grid {
	return &Grid{}
}

// SetCard sets the card to render.
func (g *Grid) SetCard(c *card.Card) {
	g.card = c
}

// View renders the grid, or nothing without a card.
func (g *Grid) View() string {
	if g.card == nil {
		return ""
	}

	c := g.card
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.GridBorderStyle).
		BorderRow(true).
		BorderColumn(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < card.Size && col >= 0 && col < card.Size && c.Cells[row][col].Free {
				return styles.FreeCellStyle
			}
			return styles.CellStyle
		}).
		Rows(c.Rows()...)

	return t.Render()
}
