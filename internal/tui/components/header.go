// Package components provides the building blocks of the card preview.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bingocard/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Title  string
	Player string
	// Index is the zero-based position of Player among Total cards.
	Index int
	Total int
	Seed  int64
}

// Header displays the card title and which card is shown.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Title:  "bingocard",
			Player: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render(h.data.Title + " - " + h.data.Player)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	cardLabel := styles.HeaderLabelStyle.Render("Card: ")
	cardValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d/%d", h.data.Index+1, h.data.Total))

	content := title + sep + cardLabel + cardValue
	if h.data.Seed != 0 {
		seedLabel := styles.HeaderLabelStyle.Render("Seed: ")
		seedValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Seed))
		content += sep + seedLabel + seedValue
	}

	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
