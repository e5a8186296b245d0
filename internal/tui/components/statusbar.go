package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bingocard/internal/tiles"
	"github.com/dbmrq/bingocard/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Tiles         int
	Duplicates    int
	Similar       int
	DistanceLimit int
	Message       string // Optional status message
	Error         string // Optional error, shown instead of Message
	Help          string // Rendered key help, right-aligned
}

// StatusBar displays the tile check summary and key help.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetReport fills the counts from a tile report.
func (s *StatusBar) SetReport(tileCount int, r *tiles.Report) {
	s.data.Tiles = tileCount
	if r == nil {
		return
	}
	s.data.Duplicates = len(r.Duplicates())
	s.data.Similar = len(r.Similar())
	s.data.DistanceLimit = r.DistanceLimit
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetError sets an error message. An empty string clears it.
func (s *StatusBar) SetError(err string) {
	s.data.Error = err
}

// SetHelp sets the rendered key help.
func (s *StatusBar) SetHelp(help string) {
	s.data.Help = help
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	tilesLabel := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render("Tiles: ")
	tilesValue := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Render(fmt.Sprintf("%d", s.data.Tiles))

	leftContent := tilesLabel + tilesValue + sep + s.renderFindings()

	switch {
	case s.data.Error != "":
		leftContent += sep + styles.ErrorTextStyle.Render(s.data.Error)
	case s.data.Message != "":
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		leftContent += sep + msgStyle.Render(s.data.Message)
	}

	rightContent := s.data.Help

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if rightContent == "" {
		return containerStyle.Render(leftContent)
	}
	return containerStyle.Render(leftContent + "  " + rightContent)
}

// renderFindings summarises the tile check.
func (s *StatusBar) renderFindings() string {
	if s.data.Duplicates == 0 && s.data.Similar == 0 {
		return styles.SuccessTextStyle.Render("✓ no similar tiles")
	}
	return styles.WarningTextStyle.Render(fmt.Sprintf("⚠ %d duplicate, %d similar (limit %d)",
		s.data.Duplicates, s.data.Similar, s.data.DistanceLimit))
}
