// Package styles holds the Lip Gloss styles of the card preview. The grid
// colours match the ones written to the workbook.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent      = lipgloss.Color("#E11D48")
	Highlight   = lipgloss.Color("#0EA5E9")
	Success     = lipgloss.Color("#22C55E")
	Warning     = lipgloss.Color("#EAB308")
	Error       = lipgloss.Color("#DC2626")
	Muted       = lipgloss.Color("#71717A")
	MutedLight  = lipgloss.Color("#A1A1AA")
	Foreground  = lipgloss.Color("#FAFAFA")
	BorderColor = lipgloss.Color("#333333")
	FreeFill    = lipgloss.Color("#222222")
)

var (
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(Foreground).Background(Accent).Padding(0, 1)
	HeaderLabelStyle = lipgloss.NewStyle().Foreground(MutedLight)
	HeaderValueStyle = lipgloss.NewStyle().Bold(true).Foreground(Foreground)
)

var (
	TabStyle       = lipgloss.NewStyle().Foreground(MutedLight).Padding(0, 1)
	ActiveTabStyle = TabStyle.Bold(true).Foreground(Foreground).Background(Highlight)
)

// CellWidth is the rendered width of one card cell, padding included.
const CellWidth = 16

var (
	CellStyle = lipgloss.NewStyle().Width(CellWidth).Padding(0, 1).Align(lipgloss.Center)
	// FreeCellStyle marks the center square: bold white on the dark fill.
	FreeCellStyle   = CellStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(FreeFill)
	GridBorderStyle = lipgloss.NewStyle().Foreground(BorderColor)
)

var (
	StatusBarStyle   = lipgloss.NewStyle().Foreground(MutedLight).Padding(0, 1)
	MutedTextStyle   = lipgloss.NewStyle().Foreground(Muted)
	ErrorTextStyle   = lipgloss.NewStyle().Foreground(Error)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(Success)
	WarningTextStyle = lipgloss.NewStyle().Foreground(Warning)
)
