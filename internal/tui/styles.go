package tui

import "github.com/charmbracelet/lipgloss"

// Score bar colors.
const (
	colorRed    = lipgloss.Color("196")
	colorOrange = lipgloss.Color("208")
	colorGreen  = lipgloss.Color("42")
)

// Bar color thresholds.
const (
	redBelow    = 25
	orangeBelow = 60
)

// barWidth is the number of cells in the score bar.
const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	emptyBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// BarColor returns the score bar color: red below 25, orange below 60,
// green otherwise.
func BarColor(score int) lipgloss.Color {
	switch {
	case score < redBelow:
		return colorRed
	case score < orangeBelow:
		return colorOrange
	default:
		return colorGreen
	}
}
