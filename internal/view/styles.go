package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#D94F70", Dark: "#F25D94"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 2).
			Bold(true)

	totalStyle    = lipgloss.NewStyle().Bold(true)
	positiveStyle = lipgloss.NewStyle().Foreground(special)
	negativeStyle = lipgloss.NewStyle().Foreground(warning)
	subtleStyle   = lipgloss.NewStyle().Foreground(subtle)
	alertStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
)

// signed colors s green for a positive v and red otherwise, the same
// threshold the web UI used for its positive/negative classes.
func signed(v float64, s string) string {
	if v > 0 {
		return positiveStyle.Render(s)
	}
	return negativeStyle.Render(s)
}

// PrintAlert writes a styled error line outside the portfolio screen,
// during the auth flow.
func PrintAlert(msg string) {
	fmt.Println(alertStyle.Render(msg))
}

// PrintSuccess writes a styled confirmation line.
func PrintSuccess(msg string) {
	fmt.Println(positiveStyle.Render(msg))
}
