package sim

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles for host console output
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)).Padding(0, 1)
	KeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	ErrStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1))
	BoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.ANSIColor(8)).Padding(0, 1)
)

// Pair formats "key value" with styles
func Pair(key string, value any) string {
	return KeyStyle.Render(key) + " " + ValueStyle.Render(fmt.Sprint(value))
}

// Banner renders a title over a boxed list of lines
func Banner(title string, lines ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), BoxStyle.Render(body))
}
