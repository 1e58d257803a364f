package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Night-flight palette.
var (
	ColorIndigo = lipgloss.Color("#818cf8")
	ColorPurple = lipgloss.Color("#c084fc")
	ColorPink   = lipgloss.Color("#f472b6")
	ColorGreen  = lipgloss.Color("#86efac")
	ColorRed    = lipgloss.Color("#f87171")
	ColorDim    = lipgloss.Color("#64748b")
	ColorFg     = lipgloss.Color("#e2e8f0")
)

// Predefined lipgloss styles.
var (
	StyleIndigo = lipgloss.NewStyle().Foreground(ColorIndigo)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StylePink   = lipgloss.NewStyle().Foreground(ColorPink)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorIndigo).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}
