package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetPlain turns colors off (or back on) for every renderer in the
// package. Callers pass true when stdout is not a terminal.
func SetPlain(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// TrustStyle returns the style for a trust score's tier.
func TrustStyle(score int) lipgloss.Style {
	switch domain.TrustTierOf(score) {
	case domain.TrustHigh:
		return StyleGreen
	case domain.TrustMedium:
		return StyleYellow
	default:
		return StyleRed
	}
}

// TrustBadge renders a score with its label, e.g. "85 Excellent".
func TrustBadge(score int) string {
	return TrustStyle(score).Render(fmt.Sprintf("%d %s", score, domain.TrustLabel(score)))
}

// ScoreStyle colors a 0-100 match score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleGreen
	case score >= 40:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
