package formatter

import (
	"github.com/avezina/pathwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// SkillBadge returns a colored skill-level label.
func SkillBadge(skill domain.SkillLevel) string {
	switch skill {
	case domain.SkillBeginner:
		return StyleGreen.Render("beginner")
	case domain.SkillIntermediate:
		return StyleYellow.Render("intermediate")
	case domain.SkillAdvanced:
		return StylePurple.Render("advanced")
	default:
		return StyleDim.Render(string(skill))
	}
}

// RatingIndicator renders a rating as a colored thumb.
func RatingIndicator(r domain.Rating) string {
	switch r {
	case domain.RatingHelpful:
		return StyleGreen.Render("👍 helpful")
	case domain.RatingNotHelpful:
		return StyleRed.Render("👎 not helpful")
	default:
		return StyleDim.Render("—")
	}
}

// TaskCheck renders a completion checkbox.
func TaskCheck(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
