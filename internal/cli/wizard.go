package cli

import (
	"fmt"

	"github.com/avezina/pathwise/internal/cli/formatter"
	"github.com/avezina/pathwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pathwiseHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pathwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardNewPath collects topic, skill level, and time frame for a new path.
func wizardNewPath(topic, skill, duration *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("e.g. Go generics").
				Value(topic).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("topic is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Current skill level").
				Options(
					huh.NewOption("Beginner", string(domain.SkillBeginner)),
					huh.NewOption("Intermediate", string(domain.SkillIntermediate)),
					huh.NewOption("Advanced", string(domain.SkillAdvanced)),
				).
				Value(skill),
			huh.NewInput().
				Title("How much time do you have?").
				Placeholder("e.g. 2 weeks, 10 days, 1 month").
				Value(duration),
		),
	).WithTheme(pathwiseHuhTheme()).WithShowHelp(false)
}

// wizardSignUp collects credentials and the optional recovery pair.
func wizardSignUp(username, password, question, answer *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
			huh.NewInput().
				Title("Recovery question (optional)").
				Placeholder("e.g. First pet's name?").
				Value(question),
			huh.NewInput().
				Title("Recovery answer").
				EchoMode(huh.EchoModePassword).
				Value(answer),
		),
	).WithTheme(pathwiseHuhTheme()).WithShowHelp(false)
}

// wizardPrompt asks for a single value, optionally masked.
func wizardPrompt(title string, masked bool, value *string) *huh.Form {
	input := huh.NewInput().Title(title).Value(value)
	if masked {
		input = input.EchoMode(huh.EchoModePassword)
	}
	return huh.NewForm(huh.NewGroup(input)).
		WithTheme(pathwiseHuhTheme()).
		WithShowHelp(false)
}
