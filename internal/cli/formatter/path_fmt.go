package formatter

import (
	"fmt"
	"strings"

	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/generation"
)

// RenderPathList renders one line per learning path.
func RenderPathList(paths []*domain.LearningPath) string {
	if len(paths) == 0 {
		return StyleDim.Render("No learning paths yet. Start one with: pathwise path new")
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Learning paths"))
	b.WriteString("\n")
	for _, p := range paths {
		status := fmt.Sprintf("%d days", p.Plan.LastDay())
		if !p.Parsed {
			status = StyleRed.Render("unparsed")
		}
		fmt.Fprintf(&b, "  %s %s  %s  %s  %s\n",
			StyleBold.Render(fmt.Sprintf("#%d", p.ID)),
			StyleFg.Render(p.Topic),
			SkillBadge(p.SkillLevel),
			StyleDim.Render(p.DurationText),
			status,
		)
	}
	return b.String()
}

// RenderPath renders a full plan with per-task completion checkboxes.
// states maps task identity to completion; missing keys render unchecked.
func RenderPath(p *domain.LearningPath, states map[string]bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		StyleHeader.Render(p.Topic),
		SkillBadge(p.SkillLevel),
		StyleDim.Render(p.DurationText),
	)

	if !p.Parsed {
		b.WriteString(StyleRed.Render("The model output could not be parsed into a plan."))
		b.WriteString("\n\n")
		b.WriteString(StyleDim.Render("Raw output:"))
		b.WriteString("\n")
		b.WriteString(p.Raw)
		b.WriteString("\n")
		return b.String()
	}

	for _, day := range p.Plan.Days {
		fmt.Fprintf(&b, "\n%s\n", StyleBlue.Render(fmt.Sprintf("Day %d", day.Number)))
		for _, task := range day.Tasks {
			done := states[generation.TaskKey(day.Number, task.Title)]
			fmt.Fprintf(&b, "  %s %s\n", TaskCheck(done), StyleBold.Render(task.Title))
			if task.Description != "" {
				fmt.Fprintf(&b, "      %s\n", StyleFg.Render(task.Description))
			}
			if task.ExampleLink != "" {
				fmt.Fprintf(&b, "      %s\n", StyleDim.Render(task.ExampleLink))
			}
		}
	}
	return b.String()
}

// RenderContinueHint renders the prompt shown when a path has more
// requested days than generated ones.
func RenderContinueHint(p *domain.LearningPath, requestedDays int) string {
	remaining := requestedDays - p.Plan.LastDay()
	return StyleYellow.Render(fmt.Sprintf(
		"Plan covers %d of %d requested days. Run: pathwise path continue %d  (%d days remaining)",
		p.Plan.LastDay(), requestedDays, p.ID, remaining,
	))
}
