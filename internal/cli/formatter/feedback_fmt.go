package formatter

import (
	"fmt"
	"strings"

	"github.com/avezina/pathwise/internal/domain"
)

// RenderFeedbackSummary renders the operator feedback report grouped by
// topic, with helpful/not-helpful tallies per topic. Entries arrive
// ordered by topic then username.
func RenderFeedbackSummary(entries []domain.FeedbackEntry) string {
	if len(entries) == 0 {
		return StyleDim.Render("No feedback recorded yet.")
	}

	type group struct {
		topic    string
		up, down int
		lines    []string
	}
	var groups []*group
	for _, e := range entries {
		if len(groups) == 0 || groups[len(groups)-1].topic != e.Topic {
			groups = append(groups, &group{topic: e.Topic})
		}
		g := groups[len(groups)-1]
		if e.Rating == domain.RatingHelpful {
			g.up++
		} else {
			g.down++
		}
		g.lines = append(g.lines, fmt.Sprintf("    %s  %s",
			StyleDim.Render(e.Username), RatingIndicator(e.Rating)))
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Feedback"))
	b.WriteString("\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "  %s  %s %s\n",
			StyleBold.Render(g.topic),
			StyleGreen.Render(fmt.Sprintf("%d👍", g.up)),
			StyleRed.Render(fmt.Sprintf("%d👎", g.down)),
		)
		for _, line := range g.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
