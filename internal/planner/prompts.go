package planner

import (
	"fmt"
	"strings"

	"github.com/avezina/pathwise/internal/domain"
)

// systemPrompt frames every generation call. The JSON contract lives in
// the task prompts so each call restates the exact shape it expects.
const systemPrompt = `You are an expert instructional designer. You create personalized, day-by-day learning plans. You always answer with a clean JSON object and nothing else.`

// SystemPrompt returns the shared system prompt for plan generation calls.
func SystemPrompt() string {
	return systemPrompt
}

const planShapeContract = `The output must be a clean JSON object and nothing else.
The top-level JSON object must have a single key "dailyPlan".
The value of "dailyPlan" must be an array of day objects.
Each day object must contain two keys:
1. "day" (number): the day number in the schedule.
2. "tasks" (array): a list of task objects for that day.
Each task object must have exactly three keys:
- "title" (string): a concise, descriptive title for the task.
- "description" (string): a one or two-sentence explanation of what to do.
- "exampleLink" (string): a single, high-quality, real URL to a helpful resource.`

// BuildCreatePrompt builds the initial generation request for a topic,
// time frame, and skill level, asking for exactly dayCount days.
func BuildCreatePrompt(topic, durationText string, skill domain.SkillLevel, dayCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a personalized, day-by-day learning path.\n\n")
	fmt.Fprintf(&b, "Topic: %q\n", topic)
	fmt.Fprintf(&b, "Total time frame: %q\n", durationText)
	fmt.Fprintf(&b, "Current skill level: %q\n\n", skill)
	fmt.Fprintf(&b, "Generate a detailed plan covering exactly days 1 through %d, numbered sequentially starting at 1.\n", dayCount)
	b.WriteString(planShapeContract)
	b.WriteString("\nEnsure the overall learning path realistically fits within the user's specified time frame.\n")

	return b.String()
}

// BuildContinuePrompt builds a continuation request. The entire existing
// plan is embedded as context so the model extends the schedule instead of
// restarting it; the model is asked for the next batch only.
func BuildContinuePrompt(path *domain.LearningPath, existingJSON string, nextStart, dayCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Extend an existing day-by-day learning path.\n\n")
	fmt.Fprintf(&b, "Topic: %q\n", path.Topic)
	fmt.Fprintf(&b, "Total time frame: %q\n", path.DurationText)
	fmt.Fprintf(&b, "Current skill level: %q\n\n", path.SkillLevel)
	fmt.Fprintf(&b, "The plan so far:\n%s\n\n", existingJSON)
	fmt.Fprintf(&b, "Continue this plan with exactly the next %d days, numbered %d through %d.\n", dayCount, nextStart, nextStart+dayCount-1)
	b.WriteString("Do not repeat or revise any existing day; output only the new days.\n")
	b.WriteString(planShapeContract)
	b.WriteString("\n")

	return b.String()
}
