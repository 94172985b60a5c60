package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Task is the atomic actionable item within a day. ExampleLink is a
// model-suggested resource URL; it is displayed only when non-empty and is
// not validated beyond that.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ExampleLink string `json:"exampleLink"`
}

// Day is one entry in the daily schedule. Number is 1-based and strictly
// increasing within a path.
type Day struct {
	Number int    `json:"day"`
	Tasks  []Task `json:"tasks"`
}

// DailyPlan is the ordered day-by-day schedule. Its JSON form is the wire
// format exchanged with the model and persisted in the store:
//
//	{"dailyPlan":[{"day":1,"tasks":[{"title":...,"description":...,"exampleLink":...}]}]}
type DailyPlan struct {
	Days []Day `json:"dailyPlan"`
}

// LearningPath is a user's saved schedule for one topic. When the model
// output could not be parsed, Parsed is false and Raw holds the output
// verbatim so the user can inspect the failure; Plan is empty in that case.
type LearningPath struct {
	ID           int64
	Username     string
	Topic        string
	SkillLevel   SkillLevel
	DurationText string
	Plan         DailyPlan
	Raw          string
	Parsed       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LastDay returns the highest day number in the plan, or 0 for an empty plan.
func (d DailyPlan) LastDay() int {
	if len(d.Days) == 0 {
		return 0
	}
	return d.Days[len(d.Days)-1].Number
}

// TaskCount returns the total number of tasks across all days.
func (d DailyPlan) TaskCount() int {
	n := 0
	for _, day := range d.Days {
		n += len(day.Tasks)
	}
	return n
}

// Renumber rewrites day numbers to a contiguous sequence starting at start.
// Model output is not trusted to number days correctly; callers renumber
// after every generation batch to uphold the contiguity invariant.
func (d *DailyPlan) Renumber(start int) {
	for i := range d.Days {
		d.Days[i].Number = start + i
	}
}

// Encode serializes the plan into its wire format.
func (d DailyPlan) Encode() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encoding daily plan: %w", err)
	}
	return string(data), nil
}

// DecodeDailyPlan parses a stored wire-format plan.
func DecodeDailyPlan(s string) (DailyPlan, error) {
	var d DailyPlan
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return DailyPlan{}, fmt.Errorf("decoding daily plan: %w", err)
	}
	return d, nil
}

// FeedbackEntry is one row of the operator feedback report: who rated
// which topic, and how.
type FeedbackEntry struct {
	Username string
	Topic    string
	Rating   Rating
}
