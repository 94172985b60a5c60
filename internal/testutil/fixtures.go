package testutil

import (
	"fmt"
	"time"

	"github.com/avezina/pathwise/internal/domain"
)

// NewTestUser builds a user with a throwaway password hash. Tests that
// exercise real authentication go through account.Manager instead.
func NewTestUser(username string) *domain.User {
	return &domain.User{
		Username:     username,
		PasswordHash: "$2a$10$test-hash-not-a-real-credential",
		CreatedAt:    time.Now().UTC(),
	}
}

// PathOption mutates a test learning path before it is returned.
type PathOption func(*domain.LearningPath)

func WithDuration(text string) PathOption {
	return func(p *domain.LearningPath) {
		p.DurationText = text
	}
}

func WithSkill(s domain.SkillLevel) PathOption {
	return func(p *domain.LearningPath) {
		p.SkillLevel = s
	}
}

func WithRawOutput(raw string) PathOption {
	return func(p *domain.LearningPath) {
		p.Parsed = false
		p.Raw = raw
		p.Plan = domain.DailyPlan{}
	}
}

// NewTestPath builds a parsed learning path for a user with the given
// number of days and tasks per day.
func NewTestPath(username, topic string, days, tasksPerDay int, opts ...PathOption) *domain.LearningPath {
	now := time.Now().UTC()
	p := &domain.LearningPath{
		Username:     username,
		Topic:        topic,
		SkillLevel:   domain.SkillBeginner,
		DurationText: fmt.Sprintf("%d days", days),
		Plan:         MakePlan(1, days, tasksPerDay),
		Parsed:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MakePlan builds a DailyPlan with day numbers start..start+count-1 and
// tasksPerDay tasks on each day.
func MakePlan(start, count, tasksPerDay int) domain.DailyPlan {
	var plan domain.DailyPlan
	for d := 0; d < count; d++ {
		day := domain.Day{Number: start + d}
		for k := 0; k < tasksPerDay; k++ {
			day.Tasks = append(day.Tasks, domain.Task{
				Title:       fmt.Sprintf("Task %d.%d", day.Number, k+1),
				Description: fmt.Sprintf("Work through part %d of day %d", k+1, day.Number),
				ExampleLink: "https://example.com/resource",
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

// PlanJSON builds a wire-format plan string, useful for stubbing model output.
func PlanJSON(start, count, tasksPerDay int) string {
	s, err := MakePlan(start, count, tasksPerDay).Encode()
	if err != nil {
		panic(err) // fixture construction cannot fail
	}
	return s
}
