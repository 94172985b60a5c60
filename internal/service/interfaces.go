package service

import (
	"context"

	"github.com/avezina/pathwise/internal/domain"
)

// PathService drives the lifecycle of a learning path: drafting the
// first batch of days, extending an unfinished plan, and tracking
// per-task completion and feedback.
type PathService interface {
	// Create drafts a new learning path for the user. The first batch
	// covers at most seven days even when the requested duration is
	// longer; Continue fills in the rest.
	Create(ctx context.Context, username, topic string, skill domain.SkillLevel, durationText string) (*domain.LearningPath, error)

	// Continue extends a parsed path that has fewer days than its
	// requested duration. Appended days are numbered contiguously
	// after the existing last day.
	Continue(ctx context.Context, username string, pathID int64) (*domain.LearningPath, error)

	Get(ctx context.Context, username string, pathID int64) (*domain.LearningPath, error)
	List(ctx context.Context, username string) ([]*domain.LearningPath, error)

	// Progress reports completed and total task counts for a path.
	// A path with no tasks reports (0, 0).
	Progress(ctx context.Context, username string, pathID int64) (completed, total int, err error)

	// SetTaskDone marks one task complete or not. The task must exist
	// in the stored plan.
	SetTaskDone(ctx context.Context, username string, pathID int64, dayNumber int, title string, done bool) error

	// TaskStates returns the completion state of every task in the
	// plan, keyed by task identity.
	TaskStates(ctx context.Context, username string, pathID int64) (map[string]bool, error)

	// RecordFeedback stores the user's rating for a path, replacing
	// any earlier rating.
	RecordFeedback(ctx context.Context, username string, pathID int64, rating domain.Rating) error

	FeedbackSummary(ctx context.Context) ([]domain.FeedbackEntry, error)
}
