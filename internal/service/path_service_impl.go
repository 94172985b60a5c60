package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avezina/pathwise/internal/db"
	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/generation"
	"github.com/avezina/pathwise/internal/llm"
	"github.com/avezina/pathwise/internal/planner"
	"github.com/avezina/pathwise/internal/repository"
)

// maxBatchDays caps how many days a single model call may produce.
// Longer durations are filled in by repeated Continue calls.
const maxBatchDays = 7

type pathService struct {
	paths    repository.PathRepo
	progress repository.ProgressRepo
	feedback repository.FeedbackRepo
	model    llm.Client
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPathService(
	paths repository.PathRepo,
	progress repository.ProgressRepo,
	feedback repository.FeedbackRepo,
	model llm.Client,
	uow db.UnitOfWork,
	observer UseCaseObserver,
) PathService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &pathService{
		paths:    paths,
		progress: progress,
		feedback: feedback,
		model:    model,
		uow:      uow,
		observer: observer,
	}
}

// NeedsContinuation reports whether a path has fewer days than its
// requested duration. Unparsed paths and unparseable durations never
// qualify.
func NeedsContinuation(p *domain.LearningPath) bool {
	if !p.Parsed {
		return false
	}
	return generation.ParseDays(p.DurationText) > p.Plan.LastDay()
}

// firstBatchSize returns how many days the initial draft should cover.
// Unparseable durations fall back to a full batch.
func firstBatchSize(durationText string) int {
	r := generation.ParseDays(durationText)
	if r == 0 || r > maxBatchDays {
		return maxBatchDays
	}
	return r
}

func (s *pathService) Create(ctx context.Context, username, topic string, skill domain.SkillLevel, durationText string) (*domain.LearningPath, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if !domain.ValidSkillLevels[string(skill)] {
		return nil, fmt.Errorf("unknown skill level %q", skill)
	}

	var path *domain.LearningPath
	err := observe(ctx, s.observer, "path.create", map[string]any{"user": username, "topic": topic}, func() error {
		dayCount := firstBatchSize(durationText)

		resp, err := s.model.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskPlanDraft,
			SystemPrompt: planner.SystemPrompt(),
			UserPrompt:   planner.BuildCreatePrompt(topic, durationText, skill, dayCount),
		})
		if err != nil {
			return fmt.Errorf("drafting plan: %w", err)
		}

		now := time.Now().UTC()
		path = &domain.LearningPath{
			Username:     username,
			Topic:        topic,
			SkillLevel:   skill,
			DurationText: durationText,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		plan, extractErr := planner.ExtractPlan(resp.Text)
		if extractErr != nil {
			// Keep the raw output so the attempt is not lost; the
			// path is stored but cannot be tracked or continued.
			path.Raw = resp.Text
			path.Parsed = false
		} else {
			plan.Renumber(1)
			path.Plan = *plan
			path.Parsed = true
		}

		return s.paths.Create(ctx, path)
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}

func (s *pathService) Continue(ctx context.Context, username string, pathID int64) (*domain.LearningPath, error) {
	var path *domain.LearningPath
	err := observe(ctx, s.observer, "path.continue", map[string]any{"user": username, "path_id": pathID}, func() error {
		p, err := s.getOwned(ctx, username, pathID)
		if err != nil {
			return err
		}
		if !p.Parsed {
			return ErrPlanNotParsed
		}

		requested := generation.ParseDays(p.DurationText)
		last := p.Plan.LastDay()
		if requested <= last {
			return ErrNothingToContinue
		}

		batch := requested - last
		if batch > maxBatchDays {
			batch = maxBatchDays
		}

		existingJSON, err := p.Plan.Encode()
		if err != nil {
			return fmt.Errorf("encoding existing plan: %w", err)
		}

		resp, err := s.model.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskPlanExtend,
			SystemPrompt: planner.SystemPrompt(),
			UserPrompt:   planner.BuildContinuePrompt(p, existingJSON, last+1, batch),
		})
		if err != nil {
			return fmt.Errorf("extending plan: %w", err)
		}

		appended, err := planner.ExtractPlan(resp.Text)
		if err != nil {
			// The stored path is left exactly as it was; the user can
			// retry the continuation.
			return fmt.Errorf("extending plan: %w: %v", llm.ErrInvalidOutput, err)
		}

		// Whatever the model returned, the append never exceeds the
		// requested batch and its days follow the existing plan
		// contiguously.
		if len(appended.Days) > batch {
			appended.Days = appended.Days[:batch]
		}
		appended.Renumber(last + 1)

		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txPaths := repository.NewSQLitePathRepo(tx)

			fresh, err := txPaths.GetByID(ctx, pathID)
			if err != nil {
				return err
			}
			if fresh.Username != username {
				return repository.ErrNotFound
			}
			if !fresh.Parsed {
				return ErrPlanNotParsed
			}

			fresh.Plan.Days = append(fresh.Plan.Days, appended.Days...)
			fresh.UpdatedAt = time.Now().UTC()
			if err := txPaths.UpdatePlan(ctx, fresh); err != nil {
				return err
			}
			path = fresh
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}

func (s *pathService) Get(ctx context.Context, username string, pathID int64) (*domain.LearningPath, error) {
	return s.getOwned(ctx, username, pathID)
}

func (s *pathService) List(ctx context.Context, username string) ([]*domain.LearningPath, error) {
	return s.paths.ListByUser(ctx, username)
}

func (s *pathService) Progress(ctx context.Context, username string, pathID int64) (completed, total int, err error) {
	p, err := s.getOwned(ctx, username, pathID)
	if err != nil {
		return 0, 0, err
	}

	total = p.Plan.TaskCount()
	if total == 0 {
		return 0, 0, nil
	}

	states, err := s.progress.ListByPath(ctx, username, pathID)
	if err != nil {
		return 0, 0, err
	}

	// Only tasks still present in the plan count; stale progress rows
	// are ignored.
	for _, day := range p.Plan.Days {
		for _, task := range day.Tasks {
			if states[generation.TaskKey(day.Number, task.Title)] {
				completed++
			}
		}
	}
	return completed, total, nil
}

func (s *pathService) SetTaskDone(ctx context.Context, username string, pathID int64, dayNumber int, title string, done bool) error {
	p, err := s.getOwned(ctx, username, pathID)
	if err != nil {
		return err
	}
	if !p.Parsed {
		return ErrPlanNotParsed
	}
	if !planHasTask(p.Plan, dayNumber, title) {
		return fmt.Errorf("%w: day %d, %q", ErrTaskNotFound, dayNumber, title)
	}
	return s.progress.Upsert(ctx, username, pathID, generation.TaskKey(dayNumber, title), done)
}

func (s *pathService) TaskStates(ctx context.Context, username string, pathID int64) (map[string]bool, error) {
	p, err := s.getOwned(ctx, username, pathID)
	if err != nil {
		return nil, err
	}

	stored, err := s.progress.ListByPath(ctx, username, pathID)
	if err != nil {
		return nil, err
	}

	states := make(map[string]bool)
	for _, day := range p.Plan.Days {
		for _, task := range day.Tasks {
			key := generation.TaskKey(day.Number, task.Title)
			states[key] = stored[key]
		}
	}
	return states, nil
}

func (s *pathService) RecordFeedback(ctx context.Context, username string, pathID int64, rating domain.Rating) error {
	if !rating.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	// Any signed-in user may rate a path they can see; existence is
	// still checked so feedback never points at a deleted path.
	if _, err := s.paths.GetByID(ctx, pathID); err != nil {
		return err
	}
	return s.feedback.Upsert(ctx, pathID, username, rating)
}

func (s *pathService) FeedbackSummary(ctx context.Context) ([]domain.FeedbackEntry, error) {
	return s.feedback.Summary(ctx)
}

func (s *pathService) getOwned(ctx context.Context, username string, pathID int64) (*domain.LearningPath, error) {
	p, err := s.paths.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	if p.Username != username {
		// Paths are private; another user's path looks like no path.
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func planHasTask(plan domain.DailyPlan, dayNumber int, title string) bool {
	for _, day := range plan.Days {
		if day.Number != dayNumber {
			continue
		}
		for _, task := range day.Tasks {
			if task.Title == title {
				return true
			}
		}
	}
	return false
}
