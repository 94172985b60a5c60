package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/llm"
	"github.com/avezina/pathwise/internal/repository"
	"github.com/avezina/pathwise/internal/service"
	"github.com/avezina/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathService_Create_ShortDurationGetsAllDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 5, 2)})

	p, err := f.svc.Create(ctx, "alice", "Go generics", domain.SkillBeginner, "5 days")
	require.NoError(t, err)
	assert.True(t, p.Parsed)
	assert.Equal(t, 5, p.Plan.LastDay())
	assert.NotZero(t, p.ID)

	require.Len(t, f.stub.calls, 1)
	assert.Equal(t, llm.TaskPlanDraft, f.stub.calls[0].Task)
	assert.Contains(t, f.stub.calls[0].UserPrompt, "5")
	assert.Contains(t, f.stub.calls[0].UserPrompt, "Go generics")
}

func TestPathService_Create_LongDurationCappedAtSevenDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 7, 2)})

	p, err := f.svc.Create(ctx, "alice", "SQL", domain.SkillIntermediate, "2 months")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Plan.LastDay(), "first batch never exceeds seven days")
	assert.True(t, service.NeedsContinuation(p), "60 requested days leave 53 outstanding")
}

func TestPathService_Create_UnparseableDurationDefaultsToSevenDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 7, 1)})

	p, err := f.svc.Create(ctx, "alice", "Rust", domain.SkillAdvanced, "as long as it takes")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Plan.LastDay())
	assert.False(t, service.NeedsContinuation(p), "unparseable duration never asks for more days")
}

func TestPathService_Create_RenumbersModelDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	// Model numbered its days 3, 9, 12; the stored plan must be 1, 2, 3.
	f.script(stubResponse{text: `{"dailyPlan":[` +
		`{"day":3,"tasks":[{"title":"a","description":"d"}]},` +
		`{"day":9,"tasks":[{"title":"b","description":"d"}]},` +
		`{"day":12,"tasks":[{"title":"c","description":"d"}]}]}`})

	p, err := f.svc.Create(ctx, "alice", "Git", domain.SkillBeginner, "3 days")
	require.NoError(t, err)
	require.Len(t, p.Plan.Days, 3)
	for i, day := range p.Plan.Days {
		assert.Equal(t, i+1, day.Number)
	}
}

func TestPathService_Create_ModelFaultPersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{err: llm.ErrUnavailable})

	_, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)

	paths, err := f.svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, paths, "a failed draft leaves no record behind")
}

func TestPathService_Create_MalformedOutputKeepsRaw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	raw := "I'm sorry, I can't produce a plan right now."
	f.script(stubResponse{text: raw})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)
	assert.False(t, p.Parsed)
	assert.Equal(t, raw, p.Raw)
	assert.Empty(t, p.Plan.Days)

	// The raw record survives a reload and still cannot be continued.
	reloaded, err := f.svc.Get(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Parsed)
	assert.Equal(t, raw, reloaded.Raw)

	_, err = f.svc.Continue(ctx, "alice", p.ID)
	assert.ErrorIs(t, err, service.ErrPlanNotParsed)
}

func TestPathService_Create_RejectsUnknownSkill(t *testing.T) {
	f := newFixture(t, "alice")
	_, err := f.svc.Create(context.Background(), "alice", "Go", domain.SkillLevel("wizard"), "3 days")
	assert.Error(t, err)
	assert.Empty(t, f.stub.calls, "validation happens before the model is called")
}

func TestPathService_Continue_AppendsRenumberedDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(
		stubResponse{text: testutil.PlanJSON(1, 7, 2)},
		// Model restarts numbering at 1; appended days must become 8..10.
		stubResponse{text: testutil.PlanJSON(1, 3, 2)},
	)

	p, err := f.svc.Create(ctx, "alice", "Kubernetes", domain.SkillIntermediate, "10 days")
	require.NoError(t, err)
	require.True(t, service.NeedsContinuation(p))

	extended, err := f.svc.Continue(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, extended.Plan.LastDay())
	for i, day := range extended.Plan.Days {
		assert.Equal(t, i+1, day.Number, "days stay contiguous after append")
	}
	assert.False(t, service.NeedsContinuation(extended))

	require.Len(t, f.stub.calls, 2)
	cont := f.stub.calls[1]
	assert.Equal(t, llm.TaskPlanExtend, cont.Task)
	assert.Contains(t, cont.UserPrompt, "numbered 8 through 10", "continuation prompt names the new range")
	assert.Contains(t, cont.UserPrompt, `"day":7`, "existing plan is included for context")
}

func TestPathService_Continue_TrimsOvergeneratedBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(
		stubResponse{text: testutil.PlanJSON(1, 7, 1)},
		// Only 3 days are outstanding but the model returns 7.
		stubResponse{text: testutil.PlanJSON(8, 7, 1)},
	)

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "10 days")
	require.NoError(t, err)

	extended, err := f.svc.Continue(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, extended.Plan.LastDay(), "append stops at the requested duration")
	assert.Len(t, extended.Plan.Days, 10)
	assert.False(t, service.NeedsContinuation(extended))
}

func TestPathService_Continue_NothingOutstanding(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 5, 1)})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "5 days")
	require.NoError(t, err)

	_, err = f.svc.Continue(ctx, "alice", p.ID)
	assert.ErrorIs(t, err, service.ErrNothingToContinue)
	assert.Len(t, f.stub.calls, 1, "no model call for a complete plan")
}

func TestPathService_Continue_ExtractFailureLeavesPathUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(
		stubResponse{text: testutil.PlanJSON(1, 7, 2)},
		stubResponse{text: "no json here"},
	)

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "10 days")
	require.NoError(t, err)

	_, err = f.svc.Continue(ctx, "alice", p.ID)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)

	reloaded, err := f.svc.Get(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.Plan.LastDay(), "failed continuation leaves the stored plan as it was")
	assert.True(t, service.NeedsContinuation(reloaded), "the user can retry")
}

func TestPathService_Continue_ModelFaultWrapped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(
		stubResponse{text: testutil.PlanJSON(1, 7, 1)},
		stubResponse{err: fmt.Errorf("%w: deadline exceeded", llm.ErrTimeout)},
	)

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "2 weeks")
	require.NoError(t, err)

	_, err = f.svc.Continue(ctx, "alice", p.ID)
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestPathService_Get_OtherUsersPathHidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")
	f.script(stubResponse{text: testutil.PlanJSON(1, 3, 1)})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, "bob", p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.svc.Continue(ctx, "bob", p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPathService_ProgressAndToggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 3, 2)})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)

	completed, total, err := f.svc.Progress(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 6, total)

	require.NoError(t, f.svc.SetTaskDone(ctx, "alice", p.ID, 1, "Task 1.1", true))
	require.NoError(t, f.svc.SetTaskDone(ctx, "alice", p.ID, 2, "Task 2.2", true))

	completed, _, err = f.svc.Progress(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	// Marking done twice stays at one completion.
	require.NoError(t, f.svc.SetTaskDone(ctx, "alice", p.ID, 1, "Task 1.1", true))
	completed, _, err = f.svc.Progress(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	require.NoError(t, f.svc.SetTaskDone(ctx, "alice", p.ID, 1, "Task 1.1", false))
	completed, _, err = f.svc.Progress(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)

	states, err := f.svc.TaskStates(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Len(t, states, 6, "every task in the plan has a state")
	assert.True(t, states["day2-Task 2.2"])
	assert.False(t, states["day1-Task 1.1"])
}

func TestPathService_SetTaskDone_UnknownTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 3, 1)})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)

	err = f.svc.SetTaskDone(ctx, "alice", p.ID, 99, "Task 1.1", true)
	assert.ErrorIs(t, err, service.ErrTaskNotFound)

	err = f.svc.SetTaskDone(ctx, "alice", p.ID, 1, "No such task", true)
	assert.ErrorIs(t, err, service.ErrTaskNotFound)
}

func TestPathService_Progress_EmptyPlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: `{"dailyPlan":[]}`})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)
	assert.True(t, p.Parsed, "an empty plan is still a parsed plan")

	completed, total, err := f.svc.Progress(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 0, total)
}

func TestPathService_Feedback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")
	f.script(stubResponse{text: testutil.PlanJSON(1, 3, 1)})

	p, err := f.svc.Create(ctx, "alice", "Go", domain.SkillBeginner, "3 days")
	require.NoError(t, err)

	require.NoError(t, f.svc.RecordFeedback(ctx, "alice", p.ID, domain.RatingHelpful))
	require.NoError(t, f.svc.RecordFeedback(ctx, "bob", p.ID, domain.RatingNotHelpful))
	// Alice changes her mind; last write wins.
	require.NoError(t, f.svc.RecordFeedback(ctx, "alice", p.ID, domain.RatingNotHelpful))

	entries, err := f.svc.FeedbackSummary(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, domain.RatingNotHelpful, e.Rating)
		assert.Equal(t, "Go", e.Topic)
	}

	err = f.svc.RecordFeedback(ctx, "alice", p.ID, domain.Rating(0))
	assert.ErrorIs(t, err, service.ErrInvalidRating)

	err = f.svc.RecordFeedback(ctx, "alice", p.ID+100, domain.RatingHelpful)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPathService_Create_PromptCarriesSkillLevel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice")
	f.script(stubResponse{text: testutil.PlanJSON(1, 3, 1)})

	_, err := f.svc.Create(ctx, "alice", "Go", domain.SkillAdvanced, "3 days")
	require.NoError(t, err)

	require.Len(t, f.stub.calls, 1)
	prompt := strings.ToLower(f.stub.calls[0].UserPrompt)
	assert.Contains(t, prompt, "advanced")
}
