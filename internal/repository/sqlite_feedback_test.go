package repository

import (
	"context"
	"testing"

	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFeedbackRepo(t *testing.T) (*SQLiteFeedbackRepo, int64, context.Context) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteUserRepo(database).Create(ctx, testutil.NewTestUser("alice")))

	paths := NewSQLitePathRepo(database)
	p := testutil.NewTestPath("alice", "Go", 2, 1)
	require.NoError(t, paths.Create(ctx, p))

	return NewSQLiteFeedbackRepo(database), p.ID, ctx
}

func TestFeedbackRepo_Get_NotFound(t *testing.T) {
	repo, pathID, ctx := setupFeedbackRepo(t)

	_, err := repo.Get(ctx, pathID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedbackRepo_UpsertOverwrites(t *testing.T) {
	repo, pathID, ctx := setupFeedbackRepo(t)

	require.NoError(t, repo.Upsert(ctx, pathID, "alice", domain.RatingHelpful))
	rating, err := repo.Get(ctx, pathID, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RatingHelpful, rating)

	// Re-submission overwrites: last write wins, still exactly one row.
	require.NoError(t, repo.Upsert(ctx, pathID, "alice", domain.RatingNotHelpful))
	rating, err = repo.Get(ctx, pathID, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RatingNotHelpful, rating)

	entries, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.RatingNotHelpful, entries[0].Rating)
}

func TestFeedbackRepo_Summary_JoinsTopics(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewSQLiteUserRepo(database)
	require.NoError(t, users.Create(ctx, testutil.NewTestUser("alice")))
	require.NoError(t, users.Create(ctx, testutil.NewTestUser("bob")))

	paths := NewSQLitePathRepo(database)
	goPath := testutil.NewTestPath("alice", "Go", 2, 1)
	rustPath := testutil.NewTestPath("bob", "Rust", 2, 1)
	require.NoError(t, paths.Create(ctx, goPath))
	require.NoError(t, paths.Create(ctx, rustPath))

	repo := NewSQLiteFeedbackRepo(database)
	require.NoError(t, repo.Upsert(ctx, goPath.ID, "alice", domain.RatingHelpful))
	require.NoError(t, repo.Upsert(ctx, goPath.ID, "bob", domain.RatingNotHelpful))
	require.NoError(t, repo.Upsert(ctx, rustPath.ID, "bob", domain.RatingHelpful))

	entries, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ordered by topic then username.
	assert.Equal(t, domain.FeedbackEntry{Username: "alice", Topic: "Go", Rating: domain.RatingHelpful}, entries[0])
	assert.Equal(t, domain.FeedbackEntry{Username: "bob", Topic: "Go", Rating: domain.RatingNotHelpful}, entries[1])
	assert.Equal(t, domain.FeedbackEntry{Username: "bob", Topic: "Rust", Rating: domain.RatingHelpful}, entries[2])
}
