package repository

import (
	"context"

	"github.com/avezina/pathwise/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type PathRepo interface {
	Create(ctx context.Context, p *domain.LearningPath) error
	GetByID(ctx context.Context, id int64) (*domain.LearningPath, error)
	ListByUser(ctx context.Context, username string) ([]*domain.LearningPath, error)
	// UpdatePlan rewrites the stored plan data for an existing path.
	// Used by continuation appends only.
	UpdatePlan(ctx context.Context, p *domain.LearningPath) error
}

type ProgressRepo interface {
	// Upsert sets the completion state for one task identity. Absence of
	// a row means "not completed", so upserting false is also valid.
	Upsert(ctx context.Context, username string, pathID int64, taskID string, completed bool) error
	Get(ctx context.Context, username string, pathID int64, taskID string) (bool, error)
	// ListByPath returns the completion state of every stored task
	// identity for one (user, path) pair.
	ListByPath(ctx context.Context, username string, pathID int64) (map[string]bool, error)
}

type FeedbackRepo interface {
	// Upsert records a rating, overwriting any prior rating by the same
	// user for the same path (last-write-wins).
	Upsert(ctx context.Context, pathID int64, username string, rating domain.Rating) error
	// Get returns the stored rating, or ErrNotFound if the user has not
	// rated the path.
	Get(ctx context.Context, pathID int64, username string) (domain.Rating, error)
	// Summary joins feedback with learning paths for operator reporting.
	Summary(ctx context.Context) ([]domain.FeedbackEntry, error)
}
