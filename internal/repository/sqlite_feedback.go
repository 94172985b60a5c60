package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avezina/pathwise/internal/db"
	"github.com/avezina/pathwise/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
// The UNIQUE(path_id, username) constraint plus INSERT OR REPLACE gives
// last-write-wins semantics atomically at the storage layer.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

func (r *SQLiteFeedbackRepo) Upsert(ctx context.Context, pathID int64, username string, rating domain.Rating) error {
	query := `INSERT OR REPLACE INTO feedback (path_id, username, rating) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, pathID, username, int(rating))
	if err != nil {
		return fmt.Errorf("upserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) Get(ctx context.Context, pathID int64, username string) (domain.Rating, error) {
	query := `SELECT rating FROM feedback WHERE path_id = ? AND username = ?`
	row := r.db.QueryRowContext(ctx, query, pathID, username)

	var rating int
	if err := row.Scan(&rating); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("feedback for path %d by %q: %w", pathID, username, ErrNotFound)
		}
		return 0, fmt.Errorf("scanning feedback: %w", err)
	}
	return domain.Rating(rating), nil
}

func (r *SQLiteFeedbackRepo) Summary(ctx context.Context) ([]domain.FeedbackEntry, error) {
	query := `SELECT f.username, p.topic, f.rating
		FROM feedback f
		JOIN learning_paths p ON p.id = f.path_id
		ORDER BY p.topic, f.username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying feedback summary: %w", err)
	}
	defer rows.Close()

	var entries []domain.FeedbackEntry
	for rows.Next() {
		var e domain.FeedbackEntry
		var rating int
		if err := rows.Scan(&e.Username, &e.Topic, &rating); err != nil {
			return nil, fmt.Errorf("scanning feedback summary row: %w", err)
		}
		e.Rating = domain.Rating(rating)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback summary: %w", err)
	}
	return entries, nil
}
