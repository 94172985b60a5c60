package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avezina/pathwise/internal/db"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// Rows are keyed by (username, path_id, task_identifier); a missing row
// reads as "not completed".
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, username string, pathID int64, taskID string, completed bool) error {
	query := `INSERT OR REPLACE INTO task_progress (username, path_id, task_identifier, completed)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, username, pathID, taskID, boolToInt(completed))
	if err != nil {
		return fmt.Errorf("upserting task progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, username string, pathID int64, taskID string) (bool, error) {
	query := `SELECT completed FROM task_progress
		WHERE username = ? AND path_id = ? AND task_identifier = ?`
	row := r.db.QueryRowContext(ctx, query, username, pathID, taskID)

	var completed int
	if err := row.Scan(&completed); err != nil {
		if err == sql.ErrNoRows {
			return false, nil // no row means not completed
		}
		return false, fmt.Errorf("scanning task progress: %w", err)
	}
	return intToBool(completed), nil
}

func (r *SQLiteProgressRepo) ListByPath(ctx context.Context, username string, pathID int64) (map[string]bool, error) {
	query := `SELECT task_identifier, completed FROM task_progress
		WHERE username = ? AND path_id = ?`
	rows, err := r.db.QueryContext(ctx, query, username, pathID)
	if err != nil {
		return nil, fmt.Errorf("listing task progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]bool)
	for rows.Next() {
		var taskID string
		var completed int
		if err := rows.Scan(&taskID, &completed); err != nil {
			return nil, fmt.Errorf("scanning task progress row: %w", err)
		}
		progress[taskID] = intToBool(completed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task progress: %w", err)
	}
	return progress, nil
}
