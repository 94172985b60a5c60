package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avezina/pathwise/internal/db"
	"github.com/avezina/pathwise/internal/domain"
)

// SQLitePathRepo implements PathRepo using a SQLite database.
//
// The path_data column holds the serialized DailyPlan wire format when the
// model output parsed, or the raw output verbatim when it did not; the
// parsed flag distinguishes the two.
type SQLitePathRepo struct {
	db db.DBTX
}

// NewSQLitePathRepo creates a new SQLitePathRepo.
func NewSQLitePathRepo(conn db.DBTX) *SQLitePathRepo {
	return &SQLitePathRepo{db: conn}
}

func (r *SQLitePathRepo) Create(ctx context.Context, p *domain.LearningPath) error {
	data, err := encodePathData(p)
	if err != nil {
		return err
	}

	query := `INSERT INTO learning_paths (username, topic, skill_level, total_duration_text, path_data, parsed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Username,
		p.Topic,
		string(p.SkillLevel),
		p.DurationText,
		data,
		boolToInt(p.Parsed),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting learning path: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading learning path id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePathRepo) GetByID(ctx context.Context, id int64) (*domain.LearningPath, error) {
	query := `SELECT id, username, topic, skill_level, total_duration_text, path_data, parsed, created_at, updated_at
		FROM learning_paths WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPath(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("learning path %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePathRepo) ListByUser(ctx context.Context, username string) ([]*domain.LearningPath, error) {
	query := `SELECT id, username, topic, skill_level, total_duration_text, path_data, parsed, created_at, updated_at
		FROM learning_paths WHERE username = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("listing learning paths: %w", err)
	}
	defer rows.Close()

	var paths []*domain.LearningPath
	for rows.Next() {
		p, err := scanPath(rows.Scan)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learning paths: %w", err)
	}
	return paths, nil
}

func (r *SQLitePathRepo) UpdatePlan(ctx context.Context, p *domain.LearningPath) error {
	data, err := encodePathData(p)
	if err != nil {
		return err
	}

	query := `UPDATE learning_paths SET path_data = ?, parsed = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		data,
		boolToInt(p.Parsed),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating learning path plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking plan update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("learning path %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

func encodePathData(p *domain.LearningPath) (string, error) {
	if !p.Parsed {
		return p.Raw, nil
	}
	return p.Plan.Encode()
}

// scanPath scans one learning_paths row via the given scan function,
// which may come from either *sql.Row or *sql.Rows.
func scanPath(scan func(dest ...any) error) (*domain.LearningPath, error) {
	var p domain.LearningPath
	var skillStr, data, createdAtStr, updatedAtStr string
	var parsedInt int

	err := scan(
		&p.ID, &p.Username, &p.Topic, &skillStr, &p.DurationText,
		&data, &parsedInt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning learning path: %w", err)
	}

	p.SkillLevel = domain.SkillLevel(skillStr)
	p.Parsed = intToBool(parsedInt)
	p.CreatedAt = parseTime(createdAtStr)
	p.UpdatedAt = parseTime(updatedAtStr)

	if p.Parsed {
		plan, err := domain.DecodeDailyPlan(data)
		if err != nil {
			// A parsed=1 row with undecodable data is corrupt; surface it
			// as unparseable rather than failing the whole read.
			p.Parsed = false
			p.Raw = data
			return &p, nil
		}
		p.Plan = plan
	} else {
		p.Raw = data
	}

	return &p, nil
}
