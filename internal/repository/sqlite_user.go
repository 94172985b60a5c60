package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avezina/pathwise/internal/db"
	"github.com/avezina/pathwise/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, password_hash, secret_question, secret_answer_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.PasswordHash,
		nullIfEmpty(u.SecretQuestion),
		nullIfEmpty(u.SecretAnswerHash),
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT username, password_hash, secret_question, secret_answer_hash, created_at
		FROM users WHERE username = ?`
	row := r.db.QueryRowContext(ctx, query, username)

	var u domain.User
	var question, answerHash sql.NullString
	var createdAtStr string
	err := row.Scan(&u.Username, &u.PasswordHash, &question, &answerHash, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.SecretQuestion = question.String
	u.SecretAnswerHash = answerHash.String
	u.CreatedAt = parseTime(createdAtStr)
	return &u, nil
}

func (r *SQLiteUserRepo) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE username = ?`
	res, err := r.db.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking password update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
