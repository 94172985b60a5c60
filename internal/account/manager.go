package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists indicates the username is already taken.
	ErrUserExists = errors.New("username already taken")

	// ErrWeakPassword indicates the password fails the minimum policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrInvalidCredentials indicates an unknown user or wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoRecovery indicates the account has no recovery question set.
	ErrNoRecovery = errors.New("no recovery question configured for this account")

	// ErrAnswerMismatch indicates the recovery answer did not match.
	ErrAnswerMismatch = errors.New("recovery answer does not match")
)

const minPasswordLen = 8

// Session is the per-session identity context threaded through operations
// after a successful login. It replaces ambient "logged in" flags.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time
}

// Manager handles credential and recovery-question management. It is the
// only component that sees plaintext passwords; everything downstream
// works with the resolved Session.
type Manager struct {
	users repository.UserRepo
}

// NewManager creates a Manager over the given user repository.
func NewManager(users repository.UserRepo) *Manager {
	return &Manager{users: users}
}

// SignUp registers a new account. The recovery question/answer pair is
// optional; pass empty strings to skip it.
func (m *Manager) SignUp(ctx context.Context, username, password, question, answer string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	if (question == "") != (answer == "") {
		return nil, fmt.Errorf("recovery question and answer must be set together")
	}

	passwordHash, err := hashSecret(password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:       username,
		PasswordHash:   passwordHash,
		SecretQuestion: question,
		CreatedAt:      time.Now().UTC(),
	}
	if answer != "" {
		answerHash, err := hashSecret(answer)
		if err != nil {
			return nil, err
		}
		u.SecretAnswerHash = answerHash
	}

	if err := m.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

// Authenticate verifies credentials and opens a new session.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	u, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Session{
		ID:        uuid.New().String(),
		Username:  u.Username,
		StartedAt: time.Now().UTC(),
	}, nil
}

func hashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}
	return string(hash), nil
}
