package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/avezina/pathwise/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ResetState names a step in the password-reset conversation.
type ResetState int

const (
	// AwaitingUsername is the initial state: no account identified yet.
	AwaitingUsername ResetState = iota
	// AwaitingAnswer means the account is identified and the recovery
	// question can be shown; the answer has not been verified.
	AwaitingAnswer
	// AwaitingNewPassword means the answer was verified and a new
	// password may be set.
	AwaitingNewPassword
	// Done means the password has been replaced. The flow is finished.
	Done
)

func (s ResetState) String() string {
	switch s {
	case AwaitingUsername:
		return "awaiting_username"
	case AwaitingAnswer:
		return "awaiting_answer"
	case AwaitingNewPassword:
		return "awaiting_new_password"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("ResetState(%d)", int(s))
	}
}

// ErrBadResetState indicates a step was invoked out of order.
var ErrBadResetState = errors.New("reset step out of order")

// ResetFlow walks a password reset through its steps in a fixed order:
// identify the account, verify the recovery answer, replace the password.
// Each step is only legal in its own state; calling a step out of order
// returns ErrBadResetState. A failed answer check does not advance the
// state, so the caller may retry.
type ResetFlow struct {
	users repository.UserRepo

	state      ResetState
	username   string
	answerHash string
}

// NewResetFlow starts a reset flow in AwaitingUsername.
func NewResetFlow(users repository.UserRepo) *ResetFlow {
	return &ResetFlow{users: users, state: AwaitingUsername}
}

// State reports the current step.
func (f *ResetFlow) State() ResetState { return f.state }

// SubmitUsername identifies the account and returns its recovery question.
// Accounts without a recovery question cannot be reset this way.
func (f *ResetFlow) SubmitUsername(ctx context.Context, username string) (question string, err error) {
	if f.state != AwaitingUsername {
		return "", fmt.Errorf("%w: got username in state %s", ErrBadResetState, f.state)
	}

	u, err := f.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !u.HasRecovery() {
		return "", ErrNoRecovery
	}

	f.username = u.Username
	f.answerHash = u.SecretAnswerHash
	f.state = AwaitingAnswer
	return u.SecretQuestion, nil
}

// SubmitAnswer verifies the recovery answer. On mismatch the flow stays
// in AwaitingAnswer.
func (f *ResetFlow) SubmitAnswer(ctx context.Context, answer string) error {
	if f.state != AwaitingAnswer {
		return fmt.Errorf("%w: got answer in state %s", ErrBadResetState, f.state)
	}

	if bcrypt.CompareHashAndPassword([]byte(f.answerHash), []byte(answer)) != nil {
		return ErrAnswerMismatch
	}

	f.state = AwaitingNewPassword
	return nil
}

// SubmitNewPassword replaces the password and finishes the flow.
func (f *ResetFlow) SubmitNewPassword(ctx context.Context, password string) error {
	if f.state != AwaitingNewPassword {
		return fmt.Errorf("%w: got new password in state %s", ErrBadResetState, f.state)
	}
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}

	hash, err := hashSecret(password)
	if err != nil {
		return err
	}
	if err := f.users.UpdatePassword(ctx, f.username, hash); err != nil {
		return err
	}

	f.state = Done
	return nil
}
