package account_test

import (
	"context"
	"testing"

	"github.com/avezina/pathwise/internal/account"
	"github.com/avezina/pathwise/internal/repository"
	"github.com/avezina/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResetFixture(t *testing.T) (*account.Manager, repository.UserRepo) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	return account.NewManager(users), users
}

func TestResetFlow_HappyPath(t *testing.T) {
	ctx := context.Background()
	mgr, users := newResetFixture(t)

	_, err := mgr.SignUp(ctx, "alice", "old password", "favorite color?", "teal")
	require.NoError(t, err)

	flow := account.NewResetFlow(users)
	assert.Equal(t, account.AwaitingUsername, flow.State())

	question, err := flow.SubmitUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "favorite color?", question)
	assert.Equal(t, account.AwaitingAnswer, flow.State())

	require.NoError(t, flow.SubmitAnswer(ctx, "teal"))
	assert.Equal(t, account.AwaitingNewPassword, flow.State())

	require.NoError(t, flow.SubmitNewPassword(ctx, "new password"))
	assert.Equal(t, account.Done, flow.State())

	_, err = mgr.Authenticate(ctx, "alice", "old password")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	sess, err := mgr.Authenticate(ctx, "alice", "new password")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
}

func TestResetFlow_WrongAnswerDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	mgr, users := newResetFixture(t)

	_, err := mgr.SignUp(ctx, "alice", "old password", "favorite color?", "teal")
	require.NoError(t, err)

	flow := account.NewResetFlow(users)
	_, err = flow.SubmitUsername(ctx, "alice")
	require.NoError(t, err)

	err = flow.SubmitAnswer(ctx, "mauve")
	assert.ErrorIs(t, err, account.ErrAnswerMismatch)
	assert.Equal(t, account.AwaitingAnswer, flow.State(), "mismatch keeps the flow on the same step")

	// Retry with the right answer succeeds.
	require.NoError(t, flow.SubmitAnswer(ctx, "teal"))
	assert.Equal(t, account.AwaitingNewPassword, flow.State())
}

func TestResetFlow_StepsOutOfOrder(t *testing.T) {
	ctx := context.Background()
	mgr, users := newResetFixture(t)

	_, err := mgr.SignUp(ctx, "alice", "old password", "favorite color?", "teal")
	require.NoError(t, err)

	flow := account.NewResetFlow(users)

	assert.ErrorIs(t, flow.SubmitAnswer(ctx, "teal"), account.ErrBadResetState)
	assert.ErrorIs(t, flow.SubmitNewPassword(ctx, "new password"), account.ErrBadResetState)

	_, err = flow.SubmitUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = flow.SubmitUsername(ctx, "alice")
	assert.ErrorIs(t, err, account.ErrBadResetState)

	require.NoError(t, flow.SubmitAnswer(ctx, "teal"))
	require.NoError(t, flow.SubmitNewPassword(ctx, "new password"))

	assert.ErrorIs(t, flow.SubmitNewPassword(ctx, "another password"), account.ErrBadResetState)
}

func TestResetFlow_NoRecoveryConfigured(t *testing.T) {
	ctx := context.Background()
	mgr, users := newResetFixture(t)

	_, err := mgr.SignUp(ctx, "bob", "bob password", "", "")
	require.NoError(t, err)

	flow := account.NewResetFlow(users)
	_, err = flow.SubmitUsername(ctx, "bob")
	assert.ErrorIs(t, err, account.ErrNoRecovery)
	assert.Equal(t, account.AwaitingUsername, flow.State())
}

func TestResetFlow_UnknownUser(t *testing.T) {
	_, users := newResetFixture(t)

	flow := account.NewResetFlow(users)
	_, err := flow.SubmitUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestResetFlow_WeakNewPasswordRejected(t *testing.T) {
	ctx := context.Background()
	mgr, users := newResetFixture(t)

	_, err := mgr.SignUp(ctx, "alice", "old password", "favorite color?", "teal")
	require.NoError(t, err)

	flow := account.NewResetFlow(users)
	_, err = flow.SubmitUsername(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, flow.SubmitAnswer(ctx, "teal"))

	assert.ErrorIs(t, flow.SubmitNewPassword(ctx, "short"), account.ErrWeakPassword)
	assert.Equal(t, account.AwaitingNewPassword, flow.State())
}
