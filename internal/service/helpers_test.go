package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/avezina/pathwise/internal/llm"
	"github.com/avezina/pathwise/internal/repository"
	"github.com/avezina/pathwise/internal/service"
	"github.com/avezina/pathwise/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubClient plays back scripted model responses in order. A nil error
// with empty text falls through to the next scripted entry's error.
type stubClient struct {
	responses []stubResponse
	calls     []llm.GenerateRequest
	available bool
}

type stubResponse struct {
	text string
	err  error
}

func (c *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.calls = append(c.calls, req)
	if len(c.responses) == 0 {
		return &llm.GenerateResponse{Text: "", Model: "stub"}, nil
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	if next.err != nil {
		return nil, next.err
	}
	return &llm.GenerateResponse{Text: next.text, Model: "stub"}, nil
}

func (c *stubClient) Available(context.Context) bool { return c.available }

type fixture struct {
	svc      service.PathService
	stub     *stubClient
	conn     *sql.DB
	paths    repository.PathRepo
	progress repository.ProgressRepo
	feedback repository.FeedbackRepo
}

func newFixture(t *testing.T, usernames ...string) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)

	users := repository.NewSQLiteUserRepo(conn)
	for _, name := range usernames {
		require.NoError(t, users.Create(context.Background(), testutil.NewTestUser(name)))
	}

	stub := &stubClient{available: true}
	paths := repository.NewSQLitePathRepo(conn)
	progress := repository.NewSQLiteProgressRepo(conn)
	feedback := repository.NewSQLiteFeedbackRepo(conn)

	svc := service.NewPathService(paths, progress, feedback, stub, testutil.NewTestUoW(conn), nil)
	return &fixture{
		svc:      svc,
		stub:     stub,
		conn:     conn,
		paths:    paths,
		progress: progress,
		feedback: feedback,
	}
}

func (f *fixture) script(responses ...stubResponse) {
	f.stub.responses = append(f.stub.responses, responses...)
}
