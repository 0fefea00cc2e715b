package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/errs"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

type fakeRevoker struct {
	deleted []string
	err     error
}

func (r *fakeRevoker) DeleteUser(ctx context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, userID)
	return nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

func newRepos(strict bool) *repository.Repositories {
	return repository.New(repository.Options{StrictReferences: strict})
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	requireStatus(t, err, http.StatusNotFound)
}
