// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from the handlers, turns repository absences into 404 errors, checks
// references before writes and triggers side effects such as account
// revocation and notification emails.
package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/deppfellow/tutoring-api/internal/errs"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

// AccountRevoker removes the sign-in account behind a profile.
type AccountRevoker interface {
	DeleteUser(ctx context.Context, userID string) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func notFound(entity string) *errs.HTTPError {
	return errs.NewNotFoundError(entity+" not found", true, nil)
}

// translate maps repository errors onto HTTP errors.
func translate(err error) error {
	if errors.Is(err, repository.ErrReferenceNotFound) {
		return errs.NewReferenceNotFoundError(err.Error())
	}
	return err
}
