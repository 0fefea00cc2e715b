package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/tutoring-api/internal/errs"
	"github.com/deppfellow/tutoring-api/internal/lib/job"
	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

type ProfileService struct {
	profiles repository.ProfileRepository
	accounts AccountRevoker
	tasks    TaskEnqueuer
	logger   *zerolog.Logger
}

// NewProfileService wires the profile repository with its side effects.
// accounts and tasks may be nil, which disables revocation and emails.
func NewProfileService(
	profiles repository.ProfileRepository,
	accounts AccountRevoker,
	tasks TaskEnqueuer,
	logger *zerolog.Logger,
) *ProfileService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ProfileService{
		profiles: profiles,
		accounts: accounts,
		tasks:    tasks,
		logger:   logger,
	}
}

func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	return s.profiles.FindAll(ctx)
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, notFound("Profile")
	}
	return profile, nil
}

func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, notFound("Profile")
	}
	return profile, nil
}

// Create stores the profile and queues the welcome email. A queue failure
// is logged and does not fail the request.
func (s *ProfileService) Create(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	created, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	task, err := job.NewWelcomeEmailTask(created.Email, created.FirstName)
	if err != nil {
		return nil, err
	}
	s.enqueue(ctx, task, created.ID)

	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, id string, patch model.ProfilePatch) (*model.Profile, error) {
	updated, err := s.profiles.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Profile")
	}
	return updated, nil
}

// Delete revokes the sign-in account first, so a profile is never removed
// while its account can still sign in. The confirmation email is queued
// afterwards.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return notFound("Profile")
	}

	if s.accounts != nil {
		if err := s.accounts.DeleteUser(ctx, profile.ID); err != nil {
			s.logger.Error().Err(err).Str("profile_id", id).Msg("failed to revoke account")
			return errs.NewInternalServerError()
		}
	}

	removed, err := s.profiles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Profile")
	}

	task, err := job.NewAccountRemovedEmailTask(profile.Email, profile.FirstName)
	if err != nil {
		return err
	}
	s.enqueue(ctx, task, id)

	return nil
}

func (s *ProfileService) enqueue(ctx context.Context, task *asynq.Task, profileID string) {
	if s.tasks == nil {
		return
	}

	info, err := s.tasks.EnqueueContext(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task", task.Type()).
			Str("profile_id", profileID).
			Msg("failed to enqueue task")
		return
	}

	s.logger.Debug().
		Str("task", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")
}
