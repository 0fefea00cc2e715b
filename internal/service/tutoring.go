package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

// TutoringService manages sessions and their materials, reviews and
// available times. Children are only added to sessions that exist.
type TutoringService struct {
	sessions repository.TutoringSessionRepository
	logger   *zerolog.Logger
}

func NewTutoringService(sessions repository.TutoringSessionRepository, logger *zerolog.Logger) *TutoringService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &TutoringService{sessions: sessions, logger: logger}
}

// SessionFilter narrows List. TutorID wins when both are set.
type SessionFilter struct {
	TutorID  string
	CourseID string
}

func (s *TutoringService) List(ctx context.Context, filter SessionFilter) ([]model.TutoringSession, error) {
	switch {
	case filter.TutorID != "":
		return s.sessions.FindByTutorID(ctx, filter.TutorID)
	case filter.CourseID != "":
		return s.sessions.FindByCourseID(ctx, filter.CourseID)
	default:
		return s.sessions.FindAll(ctx)
	}
}

func (s *TutoringService) GetByID(ctx context.Context, id string) (*model.TutoringSession, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, notFound("Tutoring session")
	}
	return session, nil
}

// Create stores the session together with any inline children.
func (s *TutoringService) Create(ctx context.Context, session model.TutoringSession) (*model.TutoringSession, error) {
	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info().
		Str("tutoring_id", created.ID).
		Int("materials", len(created.Materials)).
		Int("available_times", len(created.AvailableTimes)).
		Msg("tutoring session created")

	return created, nil
}

func (s *TutoringService) Update(ctx context.Context, id string, patch model.TutoringSessionPatch) (*model.TutoringSession, error) {
	updated, err := s.sessions.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Tutoring session")
	}
	return updated, nil
}

// Delete removes the session and all of its children.
func (s *TutoringService) Delete(ctx context.Context, id string) error {
	removed, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Tutoring session")
	}
	return nil
}

func (s *TutoringService) requireSession(ctx context.Context, tutoringID string) error {
	_, err := s.GetByID(ctx, tutoringID)
	return err
}

func (s *TutoringService) GetMaterials(ctx context.Context, tutoringID string) ([]model.TutoringMaterial, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}
	return s.sessions.GetMaterials(ctx, tutoringID)
}

func (s *TutoringService) AddMaterial(ctx context.Context, tutoringID string, material model.TutoringMaterial) (*model.TutoringMaterial, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}

	material.TutoringID = tutoringID
	created, err := s.sessions.AddMaterial(ctx, material)
	if err != nil {
		return nil, translate(err)
	}
	return created, nil
}

func (s *TutoringService) UpdateMaterial(ctx context.Context, id string, patch model.MaterialPatch) (*model.TutoringMaterial, error) {
	updated, err := s.sessions.UpdateMaterial(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Material")
	}
	return updated, nil
}

func (s *TutoringService) DeleteMaterial(ctx context.Context, id string) error {
	removed, err := s.sessions.DeleteMaterial(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Material")
	}
	return nil
}

func (s *TutoringService) GetReviews(ctx context.Context, tutoringID string) ([]model.TutoringReview, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}
	return s.sessions.GetReviews(ctx, tutoringID)
}

func (s *TutoringService) AddReview(ctx context.Context, tutoringID string, review model.TutoringReview) (*model.TutoringReview, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}

	review.TutoringID = tutoringID
	created, err := s.sessions.AddReview(ctx, review)
	if err != nil {
		return nil, translate(err)
	}
	return created, nil
}

func (s *TutoringService) UpdateReview(ctx context.Context, id string, patch model.ReviewPatch) (*model.TutoringReview, error) {
	updated, err := s.sessions.UpdateReview(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Review")
	}
	return updated, nil
}

func (s *TutoringService) DeleteReview(ctx context.Context, id string) error {
	removed, err := s.sessions.DeleteReview(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Review")
	}
	return nil
}

func (s *TutoringService) GetAvailableTimes(ctx context.Context, tutoringID string) ([]model.TutoringAvailableTime, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}
	return s.sessions.GetAvailableTimes(ctx, tutoringID)
}

func (s *TutoringService) AddAvailableTime(ctx context.Context, tutoringID string, slot model.TutoringAvailableTime) (*model.TutoringAvailableTime, error) {
	if err := s.requireSession(ctx, tutoringID); err != nil {
		return nil, err
	}

	slot.TutoringID = tutoringID
	created, err := s.sessions.AddAvailableTime(ctx, slot)
	if err != nil {
		return nil, translate(err)
	}
	return created, nil
}

func (s *TutoringService) UpdateAvailableTime(ctx context.Context, id string, patch model.AvailableTimePatch) (*model.TutoringAvailableTime, error) {
	updated, err := s.sessions.UpdateAvailableTime(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Available time")
	}
	return updated, nil
}

func (s *TutoringService) DeleteAvailableTime(ctx context.Context, id string) error {
	removed, err := s.sessions.DeleteAvailableTime(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Available time")
	}
	return nil
}
