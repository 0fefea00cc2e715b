package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/rs/zerolog"
)

type TutoringSessionRepository interface {
	FindAll(ctx context.Context) ([]model.TutoringSession, error)
	FindByID(ctx context.Context, id string) (*model.TutoringSession, error)
	FindByTutorID(ctx context.Context, tutorID string) ([]model.TutoringSession, error)
	FindByCourseID(ctx context.Context, courseID string) ([]model.TutoringSession, error)
	// Create stores the session and turns any inline materials, reviews and
	// available times into owned children. It returns the assembled aggregate.
	Create(ctx context.Context, session model.TutoringSession) (*model.TutoringSession, error)
	// Update changes root fields only.
	Update(ctx context.Context, id string, patch model.TutoringSessionPatch) (*model.TutoringSession, error)
	// Delete removes the session and every child pointing at it.
	Delete(ctx context.Context, id string) (bool, error)

	AddMaterial(ctx context.Context, material model.TutoringMaterial) (*model.TutoringMaterial, error)
	UpdateMaterial(ctx context.Context, id string, patch model.MaterialPatch) (*model.TutoringMaterial, error)
	DeleteMaterial(ctx context.Context, id string) (bool, error)
	GetMaterials(ctx context.Context, tutoringID string) ([]model.TutoringMaterial, error)

	AddReview(ctx context.Context, review model.TutoringReview) (*model.TutoringReview, error)
	UpdateReview(ctx context.Context, id string, patch model.ReviewPatch) (*model.TutoringReview, error)
	DeleteReview(ctx context.Context, id string) (bool, error)
	GetReviews(ctx context.Context, tutoringID string) ([]model.TutoringReview, error)

	AddAvailableTime(ctx context.Context, slot model.TutoringAvailableTime) (*model.TutoringAvailableTime, error)
	UpdateAvailableTime(ctx context.Context, id string, patch model.AvailableTimePatch) (*model.TutoringAvailableTime, error)
	DeleteAvailableTime(ctx context.Context, id string) (bool, error)
	GetAvailableTimes(ctx context.Context, tutoringID string) ([]model.TutoringAvailableTime, error)
}

var (
	sessionSchema = Schema[model.TutoringSession]{
		Prefix:    "tutoring",
		ID:        func(s *model.TutoringSession) *string { return &s.ID },
		CreatedAt: func(s *model.TutoringSession) *time.Time { return &s.CreatedAt },
		UpdatedAt: func(s *model.TutoringSession) *time.Time { return &s.UpdatedAt },
	}
	materialSchema = Schema[model.TutoringMaterial]{
		Prefix:    "material",
		ID:        func(m *model.TutoringMaterial) *string { return &m.ID },
		CreatedAt: func(m *model.TutoringMaterial) *time.Time { return &m.CreatedAt },
		UpdatedAt: func(m *model.TutoringMaterial) *time.Time { return &m.UpdatedAt },
	}
	reviewSchema = Schema[model.TutoringReview]{
		Prefix:    "review",
		ID:        func(r *model.TutoringReview) *string { return &r.ID },
		CreatedAt: func(r *model.TutoringReview) *time.Time { return &r.CreatedAt },
		UpdatedAt: func(r *model.TutoringReview) *time.Time { return &r.UpdatedAt },
	}
	availableTimeSchema = Schema[model.TutoringAvailableTime]{
		Prefix:    "time",
		ID:        func(t *model.TutoringAvailableTime) *string { return &t.ID },
		CreatedAt: func(t *model.TutoringAvailableTime) *time.Time { return &t.CreatedAt },
		UpdatedAt: func(t *model.TutoringAvailableTime) *time.Time { return &t.UpdatedAt },
	}
)

type tutoringRepository struct {
	// mu is the aggregate lock. Readers hold it while stitching a root to its
	// children; Create and Delete hold it across the root and child stores.
	mu             sync.RWMutex
	sessions       *Store[model.TutoringSession]
	materials      *ChildStore[model.TutoringMaterial]
	reviews        *ChildStore[model.TutoringReview]
	availableTimes *ChildStore[model.TutoringAvailableTime]

	strict bool
	logger *zerolog.Logger
}

func NewTutoringSessionRepository(opts Options) TutoringSessionRepository {
	opts = opts.withDefaults()
	return &tutoringRepository{
		sessions: NewStore(sessionSchema, opts),
		materials: NewChildStore(materialSchema,
			func(m *model.TutoringMaterial) *string { return &m.TutoringID }, opts),
		reviews: NewChildStore(reviewSchema,
			func(r *model.TutoringReview) *string { return &r.TutoringID }, opts),
		availableTimes: NewChildStore(availableTimeSchema,
			func(t *model.TutoringAvailableTime) *string { return &t.TutoringID }, opts),
		strict: opts.StrictReferences,
		logger: opts.Logger,
	}
}

func (r *tutoringRepository) FindAll(ctx context.Context) ([]model.TutoringSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.assembleAll(r.sessions.All()), nil
}

func (r *tutoringRepository) FindByID(ctx context.Context, id string) (*model.TutoringSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findByID(id), nil
}

func (r *tutoringRepository) FindByTutorID(ctx context.Context, tutorID string) ([]model.TutoringSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.assembleAll(r.sessions.Filter(func(s model.TutoringSession) bool {
		return s.TutorID == tutorID
	})), nil
}

func (r *tutoringRepository) FindByCourseID(ctx context.Context, courseID string) ([]model.TutoringSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.assembleAll(r.sessions.Filter(func(s model.TutoringSession) bool {
		return s.CourseID == courseID
	})), nil
}

func (r *tutoringRepository) Create(ctx context.Context, session model.TutoringSession) (*model.TutoringSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	materials, reviews, slots := session.Materials, session.Reviews, session.AvailableTimes

	session.Materials, session.Reviews, session.AvailableTimes = nil, nil, nil
	root := r.sessions.Insert(session)

	for _, m := range materials {
		r.materials.Adopt(root.ID, m)
	}
	for _, rv := range reviews {
		r.reviews.Adopt(root.ID, rv)
	}
	for _, t := range slots {
		r.availableTimes.Adopt(root.ID, t)
	}

	return r.findByID(root.ID), nil
}

func (r *tutoringRepository) Update(ctx context.Context, id string, patch model.TutoringSessionPatch) (*model.TutoringSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions.Update(id, patch.Apply); !ok {
		return nil, nil
	}
	return r.findByID(id), nil
}

func (r *tutoringRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.sessions.Delete(id)

	materials := r.materials.DeleteByParent(id)
	reviews := r.reviews.DeleteByParent(id)
	slots := r.availableTimes.DeleteByParent(id)

	r.logger.Debug().
		Str("tutoring_id", id).
		Bool("session_removed", removed).
		Int("materials", materials).
		Int("reviews", reviews).
		Int("available_times", slots).
		Msg("cascaded tutoring session delete")

	return removed, nil
}

func (r *tutoringRepository) AddMaterial(ctx context.Context, material model.TutoringMaterial) (*model.TutoringMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkParent(material.TutoringID); err != nil {
		return nil, err
	}
	created := r.materials.Insert(material)
	return &created, nil
}

func (r *tutoringRepository) UpdateMaterial(ctx context.Context, id string, patch model.MaterialPatch) (*model.TutoringMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return found(r.materials.Update(id, patch.Apply)), nil
}

func (r *tutoringRepository) DeleteMaterial(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.materials.Delete(id), nil
}

func (r *tutoringRepository) GetMaterials(ctx context.Context, tutoringID string) ([]model.TutoringMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.materials.ByParent(tutoringID), nil
}

func (r *tutoringRepository) AddReview(ctx context.Context, review model.TutoringReview) (*model.TutoringReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkParent(review.TutoringID); err != nil {
		return nil, err
	}
	created := r.reviews.Insert(review)
	return &created, nil
}

func (r *tutoringRepository) UpdateReview(ctx context.Context, id string, patch model.ReviewPatch) (*model.TutoringReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return found(r.reviews.Update(id, patch.Apply)), nil
}

func (r *tutoringRepository) DeleteReview(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reviews.Delete(id), nil
}

func (r *tutoringRepository) GetReviews(ctx context.Context, tutoringID string) ([]model.TutoringReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reviews.ByParent(tutoringID), nil
}

func (r *tutoringRepository) AddAvailableTime(ctx context.Context, slot model.TutoringAvailableTime) (*model.TutoringAvailableTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkParent(slot.TutoringID); err != nil {
		return nil, err
	}
	created := r.availableTimes.Insert(slot)
	return &created, nil
}

func (r *tutoringRepository) UpdateAvailableTime(ctx context.Context, id string, patch model.AvailableTimePatch) (*model.TutoringAvailableTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return found(r.availableTimes.Update(id, patch.Apply)), nil
}

func (r *tutoringRepository) DeleteAvailableTime(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.availableTimes.Delete(id), nil
}

func (r *tutoringRepository) GetAvailableTimes(ctx context.Context, tutoringID string) ([]model.TutoringAvailableTime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.availableTimes.ByParent(tutoringID), nil
}

// checkParent enforces that a new child points at a stored session. It is a
// no-op unless strict references are on. Callers hold r.mu.
func (r *tutoringRepository) checkParent(tutoringID string) error {
	if !r.strict {
		return nil
	}
	if _, ok := r.sessions.Get(tutoringID); !ok {
		return fmt.Errorf("%w: tutoring session %q", ErrReferenceNotFound, tutoringID)
	}
	return nil
}

// Callers hold r.mu.
func (r *tutoringRepository) findByID(id string) *model.TutoringSession {
	session, ok := r.sessions.Get(id)
	if !ok {
		return nil
	}
	r.assemble(&session)
	return &session
}

func (r *tutoringRepository) assembleAll(sessions []model.TutoringSession) []model.TutoringSession {
	for i := range sessions {
		r.assemble(&sessions[i])
	}
	return sessions
}

func (r *tutoringRepository) assemble(session *model.TutoringSession) {
	session.Materials = r.materials.ByParent(session.ID)
	session.Reviews = r.reviews.ByParent(session.ID)
	session.AvailableTimes = r.availableTimes.ByParent(session.ID)
}
