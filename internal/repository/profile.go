package repository

import (
	"context"
	"time"

	"github.com/deppfellow/tutoring-api/internal/model"
)

type ProfileRepository interface {
	FindAll(ctx context.Context) ([]model.Profile, error)
	// FindByID returns nil when no profile has the id.
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	// FindByEmail returns the first profile, in insertion order, with the email.
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Create(ctx context.Context, profile model.Profile) (*model.Profile, error)
	// Update returns nil when no profile has the id.
	Update(ctx context.Context, id string, patch model.ProfilePatch) (*model.Profile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var profileSchema = Schema[model.Profile]{
	Prefix:    "profile",
	ID:        func(p *model.Profile) *string { return &p.ID },
	CreatedAt: func(p *model.Profile) *time.Time { return &p.CreatedAt },
	UpdatedAt: func(p *model.Profile) *time.Time { return &p.UpdatedAt },
}

type profileRepository struct {
	profiles *Store[model.Profile]
}

func NewProfileRepository(opts Options) ProfileRepository {
	return &profileRepository{profiles: NewStore(profileSchema, opts)}
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	return r.profiles.All(), nil
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	return found(r.profiles.Get(id)), nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return found(r.profiles.First(func(p model.Profile) bool {
		return p.Email == email
	})), nil
}

func (r *profileRepository) Create(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	created := r.profiles.Insert(profile)
	return &created, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, patch model.ProfilePatch) (*model.Profile, error) {
	return found(r.profiles.Update(id, patch.Apply)), nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.profiles.Delete(id), nil
}

// found turns a (value, ok) lookup into the nil-on-absence shape of the
// repository contracts.
func found[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
