package repository

import (
	"context"

	"github.com/deppfellow/tutoring-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every container owns its own stores; two containers never share state.
type Repositories struct {
	Profile  ProfileRepository
	Course   CourseRepository
	Semester SemesterRepository
	Tutoring TutoringSessionRepository
}

// NewRepositories builds the repositories from the application config:
// store.id_scheme picks the id generator and store.strict_references turns on
// foreign key checks.
func NewRepositories(s *server.Server) *Repositories {
	return New(Options{
		IDs:              IDGeneratorFor(s.Config.Store.IDScheme),
		StrictReferences: s.Config.Store.StrictReferences,
		Logger:           s.Logger,
	})
}

func New(opts Options) *Repositories {
	courses := newCourseRepository(opts)

	return &Repositories{
		Profile:  NewProfileRepository(opts),
		Course:   courses,
		Semester: NewSemesterRepository(courses, opts),
		Tutoring: NewTutoringSessionRepository(opts),
	}
}

// Counts reports how many root records each repository holds.
func (r *Repositories) Counts(ctx context.Context) (map[string]int, error) {
	profiles, err := r.Profile.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := r.Course.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	semesters, err := r.Semester.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := r.Tutoring.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"profiles":          len(profiles),
		"courses":           len(courses),
		"semesters":         len(semesters),
		"tutoring_sessions": len(sessions),
	}, nil
}
