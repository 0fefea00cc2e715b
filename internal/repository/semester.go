package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/rs/zerolog"
)

type SemesterRepository interface {
	FindAll(ctx context.Context) ([]model.Semester, error)
	FindByID(ctx context.Context, id string) (*model.Semester, error)
	Create(ctx context.Context, semester model.Semester) (*model.Semester, error)
	Update(ctx context.Context, id string, patch model.SemesterPatch) (*model.Semester, error)
	// Delete removes the semester and its course associations. Courses
	// themselves are left alone.
	Delete(ctx context.Context, id string) (bool, error)

	// AddCourse links a course to a semester. Linking twice is a no-op.
	AddCourse(ctx context.Context, semesterID, courseID string) error
	// RemoveCourse unlinks a course. Unknown ids are a no-op.
	RemoveCourse(ctx context.Context, semesterID, courseID string) error
	GetCourses(ctx context.Context, semesterID string) ([]model.Course, error)
}

var semesterSchema = Schema[model.Semester]{
	Prefix:    "semester",
	ID:        func(s *model.Semester) *string { return &s.ID },
	CreatedAt: func(s *model.Semester) *time.Time { return &s.CreatedAt },
	UpdatedAt: func(s *model.Semester) *time.Time { return &s.UpdatedAt },
}

type semesterRepository struct {
	// mu spans the semester store and the join store so a read never pairs
	// a semester with a half-applied association change.
	mu        sync.RWMutex
	semesters *Store[model.Semester]
	links     *JoinStore
	courses   CourseRepository

	clock  func() time.Time
	strict bool
	logger *zerolog.Logger
}

// NewSemesterRepository builds a semester repository that resolves associated
// courses through courses.
func NewSemesterRepository(courses CourseRepository, opts Options) SemesterRepository {
	opts = opts.withDefaults()
	return &semesterRepository{
		semesters: NewStore(semesterSchema, opts),
		links:     NewJoinStore(),
		courses:   courses,
		clock:     opts.Clock,
		strict:    opts.StrictReferences,
		logger:    opts.Logger,
	}
}

func (r *semesterRepository) FindAll(ctx context.Context) ([]model.Semester, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	semesters := r.semesters.All()
	for i := range semesters {
		if err := r.assemble(ctx, &semesters[i]); err != nil {
			return nil, err
		}
	}
	return semesters, nil
}

func (r *semesterRepository) FindByID(ctx context.Context, id string) (*model.Semester, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findByID(ctx, id)
}

func (r *semesterRepository) findByID(ctx context.Context, id string) (*model.Semester, error) {
	semester, ok := r.semesters.Get(id)
	if !ok {
		return nil, nil
	}
	if err := r.assemble(ctx, &semester); err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepository) Create(ctx context.Context, semester model.Semester) (*model.Semester, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	semester.Courses = nil
	created := r.semesters.Insert(semester)
	r.links.Init(created.ID)

	return r.findByID(ctx, created.ID)
}

func (r *semesterRepository) Update(ctx context.Context, id string, patch model.SemesterPatch) (*model.Semester, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.semesters.Update(id, patch.Apply); !ok {
		return nil, nil
	}
	return r.findByID(ctx, id)
}

func (r *semesterRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.semesters.Delete(id)
	r.links.Drop(id)
	return removed, nil
}

func (r *semesterRepository) AddCourse(ctx context.Context, semesterID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strict {
		if _, ok := r.semesters.Get(semesterID); !ok {
			return fmt.Errorf("%w: semester %q", ErrReferenceNotFound, semesterID)
		}
		course, err := r.courses.FindByID(ctx, courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return fmt.Errorf("%w: course %q", ErrReferenceNotFound, courseID)
		}
	}

	if r.links.Add(semesterID, courseID) {
		r.logger.Debug().
			Str("semester_id", semesterID).
			Str("course_id", courseID).
			Msg("linked course to semester")
	}
	return nil
}

func (r *semesterRepository) RemoveCourse(ctx context.Context, semesterID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links.Remove(semesterID, courseID)
	return nil
}

func (r *semesterRepository) GetCourses(ctx context.Context, semesterID string) ([]model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolveCourses(ctx, semesterID)
}

func (r *semesterRepository) assemble(ctx context.Context, semester *model.Semester) error {
	courses, err := r.resolveCourses(ctx, semester.ID)
	if err != nil {
		return err
	}
	semester.Courses = courses
	return nil
}

// resolveCourses looks each linked id up in the course repository. Ids with
// no course record (deleted, or never created) come back as a placeholder
// carrying just the id.
func (r *semesterRepository) resolveCourses(ctx context.Context, semesterID string) ([]model.Course, error) {
	ids := r.links.Targets(semesterID)
	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := r.courses.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if course == nil {
			course = r.placeholderCourse(id)
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

func (r *semesterRepository) placeholderCourse(id string) *model.Course {
	now := r.clock()
	return &model.Course{
		ID:             id,
		Name:           "Course " + id,
		SemesterNumber: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
