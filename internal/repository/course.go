package repository

import (
	"context"
	"time"

	"github.com/deppfellow/tutoring-api/internal/model"
)

type CourseRepository interface {
	FindAll(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id string) (*model.Course, error)
	FindBySemesterNumber(ctx context.Context, semesterNumber int) ([]model.Course, error)
	Create(ctx context.Context, course model.Course) (*model.Course, error)
	Update(ctx context.Context, id string, patch model.CoursePatch) (*model.Course, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var courseSchema = Schema[model.Course]{
	Prefix:    "course",
	ID:        func(c *model.Course) *string { return &c.ID },
	CreatedAt: func(c *model.Course) *time.Time { return &c.CreatedAt },
	UpdatedAt: func(c *model.Course) *time.Time { return &c.UpdatedAt },
}

type courseRepository struct {
	courses *Store[model.Course]
}

func NewCourseRepository(opts Options) CourseRepository {
	return newCourseRepository(opts)
}

func newCourseRepository(opts Options) *courseRepository {
	return &courseRepository{courses: NewStore(courseSchema, opts)}
}

func (r *courseRepository) FindAll(ctx context.Context) ([]model.Course, error) {
	return r.courses.All(), nil
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	return found(r.courses.Get(id)), nil
}

func (r *courseRepository) FindBySemesterNumber(ctx context.Context, semesterNumber int) ([]model.Course, error) {
	return r.courses.Filter(func(c model.Course) bool {
		return c.SemesterNumber == semesterNumber
	}), nil
}

func (r *courseRepository) Create(ctx context.Context, course model.Course) (*model.Course, error) {
	created := r.courses.Insert(course)
	return &created, nil
}

func (r *courseRepository) Update(ctx context.Context, id string, patch model.CoursePatch) (*model.Course, error) {
	return found(r.courses.Update(id, patch.Apply)), nil
}

// Delete removes the course only. Semester association lists that still name
// it keep the id and resolve it to a placeholder on read.
func (r *courseRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.courses.Delete(id), nil
}
