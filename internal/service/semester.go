package service

import (
	"context"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

type SemesterService struct {
	semesters repository.SemesterRepository
	courses   repository.CourseRepository
}

func NewSemesterService(semesters repository.SemesterRepository, courses repository.CourseRepository) *SemesterService {
	return &SemesterService{semesters: semesters, courses: courses}
}

func (s *SemesterService) List(ctx context.Context) ([]model.Semester, error) {
	return s.semesters.FindAll(ctx)
}

func (s *SemesterService) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	semester, err := s.semesters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return nil, notFound("Semester")
	}
	return semester, nil
}

func (s *SemesterService) Create(ctx context.Context, semester model.Semester) (*model.Semester, error) {
	return s.semesters.Create(ctx, semester)
}

func (s *SemesterService) Update(ctx context.Context, id string, patch model.SemesterPatch) (*model.Semester, error) {
	updated, err := s.semesters.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Semester")
	}
	return updated, nil
}

func (s *SemesterService) Delete(ctx context.Context, id string) error {
	removed, err := s.semesters.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Semester")
	}
	return nil
}

// AddCourse links an existing course to an existing semester and returns
// the semester's courses afterwards.
func (s *SemesterService) AddCourse(ctx context.Context, semesterID, courseID string) ([]model.Course, error) {
	if _, err := s.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, notFound("Course")
	}

	if err := s.semesters.AddCourse(ctx, semesterID, courseID); err != nil {
		return nil, translate(err)
	}

	return s.semesters.GetCourses(ctx, semesterID)
}

// RemoveCourse unlinks a course. Unlinking a course that is not linked
// succeeds.
func (s *SemesterService) RemoveCourse(ctx context.Context, semesterID, courseID string) error {
	if _, err := s.GetByID(ctx, semesterID); err != nil {
		return err
	}

	return s.semesters.RemoveCourse(ctx, semesterID, courseID)
}

func (s *SemesterService) GetCourses(ctx context.Context, semesterID string) ([]model.Course, error) {
	if _, err := s.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}

	return s.semesters.GetCourses(ctx, semesterID)
}
