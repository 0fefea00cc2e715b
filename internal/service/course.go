package service

import (
	"context"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/repository"
)

type CourseService struct {
	courses repository.CourseRepository
}

func NewCourseService(courses repository.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *CourseService) ListBySemesterNumber(ctx context.Context, semesterNumber int) ([]model.Course, error) {
	return s.courses.FindBySemesterNumber(ctx, semesterNumber)
}

func (s *CourseService) GetByID(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, notFound("Course")
	}
	return course, nil
}

func (s *CourseService) Create(ctx context.Context, course model.Course) (*model.Course, error) {
	return s.courses.Create(ctx, course)
}

func (s *CourseService) Update(ctx context.Context, id string, patch model.CoursePatch) (*model.Course, error) {
	updated, err := s.courses.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("Course")
	}
	return updated, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	removed, err := s.courses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Course")
	}
	return nil
}
