package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
	"github.com/deppfellow/tutoring-api/internal/validation"
)

type CourseHandler struct {
	Handler
	courses *service.CourseService
}

func NewCourseHandler(s *server.Server, courses *service.CourseService) *CourseHandler {
	return &CourseHandler{
		Handler: NewHandler(s),
		courses: courses,
	}
}

type ListCoursesRequest struct {
	SemesterNumber int `query:"semesterNumber" validate:"omitempty,min=1,max=12"`
}

func (r *ListCoursesRequest) Validate() error {
	return validation.Struct(r)
}

type CreateCourseRequest struct {
	ID             string `json:"id" validate:"omitempty,max=100"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=12"`
}

func (r *CreateCourseRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateCourseRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.CoursePatch
}

func (r *UpdateCourseRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CourseHandler) ListCourses(c echo.Context, req *ListCoursesRequest) ([]model.Course, error) {
	if req.SemesterNumber > 0 {
		return h.courses.ListBySemesterNumber(c.Request().Context(), req.SemesterNumber)
	}
	return h.courses.List(c.Request().Context())
}

func (h *CourseHandler) GetCourse(c echo.Context, req *IDRequest) (*model.Course, error) {
	return h.courses.GetByID(c.Request().Context(), req.ID)
}

func (h *CourseHandler) CreateCourse(c echo.Context, req *CreateCourseRequest) (*model.Course, error) {
	return h.courses.Create(c.Request().Context(), model.Course{
		ID:             req.ID,
		Name:           req.Name,
		SemesterNumber: req.SemesterNumber,
	})
}

func (h *CourseHandler) UpdateCourse(c echo.Context, req *UpdateCourseRequest) (*model.Course, error) {
	return h.courses.Update(c.Request().Context(), req.ID, req.CoursePatch)
}

func (h *CourseHandler) DeleteCourse(c echo.Context, req *IDRequest) error {
	return h.courses.Delete(c.Request().Context(), req.ID)
}
