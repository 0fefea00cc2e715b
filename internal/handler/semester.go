package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
	"github.com/deppfellow/tutoring-api/internal/validation"
)

type SemesterHandler struct {
	Handler
	semesters *service.SemesterService
}

func NewSemesterHandler(s *server.Server, semesters *service.SemesterService) *SemesterHandler {
	return &SemesterHandler{
		Handler:   NewHandler(s),
		semesters: semesters,
	}
}

type CreateSemesterRequest struct {
	ID        string    `json:"id" validate:"omitempty,max=100"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Year      int       `json:"year" validate:"required,min=2000,max=2100"`
	Period    string    `json:"period" validate:"omitempty,max=20"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

func (r *CreateSemesterRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkDateRange(&r.StartDate, &r.EndDate)
}

type UpdateSemesterRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.SemesterPatch
}

func (r *UpdateSemesterRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkDateRange(r.StartDate, r.EndDate)
}

// checkDateRange rejects an end date before the start date when both are
// given.
func checkDateRange(start, end *time.Time) error {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return nil
	}
	if end.Before(*start) {
		return validation.CustomValidationErrors{{Field: "endDate", Message: "must not be before startDate"}}
	}
	return nil
}

type SemesterCourseRequest struct {
	ID       string `param:"id" json:"-" validate:"required"`
	CourseID string `param:"courseId" json:"-" validate:"required"`
}

func (r *SemesterCourseRequest) Validate() error {
	return validation.Struct(r)
}

func (h *SemesterHandler) ListSemesters(c echo.Context, req *EmptyRequest) ([]model.Semester, error) {
	return h.semesters.List(c.Request().Context())
}

func (h *SemesterHandler) GetSemester(c echo.Context, req *IDRequest) (*model.Semester, error) {
	return h.semesters.GetByID(c.Request().Context(), req.ID)
}

func (h *SemesterHandler) CreateSemester(c echo.Context, req *CreateSemesterRequest) (*model.Semester, error) {
	return h.semesters.Create(c.Request().Context(), model.Semester{
		ID:        req.ID,
		Name:      req.Name,
		Year:      req.Year,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	})
}

func (h *SemesterHandler) UpdateSemester(c echo.Context, req *UpdateSemesterRequest) (*model.Semester, error) {
	return h.semesters.Update(c.Request().Context(), req.ID, req.SemesterPatch)
}

func (h *SemesterHandler) DeleteSemester(c echo.Context, req *IDRequest) error {
	return h.semesters.Delete(c.Request().Context(), req.ID)
}

func (h *SemesterHandler) GetSemesterCourses(c echo.Context, req *IDRequest) ([]model.Course, error) {
	return h.semesters.GetCourses(c.Request().Context(), req.ID)
}

func (h *SemesterHandler) AddSemesterCourse(c echo.Context, req *SemesterCourseRequest) ([]model.Course, error) {
	return h.semesters.AddCourse(c.Request().Context(), req.ID, req.CourseID)
}

func (h *SemesterHandler) RemoveSemesterCourse(c echo.Context, req *SemesterCourseRequest) error {
	return h.semesters.RemoveCourse(c.Request().Context(), req.ID, req.CourseID)
}
