package handler

import (
	"github.com/deppfellow/tutoring-api/internal/repository"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives them as one
// value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Profile  *ProfileHandler
	Course   *CourseHandler
	Semester *SemesterHandler
	Tutoring *TutoringHandler
}

func NewHandlers(s *server.Server, services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s, repos),
		OpenAPI:  NewOpenAPIHandler(s),
		Profile:  NewProfileHandler(s, services.Profile),
		Course:   NewCourseHandler(s, services.Course),
		Semester: NewSemesterHandler(s, services.Semester),
		Tutoring: NewTutoringHandler(s, services.Tutoring),
	}
}
