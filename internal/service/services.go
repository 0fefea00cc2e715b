package service

import (
	"github.com/deppfellow/tutoring-api/internal/lib/job"
	"github.com/deppfellow/tutoring-api/internal/repository"
	"github.com/deppfellow/tutoring-api/internal/server"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Profile  *ProfileService
	Course   *CourseService
	Semester *SemesterService
	Tutoring *TutoringService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Job:      s.Job,
		Auth:     authService,
		Profile:  NewProfileService(repos.Profile, authService, tasks, s.Logger),
		Course:   NewCourseService(repos.Course),
		Semester: NewSemesterService(repos.Semester, repos.Course),
		Tutoring: NewTutoringService(repos.Tutoring, s.Logger),
	}, nil
}
