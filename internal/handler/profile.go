package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/middleware"
	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
	"github.com/deppfellow/tutoring-api/internal/validation"
)

type ProfileHandler struct {
	Handler
	profiles *service.ProfileService
}

func NewProfileHandler(s *server.Server, profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		Handler:  NewHandler(s),
		profiles: profiles,
	}
}

type GetProfileByEmailRequest struct {
	Email string `param:"email" json:"-" validate:"required,email"`
}

func (r *GetProfileByEmailRequest) Validate() error {
	return validation.Struct(r)
}

// CreateProfileRequest creates a profile. Without an id the profile takes
// the authenticated user's id, so it can be tied back to the account.
type CreateProfileRequest struct {
	ID             string  `json:"id" validate:"omitempty,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	FirstName      string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName       string  `json:"lastName" validate:"required,min=1,max=100"`
	Gender         string  `json:"gender" validate:"required,oneof=male female other"`
	Role           string  `json:"role" validate:"required,oneof=student tutor admin"`
	SemesterNumber int     `json:"semesterNumber" validate:"required,min=1,max=12"`
	AcademicYear   string  `json:"academicYear" validate:"omitempty,max=10"`
	Avatar         *string `json:"avatar" validate:"omitempty,url"`
	Bio            string  `json:"bio" validate:"omitempty,max=500"`
	Phone          string  `json:"phone" validate:"omitempty,max=20"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateProfileRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateProfileRequest) toModel() model.Profile {
	return model.Profile{
		ID:             r.ID,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Gender:         r.Gender,
		Role:           r.Role,
		SemesterNumber: r.SemesterNumber,
		AcademicYear:   r.AcademicYear,
		Avatar:         r.Avatar,
		Bio:            r.Bio,
		Phone:          r.Phone,
		Status:         r.Status,
	}
}

type UpdateProfileRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.ProfilePatch
}

func (r *UpdateProfileRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ProfileHandler) ListProfiles(c echo.Context, req *EmptyRequest) ([]model.Profile, error) {
	return h.profiles.List(c.Request().Context())
}

func (h *ProfileHandler) GetProfile(c echo.Context, req *IDRequest) (*model.Profile, error) {
	return h.profiles.GetByID(c.Request().Context(), req.ID)
}

func (h *ProfileHandler) GetProfileByEmail(c echo.Context, req *GetProfileByEmailRequest) (*model.Profile, error) {
	return h.profiles.GetByEmail(c.Request().Context(), req.Email)
}

func (h *ProfileHandler) CreateProfile(c echo.Context, req *CreateProfileRequest) (*model.Profile, error) {
	profile := req.toModel()
	if profile.ID == "" {
		profile.ID = middleware.GetUserID(c)
	}
	return h.profiles.Create(c.Request().Context(), profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context, req *UpdateProfileRequest) (*model.Profile, error) {
	return h.profiles.Update(c.Request().Context(), req.ID, req.ProfilePatch)
}

func (h *ProfileHandler) DeleteProfile(c echo.Context, req *IDRequest) error {
	return h.profiles.Delete(c.Request().Context(), req.ID)
}
