package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
	"github.com/deppfellow/tutoring-api/internal/validation"
)

type TutoringHandler struct {
	Handler
	tutoring *service.TutoringService
}

func NewTutoringHandler(s *server.Server, tutoring *service.TutoringService) *TutoringHandler {
	return &TutoringHandler{
		Handler:  NewHandler(s),
		tutoring: tutoring,
	}
}

type ListTutoringSessionsRequest struct {
	TutorID  string `query:"tutorId"`
	CourseID string `query:"courseId"`
}

func (r *ListTutoringSessionsRequest) Validate() error {
	return nil
}

type MaterialBody struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Type        string `json:"type" validate:"omitempty,max=50"`
	URL         string `json:"url" validate:"omitempty,url"`
	Size        int64  `json:"size" validate:"omitempty,min=0"`
}

func (b MaterialBody) toModel() model.TutoringMaterial {
	return model.TutoringMaterial{
		Title:       b.Title,
		Description: b.Description,
		Type:        b.Type,
		URL:         b.URL,
		Size:        b.Size,
	}
}

type ReviewBody struct {
	ReviewerID string `json:"reviewerId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
}

func (b ReviewBody) toModel() model.TutoringReview {
	return model.TutoringReview{
		ReviewerID: b.ReviewerID,
		Rating:     b.Rating,
		Comment:    b.Comment,
	}
}

type AvailableTimeBody struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

func (b AvailableTimeBody) toModel() model.TutoringAvailableTime {
	return model.TutoringAvailableTime{
		DayOfWeek: b.DayOfWeek,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

// checkSlot requires a slot to end after it starts. "HH:MM" strings compare
// in time order.
func checkSlot(field string, start, end string) error {
	if end <= start {
		return validation.CustomValidationErrors{{Field: field, Message: "must be after startTime"}}
	}
	return nil
}

// CreateTutoringSessionRequest may carry initial children, which are stored
// with the session.
type CreateTutoringSessionRequest struct {
	ID             string              `json:"id" validate:"omitempty,max=100"`
	TutorID        string              `json:"tutorId" validate:"required"`
	CourseID       string              `json:"courseId" validate:"required"`
	Title          string              `json:"title" validate:"required,min=1,max=200"`
	Description    string              `json:"description" validate:"omitempty,max=2000"`
	Price          float64             `json:"price" validate:"min=0"`
	Location       string              `json:"location" validate:"omitempty,max=200"`
	Materials      []MaterialBody      `json:"materials" validate:"omitempty,dive"`
	Reviews        []ReviewBody        `json:"reviews" validate:"omitempty,dive"`
	AvailableTimes []AvailableTimeBody `json:"availableTimes" validate:"omitempty,dive"`
}

func (r *CreateTutoringSessionRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	for _, slot := range r.AvailableTimes {
		if err := checkSlot("availableTimes.endTime", slot.StartTime, slot.EndTime); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateTutoringSessionRequest) toModel() model.TutoringSession {
	session := model.TutoringSession{
		ID:          r.ID,
		TutorID:     r.TutorID,
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
	}
	for _, m := range r.Materials {
		session.Materials = append(session.Materials, m.toModel())
	}
	for _, rv := range r.Reviews {
		session.Reviews = append(session.Reviews, rv.toModel())
	}
	for _, t := range r.AvailableTimes {
		session.AvailableTimes = append(session.AvailableTimes, t.toModel())
	}
	return session
}

type UpdateTutoringSessionRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.TutoringSessionPatch
}

func (r *UpdateTutoringSessionRequest) Validate() error {
	return validation.Struct(r)
}

type AddMaterialRequest struct {
	TutoringID string `param:"id" json:"-" validate:"required"`
	MaterialBody
}

func (r *AddMaterialRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateMaterialRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.MaterialPatch
}

func (r *UpdateMaterialRequest) Validate() error {
	return validation.Struct(r)
}

type AddReviewRequest struct {
	TutoringID string `param:"id" json:"-" validate:"required"`
	ReviewBody
}

func (r *AddReviewRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateReviewRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.ReviewPatch
}

func (r *UpdateReviewRequest) Validate() error {
	return validation.Struct(r)
}

type AddAvailableTimeRequest struct {
	TutoringID string `param:"id" json:"-" validate:"required"`
	AvailableTimeBody
}

func (r *AddAvailableTimeRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkSlot("endTime", r.StartTime, r.EndTime)
}

type UpdateAvailableTimeRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.AvailableTimePatch
}

func (r *UpdateAvailableTimeRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.StartTime != nil && r.EndTime != nil {
		return checkSlot("endTime", *r.StartTime, *r.EndTime)
	}
	return nil
}

func (h *TutoringHandler) ListSessions(c echo.Context, req *ListTutoringSessionsRequest) ([]model.TutoringSession, error) {
	return h.tutoring.List(c.Request().Context(), service.SessionFilter{
		TutorID:  req.TutorID,
		CourseID: req.CourseID,
	})
}

func (h *TutoringHandler) GetSession(c echo.Context, req *IDRequest) (*model.TutoringSession, error) {
	return h.tutoring.GetByID(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) CreateSession(c echo.Context, req *CreateTutoringSessionRequest) (*model.TutoringSession, error) {
	return h.tutoring.Create(c.Request().Context(), req.toModel())
}

func (h *TutoringHandler) UpdateSession(c echo.Context, req *UpdateTutoringSessionRequest) (*model.TutoringSession, error) {
	return h.tutoring.Update(c.Request().Context(), req.ID, req.TutoringSessionPatch)
}

func (h *TutoringHandler) DeleteSession(c echo.Context, req *IDRequest) error {
	return h.tutoring.Delete(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) GetMaterials(c echo.Context, req *IDRequest) ([]model.TutoringMaterial, error) {
	return h.tutoring.GetMaterials(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) AddMaterial(c echo.Context, req *AddMaterialRequest) (*model.TutoringMaterial, error) {
	return h.tutoring.AddMaterial(c.Request().Context(), req.TutoringID, req.MaterialBody.toModel())
}

func (h *TutoringHandler) UpdateMaterial(c echo.Context, req *UpdateMaterialRequest) (*model.TutoringMaterial, error) {
	return h.tutoring.UpdateMaterial(c.Request().Context(), req.ID, req.MaterialPatch)
}

func (h *TutoringHandler) DeleteMaterial(c echo.Context, req *IDRequest) error {
	return h.tutoring.DeleteMaterial(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) GetReviews(c echo.Context, req *IDRequest) ([]model.TutoringReview, error) {
	return h.tutoring.GetReviews(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) AddReview(c echo.Context, req *AddReviewRequest) (*model.TutoringReview, error) {
	return h.tutoring.AddReview(c.Request().Context(), req.TutoringID, req.ReviewBody.toModel())
}

func (h *TutoringHandler) UpdateReview(c echo.Context, req *UpdateReviewRequest) (*model.TutoringReview, error) {
	return h.tutoring.UpdateReview(c.Request().Context(), req.ID, req.ReviewPatch)
}

func (h *TutoringHandler) DeleteReview(c echo.Context, req *IDRequest) error {
	return h.tutoring.DeleteReview(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) GetAvailableTimes(c echo.Context, req *IDRequest) ([]model.TutoringAvailableTime, error) {
	return h.tutoring.GetAvailableTimes(c.Request().Context(), req.ID)
}

func (h *TutoringHandler) AddAvailableTime(c echo.Context, req *AddAvailableTimeRequest) (*model.TutoringAvailableTime, error) {
	return h.tutoring.AddAvailableTime(c.Request().Context(), req.TutoringID, req.AvailableTimeBody.toModel())
}

func (h *TutoringHandler) UpdateAvailableTime(c echo.Context, req *UpdateAvailableTimeRequest) (*model.TutoringAvailableTime, error) {
	return h.tutoring.UpdateAvailableTime(c.Request().Context(), req.ID, req.AvailableTimePatch)
}

func (h *TutoringHandler) DeleteAvailableTime(c echo.Context, req *IDRequest) error {
	return h.tutoring.DeleteAvailableTime(c.Request().Context(), req.ID)
}
