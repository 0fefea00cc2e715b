package model

import "time"

// TutoringSession is the root of the tutoring aggregate.
//
// Materials, Reviews and AvailableTimes are owned children. They are stored
// in their own collections and attached on every read; a session deleted from
// the store takes its children with it.
type TutoringSession struct {
	ID             string                  `json:"id"`
	TutorID        string                  `json:"tutorId"`
	CourseID       string                  `json:"courseId"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Price          float64                 `json:"price"`
	Location       string                  `json:"location,omitempty"`
	Materials      []TutoringMaterial      `json:"materials"`
	Reviews        []TutoringReview        `json:"reviews"`
	AvailableTimes []TutoringAvailableTime `json:"availableTimes"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// TutoringSessionPatch updates root fields only. Children are changed through
// their own operations.
type TutoringSessionPatch struct {
	TutorID     *string  `json:"tutorId" validate:"omitempty,min=1"`
	CourseID    *string  `json:"courseId" validate:"omitempty,min=1"`
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
}

func (patch TutoringSessionPatch) Apply(s TutoringSession) TutoringSession {
	setIfPresent(&s.TutorID, patch.TutorID)
	setIfPresent(&s.CourseID, patch.CourseID)
	setIfPresent(&s.Title, patch.Title)
	setIfPresent(&s.Description, patch.Description)
	setIfPresent(&s.Price, patch.Price)
	setIfPresent(&s.Location, patch.Location)
	return s
}

// TutoringMaterial is a file or link shared within a session.
type TutoringMaterial struct {
	ID          string    `json:"id"`
	TutoringID  string    `json:"tutoringId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	URL         string    `json:"url,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MaterialPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Type        *string `json:"type" validate:"omitempty,max=50"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Size        *int64  `json:"size" validate:"omitempty,min=0"`
}

func (patch MaterialPatch) Apply(m TutoringMaterial) TutoringMaterial {
	setIfPresent(&m.Title, patch.Title)
	setIfPresent(&m.Description, patch.Description)
	setIfPresent(&m.Type, patch.Type)
	setIfPresent(&m.URL, patch.URL)
	setIfPresent(&m.Size, patch.Size)
	return m
}

// TutoringReview is a rating left by a student on a session.
type TutoringReview struct {
	ID         string    `json:"id"`
	TutoringID string    `json:"tutoringId"`
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ReviewPatch struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

func (patch ReviewPatch) Apply(r TutoringReview) TutoringReview {
	setIfPresent(&r.Rating, patch.Rating)
	setIfPresent(&r.Comment, patch.Comment)
	return r
}

// TutoringAvailableTime is a weekly slot in which the tutor can hold the
// session. DayOfWeek follows time.Weekday (0 is Sunday).
type TutoringAvailableTime struct {
	ID         string    `json:"id"`
	TutoringID string    `json:"tutoringId"`
	DayOfWeek  int       `json:"dayOfWeek"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AvailableTimePatch struct {
	DayOfWeek *int    `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	StartTime *string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"endTime" validate:"omitempty,datetime=15:04"`
}

func (patch AvailableTimePatch) Apply(t TutoringAvailableTime) TutoringAvailableTime {
	setIfPresent(&t.DayOfWeek, patch.DayOfWeek)
	setIfPresent(&t.StartTime, patch.StartTime)
	setIfPresent(&t.EndTime, patch.EndTime)
	return t
}
