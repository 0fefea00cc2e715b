package model

import "time"

// Semester is an academic term. Courses is derived: it is filled from the
// semester/course association on every read and never stored on the record.
type Semester struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	Courses   []Course  `json:"courses"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SemesterPatch struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Year      *int       `json:"year" validate:"omitempty,min=2000,max=2100"`
	Period    *string    `json:"period" validate:"omitempty,max=20"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsActive  *bool      `json:"isActive"`
}

func (patch SemesterPatch) Apply(s Semester) Semester {
	setIfPresent(&s.Name, patch.Name)
	setIfPresent(&s.Year, patch.Year)
	setIfPresent(&s.Period, patch.Period)
	setIfPresent(&s.StartDate, patch.StartDate)
	setIfPresent(&s.EndDate, patch.EndDate)
	setIfPresent(&s.IsActive, patch.IsActive)
	return s
}
