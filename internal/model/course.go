package model

import "time"

type Course struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SemesterNumber int       `json:"semesterNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CoursePatch struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	SemesterNumber *int    `json:"semesterNumber" validate:"omitempty,min=1,max=12"`
}

func (patch CoursePatch) Apply(c Course) Course {
	setIfPresent(&c.Name, patch.Name)
	setIfPresent(&c.SemesterNumber, patch.SemesterNumber)
	return c
}
