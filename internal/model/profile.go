package model

import "time"

// Profile is a student or tutor account profile.
//
// Email is not enforced unique by the store.
type Profile struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Gender         string    `json:"gender"`
	Role           string    `json:"role"`
	SemesterNumber int       `json:"semesterNumber"`
	AcademicYear   string    `json:"academicYear,omitempty"`
	Avatar         *string   `json:"avatar"`
	Bio            string    `json:"bio,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProfilePatch is a partial update of a Profile.
type ProfilePatch struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	FirstName      *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Role           *string `json:"role" validate:"omitempty,oneof=student tutor admin"`
	SemesterNumber *int    `json:"semesterNumber" validate:"omitempty,min=1,max=12"`
	AcademicYear   *string `json:"academicYear" validate:"omitempty,max=10"`
	Avatar         *string `json:"avatar" validate:"omitempty,url"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Apply merges the supplied fields over p and returns the result.
func (patch ProfilePatch) Apply(p Profile) Profile {
	setIfPresent(&p.Email, patch.Email)
	setIfPresent(&p.FirstName, patch.FirstName)
	setIfPresent(&p.LastName, patch.LastName)
	setIfPresent(&p.Gender, patch.Gender)
	setIfPresent(&p.Role, patch.Role)
	setIfPresent(&p.SemesterNumber, patch.SemesterNumber)
	setIfPresent(&p.AcademicYear, patch.AcademicYear)
	setIfPresent(&p.Bio, patch.Bio)
	setIfPresent(&p.Phone, patch.Phone)
	setIfPresent(&p.Status, patch.Status)
	if patch.Avatar != nil {
		avatar := *patch.Avatar
		p.Avatar = &avatar
	}
	return p
}
