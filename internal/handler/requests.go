package handler

import (
	"github.com/deppfellow/tutoring-api/internal/validation"
)

// IDRequest addresses a single record by its path id.
type IDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

// EmptyRequest is used by endpoints without input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
