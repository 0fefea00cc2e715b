// Package model holds the domain entities of the tutoring backend.
//
// Entities are plain value snapshots. Repositories hand out copies, so
// mutating a returned value never changes what is stored. Every root and
// child carries store-managed bookkeeping (ID, CreatedAt, UpdatedAt).
//
// Each entity has a matching *Patch type used for partial updates: a nil
// field means "not supplied" and Apply leaves the existing value in place.
package model

// setIfPresent copies *src into *dst when src is non-nil.
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
