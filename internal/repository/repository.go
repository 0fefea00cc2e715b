// Package repository holds the persistence layer of the tutoring backend.
//
// Storage is in memory. Each root entity gets a keyed Store, the tutoring
// session aggregate owns three ChildStores (materials, reviews, available
// times), and semesters are linked to courses through a JoinStore. The
// repository facades on top assemble roots with their dependents on every
// read and cascade deletes, so callers never see half an aggregate.
//
// Methods take a context and return an error to match the contract of a
// networked store. The in-memory implementation completes synchronously and
// only fails with ErrReferenceNotFound when strict references are enabled.
package repository

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrReferenceNotFound is returned in strict mode when a write points at a
// parent or associated record that does not exist.
var ErrReferenceNotFound = errors.New("referenced record not found")

// Options configures the stores behind a set of repositories.
type Options struct {
	// Clock stamps CreatedAt/UpdatedAt. Defaults to time.Now.
	Clock func() time.Time

	// IDs builds synthetic identifiers. Defaults to ShortID.
	IDs IDGenerator

	// StrictReferences rejects children whose session does not exist and
	// semester/course links whose ends do not exist. Off by default: the
	// permissive behavior accepts dangling references silently.
	StrictReferences bool

	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.IDs == nil {
		o.IDs = ShortID
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
