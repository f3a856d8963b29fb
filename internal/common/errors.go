// Package common holds sentinel errors shared by the store, service and
// handler layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Lookup of a resource that does not exist (unknown service slug, missing asset).
	ErrNotFound = errors.New("not found")

	// Write rejected by a uniqueness constraint.
	ErrConflict = errors.New("conflict")

	// Opaque failure reported to callers; details stay in the server log.
	ErrInternal = errors.New("internal error")
)
