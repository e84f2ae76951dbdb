// Package common defines sentinel errors shared by the repository, service
// and transport layers of the library service. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrEmptyResult is returned when the store reports success but the
	// produced row carries no user id.
	ErrEmptyResult = errors.New("empty result")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
