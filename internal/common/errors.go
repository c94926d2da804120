// Package common defines shared sentinel errors used across the DermaScan
// store, repository, and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session store errors, surfaced through the store's error field.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Generic fallback for unexpected internal failures.
	ErrInternal = errors.New("internal error")
)
