package random

import "errors"

// Package-specific errors
var (
	// ErrEmptyCharset is returned when a password is requested with every
	// character class disabled.
	ErrEmptyCharset = errors.New("password charset is empty: at least one character class must be enabled")
)
