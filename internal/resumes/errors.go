package resumes

import "errors"

var (
	// ErrNotFound indicates the resume is neither in memory nor in storage.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
