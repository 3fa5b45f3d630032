package services

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrServiceUnavailable    = errors.New("generation service unavailable")
	ErrMissingJobDescription = errors.New("either job description text or URL must be provided")
)

// DecodeError reports a document whose bytes could not be parsed as the
// format its extension claimed.
type DecodeError struct {
	Format DocumentFormat
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
