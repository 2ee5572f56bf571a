package core

import "errors"

// Common errors.
var (
	ErrTitleTooShort = errors.New("title too short")
	ErrTitleTooLong  = errors.New("title too long")
	ErrTextTooLong   = errors.New("text too long")
	ErrNotFound      = errors.New("note not found")
)

// IsValidation reports whether err is one of the field validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleTooShort) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrTextTooLong)
}
