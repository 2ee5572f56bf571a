// Package core holds the note entity, its validation rules and the in-memory store.
package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Field length limits, measured in runes.
const (
	TitleMinLen = 3
	TitleMaxLen = 50
	TextMaxLen  = 150
)

// Note is the central entity of the domain.
// The ID is assigned by the Store and never changes afterwards.
type Note struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ValidationResult is the outcome of Validate.
type ValidationResult int

const (
	Valid ValidationResult = iota
	TitleTooShort
	TitleTooLong
	TextTooLong
)

func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case TitleTooShort:
		return "title too short"
	case TitleTooLong:
		return "title too long"
	case TextTooLong:
		return "text too long"
	default:
		return "unknown"
	}
}

// Err maps the result to its sentinel error. Valid maps to nil.
func (r ValidationResult) Err() error {
	switch r {
	case TitleTooShort:
		return ErrTitleTooShort
	case TitleTooLong:
		return ErrTitleTooLong
	case TextTooLong:
		return ErrTextTooLong
	default:
		return nil
	}
}

// fields carries the note rules. Field order is the reporting priority:
// the validator stops at the first failing tag of a field and walks fields
// in declaration order, so the first FieldError is the one we report.
type fields struct {
	Title string `validate:"min=3,max=50"`
	Text  string `validate:"max=150"`
}

var validate = validator.New()

// Validate checks title and text against the length rules.
// Only the first violated rule is reported, in this order:
// short title, long title, long text.
func Validate(title, text string) ValidationResult {
	err := validate.Struct(fields{Title: title, Text: text})
	if err == nil {
		return Valid
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		// Struct only fails this way on programmer error (bad tag syntax).
		panic(err)
	}

	first := verrs[0]
	switch first.StructField() + "." + first.Tag() {
	case "Title.min":
		return TitleTooShort
	case "Title.max":
		return TitleTooLong
	default:
		return TextTooLong
	}
}
