package shell

import (
	"errors"

	"github.com/aretw0/jot/pkg/core"
)

// User-facing messages for each validation failure.
const (
	MsgTitleTooShort = "Title needs to be 3 characters or longer"
	MsgTitleTooLong  = "Title can't be longer than 50 characters"
	MsgTextTooLong   = "Text too long, max 150 characters"
)

// Message turns a store error into the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, core.ErrTitleTooShort):
		return MsgTitleTooShort
	case errors.Is(err, core.ErrTitleTooLong):
		return MsgTitleTooLong
	case errors.Is(err, core.ErrTextTooLong):
		return MsgTextTooLong
	case errors.Is(err, core.ErrNotFound):
		return "Note not found"
	default:
		return err.Error()
	}
}
