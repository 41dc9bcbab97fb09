package assistant

import (
	"errors"
	"fmt"
)

// Error kinds returned by the record stores. Use errors.Is to classify an
// error; its message is meant to be shown to the user as is.
var (
	// ErrValidation reports a malformed field value.
	ErrValidation = errors.New("invalid value")
	// ErrNotFound reports a reference to a contact, phone or note that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a uniqueness violation.
	ErrDuplicate = errors.New("duplicate entry")
)

// kindError is an error of a given kind, with a user facing message.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Errorf returns an error of the given kind whose message is exactly the
// formatted text, so that it can be shown to the user as is.
func Errorf(kind error, format string, a ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

func validationError(format string, a ...any) error { return Errorf(ErrValidation, format, a...) }
func notFoundError(format string, a ...any) error   { return Errorf(ErrNotFound, format, a...) }
func duplicateError(format string, a ...any) error  { return Errorf(ErrDuplicate, format, a...) }
