package services

import (
	"errors"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/repository"
)

// Error kinds. Handlers map each kind to one HTTP status.
var (
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
	ErrQuotaExceeded   = errors.New("post quota exceeded")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = repository.ErrNotFound
)

// Error attaches a client-facing message to one of the error kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
