package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every operation failure wraps exactly one of them.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("state conflict")
	ErrInvalid   = errors.New("invalid argument")
	ErrTemporal  = errors.New("temporal precondition failed")
)

func NewError(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

var ErrOverflow = NewError(ErrInvalid, "arithmetic overflow")
