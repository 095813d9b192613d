package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before any write. Controllers map it to
// a 400 response; everything else is a storage failure.
var ErrValidation = errors.New("invalid input")

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err originates from input validation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
