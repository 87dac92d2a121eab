package downcast

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by every *MismatchError.
var ErrTypeMismatch = errors.New("type mismatch")

// MismatchError reports a narrowing whose dynamic type did not match.
type MismatchError struct {
	Want string // e.g. "*downcast.Son"
	Got  string // "<nil>" for a nil interface
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrTypeMismatch, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}
