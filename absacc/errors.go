package absacc

import (
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrIncorrectTypeURL is returned when an envelope is unpacked into a
	// message type that does not match its type URL.
	ErrIncorrectTypeURL = errors.New("incorrect type url")

	// ErrUnknownTypeURL is returned by a Registry when no decoder has been
	// registered for a type URL.
	ErrUnknownTypeURL = errors.New("unknown type url")
)

// DecodeError indicates the wire bytes of a message could not be decoded.
//
// Field is zero when the failure could not be attributed to a field (for
// example, a truncated tag).
type DecodeError struct {
	Message string
	Field   protowire.Number
	Err     error
}

func newDecodeError(msg string, field protowire.Number, err error) *DecodeError {
	return &DecodeError{
		Message: msg,
		Field:   field,
		Err:     err,
	}
}

func (e *DecodeError) Error() string {
	s := fmt.Sprintf("failed to decode %s", e.Message)
	if e.Field > 0 {
		s = fmt.Sprintf("%s field %d", s, e.Field)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}

	return s
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
