package bencode

import (
	"errors"
	"fmt"
)

// One sentinel per decode failure cause, so callers can report precisely what was
// wrong with the input rather than getting a single generic parse error.
var (
	ErrTruncated       = errors.New("truncated input")
	ErrMalformedInt    = errors.New("malformed integer")
	ErrMalformedLength = errors.New("malformed length prefix")
	ErrUnterminated    = errors.New("unterminated container")
	ErrTrailingData    = errors.New("trailing data")
)

type DecodeError struct {
	Kind   error
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d - %s", e.Kind, e.Offset, e.Detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}
