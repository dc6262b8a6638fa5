package vibrant

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is the sentinel every failure from this package
// unwraps to. Callers that do not care why a color was rejected can
// test for it alone; the concrete error types carry the detail.
var ErrInvalidColor = errors.New("invalid color")

// ParseError reports color text that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidColor
}

func newParseError(input []byte, reason string) error {
	return &ParseError{Input: string(input), Reason: reason}
}

// ArgumentError reports an invalid direct-conversion call: a nil
// receiver or a non-finite coordinate.
type ArgumentError struct {
	Func   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("vibrant.%s: %s", e.Func, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidColor
}
