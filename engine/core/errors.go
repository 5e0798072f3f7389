package core

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrComponentCount   = errors.New("wrong number of components")
	ErrDegenerateVector = errors.New("degenerate vector")
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrUninitialized    = errors.New("uninitialized value")
)

// Violation reports a broken caller precondition. The diagnostic is logged and
// the current goroutine panics with an error wrapping kind, so a recovering
// caller can still match it with errors.Is.
func Violation(kind error, format string, args ...interface{}) {
	err := fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
	LogError("precondition violated: %v", err)
	panic(err)
}
