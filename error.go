package cli

import "fmt"

// ParseError is returned when a raw argument stream cannot be consumed: an
// empty token list at a command level, or a malformed or unknown option
// token. It aborts the evaluation that raised it.
type ParseError struct {
	msg string
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string { return e.msg }

// ValidateError is returned when a command's declared shape is inconsistent,
// or when a completed evaluation violates the describing command's arity or
// uniqueness expectations. It wraps the underlying violation(s) and supports
// [errors.Is] and [errors.As] through Unwrap.
type ValidateError struct {
	err error
}

func newValidateError(err error) *ValidateError {
	return &ValidateError{err: err}
}

func (e *ValidateError) Error() string {
	if e == nil || e.err == nil {
		return "<nil>"
	}
	return e.err.Error()
}

func (e *ValidateError) Unwrap() error { return e.err }
