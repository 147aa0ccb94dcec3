package eval

import "fmt"

// ErrorType classifies evaluation failures.
type ErrorType int

const (
	// Malformed means the text is not a valid expression in the restricted
	// grammar: unbalanced parentheses, a dangling operator, an unknown token.
	Malformed ErrorType = iota
	// NonFinite means evaluation produced an infinite or undefined result,
	// e.g. division by zero.
	NonFinite
)

// Error is the typed failure returned by Evaluate.
type Error struct {
	Type    ErrorType
	Message string
	Pos     int    // byte offset into the normalized expression text
	Token   string // offending token, when known
}

func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s at %d: %q", e.Message, e.Pos, e.Token)
	}
	return e.Message
}

// IsMalformed reports whether err is a Malformed evaluation error.
func IsMalformed(err error) bool {
	ee, ok := err.(*Error)
	return ok && ee.Type == Malformed
}

// IsNonFinite reports whether err is a NonFinite evaluation error.
func IsNonFinite(err error) bool {
	ee, ok := err.(*Error)
	return ok && ee.Type == NonFinite
}

func malformed(pos int, token, format string, args ...any) *Error {
	return &Error{Type: Malformed, Message: fmt.Sprintf(format, args...), Pos: pos, Token: token}
}
