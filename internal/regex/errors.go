package regex

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedClass = errors.New("unterminated character class")
	ErrDanglingEscape    = errors.New("dangling escape at end of pattern")
	ErrUnbalancedGroup   = errors.New("unbalanced parenthesis")
	ErrEmptyClass        = errors.New("empty character class")
	ErrMissingOperand    = errors.New("repetition operator without operand")
	ErrEmptyAlternative  = errors.New("empty alternative")
	ErrStrayBracket      = errors.New("unescaped ']' outside character class")
	ErrInvalidRange      = errors.New("invalid character class range")
	ErrReservedByte      = errors.New("byte 0 is reserved")
)

// Error reports where in a pattern parsing failed.
type Error struct {
	Pattern string
	Pos     int // byte offset into Pattern
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("regex %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
