package sql

import (
	"errors"
	"fmt"
)

// Type error kinds. Match them with errors.Is.
var (
	ErrConversion      = errors.New("type conversion error")
	ErrUnsupportedType = errors.New("unsupported data type")
	ErrInvalidValue    = errors.New("invalid value")
	ErrComparison      = errors.New("value comparison error")
)

// TypeError is raised by the value model. Column is the column (or "row")
// the value was checked against and may be empty.
type TypeError struct {
	Kind   error
	Column string
	Msg    string
}

func newTypeError(kind error, column, msg string) *TypeError {
	return &TypeError{Kind: kind, Column: column, Msg: msg}
}

func (e *TypeError) Error() string {
	switch e.Kind {
	case ErrConversion:
		return "Type conversion error: " + e.Msg
	case ErrUnsupportedType:
		return "Unsupported data type: " + e.Msg
	case ErrInvalidValue:
		return fmt.Sprintf("Invalid value for type %s: %s", e.Column, e.Msg)
	case ErrComparison:
		return "Value comparison error: " + e.Msg
	default:
		return e.Msg
	}
}

func (e *TypeError) Is(target error) bool {
	return target == e.Kind
}

// Parse error kinds.
var (
	ErrSyntax             = errors.New("syntax error")
	ErrUnsupportedFeature = errors.New("unsupported feature")
	ErrInvalidToken       = errors.New("invalid token")
)

// ParseError is returned by Parse. Pos is the byte offset in the trimmed
// input where the problem was found.
type ParseError struct {
	Kind error
	Msg  string
	Pos  int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnsupportedFeature:
		return "Unsupported SQL feature: " + e.Msg
	case ErrInvalidToken:
		return "Invalid token: " + e.Msg
	default:
		return "SQL syntax error: " + e.Msg
	}
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}
