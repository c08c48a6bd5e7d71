package storage

import (
	"errors"
	"fmt"
)

// Storage error kinds. Match them with errors.Is.
var (
	ErrTableNotFound      = errors.New("table not found")
	ErrTableAlreadyExists = errors.New("table already exists")
	ErrSchemaMismatch     = errors.New("schema mismatch")
	ErrColumnNotFound     = errors.New("column not found")
	ErrValidation         = errors.New("value validation error")
	ErrConcurrency        = errors.New("concurrency error")
	ErrIO                 = errors.New("I/O error")
	ErrSerialization      = errors.New("serialization error")
)

// Error is returned by Engine implementations. Name is the table or column
// the error is about; Err is the underlying cause, if any.
type Error struct {
	Kind error
	Name string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrTableNotFound:
		return "Table not found: " + e.Name
	case ErrTableAlreadyExists:
		return "Table already exists: " + e.Name
	case ErrColumnNotFound:
		return "Column not found: " + e.Name
	case ErrValidation:
		return "Value validation error: " + e.cause()
	case ErrSchemaMismatch:
		return "Schema mismatch: " + e.cause()
	case ErrConcurrency:
		return "Concurrency error: " + e.cause()
	case ErrIO:
		return "I/O error: " + e.cause()
	case ErrSerialization:
		return "Serialization error: " + e.cause()
	default:
		return e.cause()
	}
}

func (e *Error) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TableNotFound returns an ErrTableNotFound error for name.
func TableNotFound(name string) error {
	return &Error{Kind: ErrTableNotFound, Name: name}
}

// TableAlreadyExists returns an ErrTableAlreadyExists error for name.
func TableAlreadyExists(name string) error {
	return &Error{Kind: ErrTableAlreadyExists, Name: name}
}

// ColumnNotFound returns an ErrColumnNotFound error for column.
func ColumnNotFound(column string) error {
	return &Error{Kind: ErrColumnNotFound, Name: column}
}

// Validation wraps a value or comparison error.
func Validation(err error) error {
	return &Error{Kind: ErrValidation, Err: err}
}

// Concurrency reports a lock that can no longer be acquired.
func Concurrency(format string, args ...any) error {
	return &Error{Kind: ErrConcurrency, Msg: fmt.Sprintf(format, args...)}
}
