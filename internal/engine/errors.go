package engine

import "errors"

// Execution error kinds. Match them with errors.Is.
var (
	ErrStorage              = errors.New("storage error")
	ErrExecutionFailed      = errors.New("execution failed")
	ErrColumnNotFound       = errors.New("column not found")
	ErrInvalidValue         = errors.New("invalid value")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// ExecError is returned by DBEngine. Err, when set, is the storage or type
// error that caused it and is reachable with errors.As.
type ExecError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *ExecError) Error() string {
	switch e.Kind {
	case ErrStorage:
		return "Storage error: " + e.detail()
	case ErrColumnNotFound:
		return "Column not found: " + e.detail()
	case ErrInvalidValue:
		return "Invalid value: " + e.detail()
	case ErrUnsupportedOperation:
		return "Unsupported operation: " + e.detail()
	default:
		return "Execution error: " + e.detail()
	}
}

func (e *ExecError) detail() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *ExecError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func storageError(err error) error {
	return &ExecError{Kind: ErrStorage, Err: err}
}

func executionFailed(msg string) error {
	return &ExecError{Kind: ErrExecutionFailed, Msg: msg}
}

func columnNotFound(name string) error {
	return &ExecError{Kind: ErrColumnNotFound, Msg: name}
}

var errNotStarted = executionFailed("engine not started")
