package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrDuplicateTutee = errors.New("operation would result in duplicate tutees")
	ErrTuteeNotFound  = errors.New("tutee not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindConstraint    ErrorKind = "constraint"
	KindIllegalValue  ErrorKind = "illegal_value"
	KindDuplicate     ErrorKind = "duplicate"
	KindCommand       ErrorKind = "command"
	KindParse         ErrorKind = "parse"
	KindIO            ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DomainError is a user-facing failure. Error() is exactly Msg when there is
// no cause, so callers can compare it with the published message constants.
type DomainError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil && e.Msg == "" {
		return e.Cause.Error()
	}
	return e.Msg
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func constraint(msg string) error {
	return &DomainError{Kind: KindConstraint, Msg: msg}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	var de *DomainError
	if errors.As(err, &de) && de.Kind == kind {
		return true
	}
	return false
}
