package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies user-correctable submission failures.
type ErrorKind string

const (
	KindMissingField  ErrorKind = "MissingField"
	KindInvalidFormat ErrorKind = "InvalidFormat"
	KindOutOfRange    ErrorKind = "OutOfRange"
	KindInvalidStatus ErrorKind = "InvalidStatus"
)

// SubmissionError is returned when caller input fails submission checks.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	Fields  []string
}

func (e *SubmissionError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// Details lists one message per offending field.
func (e *SubmissionError) Details() []string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		switch e.Kind {
		case KindMissingField:
			out = append(out, field+" is required")
		case KindOutOfRange:
			out = append(out, field+" is out of range")
		default:
			out = append(out, field+" is invalid")
		}
	}
	return out
}

// ErrInvalidStatus rejects review statuses outside the moderation set.
var ErrInvalidStatus = &SubmissionError{
	Kind:    KindInvalidStatus,
	Message: "Invalid status. Must be pending, approved, or rejected",
	Fields:  []string{"status"},
}

// SchemaError aggregates every field violation found before persistence.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "Validation failed"
}

// ErrInvalidCredentials is returned for any failed admin login.
var ErrInvalidCredentials = errors.New("invalid credentials")
