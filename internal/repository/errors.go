package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrLeadNotFound is returned when no lead matches the identifier.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrReviewNotFound is returned when no review matches the identifier.
	ErrReviewNotFound = errors.New("review not found")
)

// ConstraintError reports a stored-schema constraint rejected by the database.
type ConstraintError struct {
	Constraint string
	Message    string
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Constraint)
}

// PostgreSQL error codes surfaced as constraint violations.
const (
	pgCodeStringTooLong  = "22001"
	pgCodeNotNull        = "23502"
	pgCodeCheckViolation = "23514"
)

// translatePGError maps schema violations to ConstraintError and wraps everything else.
func translatePGError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeCheckViolation:
			return &ConstraintError{Constraint: pgErr.ConstraintName, Message: constraintMessage(pgErr.ConstraintName)}
		case pgCodeNotNull:
			return &ConstraintError{Constraint: pgErr.ColumnName, Message: fmt.Sprintf("%s is required", pgErr.ColumnName)}
		case pgCodeStringTooLong:
			return &ConstraintError{Message: "value exceeds the maximum allowed length"}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// constraintMessage turns names such as leads_email_format or reviews_rating_range
// into a short field message.
func constraintMessage(name string) string {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 2 {
		return "stored value violates a schema constraint"
	}
	field := parts[1]
	if len(parts) == 3 {
		return fmt.Sprintf("%s failed %s check", field, strings.ReplaceAll(parts[2], "_", " "))
	}
	return fmt.Sprintf("%s is invalid", field)
}
