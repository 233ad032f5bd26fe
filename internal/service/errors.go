package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by services. Handlers map these to HTTP status
// codes with errors.Is, so wrap them rather than comparing strings.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrDuplicateName     = errors.New("name already in use")
	ErrDuplicateCode     = errors.New("generated code already in use")
	ErrNotFound          = errors.New("record not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInternal wraps unexpected persistence failures. Handlers render it
	// as a 500 without exposing the underlying driver message.
	ErrInternal = errors.New("internal error")
)

// classifyConstraint turns a Postgres unique violation (23505) into the
// matching sentinel. Collisions on generated code columns are rare but
// possible when the month-period rolls over; callers surface them as 409s
// instead of opaque 500s.
func classifyConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "custom_id") ||
		strings.Contains(pgErr.ConstraintName, "code_prefix") {
		return ErrDuplicateCode
	}
	return ErrDuplicateName
}
