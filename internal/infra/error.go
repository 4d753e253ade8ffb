package infra

import (
	"context"
	"errors"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps err with msg. Without an explicit kind the kind is
// derived from the PostgreSQL error code, falling back to KindDBFailure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	var wrapped error = RepositoryError{Kind: k, msg: msg, err: err}
	switch k {
	case KindNotFound:
		wrapped = errs.Mark(wrapped, errs.ErrNotFound)
	case KindLockTimeout:
		wrapped = errs.Mark(wrapped, errs.ErrTransient)
	case KindDuplicateKey, KindForeignKeyViolated, KindCheckViolated:
		wrapped = errs.Mark(wrapped, errs.ErrIntegrity)
	}
	return wrapped
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// PgCode returns the SQLSTATE carried by err, or "".
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindLockTimeout
	}
	switch PgCode(err) {
	case PgUniqueViolation:
		return KindDuplicateKey
	case PgForeignKeyViolation:
		return KindForeignKeyViolated
	case PgCheckViolation:
		return KindCheckViolated
	case PgLockNotAvailable, PgQueryCanceled:
		return KindLockTimeout
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindLockTimeout        RepositoryErrorKind = "LOCK_TIMEOUT"
)

// SQLSTATE codes the ledger reacts to.
const (
	PgSerializationFailure = "40001"
	PgDeadlockDetected     = "40P01"
	PgLockNotAvailable     = "55P03"
	PgQueryCanceled        = "57014"
	PgUniqueViolation      = "23505"
	PgForeignKeyViolation  = "23503"
	PgCheckViolation       = "23514"
)
