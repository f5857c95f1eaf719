package infra

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"netcafe-booking/internal/pkg/errs"
)

type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindExclusion     ErrorKind = "exclusion"
	KindForeignKey    ErrorKind = "foreign_key"
	KindSerialization ErrorKind = "serialization"
	KindUnknown       ErrorKind = "unknown"
)

// RepositoryError wraps a driver error with a coarse kind the usecase layer
// can branch on without importing pgx.
type RepositoryError struct {
	kind ErrorKind
	msg  string
	err  error
}

func (e *RepositoryError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *RepositoryError) Unwrap() error {
	return e.err
}

func (e *RepositoryError) Kind() ErrorKind {
	return e.kind
}

func NewRepositoryError(kind ErrorKind, msg string, err error) *RepositoryError {
	return &RepositoryError{kind: kind, msg: msg, err: errs.Wrap(err, msg)}
}

// IsKind reports whether err carries a RepositoryError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.kind == kind
	}
	return false
}

// WrapDBError classifies a pgx error into a RepositoryError.
func WrapDBError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewRepositoryError(KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return NewRepositoryError(KindConflict, msg, err)
		case "23P01":
			return NewRepositoryError(KindExclusion, msg, err)
		case "23503":
			return NewRepositoryError(KindForeignKey, msg, err)
		case "40001", "40P01":
			return NewRepositoryError(KindSerialization, msg, err)
		}
	}
	return NewRepositoryError(KindUnknown, msg, err)
}

// IsRetryable reports whether the transaction may be retried as a whole.
func IsRetryable(err error) bool {
	return IsKind(err, KindSerialization)
}
