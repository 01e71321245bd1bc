package repository

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"net"
	"strings"

	apperrors "copro-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the repositories care about
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgQueryCanceled       = "57014"
	pgAdminShutdown       = "57P01"
)

// storeError classifies a gorm/pgx error raised during op.
// Transient infrastructure failures become StoreUnavailableError; record-not-found passes
// through untouched so callers can test it with errors.Is; everything else is wrapped with op.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if isTransient(err) {
		return apperrors.NewStoreUnavailableError(op, err)
	}
	return errors.Wrap(err, op)
}

func isTransient(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return true
	}
	if stderrors.Is(err, driver.ErrBadConn) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") {
			return true
		}
		switch pgErr.Code {
		case pgSerialization, pgDeadlock, pgLockNotAvailable, pgQueryCanceled, pgAdminShutdown:
			return true
		}
		return false
	}
	var connErr *pgconn.ConnectError
	if stderrors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err was caused by a unique index
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation || stderrors.Is(err, gorm.ErrDuplicatedKey)
}

// IsCheckViolation reports whether err was caused by a CHECK constraint
func IsCheckViolation(err error) bool {
	return pgCode(err) == pgCheckViolation || stderrors.Is(err, gorm.ErrCheckConstraintViolated)
}

// IsForeignKeyViolation reports whether err was caused by a missing referenced row
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation || stderrors.Is(err, gorm.ErrForeignKeyViolated)
}

// txError classifies errors returned from a transaction boundary. Errors produced by the
// callback are already typed and pass through unchanged.
func txError(op string, err error) error {
	if err == nil || apperrors.IsStoreUnavailable(err) {
		return err
	}
	if isTransient(err) {
		return apperrors.NewStoreUnavailableError(op, err)
	}
	return err
}
