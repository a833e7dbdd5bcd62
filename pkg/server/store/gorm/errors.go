package gorm

import (
	"errors"

	"github.com/jackc/pgconn"

	"github.com/labelforge/labelforge/pkg/server/store"
)

// PostgreSQL SQLSTATE codes the stores care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError converts driver-level constraint failures to the store
// sentinels. Other errors pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return store.ErrUniqueViolation
		case pgForeignKeyViolation:
			return store.ErrForeignKeyViolation
		}
	}

	return err
}
