package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const pgUniqueViolation = "23505"

// localStoreBusinessNumberKey is the primary key constraint on local_store.store_business_number.
const localStoreBusinessNumberKey = "local_store_pkey"

// isUniqueConstraintViolation reports whether err is a unique violation of the named constraint.
// It needs the raw driver error: gorm's translated ErrDuplicatedKey drops the constraint name,
// and TranslateError is never enabled on our connections.
func isUniqueConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}
