package postgres

import (
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	sqlStateNumericOutOfRange   = "22003"
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

// uniqueConstraintErrors maps unique index names from the migrations to repository sentinels.
var uniqueConstraintErrors = map[string]error{
	"accounts_email_key":       repository.ErrDuplicateEmail,
	"accounts_mobile_key":      repository.ErrDuplicateMobile,
	"accounts_device_id_key":   repository.ErrDuplicateDevice,
	"accounts_external_id_key": repository.ErrDuplicateExternalID,
	"categories_name_key":      repository.ErrDuplicateCategoryName,
	"categories_slug_key":      repository.ErrDuplicateCategorySlug,
	"products_slug_key":        repository.ErrDuplicateProductSlug,
	"products_vendor_sku_key":  repository.ErrDuplicateSKU,
	"products_vendor_name_key": repository.ErrDuplicateProductName,
}

func pgError(err error) (*pgconn.PgError, bool) {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return pgErr, ok
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == code
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateNotNullViolation)
}

func isNumericOutOfRange(err error) bool {
	return hasSQLState(err, sqlStateNumericOutOfRange)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, sqlStateCheckViolation)
}

// uniqueViolationError names the violated unique constraint. Translated gorm errors carry no
// constraint name and fall back to repository.ErrDuplicate.
func uniqueViolationError(err error) error {
	if pgErr, ok := pgError(err); ok {
		if mapped, found := uniqueConstraintErrors[pgErr.ConstraintName]; found {
			return mapped
		}
	}

	return repository.ErrDuplicate
}
