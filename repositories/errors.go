package repositories

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/checkmarble/marble-todos/models"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation
}

func IsForeignKeyViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.ForeignKeyViolation
}

// markConstraintErrors lets callers test driver errors against the model sentinels while
// keeping the original error chain.
func markConstraintErrors(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolationError(err):
		return errors.Mark(err, models.ConflictError)
	case IsForeignKeyViolationError(err):
		return errors.Mark(err, models.NotFoundError)
	default:
		return err
	}
}
