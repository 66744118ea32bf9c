package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes we translate into business errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

// IsIntegrityViolation reports whether err is any constraint or input-shape
// failure that should surface as a bad request rather than a server error.
func IsIntegrityViolation(err error) bool {
	switch pgErrCode(err) {
	case codeUniqueViolation, codeForeignKeyViolation, codeNotNullViolation, codeStringTooLong:
		return true
	}
	return false
}
