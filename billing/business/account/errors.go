package account

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	phoneConstraint = "accounts_phone_number_key"
	meterConstraint = "accounts_meter_id_key"
)

// uniqueViolation returns the violated constraint name, or "" when err is not a unique violation
func uniqueViolation(err error) string {
	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return e.ConstraintName
	}
	return ""
}
