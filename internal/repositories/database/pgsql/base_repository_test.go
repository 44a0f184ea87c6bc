package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}
	assert.ErrorIs(t, mapWriteError(dup, "user"), apperrors.ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503"}
	err := mapWriteError(fk, "expense")
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, fk)

	plain := errors.New("conn closed")
	assert.ErrorIs(t, mapWriteError(plain, "company"), plain)
}
