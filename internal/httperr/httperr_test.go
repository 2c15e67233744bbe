package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("slot_unavailable")

	assert.True(t, IsBusiness(err, "slot_unavailable"))
	assert.False(t, IsBusiness(err, "forbidden"))
	assert.Equal(t, "slot_unavailable", BusinessCode(err))

	wrapped := fmt.Errorf("create: %w", err)
	assert.True(t, IsBusiness(wrapped, "slot_unavailable"))

	assert.Equal(t, "", BusinessCode(errors.New("boom")))
	assert.False(t, IsBusiness(nil, "slot_unavailable"))
}

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uniq_appointments_active_slot",
	}

	assert.True(t, IsUniqueViolation(uniqueErr, "uniq_appointments_active_slot"))
	assert.True(t, IsUniqueViolation(uniqueErr, ""), "empty constraint matches any unique violation")
	assert.False(t, IsUniqueViolation(uniqueErr, "users_email_key"))

	wrapped := fmt.Errorf("insert: %w", uniqueErr)
	assert.True(t, IsUniqueViolation(wrapped, "uniq_appointments_active_slot"))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
	assert.False(t, IsUniqueViolation(nil, ""))
}
