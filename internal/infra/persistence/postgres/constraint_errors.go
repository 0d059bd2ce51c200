package postgres

import (
	"strings"

	"lostfound/internal/errors"

	"gorm.io/gorm"
)

// isNotNullConstraintViolation matches PostgreSQL not_null_violation (23502) by message,
// since gorm has no translated error for it.
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
