package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking.
// The dialector translates errors when TranslateError is on; the message
// checks cover drivers and wrappers that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return containsAny(err, sqlStateUniqueViolation, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return containsAny(err, sqlStateForeignKeyViolation, "violates foreign key")
}

func isNotNullConstraintViolation(err error) bool {
	return containsAny(err, sqlStateNotNullViolation, "null value")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return containsAny(err, sqlStateCheckViolation, "violates check constraint")
}

func containsAny(err error, needles ...string) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(errMsg, needle) {
			return true
		}
	}

	return false
}
