package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification. GORM translates driver errors when TranslateError
// is enabled; the message checks cover dialects and wrappers that do not.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return containsAny(err, "duplicate key", "unique constraint", "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return containsAny(err, "foreign key constraint", "23503")
}

func isNotNullConstraintViolation(err error) bool {
	return containsAny(err, "null value", "not null constraint", "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return containsAny(err, "check constraint", "23514")
}

func containsAny(err error, patterns ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
