package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	domainerrors "sparkier.backend/internal/domain/errors"
)

// isUniqueViolation detects write-time uniqueness failures across the
// drivers we run on (postgres in production, sqlite in tests).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// translateError maps driver errors to domain errors, passing everything
// else through unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case isUniqueViolation(err):
		return domainerrors.ErrAlreadyExists
	default:
		return err
	}
}

// likePattern builds a case-insensitive LIKE pattern for a search term
func likePattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
