package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gamereview/internal/apperrors"
)

// translateGormError maps database write errors onto the closed error
// taxonomy: duplicate keys and broken foreign keys become constraint
// violations, everything else is internal. Requires gorm.Config.TranslateError
// so driver-specific error codes arrive as gorm sentinel errors.
func translateGormError(err error, conflictMsg, internalMsg string) *apperrors.Error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Wrap(apperrors.ConstraintViolation, err, "%s", conflictMsg)
	default:
		return apperrors.Wrap(apperrors.Internal, err, "%s", internalMsg)
	}
}
