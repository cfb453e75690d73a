package commands

import (
	"errors"

	"gorm.io/gorm"

	"nannyadmin/internal/pkg/errs"
)

// wrapLostUpdate translates the repository's zero-rows update signal into an
// OperationFailedError. An aggregate that was loaded in this transaction but
// matched no row at update time was deleted by a concurrent writer.
func wrapLostUpdate(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewOperationFailedErrorWithCause(operation, err)
	}
	return err
}
