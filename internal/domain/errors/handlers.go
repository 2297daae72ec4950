package errors

import (
	"storefront/internal/errors"
)

// AsAppError extracts an AppError from anywhere in err's wrap chain. The
// delivery layer uses it to surface guard failures as blocked actions.
func AsAppError(err error, target *AppError) bool {
	return errors.As(err, target)
}
