// SPDX-License-Identifier: MIT

package wl

import "github.com/pkg/errors"

// Sentinel errors. Returned errors wrap these with context; branch with
// errors.Is.
var (
	// ErrValidation reports unusable input or configuration: an empty batch,
	// a malformed element, a non-positive iteration count or a missing
	// base-kernel factory.
	ErrValidation = errors.New("wl: validation error")

	// ErrNotFitted is returned by Transform and Diagonal before any
	// successful Fit or FitTransform.
	ErrNotFitted = errors.New("wl: kernel is not fitted")

	// ErrNilFactory is a validation error for New(nil).
	ErrNilFactory = errors.Wrap(ErrValidation, "nil base-kernel factory")
)

// validationf wraps ErrValidation with a formatted message.
func validationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}
