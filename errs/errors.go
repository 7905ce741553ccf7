// Package errs defines the sentinel errors shared across the kinetics
// analyzer packages.
//
// Callers wrap these sentinels with fmt.Errorf("%w: detail", ...) so that
// errors.Is matching works while the message still carries the precise
// diagnostic (offending lengths, offending value, solver reason).
package errs

import "errors"

var (
	// ErrLengthMismatch indicates the substrate and velocity sequences have
	// different lengths. The wrapped message reports both observed lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNonNumericValue indicates an input element could not be converted
	// to a finite floating-point number. The wrapped message reports the
	// column, index and offending value.
	ErrNonNumericValue = errors.New("non-numeric value")

	// ErrFitConvergence indicates the nonlinear optimizer failed: singular
	// normal equations, maximum iterations exceeded, or insufficient
	// distinct observations.
	ErrFitConvergence = errors.New("fit did not converge")

	// ErrDegenerateTransform indicates the reciprocal-linearization branch
	// is undefined: fewer than 2 usable observations after zero-substrate
	// exclusion, or a back-transform that divides by a zero intercept.
	ErrDegenerateTransform = errors.New("degenerate reciprocal transform")
)
