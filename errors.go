package splinefit

import "errors"

// Error kinds shared by the sub-packages. Package-specific errors wrap one of
// these, so clients may test with errors.Is against either.
var (
	// ErrInvalidArgument indicates a malformed argument, e.g. an infinite slope,
	// a degenerate tangent or an access off the matrix diagonals.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSizeMismatch indicates operands of incompatible length.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrNotFitted indicates evaluation of a spline before a successful fit.
	ErrNotFitted = errors.New("spline has not been fitted")
	// ErrOutOfOrder indicates a query value preceding the evaluation cursor.
	ErrOutOfOrder = errors.New("query values must be sorted in ascending order")
)
