package common

import "cmp"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
// Used to fall back to package defaults when an option was left unset.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// AtLeast returns v, or lo when v is below lo.
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//
// Returns:
//   - T: max(v, lo)
func AtLeast[T cmp.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}
