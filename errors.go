package bigint

import "errors"

// Error surface (spec.md §7). Every failure this package can report at
// its boundary is one of these four sentinels; arithmetic on well-formed
// inputs never returns an error.
var (
	// ErrInvalidDigit is returned when a hex string contains a character
	// outside [0-9a-fA-F].
	ErrInvalidDigit = errors.New("bigint: invalid hex digit")

	// ErrInvalidRange is returned by SetRange when hi < lo or hi exceeds
	// the source's digit count.
	ErrInvalidRange = errors.New("bigint: invalid digit range")

	// ErrDivisionDomain is returned by the division routines when the
	// divisor is zero or either operand is negative.
	ErrDivisionDomain = errors.New("bigint: division requires a positive divisor and non-negative dividend")

	// ErrReductionDomain is returned by Barrett reduction when the
	// dividend's digit count exceeds 2*digit_count(modulus).
	ErrReductionDomain = errors.New("bigint: dividend too wide for Barrett reduction")
)
