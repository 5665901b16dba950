//go:build !debug

package bigint

// debugAbortOnInvalidDigit is a no-op in production builds: hex parsing
// must only return ErrInvalidDigit, never abort the host process
// (spec.md §7).
func debugAbortOnInvalidDigit(s string, idx int, ch byte) {}
