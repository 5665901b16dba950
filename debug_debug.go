//go:build debug

package bigint

import "github.com/golang/glog"

// debugAbortOnInvalidDigit aborts the process on a malformed hex digit
// when this module is built with the "debug" tag — spec.md §7 permits
// (but does not require) this for debug builds, mirroring the original
// source's unconditional exit(1) in bigint_set_by_hex_string. Release
// builds (debug.go) never take this path; SetHex always also returns
// ErrInvalidDigit so callers that don't build with "debug" get a normal
// error.
func debugAbortOnInvalidDigit(s string, idx int, ch byte) {
	glog.Fatalf("bigint: invalid hex digit %q at position %d in %q", ch, idx, s)
}
