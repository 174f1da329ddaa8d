// Package testutils holds small test-only helpers shared across the
// lexer/parser/emitter test suites, ported from the teacher's own
// package of the same name (see DESIGN.md).
package testutils

import (
	"runtime/debug"
	"testing"
)

// FatalUnless fails t with formatstring/args unless condition holds. It
// does not panic: it prints a stack dump and calls t.Fatalf so the
// failing line is pinned down in test output.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	t.Helper()
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
