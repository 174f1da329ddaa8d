package templates

import (
	"strings"
	"testing"
)

func TestCollectIncludesOnlyRequestedTags(t *testing.T) {
	out := Collect(map[string]bool{"try": true})
	if !strings.Contains(out, "class Try") {
		t.Fatal("expected Try template body in output")
	}
	if strings.Contains(out, "class ScopeManager") {
		t.Fatal("did not request scope_futures; should not be present")
	}
}

func TestCollectIsDeterministic(t *testing.T) {
	deps := map[string]bool{"bigint": true, "pattern": true, "try": true}
	a := Collect(deps)
	b := Collect(deps)
	if a != b {
		t.Fatal("Collect should be deterministic across calls for the same deps")
	}
}
