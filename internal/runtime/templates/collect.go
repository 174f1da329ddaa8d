package templates

import "strings"

// tagOrder fixes a deterministic emission order for the dependency
// templates, independent of Go's unordered map iteration — so two
// compiles of the same program produce byte-identical runtime headers.
var tagOrder = []string{"scope_futures", "functional", "pattern", "destructure", "try", "bigint"}

// Collect renders the standard-library includes plus every template
// named in deps, in a fixed order, for splicing ahead of an
// internal/emitter.Unit's Source.
func Collect(deps map[string]bool) string {
	var b strings.Builder
	for _, h := range Headers {
		b.WriteString("#include " + h + "\n")
	}
	b.WriteString("\n")
	for _, tag := range tagOrder {
		if deps[tag] {
			b.WriteString(ByTag[tag])
		}
	}
	return b.String()
}
