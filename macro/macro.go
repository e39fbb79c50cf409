// Package macro detects deferred configuration values.
//
// A deferred value contains a ${...} placeholder that the host
// pipeline substitutes at run time. Validation and property resolution
// must not read through a deferred value as if it were concrete.
package macro

import "strings"

// IsDeferred reports whether v still contains an unresolved ${...}
// placeholder. A lone "${" with no closing brace is treated as a
// literal value, not a placeholder.
func IsDeferred(v string) bool {
	start := strings.Index(v, "${")
	if start == -1 {
		return false
	}
	return strings.Contains(v[start+2:], "}")
}
