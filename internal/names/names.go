// Package names resolves CSS color keywords to sRGB bytes.
package names

import "strings"

// Name length bounds; "red" and "lightgoldenrodyellow" set them. Probes
// outside the bounds skip the map entirely.
const (
	minNameLen = 3
	maxNameLen = 20
)

// Lookup resolves a color keyword, case-insensitively. ok is false for
// unknown names; that is the normal miss outcome, not an error.
func Lookup(name string) (r, g, b, a uint8, ok bool) {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return 0, 0, 0, 0, false
	}
	c, ok := table[strings.ToLower(name)]
	if !ok {
		return 0, 0, 0, 0, false
	}
	return c[0], c[1], c[2], c[3], true
}

// Count reports how many keywords the table holds.
func Count() int {
	return len(table)
}
