package model

import "strings"

// FoldName reduces a driver name to its comparison form: trimmed, interior
// whitespace collapsed to single spaces, lower-cased. Aggregation keys stay
// case-sensitive; FoldName is for user-facing lookups only.
func FoldName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
