package sqltext

import "strings"

// Escape doubles single quotes in a string for embedding in a SQL literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote wraps a string in single quotes with proper escaping.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}
