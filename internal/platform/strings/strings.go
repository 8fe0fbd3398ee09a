// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// NormPrefix normalizes a mount path to a single leading slash and no trailing slash
// blank input and "/" both yield "/"
func NormPrefix(s string) string {
	s = std.Trim(std.TrimSpace(s), "/")
	if s == "" {
		return "/"
	}
	return "/" + s
}

// Redact keeps the first n bytes of s and masks the rest, for logging secrets and keys
func Redact(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return std.Repeat("*", len(s))
	}
	return s[:n] + std.Repeat("*", len(s)-n)
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
