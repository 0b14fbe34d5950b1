package textutil

import "unicode/utf8"

// Truncate returns at most max characters of s, never splitting a UTF-8
// sequence.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// Len reports the number of characters in s.
func Len(s string) int { return utf8.RuneCountInString(s) }
