// File: replace.go
// Title: Bounded Substring Replacement
// Description: Implements left-to-right, non-overlapping replacement of an
//              escape-decoded source string with an escape-decoded target,
//              optionally capped to a number of replacements.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Bound the input instead of skipping replacements

package stringx

import (
	"strings"
	"unicode/utf8"
)

// Replace replaces occurrences of from in value with to. A negative limit
// replaces every occurrence; otherwise at most limit replacements are made.
func Replace(value, from, to string, limit int) string {
	return DefaultLimits().Replace(value, from, to, limit)
}

// Replace is Replace bounded by l.
//
// Both from and to are escape-decoded; an empty from is replaced by a single
// space. The result is truncated to MaxResultLength. When to is at least as
// long as from, only the first MaxResultLength+len(from)-1 characters of value
// can reach the result, so the rest is cut before replacing, and when to is
// longer the replacement count is capped at the number of copies of to that
// fit in the bound.
func (l Limits) Replace(value, from, to string, limit int) string {
	from = l.needle(from)
	to = Unescape(to)

	n := limit
	if bound := l.MaxResultLength; bound > 0 {
		fromLen := utf8.RuneCountInString(from)
		toLen := utf8.RuneCountInString(to)
		if toLen >= fromLen {
			value = clip(value, bound+fromLen-1)
		}
		if toLen > fromLen {
			if room := bound/toLen + 1; n < 0 || n > room {
				n = room
			}
		}
	}

	return l.result(strings.Replace(value, from, to, n))
}
