// File: locate.go
// Title: Forward and Reverse Substring Search
// Description: Implements position search over escaped needles. Positions are
//              character indexes returned as strings so callers can embed
//              them directly into rendered output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// NotFoundLast is returned by LastPositionOf when the needle does not occur.
// Adding one to it yields 0, the start of the haystack.
const NotFoundLast = "-1"

// PositionOf returns the character index of the first occurrence of needle
// in haystack at or after offset, or "" if there is none.
func PositionOf(haystack, needle string, offset int) string {
	return DefaultLimits().PositionOf(haystack, needle, offset)
}

// LastPositionOf returns the character index of the last occurrence of
// needle in haystack, or NotFoundLast if there is none.
func LastPositionOf(haystack, needle string) string {
	return DefaultLimits().LastPositionOf(haystack, needle)
}

// PositionOf is PositionOf bounded by l.
//
// The needle is escape-decoded; an empty needle searches for a single space.
// An offset beyond the end clamps to the end. A negative offset counts back
// from the end and clamps to the start.
func (l Limits) PositionOf(haystack, needle string, offset int) string {
	needle = l.needle(needle)

	start := runeByteOffset(haystack, clampOffset(offset, utf8.RuneCountInString(haystack)))
	idx := strings.Index(haystack[start:], needle)
	if idx < 0 {
		return ""
	}
	return strconv.Itoa(utf8.RuneCountInString(haystack[:start+idx]))
}

// LastPositionOf is LastPositionOf bounded by l.
func (l Limits) LastPositionOf(haystack, needle string) string {
	needle = l.needle(needle)

	idx := strings.LastIndex(haystack, needle)
	if idx < 0 {
		return NotFoundLast
	}
	return strconv.Itoa(utf8.RuneCountInString(haystack[:idx]))
}

func clampOffset(offset, length int) int {
	if offset < 0 {
		offset += length
		if offset < 0 {
			return 0
		}
	}
	if offset > length {
		return length
	}
	return offset
}

// runeByteOffset returns the byte index at which the n-th character of s
// starts, or len(s) if s has fewer characters.
func runeByteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
