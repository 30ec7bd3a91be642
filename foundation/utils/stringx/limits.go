// File: limits.go
// Title: Input and Output Bounds for Escaped String Functions
// Description: Defines the Limits type that bounds needle length, pad target
//              and result length for the escaped string functions. Oversized
//              input is truncated or clamped, never rejected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with default bounds

package stringx

import "unicode/utf8"

// Default bounds, in characters.
const (
	DefaultMaxNeedleLength = 30
	DefaultMaxPadLength    = 500
	DefaultMaxResultLength = 1000
)

// Limits bounds the escaped string functions. A zero or negative field
// disables the corresponding bound.
type Limits struct {
	// MaxNeedleLength caps needles, delimiters and replace sources.
	MaxNeedleLength int
	// MaxPadLength caps the target length accepted by Pad.
	MaxPadLength int
	// MaxResultLength caps the length of Replace results.
	MaxResultLength int
}

// DefaultLimits returns the bounds used by the package-level functions.
func DefaultLimits() Limits {
	return Limits{
		MaxNeedleLength: DefaultMaxNeedleLength,
		MaxPadLength:    DefaultMaxPadLength,
		MaxResultLength: DefaultMaxResultLength,
	}
}

// Unbounded reports whether no bound is active.
func (l Limits) Unbounded() bool {
	return l.MaxNeedleLength <= 0 && l.MaxPadLength <= 0 && l.MaxResultLength <= 0
}

// needle decodes a raw needle, substitutes a single space for an empty one
// and truncates it to MaxNeedleLength.
func (l Limits) needle(raw string) string {
	n := Unescape(raw)
	if n == "" {
		return " "
	}
	return clip(n, l.MaxNeedleLength)
}

func (l Limits) padTarget(length int) int {
	if l.MaxPadLength > 0 && length > l.MaxPadLength {
		return l.MaxPadLength
	}
	return length
}

func (l Limits) result(s string) string {
	return clip(s, l.MaxResultLength)
}

// clip truncates s to max characters; max <= 0 leaves s untouched. Bytes
// that are not valid UTF-8 count as one character each and are preserved.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max || utf8.RuneCountInString(s) <= max {
		return s
	}
	return s[:runeByteOffset(s, max)]
}
