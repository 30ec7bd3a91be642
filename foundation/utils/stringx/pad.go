// File: pad.go
// Title: Padding with Repeating Fill Strings
// Description: Implements left, right and center padding to a target length
//              using an escape-decoded fill string that may span several
//              characters.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Return value unchanged for targets at or below its length

package stringx

import (
	"strings"
	"unicode/utf8"
)

// Direction selects where Pad adds its fill.
type Direction int

const (
	// PadLeft prepends the fill. It is the default direction.
	PadLeft Direction = iota
	// PadRight appends the fill.
	PadRight
	// PadCenter splits the fill between both sides, the smaller half left.
	PadCenter
)

// String returns the direction name as accepted by ParseDirection.
func (d Direction) String() string {
	switch d {
	case PadRight:
		return "right"
	case PadCenter:
		return "center"
	default:
		return "left"
	}
}

// ParseDirection maps "left", "right" and "center" to a Direction. Anything
// else, including the empty string, yields PadLeft.
func ParseDirection(s string) Direction {
	switch s {
	case "right":
		return PadRight
	case "center":
		return PadCenter
	default:
		return PadLeft
	}
}

// Pad pads value to length characters with fill in the given direction.
func Pad(value string, length int, fill string, dir Direction) string {
	return DefaultLimits().Pad(value, length, fill, dir)
}

// Pad is Pad bounded by l.
//
// The fill is escape-decoded once; an empty fill pads with spaces. length is
// clamped to MaxPadLength and a value already at or beyond it is returned
// unchanged. Center padding first left-pads value by half the deficit
// (rounded down) and then right-pads the intermediate result to length, so
// odd deficits put the extra character on the right.
func (l Limits) Pad(value string, length int, fill string, dir Direction) string {
	fill = Unescape(fill)
	if fill == "" {
		fill = " "
	}
	length = l.padTarget(length)

	switch dir {
	case PadRight:
		return pad(value, length, fill, false)
	case PadCenter:
		n := utf8.RuneCountInString(value)
		if length <= n {
			return value
		}
		amt := (length - n) / 2
		return pad(pad(value, min(n+amt, length), fill, true), length, fill, false)
	default:
		return pad(value, length, fill, true)
	}
}

// pad adds fill to one side of value until it is length characters long.
// fill must be non-empty and already decoded.
func pad(value string, length int, fill string, left bool) string {
	n := utf8.RuneCountInString(value)
	if length <= n {
		return value
	}
	deficit := length - n

	padding := repeatTo(fill, deficit)
	if left {
		return padding + value
	}
	return value + padding
}

// repeatTo repeats fill and cuts the result to exactly n characters.
func repeatTo(fill string, n int) string {
	fillLen := utf8.RuneCountInString(fill)
	if fillLen == 0 || n <= 0 {
		return ""
	}
	repeated := strings.Repeat(fill, (n+fillLen-1)/fillLen)
	return clip(repeated, n)
}
