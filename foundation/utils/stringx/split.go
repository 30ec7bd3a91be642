// File: split.go
// Title: Delimiter Split with Positional Selection
// Description: Implements splitting on an escape-decoded delimiter and
//              selecting a single piece by zero-based position, counting
//              from the back for negative positions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import "strings"

// Split splits value on delimiter and returns the piece at position, or ""
// when position is out of range. Position -1 selects the last piece.
func Split(value, delimiter string, position int) string {
	return DefaultLimits().Split(value, delimiter, position)
}

// SplitN is Split with a piece limit following explode semantics: a positive
// limit caps the number of pieces and the last piece keeps the remainder,
// zero is treated as one, and a negative limit drops that many pieces from
// the end.
func SplitN(value, delimiter string, position, limit int) string {
	return DefaultLimits().SplitN(value, delimiter, position, limit)
}

// Split is Split bounded by l.
func (l Limits) Split(value, delimiter string, position int) string {
	return pick(strings.Split(value, l.needle(delimiter)), position)
}

// SplitN is SplitN bounded by l.
func (l Limits) SplitN(value, delimiter string, position, limit int) string {
	return pick(Pieces(value, l.needle(delimiter), limit), position)
}

// Pieces splits value on an already decoded, non-empty delimiter using
// explode limit semantics.
func Pieces(value, delimiter string, limit int) []string {
	switch {
	case limit > 0:
		return strings.SplitN(value, delimiter, limit)
	case limit == 0:
		return []string{value}
	default:
		all := strings.Split(value, delimiter)
		keep := len(all) + limit
		if keep <= 0 {
			return nil
		}
		return all[:keep]
	}
}

func pick(pieces []string, position int) string {
	if position < 0 {
		position += len(pieces)
	}
	if position < 0 || position >= len(pieces) {
		return ""
	}
	return pieces[position]
}
