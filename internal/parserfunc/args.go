// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: Argument normalization and integer coercion
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package parserfunc

import (
	"math"
	"strconv"
	"strings"
)

// normalize maps raw arguments onto the parameters of def. Missing
// arguments take the parameter default, surplus arguments are dropped and
// a blank integer argument takes its default. Integer values are rewritten
// in canonical decimal form; an empty default stays empty so handlers can
// tell an absent optional integer apart from zero.
func normalize(def *Definition, raw []string) Args {
	args := make(Args, len(def.Params))
	for i, p := range def.Params {
		v := p.Default
		if i < len(raw) {
			v = raw[i]
			if p.Int && strings.TrimSpace(v) == "" {
				v = p.Default
			}
		}
		if p.Int && v != "" {
			v = strconv.Itoa(Intval(v))
		}
		args[i] = v
	}
	return args
}

// Intval converts s to an integer the way loosely typed template languages
// do: leading whitespace is skipped, an optional sign is accepted and the
// longest run of decimal digits that follows is the value. Strings without
// leading digits yield 0 and out of range values saturate.
func Intval(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, strconv.IntSize)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return int(n)
}
