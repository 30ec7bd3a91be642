// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: Built-in escaped string function definitions
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package parserfunc

import (
	"github.com/msto63/sfe/foundation/utils/stringx"
)

// Built-in function names
const (
	FuncPos           = "pos_e"
	FuncRPos          = "rpos_e"
	FuncPad           = "pad_e"
	FuncReplace       = "replace_e"
	FuncExplode       = "explode_e"
	FuncStripNewlines = "stripnewlines"
)

// builtins returns the six escaped string functions bound to lim
func builtins(lim stringx.Limits) []*Definition {
	return []*Definition{
		{
			Name:        FuncPos,
			Description: "Position of the first occurrence of an escaped needle",
			Params: []Param{
				{Name: "value"},
				{Name: "needle", Description: "escaped, a single space when empty"},
				{Name: "offset", Int: true, Default: "0"},
			},
			Returns: `character index, "" when not found`,
			Handler: func(a Args) string {
				return lim.PositionOf(a.String(0), a.String(1), a.Int(2))
			},
		},
		{
			Name:        FuncRPos,
			Description: "Position of the last occurrence of an escaped needle",
			Params: []Param{
				{Name: "value"},
				{Name: "needle", Description: "escaped, a single space when empty"},
			},
			Returns: `character index, "-1" when not found`,
			Handler: func(a Args) string {
				return lim.LastPositionOf(a.String(0), a.String(1))
			},
		},
		{
			Name:        FuncPad,
			Description: "Pad a value to a length with an escaped fill",
			Params: []Param{
				{Name: "value"},
				{Name: "length", Int: true, Default: "0"},
				{Name: "fill", Description: "escaped, a space when empty"},
				{Name: "direction", Default: "left", Description: "left, right or center"},
			},
			Returns: "padded value",
			Handler: func(a Args) string {
				return lim.Pad(a.String(0), a.Int(1), a.String(2), stringx.ParseDirection(a.String(3)))
			},
		},
		{
			Name:        FuncReplace,
			Description: "Replace escaped text with escaped text",
			Params: []Param{
				{Name: "value"},
				{Name: "from", Description: "escaped, a single space when empty"},
				{Name: "to", Description: "escaped"},
				{Name: "limit", Int: true, Default: "-1", Description: "negative for all"},
			},
			Returns: "value with replacements",
			Handler: func(a Args) string {
				return lim.Replace(a.String(0), a.String(1), a.String(2), a.Int(3))
			},
		},
		{
			Name:        FuncExplode,
			Description: "Split on an escaped delimiter and select one piece",
			Params: []Param{
				{Name: "value"},
				{Name: "delimiter", Description: "escaped, a single space when empty"},
				{Name: "position", Int: true, Default: "0", Description: "negative counts from the end"},
				{Name: "limit", Int: true, Description: "piece limit, none when empty"},
			},
			Returns: `selected piece, "" when out of range`,
			Handler: func(a Args) string {
				if a.String(3) == "" {
					return lim.Split(a.String(0), a.String(1), a.Int(2))
				}
				return lim.SplitN(a.String(0), a.String(1), a.Int(2), a.Int(3))
			},
		},
		{
			Name:        FuncStripNewlines,
			Description: "Collapse runs of newlines into one",
			Params: []Param{
				{Name: "value"},
			},
			Returns: "collapsed value",
			Handler: func(a Args) string {
				return stringx.CollapseNewlines(a.String(0))
			},
		},
	}
}
