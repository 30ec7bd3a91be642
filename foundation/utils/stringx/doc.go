// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the escaped string functions of the
//              sfe toolkit: position search, reverse search, padding,
//              replacement, split-and-select and newline collapsing over
//              backslash-escaped arguments.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-12 v0.3.0: Escaped string functions, limits and escape decoding

// Package stringx provides the escaped string functions used by sfe.
//
// Overview
//
// Every function is a pure transformation over its arguments and returns a
// string. Arguments that name something to look for or to insert (needles,
// delimiters, replacement sources and targets, pad fills) may contain C-style
// backslash escapes such as \n or \t. They are decoded exactly once by
// Unescape before use; the value being operated on and integer arguments are
// never decoded.
//
// Functions
//
//   - Unescape: decode \a \b \f \n \r \t \v \\ \xHH \OOO, drop the backslash of any other escape
//   - PositionOf: first character index of a needle, "" when not found
//   - LastPositionOf: last character index of a needle, "-1" when not found
//   - Pad: left, right or center padding with a repeating fill
//   - Replace: bounded or unbounded replacement
//   - Split, SplitN: split on a delimiter and select one piece, negative positions count from the back
//   - CollapseNewlines: turn every run of two or more newlines into one
//
// Conventions
//
// Positions, offsets and lengths count characters, not bytes. An empty needle
// or delimiter is replaced by a single space, and an empty pad fill pads with
// spaces. "Not found" is reported through sentinel strings, never errors:
// PositionOf and Split return "", LastPositionOf returns "-1" so that adding
// one always yields the start of the text after the last match.
//
// Limits
//
// The package-level functions apply DefaultLimits: needles are cut to 30
// characters, pad targets to 500 and replacement results to 1000. A Limits
// value exposes the same functions as methods with other bounds; zero fields
// disable a bound.
//
//	lim := stringx.Limits{MaxPadLength: 80}
//	line := lim.Pad(title, 200, `-`, stringx.PadCenter) // 80 characters
//
// Usage Examples
//
//	stringx.PositionOf("hello world", "o", 5)          // "7"
//	stringx.LastPositionOf("a/b/c", "/")               // "3"
//	stringx.Pad("a", 4, "x", stringx.PadCenter)        // "xaxx"
//	stringx.Replace("aaa", "a", "b", 2)                // "bba"
//	stringx.Split("a,b,c,d", ",", -1)                  // "d"
//	stringx.CollapseNewlines("x\n\n\ny")               // "x\ny"
//
// Thread Safety
//
// All functions are safe for concurrent use. They share no mutable state.
package stringx
