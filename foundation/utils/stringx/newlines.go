// File: newlines.go
// Title: Newline Run Collapsing
// Description: Collapses every run of two or more newlines into one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import "regexp"

var newlineRun = regexp.MustCompile(`\n\n+`)

// CollapseNewlines replaces each maximal run of two or more "\n" characters
// with a single "\n". Single newlines and "\r" are left alone.
func CollapseNewlines(value string) string {
	return newlineRun.ReplaceAllLiteralString(value, "\n")
}
