// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: Function and parameter metadata
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package parserfunc

import (
	"strings"
)

// Handler evaluates a function over normalized arguments
type Handler func(args Args) string

// Param describes one positional parameter
type Param struct {
	Name        string // Parameter name (e.g., "needle")
	Int         bool   // Coerced to an integer before the call
	Default     string // Value used when the argument is missing
	Description string // Parameter description
}

// Definition describes a callable function
type Definition struct {
	Name        string  // Function name (e.g., "pos_e")
	Description string  // Function description
	Params      []Param // Positional parameters
	Returns     string  // Return value description
	Handler     Handler // Implementation
}

// Usage renders the invocation form, e.g. "pos_e value|needle|offset=0"
func (d *Definition) Usage() string {
	parts := make([]string, len(d.Params))
	for i, p := range d.Params {
		parts[i] = p.Name
		if p.Default != "" {
			parts[i] += "=" + p.Default
		}
	}
	return d.Name + " " + strings.Join(parts, "|")
}

// Args is a normalized argument list. It always holds one value per
// parameter of the invoked definition.
type Args []string

// String returns the i-th argument, "" when out of range
func (a Args) String(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

// Int returns the i-th argument coerced to an integer
func (a Args) Int(i int) int {
	return Intval(a.String(i))
}
