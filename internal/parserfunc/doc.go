// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: Dispatch table for the escaped string functions
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

// Package parserfunc hosts the escaped string functions behind a name based
// dispatch table. It turns a raw positional argument list into the typed
// call the stringx package expects: missing arguments take their defaults,
// surplus arguments are dropped and integer parameters are coerced the way
// template engines coerce them (leading digits count, anything else is 0).
//
// Localized alternative names are registered per language from the
// configuration. Batches of invocations can be read from YAML and evaluated
// against optional expected outputs.
package parserfunc
