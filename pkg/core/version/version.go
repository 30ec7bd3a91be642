// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     version
// Description: Central version and credits information
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Function set version, the level of compatibility with the
	// StringFunctionsEscaped extension
	FunctionSet = "1.0.1"
)

// Build information, set via -ldflags at build time
var (
	Version   = Toolkit
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Credits describes the function set for listings and version output
type Credits struct {
	Name        string
	Version     string
	Author      string
	URL         string
	Description string
	License     string
}

// FunctionSetCredits returns the credits of the escaped function set
func FunctionSetCredits() Credits {
	return Credits{
		Name:        "StringFunctionsEscaped",
		Version:     FunctionSet,
		Author:      "Jack D. Pond",
		URL:         "https://www.mediawiki.org/wiki/Extension:StringFunctionsEscaped",
		Description: "Escaped string functions: pos_e, rpos_e, pad_e, replace_e, explode_e, stripnewlines",
		License:     "GPL-2.0",
	}
}

// Info returns a multi-line description of the build
func Info() string {
	c := FunctionSetCredits()

	var b strings.Builder
	fmt.Fprintf(&b, "sfe %s\n", Version)
	fmt.Fprintf(&b, "  Git Commit:   %s\n", GitCommit)
	fmt.Fprintf(&b, "  Build Date:   %s\n", BuildDate)
	fmt.Fprintf(&b, "  Go Version:   %s\n", runtime.Version())
	fmt.Fprintf(&b, "  OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "  Function Set: %s %s (%s, %s)\n", c.Name, c.Version, c.Author, c.License)
	return b.String()
}
