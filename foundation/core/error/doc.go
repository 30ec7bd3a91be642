// Package error provides structured errors for the sfe host, configuration
// and CLI layers.
//
// Package: error
// Title: sfe Error Handling
// Description: Errors carry a Code, a Severity derived from the code unless
//              set explicitly, the failing operation and free-form details.
//              The string functions in utils/stringx never return errors;
//              everything that can fail lives around them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Usage:
//
//	import mdwerror "github.com/msto63/sfe/foundation/core/error"
//
//	err := mdwerror.New("unknown function").
//		WithCode(mdwerror.CodeUnknownFunction).
//		WithOperation("parserfunc.Invoke").
//		WithDetail("name", name)
//
//	wrapped := mdwerror.Wrap(err, "batch item 3 failed")
//	if mdwerror.HasCode(wrapped, mdwerror.CodeUnknownFunction) {
//		// handle the caller mistake
//	}
package error
