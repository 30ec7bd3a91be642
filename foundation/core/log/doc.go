// Package log provides structured logging for sfe.
//
// Package: log
// Title: Structured Logging for sfe
// Description: A small leveled logger with persistent context fields and
//              JSON, text and console output. Loggers are immutable values:
//              With* methods return configured copies that share the output
//              lock of their parent.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "sfe",
//	})
//
//	logger.WithField("component", "parserfunc").
//		Debug("function invoked", log.Fields{"function": "pad_e"})
//
//	logger.LogError(err) // logged at log.LevelFor(err)
package log
