// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used by sfe and their long and short
//              names. Trace carries invocation arguments, debug one line per
//              invocation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-12 v0.2.0: Dropped the fatal and audit levels
// - 2026-10-18 v0.3.0: Name table; colors moved to the console formatter

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every argument of every invocation
	LevelTrace Level = iota

	// LevelDebug logs one line per invocation
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn carries caller mistakes such as unknown function names
	LevelWarn

	// LevelError carries configuration and internal failures
	LevelError
)

var levelNames = [...]struct {
	long  string
	short string
}{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the configuration name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text formats
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts the long names, the short tags and "warning",
// ignoring case and surrounding whitespace.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if s == "warning" {
		return LevelWarn, nil
	}
	for l, names := range levelNames {
		if s == names.long || s == strings.ToLower(names.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
