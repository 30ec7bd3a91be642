// File: entry.go
// Title: Log Entry and Field Helpers
// Description: Defines the Entry passed to formatters and the Fields map
//              used for structured key-value context.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Dropped request, user and caller context
// - 2026-10-18 v0.3.0: Invocation fields lead the field order

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Fields {
	return Fields{key: float64(d.Nanoseconds()) / 1e6}
}

// String creates a string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields containing f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// leadingFields are written first, in this order, when present
var leadingFields = []string{"component", "invocationId", "function", "argCount", "duration"}

// keys returns the leading field names present in f, then the rest sorted
func (f Fields) keys() []string {
	keys := make([]string, 0, len(f))
	lead := make(map[string]bool, len(leadingFields))
	for _, k := range leadingFields {
		lead[k] = true
		if _, ok := f[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := len(keys)
	for k := range f {
		if !lead[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys[rest:])
	return keys
}

// NewEntry creates a new log entry
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
