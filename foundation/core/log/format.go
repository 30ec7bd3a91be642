// File: format.go
// Title: Log Output Formatters
// Description: JSON, text and console formatters. Every format writes the
//              entry header first, then the invocation fields in a fixed
//              order, then the remaining fields sorted by name.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt
// - 2026-10-12 v0.2.0: Sorted fields, dropped logfmt
// - 2026-10-18 v0.3.0: Ordered JSON objects, key=value text lines

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatText writes key=value lines
	FormatText

	// FormatConsole writes key=value lines with a colored level tag
	FormatConsole
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
}

// String returns the configuration name of the format
func (f Format) String() string {
	if f < FormatJSON || f > FormatConsole {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name, ignoring case and surrounding whitespace
func ParseFormat(format string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// reserved keys are written by the formatters themselves; fields with these
// names are dropped
var reserved = map[string]bool{
	"timestamp": true, "level": true, "logger": true,
	"message": true, "error": true, "error_details": true,
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format writes timestamp, level, logger and message first, then the
// fields, then the error and its structured details.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value interface{}) error {
		name, _ := json.Marshal(key)
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(raw)
		return nil
	}

	header := []struct {
		key   string
		value interface{}
	}{
		{"timestamp", entry.Timestamp.Format(f.TimestampFormat)},
		{"level", entry.Level.String()},
		{"logger", entry.Logger},
		{"message", entry.Message},
	}
	for _, h := range header {
		if h.key == "logger" && entry.Logger == "" {
			continue
		}
		if err := write(h.key, h.value); err != nil {
			return nil, err
		}
	}

	for _, k := range entry.Fields.keys() {
		if reserved[k] {
			continue
		}
		v := entry.Fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		if err := write(k, v); err != nil {
			return nil, err
		}
	}

	if entry.Error != nil {
		if err := write("error", entry.Error.Error()); err != nil {
			return nil, err
		}
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				if err := write("error_details", json.RawMessage(raw)); err != nil {
					return nil, err
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// TextFormatter formats log entries as key=value lines:
//
//	15:04:05 DBG sfe: function invoked invocationId=... function=pad_e argCount=4 duration=0.01
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return f.format(entry, entry.Level.ShortString()), nil
}

func (f *TextFormatter) format(entry *Entry, tag string) []byte {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString(tag)
	b.WriteByte(' ')
	if entry.Logger != "" {
		b.WriteString(entry.Logger)
		b.WriteString(": ")
	}
	b.WriteString(entry.Message)

	for _, k := range entry.Fields.keys() {
		if reserved[k] {
			continue
		}
		fmt.Fprintf(&b, " %s=%s", k, textValue(entry.Fields[k]))
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%s", textValue(entry.Error.Error()))
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// textValue quotes values that would not read back as a single token
func textValue(v interface{}) string {
	var s string
	switch val := v.(type) {
	case error:
		s = val.Error()
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}
	if s == "" || strings.ContainsAny(s, " =\"\t\n\r") || !strconv.CanBackquote(s) {
		return strconv.Quote(s)
	}
	return s
}

// levelColors maps levels to ANSI colors for the console formatter
var levelColors = map[Level]string{
	LevelTrace: "\033[37m",
	LevelDebug: "\033[36m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
}

const colorReset = "\033[0m"

// ConsoleFormatter is the text format with a colored level tag
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	tag := entry.Level.ShortString()
	if color, ok := levelColors[entry.Level]; ok && !f.DisableColors {
		tag = color + tag + colorReset
	}
	return f.format(entry, tag), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
