// File: error_test.go
// Title: Error Module Tests
// Description: Tests error creation, wrapping, codes, severity derivation,
//              details and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Adapted to the reduced error type

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap sfe error",
			err:      New("original").WithCode(CodeUnknownFunction),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original",
			wantCode: CodeUnknownFunction,
		},
		{
			name:     "wrap fmt wrapped sfe error",
			err:      fmt.Errorf("outer: %w", New("inner").WithCode(CodeInvalidConfig)),
			message:  "wrapper message",
			wantMsg:  "wrapper message: outer: inner",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", result.Code(), tt.wantCode)
			}
			if !errors.Is(result, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsDetailsAndSeverity(t *testing.T) {
	inner := New("inner").
		WithCode(CodeInvalidInput).
		WithSeverity(SeverityCritical).
		WithDetail("name", "pos_e")

	outer := Wrap(inner, "outer")

	if outer.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityCritical)
	}
	if got := outer.Details()["name"]; got != "pos_e" {
		t.Errorf("Details()[name] = %v, want pos_e", got)
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnknownFunction, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeMissingConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity for %s = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestWithSeverity_NotOverriddenByCode(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestDetails_ReturnsCopy(t *testing.T) {
	err := New("x").WithDetail("k", "v")
	details := err.Details()
	details["k"] = "changed"

	if err.Details()["k"] != "v" {
		t.Error("Details() should return a copy")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	base := New("base").WithCode(CodeDuplicateEntry)
	chain := fmt.Errorf("context: %w", Wrap(base, "wrapped").WithCode(CodeInvalidConfig))

	if !HasCode(chain, CodeDuplicateEntry) {
		t.Error("HasCode should find the inner code")
	}
	if !HasCode(chain, CodeInvalidConfig) {
		t.Error("HasCode should find the outer code")
	}
	if HasCode(chain, CodeNotFound) {
		t.Error("HasCode should not find an absent code")
	}
	if GetCode(chain) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", GetCode(chain), CodeInvalidConfig)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := New("load failed").
		WithCode(CodeInvalidConfig).
		WithOperation("config.Load").
		WithDetail("path", "sfe.toml").
		WithDetail("format", "toml")

	s := err.String()
	for _, want := range []string{
		"Error: load failed",
		"Code: INVALID_CONFIG",
		"Severity: high",
		"Operation: config.Load",
		"Details: {format=toml, path=sfe.toml}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "outer").
		WithCode(CodeUnknownFunction).
		WithOperation("parserfunc.Invoke")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "UNKNOWN_FUNCTION" {
		t.Errorf("code = %v, want UNKNOWN_FUNCTION", decoded["code"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v, want root", decoded["cause"])
	}
	if decoded["operation"] != "parserfunc.Invoke" {
		t.Errorf("operation = %v, want parserfunc.Invoke", decoded["operation"])
	}
}

func TestCode_ValidityAndCategory(t *testing.T) {
	if !CodeUnknownFunction.IsValid() {
		t.Error("CodeUnknownFunction should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
	if CodeDuplicateEntry.Category() != "registry" {
		t.Errorf("Category() = %q, want registry", CodeDuplicateEntry.Category())
	}
	if CodeInvalidConfig.Category() != "configuration" {
		t.Errorf("Category() = %q, want configuration", CodeInvalidConfig.Category())
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert() should be true from SeverityHigh upwards only")
	}
}
