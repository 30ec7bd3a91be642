// File: split_test.go
// Title: Unit Tests for Split and Piece Selection
// Description: Tests positive and negative piece selection, out-of-range
//              positions, empty and escaped delimiters and explode limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		delimiter string
		position  int
		expected  string
	}{
		{"first piece", "a,b,c,d", ",", 0, "a"},
		{"middle piece", "a,b,c,d", ",", 2, "c"},
		{"last piece", "a,b,c,d", ",", -1, "d"},
		{"first from back", "a,b,c,d", ",", -4, "a"},
		{"past the end", "a,b,c", ",", 5, ""},
		{"before the start", "a,b,c", ",", -4, ""},
		{"no delimiter", "abc", ",", 0, "abc"},
		{"no delimiter second piece", "abc", ",", 1, ""},
		{"empty pieces", "a,,b", ",", 1, ""},
		{"empty value", "", ",", 0, ""},
		{"empty delimiter splits on space", "a b c", "", 1, "b"},
		{"escaped delimiter", "x\ty", `\t`, 1, "y"},
		{"multi character delimiter", "a::b::c", "::", -2, "b"},
		{"unicode", "日本|語", "|", 1, "語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Split(tt.value, tt.delimiter, tt.position)
			if result != tt.expected {
				t.Errorf("Split(%q, %q, %d) = %q; want %q",
					tt.value, tt.delimiter, tt.position, result, tt.expected)
			}
		})
	}
}

func TestSplitN(t *testing.T) {
	tests := []struct {
		name     string
		position int
		limit    int
		expected string
	}{
		{"positive limit keeps remainder", -1, 2, "b,c,d"},
		{"positive limit first piece", 0, 2, "a"},
		{"limit above piece count", -1, 10, "d"},
		{"zero limit is one piece", 0, 0, "a,b,c,d"},
		{"zero limit second piece", 1, 0, ""},
		{"negative limit drops last", -1, -1, "c"},
		{"negative limit drops several", -1, -3, "a"},
		{"negative limit drops all", 0, -4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitN("a,b,c,d", ",", tt.position, tt.limit)
			if result != tt.expected {
				t.Errorf("SplitN(\"a,b,c,d\", \",\", %d, %d) = %q; want %q",
					tt.position, tt.limit, result, tt.expected)
			}
		})
	}
}

func TestPieces(t *testing.T) {
	tests := []struct {
		limit    int
		expected []string
	}{
		{3, []string{"a", "b", "c"}},
		{2, []string{"a", "b,c"}},
		{1, []string{"a,b,c"}},
		{0, []string{"a,b,c"}},
		{-1, []string{"a", "b"}},
		{-3, nil},
	}

	for _, tt := range tests {
		if got := Pieces("a,b,c", ",", tt.limit); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Pieces(\"a,b,c\", \",\", %d) = %q; want %q", tt.limit, got, tt.expected)
		}
	}
}
