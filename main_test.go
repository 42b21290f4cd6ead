// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"gridutil", "gq"},
			expected: []string{"gridutil", "gq"},
		},
		{
			name:     "no duplicates",
			args:     []string{"gridutil", "gq", "--output", "text", "--titles"},
			expected: []string{"gridutil", "gq", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"gridutil", "gq", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"gridutil", "gq", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"gridutil", "gq", "--titles", "--color", "--titles"},
			expected: []string{"gridutil", "gq", "--color", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"gridutil", "gq", "--output=json", "--titles", "--output=text"},
			expected: []string{"gridutil", "gq", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"gridutil", "gq", "--output=json", "--output", "text"},
			expected: []string{"gridutil", "gq", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"gridutil", "gq", "--parent", "data", "--sort", "name", "--parent", "rows", "--sort", "id"},
			expected: []string{"gridutil", "gq", "--parent", "rows", "--sort", "id"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"gridutil", "gq", "/path/to/doc.json", "--output", "json", "--output", "text"},
			expected: []string{"gridutil", "gq", "/path/to/doc.json", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"gridutil", "gq", "-o", "json", "-o", "text"},
			expected: []string{"gridutil", "gq", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"gridutil", "gq", "--color", "--no-color"},
			expected: []string{"gridutil", "gq", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"gridutil", "gq", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"gridutil", "gq", "--output", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"gridutil", "gq", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args)
	expected := []string{"gridutil", "gq", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlagsWithPositionalAfterFlags(t *testing.T) {
	// Positional args after flags should be preserved.
	args := []string{"gridutil", "gq", "--output", "json", "/path", "--output", "text"}
	result := deduplicateFlags(args)
	expected := []string{"gridutil", "gq", "/path", "--output", "text"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestProcessGqArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no positional gets stdin marker",
			args:     []string{"gridutil", "gq"},
			expected: []string{"gridutil", "gq", "-"},
		},
		{
			name:     "flag in positional slot gets stdin marker",
			args:     []string{"gridutil", "gq", "--titles"},
			expected: []string{"gridutil", "gq", "-", "--titles"},
		},
		{
			name:     "explicit stdin marker preserved",
			args:     []string{"gridutil", "gq", "-", "--titles"},
			expected: []string{"gridutil", "gq", "-", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processGqArgs(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processGqArgs() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	result := handleNakedCommand([]string{"gridutil"})
	expected := []string{"gridutil", "--help"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}

	args := []string{"gridutil", "gq"}
	result = handleNakedCommand(args)
	if !reflect.DeepEqual(result, args) {
		t.Errorf("got %v, want %v", result, args)
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"gridutil", "gq", "--titles"},
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"gridutil", "gq", "--titles"},
		},
		{
			name:      "single entry injected",
			args:      []string{"gridutil", "gq", "--titles"},
			insertIdx: 2,
			configVal: []string{"--color"},
			expected:  []string{"gridutil", "gq", "--color", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"gridutil", "gq", "--titles"},
			insertIdx: 2,
			configVal: []string{"--output text"},
			expected:  []string{"gridutil", "gq", "--output", "text", "--titles"},
		},
		{
			name:      "multiple entries",
			args:      []string{"gridutil", "gq"},
			insertIdx: 2,
			configVal: []string{"--color", "--output json"},
			expected:  []string{"gridutil", "gq", "--color", "--output", "json"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"gridutil", "gq", "/path/to/doc.json", "--titles"},
			insertIdx: 3,
			configVal: []string{"--color"},
			expected:  []string{"gridutil", "gq", "/path/to/doc.json", "--color", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSetTestable(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// injectConfigSetTestable is a test-friendly version that accepts config values
// directly instead of reading from global config.
func injectConfigSetTestable(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, splitFields(entry)...)
	}

	return append(args[:insertIdx], append(expanded, args[insertIdx:]...)...)
}

// splitFields splits a string by whitespace, matching strings.Fields behavior.
func splitFields(s string) []string {
	var result []string
	start := -1

	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
		} else {
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		result = append(result, s[start:])
	}

	return result
}
