// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestCleanResponseText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"wrapped in quotes", `"hello"`, "hello"},
		{"escaped newlines", `"line one\nline two"`, "line one\nline two"},
		{"only one quote stripped per side", `""quoted""`, `"quoted"`},
		{"inner quotes kept", `say "hi" now`, `say "hi" now`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponseText(tt.in); got != tt.want {
				t.Errorf("CleanResponseText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanForClipboard(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown removed", "## **Title**\n`code`", "Title\ncode"},
		{"escaped quotes", `He said \"yes\"`, `He said "yes"`},
		{"escaped newline", `a\nb`, "a\nb"},
		{"stray backslashes", `a\b\c`, "abc"},
		{"wrapping quotes", `"wrapped"`, "wrapped"},
		{"newline runs collapsed", "a\n\n\nb", "a\nb"},
		{"trimmed", "  \n text \n ", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForClipboard(tt.in); got != tt.want {
				t.Errorf("CleanForClipboard(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
