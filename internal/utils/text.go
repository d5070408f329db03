// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"
)

var (
	markdownMarks = regexp.MustCompile("[#*`]")
	newlineRuns   = regexp.MustCompile(`\n+`)
)

// CleanResponseText turns a raw NLP response body into display text: escaped
// newlines become real ones and one wrapping double quote is removed from
// each end.
func CleanResponseText(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "\n")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)

	return s
}

// CleanForClipboard strips markdown marks and escape leftovers from text
// before it is placed on the clipboard.
func CleanForClipboard(text string) string {
	s := markdownMarks.ReplaceAllString(text, "")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = newlineRuns.ReplaceAllString(s, "\n")

	return strings.TrimSpace(s)
}
