// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight syntax-highlights source for a 256-color terminal.
// language is a Chroma lexer name ("json", "yaml"). On any Chroma
// failure the source is returned unchanged.
func Highlight(source, language string) string {
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, source, language, "terminal256", "monokai"); err != nil {
		return source
	}
	return buffer.String()
}
