// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/hex"
	"strings"
	"unicode"
)

// Hex decodes an annotated hex fixture. Whitespace is ignored and a
// '#' starts a comment running to the end of the line:
//
//	data := testutil.Hex(t, `
//	    0a          # TAG_Compound
//	    00 0b       # name length
//	    68656c6c6f 20 776f726c64
//	    00          # end
//	`)
func Hex(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, fixture string) []byte {
	t.Helper()

	var digits strings.Builder
	for line := range strings.Lines(fixture) {
		if index := strings.IndexByte(line, '#'); index >= 0 {
			line = line[:index]
		}
		for _, r := range line {
			if !unicode.IsSpace(r) {
				digits.WriteRune(r)
			}
		}
	}

	decoded, err := hex.DecodeString(digits.String())
	if err != nil {
		t.Fatalf("invalid hex fixture: %v", err)
	}
	return decoded
}
