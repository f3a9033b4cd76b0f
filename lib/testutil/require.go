// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// contextBytes is how many bytes around a mismatch RequireBytes shows.
const contextBytes = 8

// RequireBytes fails the test unless got equals want. The failure
// names the first differing offset and shows both slices around it.
//
//	testutil.RequireBytes(t, encoded, want, "encoding %s", name)
func RequireBytes(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, got, want []byte, msgAndArgs ...any) {
	t.Helper()
	if bytes.Equal(got, want) {
		return
	}

	offset := 0
	for offset < len(got) && offset < len(want) && got[offset] == want[offset] {
		offset++
	}
	t.Fatalf("%s: bytes differ at offset %d (got %d bytes, want %d)\n  got:  %s\n  want: %s",
		formatMessage(msgAndArgs), offset, len(got), len(want),
		window(got, offset), window(want, offset))
}

// window renders the bytes around offset as hex, marking offset.
func window(data []byte, offset int) string {
	start := max(offset-contextBytes, 0)
	end := min(offset+contextBytes, len(data))
	if start > len(data) {
		start = len(data)
	}
	before := hex.EncodeToString(data[start:min(offset, len(data))])
	after := ""
	if offset < end {
		after = hex.EncodeToString(data[offset:end])
	}
	prefix := ""
	if start > 0 {
		prefix = "..."
	}
	suffix := ""
	if end < len(data) {
		suffix = "..."
	}
	return fmt.Sprintf("%s%s|%s%s", prefix, before, after, suffix)
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
