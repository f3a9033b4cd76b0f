// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// recorder captures Fatalf calls instead of stopping the test.
type recorder struct {
	failed  bool
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestHex(t *testing.T) {
	got := Hex(t, `
		0a        # TAG_Compound
		00 02     # name length
		6869      # "hi"
		00        # end
	`)
	want := []byte{0x0a, 0x00, 0x02, 'h', 'i', 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Hex = %x, want %x", got, want)
	}

	var r recorder
	Hex(&r, "0g")
	if !r.failed {
		t.Error("invalid hex digit accepted")
	}
	r = recorder{}
	Hex(&r, "abc")
	if !r.failed {
		t.Error("odd digit count accepted")
	}
}

func TestRequireBytes(t *testing.T) {
	var r recorder
	RequireBytes(&r, []byte{1, 2, 3}, []byte{1, 2, 3})
	if r.failed {
		t.Errorf("equal slices failed: %s", r.message)
	}

	RequireBytes(&r, []byte{1, 2, 9, 4}, []byte{1, 2, 3, 4}, "case %d", 7)
	if !r.failed {
		t.Fatal("different slices passed")
	}
	for _, want := range []string{"case 7", "offset 2", "got:  0102|0904", "want: 0102|0304"} {
		if !strings.Contains(r.message, want) {
			t.Errorf("message %q missing %q", r.message, want)
		}
	}

	r = recorder{}
	RequireBytes(&r, []byte{1, 2}, []byte{1, 2, 3})
	if !strings.Contains(r.message, "offset 2") || !strings.Contains(r.message, "got:  0102|") {
		t.Errorf("prefix mismatch message = %q", r.message)
	}
}

func TestWindowElidesLongInput(t *testing.T) {
	data := bytes.Repeat([]byte{0xaa}, 40)
	got := window(data, 20)
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("window = %q, want elision on both sides", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "level.dat", []byte("data"))
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q", got)
	}
}
