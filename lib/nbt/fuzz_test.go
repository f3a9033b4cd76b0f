// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "testing"

// FuzzDecodeRoot checks that arbitrary input never panics, and that
// anything that decodes survives an encode/decode round trip. Input
// with repeated compound names does not re-encode byte for byte, so
// the comparison is structural.
func FuzzDecodeRoot(f *testing.F) {
	f.Add(sampleBuffer(f))
	f.Add([]byte{0x08, 0x00, 0x03, 's', 't', 'r', 0x00, 0x01, 'x'})
	f.Add([]byte{0x0a, 0x00, 0x00, 0x00})
	f.Add([]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x0b, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		name, tag, consumed, err := DecodeRoot(data)
		if err != nil {
			if tag != nil {
				t.Fatalf("failed decode returned a tag: %v", err)
			}
			return
		}
		if consumed > len(data) {
			t.Fatalf("consumed %d of %d bytes", consumed, len(data))
		}

		encoded, err := EncodeRoot(tag, name)
		if err != nil {
			t.Fatalf("EncodeRoot of a decoded tree: %v", err)
		}
		if len(encoded) > consumed {
			t.Fatalf("re-encoded %d bytes from %d consumed", len(encoded), consumed)
		}
		againName, again, againConsumed, err := DecodeRoot(encoded)
		if err != nil {
			t.Fatalf("DecodeRoot of re-encoded tree: %v", err)
		}
		if againName != name || againConsumed != len(encoded) || !Equal(again, tag) {
			t.Fatal("round trip changed the tree")
		}

		canonical, err := AppendCanonicalRoot(nil, tag, name)
		if err != nil {
			t.Fatalf("AppendCanonicalRoot: %v", err)
		}
		if len(canonical) != len(encoded) {
			t.Fatalf("canonical length %d, plain length %d", len(canonical), len(encoded))
		}
	})
}
