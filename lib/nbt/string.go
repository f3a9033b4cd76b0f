// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "unicode/utf8"

// String is a string tag. The value holds the raw payload bytes,
// which are nominally UTF-8 but are not validated on decode: a
// malformed name deep in a file must not make the rest of the file
// unreadable. Use [String.Text] when valid text is required.
//
// String is also the key type of [Compound]. Comparison and map
// lookup operate on raw bytes.
type String string

// NewString returns a string tag holding the UTF-8 encoding of text.
func NewString(text string) String {
	return String(text)
}

// StringFromBytes returns a string tag holding a copy of raw, valid
// UTF-8 or not.
func StringFromBytes(raw []byte) String {
	return String(raw)
}

// Bytes returns a copy of the raw payload.
func (value String) Bytes() []byte {
	return []byte(value)
}

// Valid reports whether the payload is valid UTF-8.
func (value String) Valid() bool {
	return utf8.ValidString(string(value))
}

// Text returns the payload as text, or [ErrInvalidUTF8].
func (value String) Text() (string, error) {
	if !value.Valid() {
		return "", ErrInvalidUTF8
	}
	return string(value), nil
}

func (String) Kind() Kind { return KindString }

func (value String) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return appendString(dst, value)
}

// appendString writes the 2-byte length and raw bytes. Names of
// roots and compound entries use the same layout.
func appendString(dst []byte, value String) ([]byte, error) {
	dst, err := appendCount(dst, KindString, header16, len(value))
	if err != nil {
		return nil, err
	}
	return append(dst, value...), nil
}

// decodeString reads a string payload at offset. The conversion to
// String copies the bytes out of data.
func decodeString(data []byte, offset int) (String, int, error) {
	payload, _, consumed, err := readPrefixed(data, offset, header16, 1)
	if err != nil {
		return "", 0, err
	}
	return String(payload), consumed, nil
}
