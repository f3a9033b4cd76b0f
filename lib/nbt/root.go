// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// DecodeRoot decodes a complete NBT buffer: type byte, root name,
// payload. It returns the name, the tag, and the number of bytes
// consumed, which may be less than len(data) if the buffer carries
// trailing bytes.
//
// The buffer must already be decompressed.
func DecodeRoot(data []byte) (String, Tag, int, error) {
	id, err := readUint8(data, 0)
	if err != nil {
		return "", nil, 0, err
	}
	kind, err := KindForID(id)
	if err != nil {
		return "", nil, 0, &DecodeError{Offset: 0, Err: err}
	}
	name, nameSize, err := decodeString(data, 1)
	if err != nil {
		return "", nil, 0, fmt.Errorf("root name: %w", err)
	}
	tag, payloadSize, err := decodePayload(kind, data, 1+nameSize, 0)
	if err != nil {
		return "", nil, 0, fmt.Errorf("root %q: %w", name, err)
	}
	return name, tag, 1 + nameSize + payloadSize, nil
}

// EncodeRoot encodes tag as a complete NBT buffer named name.
func EncodeRoot(tag Tag, name String) ([]byte, error) {
	return AppendRoot(nil, tag, name)
}

// AppendRoot appends the complete encoding of tag named name to dst.
// Compound entries are written in insertion order. On failure it
// returns nil and the error.
func AppendRoot(dst []byte, tag Tag, name String) ([]byte, error) {
	return appendRoot(dst, tag, name, encodeOptions{})
}

// AppendCanonicalRoot is like [AppendRoot] but writes the entries of
// every compound sorted by raw name bytes. Trees that are [Equal]
// produce identical canonical encodings, which makes the output
// suitable for hashing and byte-wise comparison.
func AppendCanonicalRoot(dst []byte, tag Tag, name String) ([]byte, error) {
	return appendRoot(dst, tag, name, encodeOptions{sortNames: true})
}

func appendRoot(dst []byte, tag Tag, name String, options encodeOptions) ([]byte, error) {
	if tag == nil {
		return nil, ErrNilTag
	}
	id, err := IDForKind(tag.Kind())
	if err != nil {
		return nil, err
	}
	dst = append(dst, id)
	if dst, err = appendString(dst, name); err != nil {
		return nil, fmt.Errorf("root name: %w", err)
	}
	if dst, err = tag.appendPayload(dst, options, 0); err != nil {
		return nil, fmt.Errorf("root %q: %w", name, err)
	}
	return dst, nil
}
