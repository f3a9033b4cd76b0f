// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Tag is a single node of an NBT tree. The interface is sealed: the
// only implementations are the variants in this package, one per
// [Kind].
type Tag interface {
	// Kind returns the variant's type identifier.
	Kind() Kind

	// appendPayload appends the variant's payload (without type byte
	// or name) to dst. depth is the number of enclosing containers.
	appendPayload(dst []byte, options encodeOptions, depth int) ([]byte, error)
}

// encodeOptions selects between the plain and canonical encodings.
type encodeOptions struct {
	// sortNames emits compound entries ordered by raw name bytes
	// instead of insertion order.
	sortNames bool
}

// End is the compound terminator. As a value it has no payload; it
// only appears as a root (rarely) and never inside a container.
type End struct{}

// Byte is a signed 8-bit integer tag.
type Byte int8

// Short is a signed 16-bit integer tag.
type Short int16

// Int is a signed 32-bit integer tag.
type Int int32

// Long is a signed 64-bit integer tag.
type Long int64

// Float is a binary32 tag. It is encoded through its bit pattern, so
// NaN payloads and negative zero round-trip exactly.
type Float float32

// Double is a binary64 tag, encoded through its bit pattern.
type Double float64

// ByteArray is a tag holding raw bytes with a 4-byte length prefix.
type ByteArray []byte

// IntArray is a tag holding 32-bit integers with a 2-byte count.
type IntArray []int32

// LongArray is a tag holding 64-bit integers with a 2-byte count.
type LongArray []int64

func (End) Kind() Kind       { return KindEnd }
func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (ByteArray) Kind() Kind { return KindByteArray }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

func (End) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return dst, nil
}

func (value Byte) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return append(dst, byte(value)), nil
}

func (value Short) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return binary.BigEndian.AppendUint16(dst, uint16(value)), nil
}

func (value Int) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return binary.BigEndian.AppendUint32(dst, uint32(value)), nil
}

func (value Long) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return binary.BigEndian.AppendUint64(dst, uint64(value)), nil
}

func (value Float) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return appendFloat32(dst, float32(value)), nil
}

func (value Double) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	return appendFloat64(dst, float64(value)), nil
}

func (value ByteArray) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	dst, err := appendCount(dst, KindByteArray, header32, len(value))
	if err != nil {
		return nil, err
	}
	return append(dst, value...), nil
}

func (value IntArray) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	dst, err := appendCount(dst, KindIntArray, header16, len(value))
	if err != nil {
		return nil, err
	}
	for _, element := range value {
		dst = binary.BigEndian.AppendUint32(dst, uint32(element))
	}
	return dst, nil
}

func (value LongArray) appendPayload(dst []byte, _ encodeOptions, _ int) ([]byte, error) {
	dst, err := appendCount(dst, KindLongArray, header16, len(value))
	if err != nil {
		return nil, err
	}
	for _, element := range value {
		dst = binary.BigEndian.AppendUint64(dst, uint64(element))
	}
	return dst, nil
}

// DecodePayload decodes one payload of the given kind starting at
// offset. It returns the tag and the number of bytes consumed. The
// returned tag never aliases data.
func DecodePayload(kind Kind, data []byte, offset int) (Tag, int, error) {
	return decodePayload(kind, data, offset, 0)
}

// AppendPayload appends the payload of tag (no type byte, no name) to
// dst. On failure it returns nil and the error.
func AppendPayload(dst []byte, tag Tag) ([]byte, error) {
	if tag == nil {
		return nil, ErrNilTag
	}
	return tag.appendPayload(dst, encodeOptions{}, 0)
}

// EncodePayload returns the payload encoding of tag.
func EncodePayload(tag Tag) ([]byte, error) {
	return AppendPayload(nil, tag)
}

// decodePayload dispatches on kind. depth counts the containers
// enclosing the payload being decoded.
func decodePayload(kind Kind, data []byte, offset int, depth int) (Tag, int, error) {
	switch kind {
	case KindEnd:
		return End{}, 0, nil

	case KindByte:
		value, err := readUint8(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Byte(int8(value)), 1, nil

	case KindShort:
		value, err := readUint16(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Short(int16(value)), 2, nil

	case KindInt:
		value, err := readUint32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Int(int32(value)), 4, nil

	case KindLong:
		value, err := readUint64(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Long(int64(value)), 8, nil

	case KindFloat:
		value, err := readFloat32(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Float(value), 4, nil

	case KindDouble:
		value, err := readFloat64(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return Double(value), 8, nil

	case KindByteArray:
		payload, _, consumed, err := readPrefixed(data, offset, header32, 1)
		if err != nil {
			return nil, 0, err
		}
		return ByteArray(bytes.Clone(payload)), consumed, nil

	case KindString:
		value, consumed, err := decodeString(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return value, consumed, nil

	case KindList:
		if depth >= MaxDepth {
			return nil, 0, &DecodeError{Offset: offset, Err: ErrMaxDepth}
		}
		list, consumed, err := decodeList(data, offset, depth)
		if err != nil {
			return nil, 0, err
		}
		return list, consumed, nil

	case KindCompound:
		if depth >= MaxDepth {
			return nil, 0, &DecodeError{Offset: offset, Err: ErrMaxDepth}
		}
		compound, consumed, err := decodeCompound(data, offset, depth)
		if err != nil {
			return nil, 0, err
		}
		return compound, consumed, nil

	case KindIntArray:
		payload, count, consumed, err := readPrefixed(data, offset, header16, 4)
		if err != nil {
			return nil, 0, err
		}
		values := make(IntArray, count)
		for index := range values {
			values[index] = int32(binary.BigEndian.Uint32(payload[index*4:]))
		}
		return values, consumed, nil

	case KindLongArray:
		payload, count, consumed, err := readPrefixed(data, offset, header16, 8)
		if err != nil {
			return nil, 0, err
		}
		values := make(LongArray, count)
		for index := range values {
			values[index] = int64(binary.BigEndian.Uint64(payload[index*8:]))
		}
		return values, consumed, nil

	default:
		// Unreachable for kinds obtained through KindForID.
		return nil, 0, &DecodeError{Offset: offset, Err: fmt.Errorf("decode %s: %w", kind, &UnrecognizedTagTypeIDError{ID: byte(kind)})}
	}
}
