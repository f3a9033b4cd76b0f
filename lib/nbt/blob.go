// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// lengthHeader is the width of a length prefix in bytes.
type lengthHeader int

const (
	// header16 is an unsigned 16-bit count (String, IntArray,
	// LongArray).
	header16 lengthHeader = 2
	// header32 is a signed 32-bit count (ByteArray, List).
	header32 lengthHeader = 4
)

// limit returns the largest count the header can carry.
func (header lengthHeader) limit() int {
	if header == header16 {
		return math.MaxUint16
	}
	return math.MaxInt32
}

// readCount decodes a length prefix at offset. A negative 32-bit
// count is reported as end of data.
func readCount(data []byte, offset int, header lengthHeader) (int, error) {
	if header == header16 {
		count, err := readUint16(data, offset)
		return int(count), err
	}
	count, err := readInt32(data, offset)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, &DecodeError{Offset: offset, Err: fmt.Errorf("negative length %d: %w", count, ErrEndOfData)}
	}
	return int(count), nil
}

// readPrefixed decodes a length prefix followed by count elements of
// elementSize bytes each. The declared length is checked against the
// bytes actually remaining before anything is sliced. The returned
// payload aliases data; callers copy it before storing it in a tag.
func readPrefixed(data []byte, offset int, header lengthHeader, elementSize int) (payload []byte, count int, consumed int, err error) {
	count, err = readCount(data, offset, header)
	if err != nil {
		return nil, 0, 0, err
	}
	start := offset + int(header)
	size := count * elementSize
	if !available(data, start, size) {
		return nil, 0, 0, endOfData(start)
	}
	return data[start : start+size], count, int(header) + size, nil
}

// appendCount encodes a length prefix, failing with a [*LengthError]
// when count does not fit.
func appendCount(dst []byte, kind Kind, header lengthHeader, count int) ([]byte, error) {
	if count > header.limit() {
		return nil, &LengthError{Kind: kind, Length: count, Max: header.limit()}
	}
	if header == header16 {
		return binary.BigEndian.AppendUint16(dst, uint16(count)), nil
	}
	return binary.BigEndian.AppendUint32(dst, uint32(count)), nil
}
