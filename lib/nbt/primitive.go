// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"math"
)

// Fixed-width big-endian reads. Every reader checks the remaining
// length before touching the buffer, so a short buffer yields
// ErrEndOfData rather than an index panic.

// available reports whether size bytes can be read at offset.
func available(data []byte, offset, size int) bool {
	return offset >= 0 && offset <= len(data) && len(data)-offset >= size
}

func readUint8(data []byte, offset int) (uint8, error) {
	if !available(data, offset, 1) {
		return 0, endOfData(offset)
	}
	return data[offset], nil
}

func readUint16(data []byte, offset int) (uint16, error) {
	if !available(data, offset, 2) {
		return 0, endOfData(offset)
	}
	return binary.BigEndian.Uint16(data[offset:]), nil
}

func readUint32(data []byte, offset int) (uint32, error) {
	if !available(data, offset, 4) {
		return 0, endOfData(offset)
	}
	return binary.BigEndian.Uint32(data[offset:]), nil
}

func readUint64(data []byte, offset int) (uint64, error) {
	if !available(data, offset, 8) {
		return 0, endOfData(offset)
	}
	return binary.BigEndian.Uint64(data[offset:]), nil
}

func readInt32(data []byte, offset int) (int32, error) {
	value, err := readUint32(data, offset)
	return int32(value), err
}

// readFloat32 reads the integer bit pattern and reinterprets it, so
// NaN payloads and signed zeros survive unchanged.
func readFloat32(data []byte, offset int) (float32, error) {
	bits, err := readUint32(data, offset)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func readFloat64(data []byte, offset int) (float64, error) {
	bits, err := readUint64(data, offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func appendFloat32(dst []byte, value float32) []byte {
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(value))
}

func appendFloat64(dst []byte, value float64) []byte {
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(value))
}
