// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"bytes"
	"math"
	"slices"
)

// Equal reports whether a and b are structurally identical: same
// kind, same scalar values, same list element kind and order, and the
// same compound entries regardless of order. Floats compare by bit
// pattern, so NaN equals an identical NaN and 0.0 differs from -0.0.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case End:
		return true
	case Byte:
		return left == b.(Byte)
	case Short:
		return left == b.(Short)
	case Int:
		return left == b.(Int)
	case Long:
		return left == b.(Long)
	case Float:
		return math.Float32bits(float32(left)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(left)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return bytes.Equal(left, b.(ByteArray))
	case String:
		return left == b.(String)
	case IntArray:
		return slices.Equal(left, b.(IntArray))
	case LongArray:
		return slices.Equal(left, b.(LongArray))
	case *List:
		right := b.(*List)
		if left.elementKind != right.elementKind || len(left.tags) != len(right.tags) {
			return false
		}
		for index, tag := range left.tags {
			if !Equal(tag, right.tags[index]) {
				return false
			}
		}
		return true
	case *Compound:
		right := b.(*Compound)
		if left.Len() != right.Len() {
			return false
		}
		for name, tag := range left.entries {
			other, ok := right.entries[name]
			if !ok || !Equal(tag, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of tag. Lists, compounds and array
// payloads are copied; the result shares nothing with the input.
func Clone(tag Tag) Tag {
	switch value := tag.(type) {
	case ByteArray:
		return ByteArray(bytes.Clone(value))
	case IntArray:
		return IntArray(slices.Clone(value))
	case LongArray:
		return LongArray(slices.Clone(value))
	case *List:
		tags := make([]Tag, len(value.tags))
		for index, element := range value.tags {
			tags[index] = Clone(element)
		}
		return &List{elementKind: value.elementKind, tags: tags}
	case *Compound:
		result := &Compound{
			names:   slices.Clone(value.names),
			entries: make(map[String]Tag, len(value.entries)),
		}
		for name, element := range value.entries {
			result.entries[name] = Clone(element)
		}
		return result
	default:
		return tag
	}
}
