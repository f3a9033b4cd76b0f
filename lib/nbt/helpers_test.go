// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"math"
	"testing"
)

// mustList builds a list or fails the test.
func mustList(t testing.TB, kind Kind, tags ...Tag) *List {
	t.Helper()
	list, err := NewList(kind, tags...)
	if err != nil {
		t.Fatalf("NewList(%s): %v", kind, err)
	}
	return list
}

// sampleTree returns a compound exercising every kind, including the
// awkward cases: NaN with a payload, negative zero, a name that is
// not valid UTF-8, empty arrays, and an untyped empty list.
func sampleTree(t testing.TB) *Compound {
	t.Helper()

	position := NewCompound()
	position.Set("x", Double(12.5))
	position.Set("y", Double(math.Copysign(0, -1)))
	position.Set("z", Double(-3))

	first := NewCompound()
	first.Set("id", String("minecraft:stone"))
	first.Set("count", Byte(64))

	second := NewCompound()
	second.Set("id", String("minecraft:torch"))
	second.Set("count", Byte(3))
	second.Set("damage", Short(-2))

	root := NewCompound()
	root.Set("byte", Byte(-128))
	root.Set("short", Short(32767))
	root.Set("int", Int(-2147483648))
	root.Set("long", Long(math.MaxInt64))
	root.Set("float", Float(0.5))
	root.Set("nan", Float(math.Float32frombits(0x7fc00001)))
	root.Set("double", Double(math.Pi))
	root.Set("bytes", ByteArray{0, 1, 2, 0xfe, 0xff})
	root.Set("empty bytes", ByteArray{})
	root.Set("string", String("Hello, world!"))
	root.Set(StringFromBytes([]byte{0xff, 0xfe}), String("invalid name"))
	root.Set("ints", IntArray{1, -1, math.MaxInt32})
	root.Set("longs", LongArray{math.MinInt64, 0, 7})
	root.Set("empty ints", IntArray{})
	root.Set("position", position)
	root.Set("inventory", mustList(t, KindCompound, first, second))
	root.Set("untyped", mustList(t, KindEnd))
	root.Set("empty ints list", mustList(t, KindInt))
	root.Set("matrix", mustList(t, KindList,
		mustList(t, KindShort, Short(1), Short(2)),
		mustList(t, KindShort),
		mustList(t, KindString, String("a")),
	))
	return root
}

// sampleBuffer encodes sampleTree under the name "sample".
func sampleBuffer(t testing.TB) []byte {
	t.Helper()
	data, err := EncodeRoot(sampleTree(t), "sample")
	if err != nil {
		t.Fatalf("EncodeRoot: %v", err)
	}
	return data
}
