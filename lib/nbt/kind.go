// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// Kind identifies a tag variant. The numeric value is the one-byte
// type identifier used on the wire. These values are protocol
// constants; changing them breaks compatibility with every existing
// NBT file.
type Kind uint8

const (
	// KindEnd terminates a compound. It has no payload and is also the
	// element kind of an untyped empty list.
	KindEnd Kind = 0
	// KindByte is a signed 8-bit integer.
	KindByte Kind = 1
	// KindShort is a signed 16-bit integer.
	KindShort Kind = 2
	// KindInt is a signed 32-bit integer.
	KindInt Kind = 3
	// KindLong is a signed 64-bit integer.
	KindLong Kind = 4
	// KindFloat is an IEEE-754 binary32 value.
	KindFloat Kind = 5
	// KindDouble is an IEEE-754 binary64 value.
	KindDouble Kind = 6
	// KindByteArray is a 4-byte length followed by raw bytes.
	KindByteArray Kind = 7
	// KindString is a 2-byte length followed by (nominally) UTF-8 bytes.
	KindString Kind = 8
	// KindList is a homogeneous sequence of unnamed payloads.
	KindList Kind = 9
	// KindCompound is a sequence of named tags terminated by KindEnd.
	KindCompound Kind = 10
	// KindIntArray is a 2-byte count followed by 32-bit integers.
	KindIntArray Kind = 11
	// KindLongArray is a 2-byte count followed by 64-bit integers.
	KindLongArray Kind = 12
)

// kindCount is the number of registered kinds. Identifiers in
// [0, kindCount) are valid.
const kindCount = 13

// kindInfo is one row of the registry.
type kindInfo struct {
	// wireName is the conventional name used in diagnostics
	// ("TAG_Compound").
	wireName string
	// name is the lower-case name used in documents and on the
	// command line ("compound").
	name string
}

// registry maps every wire identifier to its kind metadata. It is
// fixed at compile time and never written after initialization.
var registry = [kindCount]kindInfo{
	KindEnd:       {"TAG_End", "end"},
	KindByte:      {"TAG_Byte", "byte"},
	KindShort:     {"TAG_Short", "short"},
	KindInt:       {"TAG_Int", "int"},
	KindLong:      {"TAG_Long", "long"},
	KindFloat:     {"TAG_Float", "float"},
	KindDouble:    {"TAG_Double", "double"},
	KindByteArray: {"TAG_Byte_Array", "byte_array"},
	KindString:    {"TAG_String", "string"},
	KindList:      {"TAG_List", "list"},
	KindCompound:  {"TAG_Compound", "compound"},
	KindIntArray:  {"TAG_Int_Array", "int_array"},
	KindLongArray: {"TAG_Long_Array", "long_array"},
}

// Valid reports whether kind is one of the thirteen registered kinds.
func (kind Kind) Valid() bool {
	return kind < kindCount
}

// String returns the conventional wire name ("TAG_Int"), or
// "TAG_Unknown(n)" for an unregistered value.
func (kind Kind) String() string {
	if !kind.Valid() {
		return fmt.Sprintf("TAG_Unknown(%d)", uint8(kind))
	}
	return registry[kind].wireName
}

// Name returns the lower-case name of the kind ("int_array"), or
// "unknown(n)" for an unregistered value.
func (kind Kind) Name() string {
	if !kind.Valid() {
		return fmt.Sprintf("unknown(%d)", uint8(kind))
	}
	return registry[kind].name
}

// ParseKind returns the kind with the given lower-case name. Wire
// names ("TAG_Int") are accepted as well.
func ParseKind(name string) (Kind, error) {
	for index, info := range registry {
		if name == info.name || name == info.wireName {
			return Kind(index), nil
		}
	}
	return 0, fmt.Errorf("unknown tag kind %q", name)
}

// KindForID resolves a wire type identifier. Identifiers outside the
// registered range fail with [*UnrecognizedTagTypeIDError].
func KindForID(id byte) (Kind, error) {
	if id >= kindCount {
		return 0, &UnrecognizedTagTypeIDError{ID: id}
	}
	return Kind(id), nil
}

// IDForKind returns the wire type identifier for kind. A Kind value
// outside the registered set fails with [*UnrecognizedTagTypeError].
// Every variant in this package carries a registered kind, so this
// can only fail for a list constructed with a bogus element kind.
func IDForKind(kind Kind) (byte, error) {
	if !kind.Valid() {
		return 0, &UnrecognizedTagTypeError{Kind: kind}
	}
	return byte(kind), nil
}
