// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package document converts NBT trees to and from a typed document
// form that text tools can read and write: JSON, YAML and CBOR.
//
// A plain JSON rendering of NBT loses information: JSON has one
// number type, no byte strings, no NaN, and objects with unordered
// keys. A [Node] keeps all of it. Every node names its NBT type,
// integers stay integers, floats carry their exact bit pattern next
// to a readable value, compound entries are an ordered list, and
// strings or names that are not valid UTF-8 fall back to raw bytes.
// Converting a tree to a document and back yields an [nbt.Equal]
// tree that also re-encodes to the same bytes.
//
//	{
//	  "type": "compound",
//	  "name": "hello world",
//	  "entries": [
//	    {"type": "string", "name": "name", "string": "Bananrama"},
//	    {"type": "float", "name": "speed", "float": 0.5, "bits": "0x3f000000"}
//	  ]
//	}
//
// JSON input may contain comments and trailing commas (JSONC). Hand
// written documents may omit "bits" and give only "float".
package document
