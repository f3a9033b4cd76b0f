// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the CBOR profile used for the CBOR form of NBT
// documents (see lib/document).
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): map keys
// sorted, integers in their shortest form, no indefinite lengths. Two
// equal documents therefore encode to identical bytes, which keeps
// CBOR output diffable and hashable.
//
// Decoding rejects duplicate map keys and allows deep nesting, since a
// document mirrors an NBT tree that may nest hundreds of containers.
//
// Struct fields use json tags; fxamacker/cbor falls back to them when
// no cbor tag is present, so one set of tags serves JSON and CBOR.
//
// This package wraps github.com/fxamacker/cbor/v2 so callers do not
// import it directly.
package codec
