// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbt implements the Named Binary Tag format: a self-describing,
// tree-shaped binary encoding of typed, named values.
//
// An encoded buffer starts with a root: one type byte, the root name
// (encoded like a [String] payload), then the payload for that type.
// Payloads are big-endian and carry no per-value framing beyond what
// their kind prescribes, so decoding is a recursive descent driven by
// the type bytes embedded in lists and compounds.
//
// The set of kinds is closed. [Kind] enumerates the thirteen wire
// identifiers and [Tag] is a sealed interface implemented only by this
// package's variants:
//
//   - scalars: [End], [Byte], [Short], [Int], [Long], [Float], [Double]
//   - blobs: [ByteArray], [String], [IntArray], [LongArray]
//   - containers: [*List] and [*Compound]
//
// Scalars and blobs are plain Go values. Lists and compounds are
// mutable containers that own their children exclusively; they are
// not safe for concurrent mutation.
//
// Entry points:
//
//   - [DecodeRoot] and [EncodeRoot] for complete buffers
//   - [DecodePayload] and [AppendPayload] for a single payload of a
//     known kind
//   - [AppendCanonicalRoot] for a key-sorted encoding suitable for
//     hashing
//   - [Equal] and [Clone] for structural comparison and deep copies
//
// Failures are reported through [ErrEndOfData],
// [*UnrecognizedTagTypeIDError], [*UnrecognizedTagTypeError] and a few
// encode-side errors. A failed decode or encode never returns partial
// output. Compression is not handled here; callers strip gzip (or any
// other framing) before decoding, see lib/compress.
//
// This package depends only on the standard library.
package nbt
