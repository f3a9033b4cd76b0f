// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"errors"
	"fmt"
)

// ErrEndOfData is returned when a decode step needs more bytes than
// remain in the buffer: a truncated scalar, a length prefix promising
// more bytes than exist, or a compound missing its terminator.
// Negative length prefixes are reported as ErrEndOfData too, since
// they can only come from a corrupt or truncated stream.
var ErrEndOfData = errors.New("unexpected end of data")

// ErrLengthOverflow is wrapped by [*LengthError] when a value is too
// long for its kind's length prefix.
var ErrLengthOverflow = errors.New("length exceeds prefix range")

// ErrMaxDepth is returned when containers nest deeper than [MaxDepth],
// on decode or on encode. On encode it also catches a container that
// has been inserted into itself.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// ErrInvalidUTF8 is returned by [String.Text] when the raw payload is
// not valid UTF-8.
var ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

// ErrNilTag is returned when a nil [Tag] is appended to a list or
// encoded as a compound entry or root.
var ErrNilTag = errors.New("nil tag")

// ErrMisplacedEnd is returned when an [End] tag is used as a list
// element or compound entry. End has no payload and is only
// meaningful as the compound terminator and as the element kind of
// an untyped empty list.
var ErrMisplacedEnd = errors.New("end tag used as a value")

// MaxDepth is the maximum number of nested lists and compounds
// accepted by the decoder and produced by the encoder.
const MaxDepth = 512

// UnrecognizedTagTypeIDError reports a type identifier byte outside
// the registered set, found while decoding a root, a list element
// type, or a compound entry.
type UnrecognizedTagTypeIDError struct {
	ID byte
}

func (e *UnrecognizedTagTypeIDError) Error() string {
	return fmt.Sprintf("unrecognized tag type id %d", e.ID)
}

// UnrecognizedTagTypeError reports an attempt to encode a kind that
// has no registered type identifier.
type UnrecognizedTagTypeError struct {
	Kind Kind
}

func (e *UnrecognizedTagTypeError) Error() string {
	return fmt.Sprintf("unrecognized tag type %s", e.Kind)
}

// KindMismatchError reports a tag whose kind differs from the element
// kind of the list it is being placed into.
type KindMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("list holds %s, got %s", e.Want, e.Got)
}

// LengthError reports a value whose length does not fit its kind's
// length prefix. It wraps [ErrLengthOverflow].
type LengthError struct {
	Kind   Kind
	Length int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s length %d exceeds maximum %d", e.Kind, e.Length, e.Max)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthOverflow
}

// DecodeError attaches the buffer offset of a failed read to the
// underlying error. Enclosing list and compound decoders add their
// own context around it with fmt.Errorf, so the final message reads
// like a path: `root "Level": compound entry "Sections": list element
// 3: offset 1041: unexpected end of data`.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// endOfData returns the error for a read of size bytes at offset that
// runs past the end of the buffer.
func endOfData(offset int) error {
	return &DecodeError{Offset: offset, Err: ErrEndOfData}
}
