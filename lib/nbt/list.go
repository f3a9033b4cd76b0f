// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered, homogeneous sequence of tags. Every element has
// the list's element kind. An empty list may have element kind
// [KindEnd], meaning "untyped"; the first tag added to such a list
// sets its element kind.
//
// Index arguments follow slice semantics: out-of-range indexes panic.
// A List is not safe for concurrent mutation.
type List struct {
	elementKind Kind
	tags        []Tag
}

// NewList returns a list of the given element kind holding tags.
func NewList(elementKind Kind, tags ...Tag) (*List, error) {
	if !elementKind.Valid() {
		return nil, &UnrecognizedTagTypeError{Kind: elementKind}
	}
	list := &List{elementKind: elementKind}
	if err := list.Append(tags...); err != nil {
		return nil, err
	}
	return list, nil
}

func (*List) Kind() Kind { return KindList }

// ElementKind returns the declared kind of the list's elements.
func (list *List) ElementKind() Kind {
	return list.elementKind
}

// Len returns the number of elements.
func (list *List) Len() int {
	return len(list.tags)
}

// Index returns the element at index.
func (list *List) Index(index int) Tag {
	return list.tags[index]
}

// Slice returns a copy of the elements in [start, end).
func (list *List) Slice(start, end int) []Tag {
	return slices.Clone(list.tags[start:end])
}

// Tags returns a copy of all elements.
func (list *List) Tags() []Tag {
	return slices.Clone(list.tags)
}

// All iterates over the elements with their indexes.
func (list *List) All() iter.Seq2[int, Tag] {
	return slices.All(list.tags)
}

// Set replaces the element at index.
func (list *List) Set(index int, tag Tag) error {
	_ = list.tags[index]
	kind, err := list.admit(tag)
	if err != nil {
		return err
	}
	list.elementKind = kind
	list.tags[index] = tag
	return nil
}

// Append adds tags to the end of the list. Either all tags are added
// or, on error, none are.
func (list *List) Append(tags ...Tag) error {
	kind, err := list.admit(tags...)
	if err != nil {
		return err
	}
	list.elementKind = kind
	list.tags = append(list.tags, tags...)
	return nil
}

// Insert adds tags before index.
func (list *List) Insert(index int, tags ...Tag) error {
	if index < 0 || index > len(list.tags) {
		panic(fmt.Sprintf("nbt: list insert index %d out of range [0:%d]", index, len(list.tags)))
	}
	kind, err := list.admit(tags...)
	if err != nil {
		return err
	}
	list.elementKind = kind
	list.tags = slices.Insert(list.tags, index, tags...)
	return nil
}

// SetSlice replaces the elements in [start, end) with tags, which may
// be shorter or longer than the range it replaces.
func (list *List) SetSlice(start, end int, tags ...Tag) error {
	_ = list.tags[start:end]
	kind, err := list.admit(tags...)
	if err != nil {
		return err
	}
	list.elementKind = kind
	list.tags = slices.Replace(list.tags, start, end, tags...)
	return nil
}

// Remove deletes and returns the element at index. The element kind
// is kept even when the list becomes empty.
func (list *List) Remove(index int) Tag {
	tag := list.tags[index]
	list.tags = slices.Delete(list.tags, index, index+1)
	return tag
}

// admit checks that tags may be stored in the list and returns the
// element kind the list will have afterwards. An untyped list (kind
// End, necessarily empty) takes the kind of the first tag.
func (list *List) admit(tags ...Tag) (Kind, error) {
	kind := list.elementKind
	for _, tag := range tags {
		if tag == nil {
			return 0, ErrNilTag
		}
		if tag.Kind() == KindEnd {
			return 0, ErrMisplacedEnd
		}
		if kind == KindEnd {
			kind = tag.Kind()
		}
		if tag.Kind() != kind {
			return 0, &KindMismatchError{Want: kind, Got: tag.Kind()}
		}
	}
	return kind, nil
}

func (list *List) appendPayload(dst []byte, options encodeOptions, depth int) ([]byte, error) {
	if depth >= MaxDepth {
		return nil, ErrMaxDepth
	}
	id, err := IDForKind(list.elementKind)
	if err != nil {
		return nil, err
	}
	dst = append(dst, id)
	dst, err = appendCount(dst, KindList, header32, len(list.tags))
	if err != nil {
		return nil, err
	}
	for index, tag := range list.tags {
		dst, err = tag.appendPayload(dst, options, depth+1)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", index, err)
		}
	}
	return dst, nil
}

// decodeList reads the element kind, the count, and count payloads.
// The first failing element aborts the whole list.
func decodeList(data []byte, offset int, depth int) (*List, int, error) {
	id, err := readUint8(data, offset)
	if err != nil {
		return nil, 0, err
	}
	kind, err := KindForID(id)
	if err != nil {
		return nil, 0, &DecodeError{Offset: offset, Err: err}
	}
	count, err := readCount(data, offset+1, header32)
	if err != nil {
		return nil, 0, err
	}
	// End payloads are empty, so a non-empty list of End would let a
	// five-byte input describe billions of elements.
	if kind == KindEnd && count > 0 {
		return nil, 0, &DecodeError{Offset: offset, Err: fmt.Errorf("list of %d end tags: %w", count, &UnrecognizedTagTypeIDError{ID: id})}
	}
	consumed := 5

	// Every non-End payload is at least one byte long, which bounds
	// the preallocation by the input size rather than the header.
	capacity := min(count, len(data)-offset-consumed)
	list := &List{elementKind: kind, tags: make([]Tag, 0, max(capacity, 0))}
	for index := range count {
		tag, size, err := decodePayload(kind, data, offset+consumed, depth+1)
		if err != nil {
			return nil, 0, fmt.Errorf("list element %d: %w", index, err)
		}
		list.tags = append(list.tags, tag)
		consumed += size
	}
	return list, consumed, nil
}
