// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"fmt"
	"iter"
	"slices"
)

// Compound is a mapping from names to tags. Each name maps to exactly
// one tag. Iteration and encoding follow insertion order, so a decoded
// compound re-encodes to the bytes it came from; order carries no
// meaning for [Equal].
//
// The zero value is an empty compound ready to use. A Compound is not
// safe for concurrent mutation.
type Compound struct {
	names   []String
	entries map[String]Tag
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{entries: make(map[String]Tag)}
}

func (*Compound) Kind() Kind { return KindCompound }

// Len returns the number of entries.
func (compound *Compound) Len() int {
	return len(compound.names)
}

// Get returns the tag stored under name.
func (compound *Compound) Get(name String) (Tag, bool) {
	tag, ok := compound.entries[name]
	return tag, ok
}

// Has reports whether name is present.
func (compound *Compound) Has(name String) bool {
	_, ok := compound.entries[name]
	return ok
}

// Set stores tag under name. Replacing an existing entry keeps its
// position in iteration order.
func (compound *Compound) Set(name String, tag Tag) {
	if compound.entries == nil {
		compound.entries = make(map[String]Tag)
	}
	if _, exists := compound.entries[name]; !exists {
		compound.names = append(compound.names, name)
	}
	compound.entries[name] = tag
}

// Delete removes name and returns the tag that was stored under it.
func (compound *Compound) Delete(name String) (Tag, bool) {
	tag, ok := compound.entries[name]
	if !ok {
		return nil, false
	}
	delete(compound.entries, name)
	compound.names = slices.DeleteFunc(compound.names, func(candidate String) bool {
		return candidate == name
	})
	return tag, true
}

// Names returns the entry names in iteration order.
func (compound *Compound) Names() []String {
	return slices.Clone(compound.names)
}

// All iterates over entries in insertion order.
func (compound *Compound) All() iter.Seq2[String, Tag] {
	return func(yield func(String, Tag) bool) {
		for _, name := range compound.names {
			if !yield(name, compound.entries[name]) {
				return
			}
		}
	}
}

// Lookup returns the entry under name if it exists and has type T:
//
//	level, ok := nbt.Lookup[*nbt.Compound](root, "Level")
//	version, ok := nbt.Lookup[nbt.Int](root, "DataVersion")
func Lookup[T Tag](compound *Compound, name String) (T, bool) {
	tag, ok := compound.entries[name]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := tag.(T)
	return typed, ok
}

func (compound *Compound) appendPayload(dst []byte, options encodeOptions, depth int) ([]byte, error) {
	if depth >= MaxDepth {
		return nil, ErrMaxDepth
	}
	names := compound.names
	if options.sortNames {
		names = slices.Clone(names)
		slices.Sort(names)
	}
	var err error
	for _, name := range names {
		tag := compound.entries[name]
		dst, err = appendEntry(dst, name, tag, options, depth)
		if err != nil {
			return nil, fmt.Errorf("compound entry %q: %w", name, err)
		}
	}
	return append(dst, byte(KindEnd)), nil
}

// appendEntry writes one (type byte, name, payload) triple.
func appendEntry(dst []byte, name String, tag Tag, options encodeOptions, depth int) ([]byte, error) {
	if tag == nil {
		return nil, ErrNilTag
	}
	if tag.Kind() == KindEnd {
		return nil, ErrMisplacedEnd
	}
	id, err := IDForKind(tag.Kind())
	if err != nil {
		return nil, err
	}
	dst = append(dst, id)
	if dst, err = appendString(dst, name); err != nil {
		return nil, err
	}
	return tag.appendPayload(dst, options, depth+1)
}

// decodeCompound reads entries until the End terminator, which is
// counted in the consumed length. A repeated name replaces the
// earlier value.
func decodeCompound(data []byte, offset int, depth int) (*Compound, int, error) {
	compound := NewCompound()
	consumed := 0
	for {
		id, err := readUint8(data, offset+consumed)
		if err != nil {
			return nil, 0, fmt.Errorf("compound missing end tag after %d entries: %w", compound.Len(), err)
		}
		if id == byte(KindEnd) {
			return compound, consumed + 1, nil
		}
		kind, err := KindForID(id)
		if err != nil {
			return nil, 0, &DecodeError{Offset: offset + consumed, Err: err}
		}
		consumed++

		name, size, err := decodeString(data, offset+consumed)
		if err != nil {
			return nil, 0, fmt.Errorf("compound entry name: %w", err)
		}
		consumed += size

		tag, size, err := decodePayload(kind, data, offset+consumed, depth+1)
		if err != nil {
			return nil, 0, fmt.Errorf("compound entry %q: %w", name, err)
		}
		consumed += size

		compound.Set(name, tag)
	}
}
