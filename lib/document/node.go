// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// Node is one NBT tag in document form. Which value field is set
// depends on Type; the others are empty.
type Node struct {
	// Type is the lower-case kind name ("compound", "int_array").
	Type string `json:"type" yaml:"type"`

	// Name is the root or compound entry name. List elements have
	// no name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// NameRaw holds the name bytes when they are not valid UTF-8.
	// It takes precedence over Name.
	NameRaw []byte `json:"name_raw,omitempty" yaml:"name_raw,omitempty"`

	// Int holds byte, short, int and long values.
	Int *int64 `json:"int,omitempty" yaml:"int,omitempty"`

	// Float holds float and double values when they are finite. It
	// is for reading; Bits is authoritative when both are present.
	Float *float64 `json:"float,omitempty" yaml:"float,omitempty"`

	// Bits is the IEEE-754 bit pattern of a float or double as a
	// 0x-prefixed hex string.
	Bits string `json:"bits,omitempty" yaml:"bits,omitempty"`

	// String holds a string value that is valid UTF-8.
	String *string `json:"string,omitempty" yaml:"string,omitempty"`

	// Raw holds a string value that is not valid UTF-8.
	Raw []byte `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Bytes holds a byte_array payload.
	Bytes []byte `json:"bytes,omitempty" yaml:"bytes,omitempty"`

	// Ints holds int_array and long_array elements.
	Ints []int64 `json:"ints,omitempty" yaml:"ints,omitempty"`

	// ElementType is the element kind of a list. Empty means "end"
	// for an empty list, or the type of the first item otherwise.
	ElementType string `json:"element_type,omitempty" yaml:"element_type,omitempty"`

	// Items holds list elements.
	Items []*Node `json:"items,omitempty" yaml:"items,omitempty"`

	// Entries holds compound entries in order.
	Entries []*Node `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// FromTag converts a tag named name into a document node.
func FromTag(name nbt.String, tag nbt.Tag) *Node {
	node := fromTag(tag)
	setName(node, name)
	return node
}

func setName(node *Node, name nbt.String) {
	if name.Valid() {
		node.Name = string(name)
	} else {
		node.NameRaw = name.Bytes()
	}
}

func fromTag(tag nbt.Tag) *Node {
	node := &Node{Type: tag.Kind().Name()}
	switch value := tag.(type) {
	case nbt.End:
	case nbt.Byte:
		node.Int = integer(int64(value))
	case nbt.Short:
		node.Int = integer(int64(value))
	case nbt.Int:
		node.Int = integer(int64(value))
	case nbt.Long:
		node.Int = integer(int64(value))
	case nbt.Float:
		node.Bits = fmt.Sprintf("0x%08x", math.Float32bits(float32(value)))
		node.Float = finite(float64(value))
	case nbt.Double:
		node.Bits = fmt.Sprintf("0x%016x", math.Float64bits(float64(value)))
		node.Float = finite(float64(value))
	case nbt.String:
		if value.Valid() {
			text := string(value)
			node.String = &text
		} else {
			node.Raw = value.Bytes()
		}
	case nbt.ByteArray:
		node.Bytes = bytes.Clone(value)
	case nbt.IntArray:
		node.Ints = make([]int64, len(value))
		for index, element := range value {
			node.Ints[index] = int64(element)
		}
	case nbt.LongArray:
		node.Ints = make([]int64, len(value))
		copy(node.Ints, value)
	case *nbt.List:
		node.ElementType = value.ElementKind().Name()
		for _, element := range value.All() {
			node.Items = append(node.Items, fromTag(element))
		}
	case *nbt.Compound:
		for name, element := range value.All() {
			entry := fromTag(element)
			setName(entry, name)
			node.Entries = append(node.Entries, entry)
		}
	}
	return node
}

func integer(value int64) *int64 {
	return &value
}

// finite returns a pointer to value, or nil for NaN and infinities,
// which JSON cannot represent.
func finite(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// Tag converts the node back into a name and tag.
func (node *Node) Tag() (nbt.String, nbt.Tag, error) {
	tag, err := node.tag()
	if err != nil {
		return "", nil, err
	}
	return node.name(), tag, nil
}

func (node *Node) name() nbt.String {
	if node.NameRaw != nil {
		return nbt.StringFromBytes(node.NameRaw)
	}
	return nbt.NewString(node.Name)
}

func (node *Node) tag() (nbt.Tag, error) {
	if node == nil {
		return nil, fmt.Errorf("null node")
	}
	kind, err := nbt.ParseKind(node.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case nbt.KindEnd:
		return nbt.End{}, nil

	case nbt.KindByte:
		value, err := node.integer(math.MinInt8, math.MaxInt8)
		return nbt.Byte(value), err

	case nbt.KindShort:
		value, err := node.integer(math.MinInt16, math.MaxInt16)
		return nbt.Short(value), err

	case nbt.KindInt:
		value, err := node.integer(math.MinInt32, math.MaxInt32)
		return nbt.Int(value), err

	case nbt.KindLong:
		value, err := node.integer(math.MinInt64, math.MaxInt64)
		return nbt.Long(value), err

	case nbt.KindFloat:
		if node.Bits != "" {
			bits, err := parseBits(node.Bits, 32)
			return nbt.Float(math.Float32frombits(uint32(bits))), err
		}
		if node.Float == nil {
			return nil, fmt.Errorf("float node has neither \"bits\" nor \"float\"")
		}
		return nbt.Float(float32(*node.Float)), nil

	case nbt.KindDouble:
		if node.Bits != "" {
			bits, err := parseBits(node.Bits, 64)
			return nbt.Double(math.Float64frombits(bits)), err
		}
		if node.Float == nil {
			return nil, fmt.Errorf("double node has neither \"bits\" nor \"float\"")
		}
		return nbt.Double(*node.Float), nil

	case nbt.KindString:
		switch {
		case node.String != nil:
			return nbt.NewString(*node.String), nil
		case node.Raw != nil:
			return nbt.StringFromBytes(node.Raw), nil
		default:
			return nbt.String(""), nil
		}

	case nbt.KindByteArray:
		return nbt.ByteArray(bytes.Clone(node.Bytes)), nil

	case nbt.KindIntArray:
		values := make(nbt.IntArray, len(node.Ints))
		for index, element := range node.Ints {
			if element < math.MinInt32 || element > math.MaxInt32 {
				return nil, fmt.Errorf("ints[%d]: %d out of range for int_array", index, element)
			}
			values[index] = int32(element)
		}
		return values, nil

	case nbt.KindLongArray:
		values := make(nbt.LongArray, len(node.Ints))
		copy(values, node.Ints)
		return values, nil

	case nbt.KindList:
		return node.list()

	case nbt.KindCompound:
		return node.compound()
	}
	return nil, fmt.Errorf("unsupported type %q", node.Type)
}

// integer returns the Int field after checking it against the range
// of the node's type.
func (node *Node) integer(minimum, maximum int64) (int64, error) {
	if node.Int == nil {
		return 0, fmt.Errorf("%s node has no \"int\" value", node.Type)
	}
	value := *node.Int
	if value < minimum || value > maximum {
		return 0, fmt.Errorf("%d out of range for %s", value, node.Type)
	}
	return value, nil
}

func (node *Node) list() (nbt.Tag, error) {
	elementKind := nbt.KindEnd
	if node.ElementType != "" {
		kind, err := nbt.ParseKind(node.ElementType)
		if err != nil {
			return nil, fmt.Errorf("element_type: %w", err)
		}
		elementKind = kind
	}

	tags := make([]nbt.Tag, 0, len(node.Items))
	for index, item := range node.Items {
		tag, err := item.tag()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", index, err)
		}
		tags = append(tags, tag)
	}
	list, err := nbt.NewList(elementKind, tags...)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (node *Node) compound() (nbt.Tag, error) {
	compound := nbt.NewCompound()
	for index, entry := range node.Entries {
		if entry == nil {
			return nil, fmt.Errorf("entries[%d]: null node", index)
		}
		tag, err := entry.tag()
		if err != nil {
			return nil, fmt.Errorf("entries[%d] %q: %w", index, entry.Name, err)
		}
		compound.Set(entry.name(), tag)
	}
	return compound, nil
}

// parseBits parses a 0x-prefixed hex bit pattern of the given width.
func parseBits(text string, width int) (uint64, error) {
	digits, ok := strings.CutPrefix(text, "0x")
	if !ok {
		return 0, fmt.Errorf("bits %q: missing 0x prefix", text)
	}
	bits, err := strconv.ParseUint(digits, 16, width)
	if err != nil {
		return 0, fmt.Errorf("bits %q: %w", text, err)
	}
	return bits, nil
}
