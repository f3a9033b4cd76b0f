// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/nbt/lib/codec"
)

// Format is a document serialization.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatCBOR
)

var formatNames = [...]string{
	FormatJSON: "json",
	FormatYAML: "yaml",
	FormatCBOR: "cbor",
}

func (format Format) String() string {
	if format >= 0 && int(format) < len(formatNames) {
		return formatNames[format]
	}
	return fmt.Sprintf("Format(%d)", int(format))
}

// ParseFormat returns the format with the given name. "yml" is
// accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("unknown document format %q (want json, yaml, or cbor)", name)
}

// Marshal serializes node. compact selects single-line JSON; it has
// no effect on YAML or CBOR.
func Marshal(node *Node, format Format, compact bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		var data []byte
		var err error
		if compact {
			data, err = json.Marshal(node)
		} else {
			data, err = json.MarshalIndent(node, "", "  ")
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case FormatYAML:
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		encoder.SetIndent(2)
		if err := encoder.Encode(node); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buffer.Bytes(), nil

	case FormatCBOR:
		return codec.Marshal(node)
	}
	return nil, fmt.Errorf("unsupported document format %v", format)
}

// Unmarshal parses a document. Unknown fields are rejected in JSON
// and YAML. JSON input may contain comments and trailing commas.
func Unmarshal(data []byte, format Format) (*Node, error) {
	var node Node
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&node); err != nil {
			return nil, fmt.Errorf("parsing JSON document: %w", err)
		}
		if decoder.More() {
			return nil, fmt.Errorf("parsing JSON document: trailing data after document")
		}

	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&node); err != nil {
			return nil, fmt.Errorf("parsing YAML document: %w", err)
		}

	case FormatCBOR:
		if err := codec.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("parsing CBOR document: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported document format %v", format)
	}
	return &node, nil
}
