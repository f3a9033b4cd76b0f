// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/bureau-foundation/nbt/lib/compress"
	"github.com/bureau-foundation/nbt/lib/config"
	"github.com/bureau-foundation/nbt/lib/nbt"
)

// commonParams are the flags every command accepts.
type commonParams struct {
	ConfigPath string `json:"-" flag:"config" desc:"configuration file (default: $NBT_CONFIG, else built-in defaults)"`
	HexInput   bool   `json:"-" flag:"hex,x" desc:"treat input as hex-encoded; whitespace is ignored"`
}

// nbtInputParams are the flags of commands that read an NBT file.
type nbtInputParams struct {
	commonParams
	Compression   string `json:"-" flag:"compression" desc:"input framing: auto, none, gzip, zlib, zstd, or lz4" default:"auto"`
	AllowTrailing bool   `json:"-" flag:"allow-trailing" desc:"accept bytes after the root tag"`
	MaxSize       int64  `json:"-" flag:"max-size" desc:"decompressed size limit in bytes (default from config)"`
}

// readInput returns the bytes of the file named by args, or of in
// when args is empty or "-". At most one positional argument is
// accepted. With hexMode the bytes are hex text and are decoded.
func readInput(in io.Reader, args []string, hexMode bool) ([]byte, string, error) {
	if len(args) > 1 {
		return nil, "", fmt.Errorf("expected at most one input file, got %d arguments", len(args))
	}

	source := "-"
	var data []byte
	if len(args) == 1 && args[0] != "-" {
		source = args[0]
		var err error
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", source, err)
		}
	} else {
		var err error
		data, err = io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
	}

	if hexMode {
		decoded, err := decodeHexInput(data)
		if err != nil {
			return nil, "", err
		}
		data = decoded
	}
	return data, source, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it. Whitespace between digit pairs is allowed ("0a 00 0b" or "0a000b").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// loadedRoot is a decoded input file and what was learned reading it.
type loadedRoot struct {
	name        nbt.String
	tag         nbt.Tag
	compression compress.Format
	inputBytes  int
	data        []byte
	consumed    int
}

// trailing returns the number of bytes after the root tag.
func (root *loadedRoot) trailing() int {
	return len(root.data) - root.consumed
}

// unframe removes compression from raw as the flags and config ask.
func (params *nbtInputParams) unframe(raw []byte, cfg *config.Config) ([]byte, compress.Format, error) {
	limit := params.MaxSize
	if limit <= 0 {
		limit = cfg.Input.MaxDecompressedSize
	}

	if params.Compression == "auto" || params.Compression == "" {
		data, format, err := compress.DecompressLimit(raw, limit)
		if err != nil {
			return nil, format, fmt.Errorf("decompress %s input: %w", format, err)
		}
		return data, format, nil
	}

	format, err := compress.ParseFormat(params.Compression)
	if err != nil {
		return nil, 0, err
	}
	data, err := compress.DecompressAs(raw, format, limit)
	if err != nil {
		return nil, format, fmt.Errorf("decompress %s input: %w", format, err)
	}
	return data, format, nil
}

// load decompresses raw and decodes one root tag from it. Bytes after
// the root are an error unless trailing data is allowed by flag or
// config. The returned root is non-nil whenever decompression
// succeeded, so callers can report how far decoding got.
func (params *nbtInputParams) load(raw []byte, cfg *config.Config) (*loadedRoot, error) {
	data, format, err := params.unframe(raw, cfg)
	if err != nil {
		return nil, err
	}
	root := &loadedRoot{compression: format, inputBytes: len(raw), data: data}
	if len(data) == 0 {
		return root, fmt.Errorf("empty input: expected an NBT root tag")
	}

	root.name, root.tag, root.consumed, err = nbt.DecodeRoot(data)
	if err != nil {
		return root, fmt.Errorf("decode: %w", err)
	}
	if root.trailing() > 0 && !params.AllowTrailing && !cfg.Input.AllowTrailing {
		return root, fmt.Errorf("%d trailing bytes after the root tag at offset %d (use --allow-trailing to ignore)",
			root.trailing(), root.consumed)
	}
	return root, nil
}
