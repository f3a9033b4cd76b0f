// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/compress"
	"github.com/bureau-foundation/nbt/lib/document"
	"github.com/bureau-foundation/nbt/lib/nbt"
)

type encodeParams struct {
	commonParams
	Format      string `json:"-" flag:"format,f" desc:"document format: json, yaml, or cbor (default from config)"`
	Compression string `json:"-" flag:"compression,z" desc:"output framing: none, gzip, zlib, zstd, or lz4 (default from config)"`
	Output      string `json:"-" flag:"output,o" desc:"write to this file instead of stdout"`
	Canonical   bool   `json:"-" flag:"canonical" desc:"sort compound entries by name"`
}

func encodeCommand(streams Streams) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert a JSON, YAML, or CBOR document to an NBT file",
		Description: `Read a typed document (the form "nbt decode" writes) and encode it
as NBT.

JSON documents may contain comments and trailing commas. Hand-written
documents may give a float as "float" alone; "bits", when present, is
authoritative. Integers out of range for their tag type are rejected.

The output is compressed with --compression (default from config,
normally gzip). With --canonical, compound entries are written in name
order so that equal trees always produce equal bytes.`,
		Usage: "nbt encode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Round-trip a level file through YAML",
				Command:     "nbt decode -f yaml level.dat > level.yaml && nbt encode -f yaml -o level.dat level.yaml",
			},
			{
				Description: "Write uncompressed NBT",
				Command:     "nbt encode -z none -o raw.nbt doc.json",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("encode", &params) },
		Run: func(args []string) error {
			return runEncode(streams, &params, args)
		},
	}
}

func runEncode(streams Streams, params *encodeParams, args []string) error {
	raw, source, err := readInput(streams.In, args, params.HexInput)
	if err != nil {
		return err
	}
	session, err := openSession(streams, params.ConfigPath, "encode")
	if err != nil {
		return err
	}
	defer session.Close()

	formatName := params.Format
	if formatName == "" {
		formatName = session.config.Output.Format
	}
	format, err := document.ParseFormat(formatName)
	if err != nil {
		return err
	}
	compressionName := params.Compression
	if compressionName == "" {
		compressionName = session.config.Encode.Compression
	}
	compression, err := compress.ParseFormat(compressionName)
	if err != nil {
		return err
	}

	node, err := document.Unmarshal(raw, format)
	if err != nil {
		return err
	}
	name, tag, err := node.Tag()
	if err != nil {
		return fmt.Errorf("document %s: %w", source, err)
	}

	var encoded []byte
	if params.Canonical {
		encoded, err = nbt.AppendCanonicalRoot(nil, tag, name)
	} else {
		encoded, err = nbt.EncodeRoot(tag, name)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	framed, err := compress.Compress(encoded, compression)
	if err != nil {
		return err
	}
	session.logger.Debug("encoded document",
		"input", source,
		"format", format.String(),
		"compression", compression.String(),
		"raw_bytes", len(encoded),
		"bytes", len(framed),
	)

	if params.Output != "" {
		return os.WriteFile(params.Output, framed, 0o644)
	}
	if err := refuseBinaryTerminal(streams.Out, "binary NBT"); err != nil {
		return err
	}
	_, err = streams.Out.Write(framed)
	return err
}
