// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/codec"
	"github.com/bureau-foundation/nbt/lib/document"
	"github.com/bureau-foundation/nbt/lib/tui"
)

type decodeParams struct {
	nbtInputParams
	Format  string `json:"-" flag:"format,f" desc:"document format: json, yaml, or cbor (default from config)"`
	Compact bool   `json:"-" flag:"compact,c" desc:"single-line JSON output"`
	Color   string `json:"-" flag:"color" desc:"highlight JSON and YAML: auto, always, or never (default from config)"`
}

func decodeCommand(streams Streams) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert an NBT file to a JSON, YAML, or CBOR document",
		Description: `Read one NBT root tag and write it as a typed document.

The document keeps everything the binary form carries: every node names
its tag type, integers keep their width, floats carry their exact bit
pattern, compound entries keep their order, and names or strings that
are not valid UTF-8 are kept as raw bytes. "nbt encode" turns the
document back into the identical NBT bytes.

JSON and YAML written to a terminal are syntax-highlighted; CBOR
written to a terminal is shown in diagnostic notation (RFC 8949 §8).
Compressed input is detected automatically. Bytes after the root tag
are an error unless --allow-trailing is given.`,
		Usage: "nbt decode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a gzipped level file to JSON",
				Command:     "nbt decode level.dat",
			},
			{
				Description: "Decode to YAML",
				Command:     "nbt decode -f yaml player.dat",
			},
			{
				Description: "Decode hex bytes from a bug report",
				Command:     "echo '0a 0000 00' | nbt decode --hex",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("decode", &params) },
		Run: func(args []string) error {
			return runDecode(streams, &params, args)
		},
	}
}

func runDecode(streams Streams, params *decodeParams, args []string) error {
	raw, source, err := readInput(streams.In, args, params.HexInput)
	if err != nil {
		return err
	}
	session, err := openSession(streams, params.ConfigPath, "decode")
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
	colorName := params.Color
	if colorName == "" {
		colorName = session.config.Output.Color
	}
	mode, err := tui.ParseColorMode(colorName)
	if err != nil {
		return err
	}

	root, err := params.load(raw, session.config)
	if err != nil {
		return err
	}
	session.logger.Debug("decoded input",
		"input", source,
		"compression", root.compression.String(),
		"bytes", root.inputBytes,
		"consumed", root.consumed,
		"root_kind", root.tag.Kind().Name(),
	)

	output, err := document.Marshal(document.FromTag(root.name, root.tag), format,
		params.Compact || session.config.Output.Compact)
	if err != nil {
		return err
	}
	switch {
	case format == document.FormatCBOR && cli.IsTerminal(streams.Out):
		output, err = cborDiagnostic(output)
		if err != nil {
			return err
		}
	case format != document.FormatCBOR && colorEnabled(mode, streams.Out):
		output = []byte(tui.Highlight(string(output), format.String()))
	}
	_, err = streams.Out.Write(output)
	return err
}

// cborDiagnostic replaces binary CBOR with its diagnostic notation,
// which is what a terminal gets instead of raw bytes.
func cborDiagnostic(data []byte) ([]byte, error) {
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return nil, fmt.Errorf("CBOR diagnostic notation: %w", err)
	}
	return []byte(diagnostic + "\n"), nil
}
