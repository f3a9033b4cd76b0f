// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/nbt"
	"github.com/bureau-foundation/nbt/lib/tui"
)

type validateParams struct {
	nbtInputParams
	cli.JSONOutput
	Color string `json:"-" flag:"color" desc:"color output: auto, always, or never (default from config)"`
}

// validateReport is the result of checking one input. It is printed
// as text or, with --json, as-is.
type validateReport struct {
	Valid        bool   `json:"valid"`
	Input        string `json:"input"`
	Compression  string `json:"compression"`
	InputBytes   int    `json:"input_bytes"`
	DecodedBytes int    `json:"decoded_bytes"`
	Consumed     int    `json:"consumed"`
	Trailing     int    `json:"trailing"`
	Kind         string `json:"kind,omitempty"`
	Name         string `json:"name,omitempty"`
	Canonical    bool   `json:"canonical"`
	Error        string `json:"error,omitempty"`
	ErrorOffset  *int   `json:"error_offset,omitempty"`
}

func validateCommand(streams Streams) *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that a file holds one well-formed NBT root tag",
		Description: `Decode one NBT root tag and report what was found: its type and
name, the framing, how many bytes the tag used, and whether the bytes
are in canonical form (compound entries sorted by name, so that the
file is byte-identical to every other encoding of the same tree).

Exits 0 when the input is valid and 1 when it is not, after printing
the reason and the byte offset where decoding failed.`,
		Usage: "nbt validate [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Check a level file",
				Command:     "nbt validate level.dat",
			},
			{
				Description: "Machine-readable report",
				Command:     "nbt validate --json level.dat",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("validate", &params) },
		Run: func(args []string) error {
			return runValidate(streams, &params, args)
		},
	}
}

func runValidate(streams Streams, params *validateParams, args []string) error {
	raw, source, err := readInput(streams.In, args, params.HexInput)
	if err != nil {
		return err
	}
	session, err := openSession(streams, params.ConfigPath, "validate")
	if err != nil {
		return err
	}
	defer session.Close()

	report := checkInput(params, raw, source, session)
	session.logger.Info("validated input", "input", source, "valid", report.Valid)

	if done, err := params.EmitJSON(streams.Out, report); done {
		if err != nil {
			return err
		}
		return exitFor(report)
	}

	colorName := params.Color
	if colorName == "" {
		colorName = session.config.Output.Color
	}
	mode, err := tui.ParseColorMode(colorName)
	if err != nil {
		return err
	}
	styles := tui.NewStyles(tui.NewRenderer(streams.Out, mode), tui.DefaultTheme)

	if !report.Valid {
		fmt.Fprintf(streams.Out, "%s %s: %s\n", styles.Error.Render("invalid"), source, report.Error)
		return exitFor(report)
	}
	canonical := "not canonical"
	if report.Canonical {
		canonical = "canonical"
	}
	fmt.Fprintf(streams.Out, "%s %s: %s %q, %d bytes (%s), %s\n",
		styles.OK.Render("valid"), source, report.Kind, report.Name,
		report.Consumed, report.Compression, canonical)
	if report.Trailing > 0 {
		fmt.Fprintf(streams.Out, "  %s\n", styles.Faint.Render(fmt.Sprintf("%d trailing bytes ignored", report.Trailing)))
	}
	return nil
}

// checkInput decodes raw and fills in a report. It never fails; every
// problem becomes part of the report.
func checkInput(params *validateParams, raw []byte, source string, session *session) validateReport {
	report := validateReport{Input: source, InputBytes: len(raw), Compression: "unknown"}

	root, err := params.load(raw, session.config)
	if root != nil {
		report.Compression = root.compression.String()
		report.DecodedBytes = len(root.data)
		report.Consumed = root.consumed
		report.Trailing = root.trailing()
		if root.tag != nil {
			report.Kind = root.tag.Kind().String()
			report.Name = string(root.name)
		}
	}
	if err != nil {
		report.Error = err.Error()
		var decodeErr *nbt.DecodeError
		if errors.As(err, &decodeErr) {
			offset := decodeErr.Offset
			report.ErrorOffset = &offset
		}
		return report
	}

	report.Valid = true
	canonical, err := nbt.AppendCanonicalRoot(nil, root.tag, root.name)
	report.Canonical = err == nil && bytes.Equal(canonical, root.data[:root.consumed])
	return report
}

func exitFor(report validateReport) error {
	if report.Valid {
		return nil
	}
	return &cli.ExitError{Code: 1}
}
