// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/nbt"
	"github.com/bureau-foundation/nbt/lib/tui"
)

type dumpParams struct {
	nbtInputParams
	Color    string `json:"-" flag:"color" desc:"color output: auto, always, or never (default from config)"`
	MaxItems int    `json:"-" flag:"max-items" desc:"elements shown per list or array; 0 shows all" default:"64"`
	Width    int    `json:"-" flag:"width" desc:"cut lines to this many columns; 0 disables"`
}

func dumpCommand(streams Streams) *cli.Command {
	var params dumpParams

	return &cli.Command{
		Name:    "dump",
		Summary: "Print an NBT file as an indented tree",
		Description: `Print one NBT root tag as an indented tree, one tag per line.

Each line shows the tag type, its name (or [index] inside a list), and
its value. Long lists and arrays are cut after --max-items elements.
Floats whose value has no short decimal form (NaN, infinities) are shown
with their bit pattern.

Tag types are colored when stdout is a terminal; --color overrides.`,
		Usage: "nbt dump [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Show a level file",
				Command:     "nbt dump level.dat",
			},
			{
				Description: "Page through a large file with colors",
				Command:     "nbt dump --color always --max-items 0 region-chunk.nbt | less -R",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("dump", &params) },
		Run: func(args []string) error {
			return runDump(streams, &params, args)
		},
	}
}

func runDump(streams Streams, params *dumpParams, args []string) error {
	raw, source, err := readInput(streams.In, args, params.HexInput)
	if err != nil {
		return err
	}
	session, err := openSession(streams, params.ConfigPath, "dump")
	if err != nil {
		return err
	}
	defer session.Close()

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
	session.logger.Debug("decoded input", "input", source, "compression", root.compression.String())

	styles := tui.NewStyles(tui.NewRenderer(streams.Out, mode), tui.DefaultTheme)
	_, err = fmt.Fprint(streams.Out, renderTree(styles, params.MaxItems, params.Width, root.name, root.tag))
	return err
}

// renderTree renders a root tag one line per tag. Lists and arrays
// show at most maxItems elements; width, when positive, cuts every
// line to that many columns.
func renderTree(styles *tui.Styles, maxItems, width int, name nbt.String, tag nbt.Tag) string {
	printer := &treePrinter{styles: styles, maxItems: maxItems, width: width}
	printer.tag(0, printer.quoted(name), tag)
	return printer.output.String()
}

// treePrinter renders a tag tree one line per tag.
type treePrinter struct {
	styles   *tui.Styles
	maxItems int
	width    int
	output   strings.Builder
}

func (printer *treePrinter) emit(line string) {
	if printer.width > 0 {
		line = ansi.Truncate(line, printer.width, "…")
	}
	printer.output.WriteString(line)
	printer.output.WriteString("\n")
}

// quoted renders a name as a quoted, styled label. Invalid UTF-8 is
// shown with \x escapes.
func (printer *treePrinter) quoted(name nbt.String) string {
	return printer.styles.Name.Render(strconv.Quote(string(name)))
}

func (printer *treePrinter) line(depth int, kind nbt.Kind, label, detail string) {
	var line strings.Builder
	line.WriteString(strings.Repeat("  ", depth))
	line.WriteString(printer.styles.Kind(kind).Render(kind.Name()))
	if label != "" {
		line.WriteString(" ")
		line.WriteString(label)
	}
	line.WriteString(detail)
	printer.emit(line.String())
}

// shown returns how many of count elements to print.
func (printer *treePrinter) shown(count int) int {
	if printer.maxItems <= 0 || count <= printer.maxItems {
		return count
	}
	return printer.maxItems
}

func (printer *treePrinter) elided(depth, count int) {
	if hidden := count - printer.shown(count); hidden > 0 {
		printer.emit(strings.Repeat("  ", depth) + printer.styles.Faint.Render(fmt.Sprintf("... (%d more)", hidden)))
	}
}

func (printer *treePrinter) value(text string) string {
	return ": " + printer.styles.Value.Render(text)
}

func (printer *treePrinter) faint(text string) string {
	return " " + printer.styles.Faint.Render(text)
}

func (printer *treePrinter) tag(depth int, label string, tag nbt.Tag) {
	kind := tag.Kind()
	switch value := tag.(type) {
	case nbt.End:
		printer.line(depth, kind, label, "")
	case nbt.Byte:
		printer.line(depth, kind, label, printer.value(strconv.FormatInt(int64(value), 10)))
	case nbt.Short:
		printer.line(depth, kind, label, printer.value(strconv.FormatInt(int64(value), 10)))
	case nbt.Int:
		printer.line(depth, kind, label, printer.value(strconv.FormatInt(int64(value), 10)))
	case nbt.Long:
		printer.line(depth, kind, label, printer.value(strconv.FormatInt(int64(value), 10)))
	case nbt.Float:
		printer.line(depth, kind, label, printer.value(formatFloat(float64(value), 32, uint64(math.Float32bits(float32(value))))))
	case nbt.Double:
		printer.line(depth, kind, label, printer.value(formatFloat(float64(value), 64, math.Float64bits(float64(value)))))
	case nbt.String:
		printer.line(depth, kind, label, printer.value(strconv.Quote(string(value))))
	case nbt.ByteArray:
		shown := printer.shown(len(value))
		parts := make([]string, shown)
		for index := range shown {
			parts[index] = fmt.Sprintf("%02x", value[index])
		}
		printer.line(depth, kind, label, printer.faint(fmt.Sprintf("(%d bytes)", len(value)))+printer.elements(parts, len(value)))
	case nbt.IntArray:
		shown := printer.shown(len(value))
		parts := make([]string, shown)
		for index := range shown {
			parts[index] = strconv.FormatInt(int64(value[index]), 10)
		}
		printer.line(depth, kind, label, printer.faint(fmt.Sprintf("[%d]", len(value)))+printer.elements(parts, len(value)))
	case nbt.LongArray:
		shown := printer.shown(len(value))
		parts := make([]string, shown)
		for index := range shown {
			parts[index] = strconv.FormatInt(value[index], 10)
		}
		printer.line(depth, kind, label, printer.faint(fmt.Sprintf("[%d]", len(value)))+printer.elements(parts, len(value)))
	case *nbt.List:
		detail := fmt.Sprintf("of %s (%d %s)", value.ElementKind().Name(), value.Len(), plural(value.Len(), "item", "items"))
		printer.line(depth, kind, label, printer.faint(detail))
		for index, element := range value.Slice(0, printer.shown(value.Len())) {
			printer.tag(depth+1, printer.styles.Faint.Render(fmt.Sprintf("[%d]", index)), element)
		}
		printer.elided(depth+1, value.Len())
	case *nbt.Compound:
		detail := fmt.Sprintf("(%d %s)", value.Len(), plural(value.Len(), "entry", "entries"))
		printer.line(depth, kind, label, printer.faint(detail))
		for name, element := range value.All() {
			printer.tag(depth+1, printer.quoted(name), element)
		}
	}
}

// elements joins array elements, noting how many were cut.
func (printer *treePrinter) elements(parts []string, total int) string {
	if total == 0 {
		return ""
	}
	text := strings.Join(parts, " ")
	if hidden := total - len(parts); hidden > 0 {
		text += printer.styles.Faint.Render(fmt.Sprintf(" ... (%d more)", hidden))
	}
	return printer.value(text)
}

// formatFloat prints the shortest decimal that round-trips at the
// given width. NaN and infinities also show their bit pattern, since
// NaN payloads are otherwise invisible.
func formatFloat(value float64, bitSize int, bits uint64) string {
	text := strconv.FormatFloat(value, 'g', -1, bitSize)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		digits := bitSize / 4
		return fmt.Sprintf("%s (0x%0*x)", text, digits, bits)
	}
	return text
}

func plural(count int, singular, multiple string) string {
	if count == 1 {
		return singular
	}
	return multiple
}
