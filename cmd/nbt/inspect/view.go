// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/tui"
)

type viewParams struct {
	nbtInputParams
	MaxItems int `json:"-" flag:"max-items" desc:"elements shown per list or array; 0 shows all" default:"0"`
}

func viewCommand(streams Streams) *cli.Command {
	var params viewParams

	return &cli.Command{
		Name:    "view",
		Summary: "Browse an NBT file full-screen",
		Description: `Show the tree that "nbt dump" prints in a scrolling full-screen
viewer. Navigate with j/k or the arrow keys, C-d/C-u or page up/down,
g/G for top and bottom, and the mouse wheel. Press q to quit.

Standard output must be a terminal. When the file is read from stdin,
keys are read from the controlling terminal.`,
		Usage: "nbt view [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Browse a level file",
				Command:     "nbt view level.dat",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("view", &params) },
		Run: func(args []string) error {
			return runView(streams, &params, args)
		},
	}
}

func runView(streams Streams, params *viewParams, args []string) error {
	if !cli.IsTerminal(streams.Out) {
		return fmt.Errorf("view needs a terminal on stdout; use \"nbt dump\" instead")
	}
	raw, source, err := readInput(streams.In, args, params.HexInput)
	if err != nil {
		return err
	}
	session, err := openSession(streams, params.ConfigPath, "view")
	if err != nil {
		return err
	}
	defer session.Close()

	root, err := params.load(raw, session.config)
	if err != nil {
		return err
	}
	session.logger.Debug("decoded input", "input", source, "compression", root.compression.String())

	styles := tui.NewStyles(tui.NewRenderer(streams.Out, tui.ColorAuto), tui.DefaultTheme)
	content := renderTree(styles, params.MaxItems, 0, root.name, root.tag)
	title := fmt.Sprintf("%s  %s %q (%s)", source, root.tag.Kind(), string(root.name), root.compression)

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(streams.Out)}
	if source == "-" {
		options = append(options, tea.WithInputTTY())
	}
	program := tea.NewProgram(tui.NewViewer(title, content, styles), options...)
	_, err = program.Run()
	return err
}
