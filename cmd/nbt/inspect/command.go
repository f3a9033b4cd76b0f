// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/tui"
)

// Commands returns the inspect command set bound to streams.
func Commands(streams Streams) []*cli.Command {
	return []*cli.Command{
		decodeCommand(streams),
		encodeCommand(streams),
		dumpCommand(streams),
		validateCommand(streams),
		hashCommand(streams),
		viewCommand(streams),
	}
}

// refuseBinaryTerminal fails when binary output would be written to a
// terminal.
func refuseBinaryTerminal(w io.Writer, what string) error {
	if cli.IsTerminal(w) {
		return fmt.Errorf("refusing to write %s to a terminal; redirect stdout", what)
	}
	return nil
}

// colorEnabled resolves a color mode against the writer it applies to.
func colorEnabled(mode tui.ColorMode, w io.Writer) bool {
	switch mode {
	case tui.ColorAlways:
		return true
	case tui.ColorNever:
		return false
	}
	return cli.IsTerminal(w)
}
