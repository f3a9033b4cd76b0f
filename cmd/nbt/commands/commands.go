// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete nbt command tree.
package commands

import (
	"fmt"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/cmd/nbt/inspect"
	"github.com/bureau-foundation/nbt/lib/version"
)

// Root builds and returns the nbt command tree writing to streams.
func Root(streams inspect.Streams) *cli.Command {
	subcommands := inspect.Commands(streams)
	subcommands = append(subcommands, &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version takes no arguments, got %q", args[0])
			}
			_, err := fmt.Fprintf(streams.Out, "nbt %s\n", version.Full())
			return err
		},
	})

	return &cli.Command{
		Name: "nbt",
		Description: `nbt: read, write, and check Named Binary Tag files.

NBT is the tagged binary tree format of Minecraft saves and network
packets. These commands convert it to and from JSON, YAML, and CBOR
documents without losing any detail, print it as a tree, validate it,
and fingerprint it.`,
		HelpOutput:  streams.Err,
		Subcommands: subcommands,
		Examples: []cli.Example{
			{
				Description: "Look inside a save file",
				Command:     "nbt dump level.dat",
			},
			{
				Description: "Edit a file through YAML",
				Command:     "nbt decode -f yaml level.dat > level.yaml && $EDITOR level.yaml && nbt encode -f yaml -o level.dat level.yaml",
			},
			{
				Description: "Check whether two files hold the same tree",
				Command:     "nbt hash a.dat b.dat.zst",
			},
		},
	}
}
