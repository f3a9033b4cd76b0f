// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command nbt reads, writes, and checks Named Binary Tag files.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/nbt/cmd/nbt/commands"
	"github.com/bureau-foundation/nbt/cmd/nbt/inspect"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own report (like validate) return
		// an error carrying the exit code. No extra "error:" line for
		// those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root(inspect.StandardStreams()).Execute(os.Args[1:])
}
