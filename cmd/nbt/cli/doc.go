// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the nbt tool.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/nbt/commands and dispatched via [Command.Execute], which handles
// flag parsing, subcommand routing, and help output with examples.
//
// Flags are usually declared as tagged struct fields and bound with
// [FlagsFromParams]. When a user types an unknown subcommand or flag,
// the framework suggests the closest known name by edit distance.
//
// [ExitError] lets a command choose its exit status after writing its
// own report, and [NewCommandLogger] builds the slog logger commands
// use for diagnostics.
package cli
