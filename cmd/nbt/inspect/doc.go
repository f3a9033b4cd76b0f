// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect implements the nbt subcommands that read, write and
// check NBT files: decode, encode, dump, view, validate and hash.
//
// Every command except hash reads one input, either a file named by
// the single positional argument or stdin. Compressed input (gzip, zlib, zstd,
// lz4) is detected from its magic bytes unless --compression forces a
// framing. With --hex the input is hex text rather than binary, which
// is convenient for pasting bytes from a debugger or a bug report.
//
// Defaults for output format, color, compression and size limits come
// from the configuration file (see lib/config); flags override them
// for a single run.
package inspect
