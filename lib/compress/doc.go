// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress strips and applies the compression framing that
// NBT data is usually stored in.
//
// The NBT format has no magic number, so framing is recognized by
// sniffing the leading bytes ([Detect]). None of the recognized magic
// sequences begins with a byte that is a valid NBT root type except
// the LZ4 frame magic, whose first byte (0x04) is the Long type;
// an uncompressed Long root whose name happens to start with the
// remaining three magic bytes would be misdetected. Nobody writes
// such files in practice.
//
// [GunzipIfCompressed] is the narrow gzip-only preprocessing step
// that a decoder needs. [Decompress] and [Compress] cover gzip, zlib,
// zstd and LZ4 frames and are what the nbt command uses.
//
// Decompressed output is bounded by a size limit so a small
// compression bomb cannot exhaust memory.
package compress
