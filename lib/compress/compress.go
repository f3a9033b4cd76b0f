// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies a compression framing.
type Format uint8

const (
	// FormatNone is raw, uncompressed NBT.
	FormatNone Format = 0

	// FormatGzip is RFC 1952 gzip. This is how standalone NBT files
	// (level.dat, player data) are stored.
	FormatGzip Format = 1

	// FormatZlib is RFC 1950 zlib, the framing of chunks inside
	// region files.
	FormatZlib Format = 2

	// FormatZstd is a Zstandard frame.
	FormatZstd Format = 3

	// FormatLZ4 is an LZ4 frame (not a raw LZ4 block).
	FormatLZ4 Format = 4
)

// String returns the lower-case name of the format.
func (format Format) String() string {
	switch format {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZlib:
		return "zlib"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", format)
	}
}

// ParseFormat parses a format from its string representation.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "none", "":
		return FormatNone, nil
	case "gzip":
		return FormatGzip, nil
	case "zlib":
		return FormatZlib, nil
	case "zstd":
		return FormatZstd, nil
	case "lz4":
		return FormatLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression format: %q", name)
	}
}

// DefaultMaxDecompressedSize bounds the output of [Decompress] and
// [GunzipIfCompressed].
const DefaultMaxDecompressedSize = 1 << 30

// ErrTooLarge is returned when decompressed output exceeds the size
// limit.
var ErrTooLarge = errors.New("decompressed data exceeds size limit")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect identifies the framing of data from its first bytes.
// Anything unrecognized is reported as [FormatNone].
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(data, zstdMagic):
		return FormatZstd
	case bytes.HasPrefix(data, lz4Magic):
		return FormatLZ4
	case isZlibHeader(data):
		return FormatZlib
	default:
		return FormatNone
	}
}

// isZlibHeader accepts only the 32 KiB-window deflate header (CMF
// 0x78) that every mainstream zlib writer emits. Accepting every
// valid CMF would misdetect plain String roots (type byte 0x08).
func isZlibHeader(data []byte) bool {
	if len(data) < 2 || data[0] != 0x78 {
		return false
	}
	header := uint16(data[0])<<8 | uint16(data[1])
	const presetDictionary = 0x20
	return header%31 == 0 && data[1]&presetDictionary == 0
}

// GunzipIfCompressed returns the decompressed contents of data if it
// is gzip-framed and data itself otherwise.
func GunzipIfCompressed(data []byte) ([]byte, error) {
	if Detect(data) != FormatGzip {
		return data, nil
	}
	return decompressGzip(data, DefaultMaxDecompressedSize)
}

// Decompress detects the framing of data and removes it, returning
// the raw bytes and the detected format. Unframed input is returned
// unchanged (no copy) with [FormatNone].
func Decompress(data []byte) ([]byte, Format, error) {
	return DecompressLimit(data, DefaultMaxDecompressedSize)
}

// DecompressLimit is [Decompress] with an explicit output size limit.
func DecompressLimit(data []byte, limit int64) ([]byte, Format, error) {
	format := Detect(data)
	result, err := DecompressAs(data, format, limit)
	if err != nil {
		return nil, format, err
	}
	return result, format, nil
}

// DecompressAs removes the given framing from data without looking at
// its magic bytes. [FormatNone] returns data unchanged.
func DecompressAs(data []byte, format Format, limit int64) ([]byte, error) {
	switch format {
	case FormatNone:
		return data, nil
	case FormatGzip:
		return decompressGzip(data, limit)
	case FormatZlib:
		return decompressZlib(data, limit)
	case FormatZstd:
		return decompressZstd(data, limit)
	case FormatLZ4:
		return decompressLZ4(data, limit)
	default:
		return nil, fmt.Errorf("unsupported compression format: %d", format)
	}
}

// Compress frames data with the given format. [FormatNone] returns
// data unchanged (no copy).
func Compress(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatNone:
		return data, nil
	case FormatGzip:
		return compressStream(data, "gzip", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })
	case FormatZlib:
		return compressStream(data, "zlib", func(w io.Writer) io.WriteCloser { return zlib.NewWriter(w) })
	case FormatZstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case FormatLZ4:
		return compressStream(data, "lz4", func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) })
	default:
		return nil, fmt.Errorf("unsupported compression format: %d", format)
	}
}

// compressStream runs data through a streaming compressor.
func compressStream(data []byte, name string, newWriter func(io.Writer) io.WriteCloser) ([]byte, error) {
	var buffer bytes.Buffer
	writer := newWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("%s compress: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", name, err)
	}
	return buffer.Bytes(), nil
}

func decompressGzip(data []byte, limit int64) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	defer reader.Close()
	return readLimited(reader, "gzip", limit)
}

func decompressZlib(data []byte, limit int64) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	defer reader.Close()
	return readLimited(reader, "zlib", limit)
}

func decompressLZ4(data []byte, limit int64) ([]byte, error) {
	return readLimited(lz4.NewReader(bytes.NewReader(data)), "lz4", limit)
}

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. Both are safe for concurrent use
// through EncodeAll and DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(DefaultMaxDecompressedSize),
	)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

func decompressZstd(data []byte, limit int64) ([]byte, error) {
	result, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("zstd decompress: %w", ErrTooLarge)
		}
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if int64(len(result)) > limit {
		return nil, fmt.Errorf("zstd decompress: %w", ErrTooLarge)
	}
	return result, nil
}

// readLimited reads r to the end, failing with ErrTooLarge once more
// than limit bytes have been produced.
func readLimited(r io.Reader, name string, limit int64) ([]byte, error) {
	result, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", name, err)
	}
	if int64(len(result)) > limit {
		return nil, fmt.Errorf("%s decompress: %w", name, ErrTooLarge)
	}
	return result, nil
}
