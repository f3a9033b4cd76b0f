// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/compress"
	"github.com/bureau-foundation/nbt/lib/config"
	"github.com/bureau-foundation/nbt/lib/nbt"
	"github.com/bureau-foundation/nbt/lib/testutil"
	"github.com/bureau-foundation/nbt/lib/tui"
)

const helloWorldHex = `
	0a                          # TAG_Compound
	000b 68656c6c6f20776f726c64 # "hello world"
	08                          # TAG_String
	0004 6e616d65               # "name"
	0009 42616e616e72616d61     # "Bananrama"
	00                          # end
`

const helloWorldJSON = `{
  "type": "compound",
  "name": "hello world",
  "entries": [
    {
      "type": "string",
      "name": "name",
      "string": "Bananrama"
    }
  ]
}
`

// execute runs the inspect commands under a root named nbt with the
// given stdin and returns what they wrote.
func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	var stdout, stderr bytes.Buffer
	streams := Streams{In: bytes.NewReader(stdin), Out: &stdout, Err: &stderr}
	root := &cli.Command{Name: "nbt", Subcommands: Commands(streams), HelpOutput: &stderr}
	err := root.Execute(args)
	return stdout.String(), stderr.String(), err
}

// richTree holds values that need the typed document form to survive.
func richTree(t *testing.T) []byte {
	t.Helper()
	list, err := nbt.NewList(nbt.KindShort, nbt.Short(-1), nbt.Short(2))
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	root := nbt.NewCompound()
	root.Set("zeta", nbt.Long(math.MinInt64))
	root.Set("nan", nbt.Float(math.Float32frombits(0x7fc00001)))
	root.Set("negzero", nbt.Double(math.Copysign(0, -1)))
	root.Set(nbt.StringFromBytes([]byte{0xff}), nbt.StringFromBytes([]byte{0xc0, 0x80}))
	root.Set("bytes", nbt.ByteArray{0, 0x7f, 0x80})
	root.Set("ints", nbt.IntArray{math.MaxInt32})
	root.Set("longs", nbt.LongArray{})
	root.Set("list", list)
	data, err := nbt.EncodeRoot(root, "rich")
	if err != nil {
		t.Fatalf("EncodeRoot: %v", err)
	}
	return data
}

func TestDecode_HelloWorld(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stdout != helloWorldJSON {
		t.Errorf("decode output:\n%s\nwant:\n%s", stdout, helloWorldJSON)
	}
}

func TestDecode_CompressedInputs(t *testing.T) {
	raw := testutil.Hex(t, helloWorldHex)
	for _, format := range []compress.Format{compress.FormatGzip, compress.FormatZlib, compress.FormatZstd, compress.FormatLZ4} {
		framed, err := compress.Compress(raw, format)
		if err != nil {
			t.Fatalf("Compress(%v): %v", format, err)
		}
		stdout, _, err := execute(t, framed, "decode", "--compact")
		if err != nil {
			t.Fatalf("decode %v input: %v", format, err)
		}
		if !strings.HasPrefix(stdout, `{"type":"compound","name":"hello world"`) {
			t.Errorf("decode %v input = %q", format, stdout)
		}
	}
}

func TestDecode_ForcedCompression(t *testing.T) {
	framed, err := compress.Compress(testutil.Hex(t, helloWorldHex), compress.FormatGzip)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if _, _, err := execute(t, framed, "decode", "--compression", "gzip"); err != nil {
		t.Errorf("decode --compression gzip: %v", err)
	}
	if _, _, err := execute(t, framed, "decode", "--compression", "zstd"); err == nil {
		t.Error("decode --compression zstd accepted gzip input")
	}
	if _, _, err := execute(t, framed, "decode", "--compression", "brotli"); err == nil {
		t.Error("unknown compression accepted")
	}
}

func TestDecode_FileArgument(t *testing.T) {
	path := testutil.WriteFile(t, "hello.nbt", testutil.Hex(t, helloWorldHex))
	stdout, _, err := execute(t, nil, "decode", path)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if stdout != helloWorldJSON {
		t.Errorf("decode output = %q", stdout)
	}

	_, _, err = execute(t, nil, "decode", filepath.Join(t.TempDir(), "missing.nbt"))
	if err == nil || !strings.Contains(err.Error(), "missing.nbt") {
		t.Errorf("missing file error = %v", err)
	}
	_, _, err = execute(t, nil, "decode", path, path)
	if err == nil || !strings.Contains(err.Error(), "at most one input file") {
		t.Errorf("two files error = %v", err)
	}
}

func TestDecode_HexInput(t *testing.T) {
	stdout, _, err := execute(t, []byte("0a 0000\n00\n"), "decode", "--hex", "--compact")
	if err != nil {
		t.Fatalf("decode --hex: %v", err)
	}
	if strings.TrimSpace(stdout) != `{"type":"compound"}` {
		t.Errorf("decode --hex = %q", stdout)
	}
	if _, _, err := execute(t, []byte("0a 0"), "decode", "-x"); err == nil {
		t.Error("odd hex digit count accepted")
	}
	if _, _, err := execute(t, []byte("  \n"), "decode", "-x"); err == nil {
		t.Error("empty hex input accepted")
	}
}

func TestDecode_TrailingBytes(t *testing.T) {
	data := append(testutil.Hex(t, helloWorldHex), 0xff, 0xfe)

	_, _, err := execute(t, data, "decode")
	if err == nil || !strings.Contains(err.Error(), "2 trailing bytes after the root tag at offset 33") {
		t.Errorf("trailing bytes error = %v", err)
	}
	if _, _, err := execute(t, data, "decode", "--allow-trailing"); err != nil {
		t.Errorf("decode --allow-trailing: %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	data := testutil.Hex(t, helloWorldHex)

	_, _, err := execute(t, data[:len(data)-1], "decode")
	if err == nil {
		t.Fatal("truncated input decoded")
	}
	var decodeErr *nbt.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error %v does not carry a DecodeError", err)
	}
	if !errors.Is(err, nbt.ErrEndOfData) {
		t.Errorf("error %v is not ErrEndOfData", err)
	}

	if _, _, err := execute(t, nil, "decode"); err == nil || !strings.Contains(err.Error(), "empty input") {
		t.Errorf("empty input error = %v", err)
	}
}

func TestDecodeEncode_RoundTripAllFormats(t *testing.T) {
	original := richTree(t)

	for _, format := range []string{"json", "yaml", "cbor"} {
		document, _, err := execute(t, original, "decode", "-f", format)
		if err != nil {
			t.Fatalf("decode -f %s: %v", format, err)
		}
		encoded, _, err := execute(t, []byte(document), "encode", "-f", format, "-z", "none")
		if err != nil {
			t.Fatalf("encode -f %s: %v", format, err)
		}
		testutil.RequireBytes(t, []byte(encoded), original, "round trip through %s", format)
	}
}

func TestEncode_HelloWorld(t *testing.T) {
	stdout, _, err := execute(t, []byte(helloWorldJSON), "encode", "--compression", "none")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	testutil.RequireBytes(t, []byte(stdout), testutil.Hex(t, helloWorldHex), "hello world")
}

func TestEncode_OutputFileDefaultsToGzip(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.nbt")
	if _, _, err := execute(t, []byte(helloWorldJSON), "encode", "-o", output); err != nil {
		t.Fatalf("encode -o: %v", err)
	}
	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if compress.Detect(written) != compress.FormatGzip {
		t.Errorf("output framing = %v, want gzip", compress.Detect(written))
	}
	raw, err := compress.GunzipIfCompressed(written)
	if err != nil {
		t.Fatalf("gunzip: %v", err)
	}
	testutil.RequireBytes(t, raw, testutil.Hex(t, helloWorldHex), "gzipped output")
}

func TestEncode_Canonical(t *testing.T) {
	input := `{"type": "compound", "entries": [
		{"type": "byte", "name": "b", "int": 2},
		{"type": "byte", "name": "a", "int": 1},
	]}`
	stdout, _, err := execute(t, []byte(input), "encode", "-z", "none", "--canonical")
	if err != nil {
		t.Fatalf("encode --canonical: %v", err)
	}
	want := testutil.Hex(t, `
		0a 0000
		01 0001 61 01
		01 0001 62 02
		00
	`)
	testutil.RequireBytes(t, []byte(stdout), want, "canonical order")
}

func TestEncode_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"out of range", `{"type": "byte", "int": 300}`, "out of range for byte"},
		{"unknown field", `{"type": "byte", "value": 3}`, "unknown field"},
		{"syntax", `{"type": `, "parsing JSON document"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, []byte(test.input), "encode", "-z", "none")
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %v, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestDump(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "dump", "--color", "never")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "compound \"hello world\" (1 entry)\n" +
		"  string \"name\": \"Bananrama\"\n"
	if stdout != want {
		t.Errorf("dump output:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestDump_ValuesAndElision(t *testing.T) {
	stdout, _, err := execute(t, richTree(t), "dump", "--color", "never", "--max-items", "1")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{
		"compound \"rich\" (8 entries)\n",
		"  long \"zeta\": -9223372036854775808\n",
		"  float \"nan\": NaN (0x7fc00001)\n",
		"  double \"negzero\": -0\n",
		"  string \"\\xff\": \"\\xc0\\x80\"\n",
		"  byte_array \"bytes\" (3 bytes): 00 ... (2 more)\n",
		"  int_array \"ints\" [1]: 2147483647\n",
		"  long_array \"longs\" [0]\n",
		"  list \"list\" of short (2 items)\n",
		"    short [0]: -1\n",
		"    ... (1 more)\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("dump output missing %q:\n%s", want, stdout)
		}
	}
}

func TestDump_Color(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "dump", "--color", "always")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(stdout, "\x1b[") {
		t.Errorf("--color always produced no escape sequences: %q", stdout)
	}
	if _, _, err := execute(t, testutil.Hex(t, helloWorldHex), "dump", "--color", "sometimes"); err == nil {
		t.Error("invalid color mode accepted")
	}
}

func TestValidate_Valid(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "validate", "--color", "never")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := "valid -: TAG_Compound \"hello world\", 33 bytes (none), canonical\n"
	if stdout != want {
		t.Errorf("validate output = %q, want %q", stdout, want)
	}
}

func TestValidate_NotCanonical(t *testing.T) {
	data := testutil.Hex(t, `
		0a 0000
		01 0001 62 02
		01 0001 61 01
		00
	`)
	stdout, _, err := execute(t, data, "validate", "--color", "never")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasSuffix(stdout, "not canonical\n") {
		t.Errorf("validate output = %q, want not canonical", stdout)
	}
}

func TestValidate_Invalid(t *testing.T) {
	data := testutil.Hex(t, helloWorldHex)
	stdout, _, err := execute(t, data[:len(data)-1], "validate", "--color", "never")

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("validate error = %v, want exit code 1", err)
	}
	if !strings.HasPrefix(stdout, "invalid -: decode: ") || !strings.Contains(stdout, "unexpected end of data") {
		t.Errorf("validate output = %q", stdout)
	}
}

func TestValidate_JSON(t *testing.T) {
	data := testutil.Hex(t, helloWorldHex)
	framed, err := compress.Compress(data, compress.FormatZstd)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	stdout, _, err := execute(t, framed, "validate", "--json")
	if err != nil {
		t.Fatalf("validate --json: %v", err)
	}
	var report validateReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, stdout)
	}
	if !report.Valid || report.Compression != "zstd" || report.Consumed != 33 || report.DecodedBytes != 33 ||
		report.Kind != "TAG_Compound" || report.Name != "hello world" || !report.Canonical {
		t.Errorf("report = %+v", report)
	}

	stdout, _, err = execute(t, append(data, 0x00), "validate", "--json")
	if err == nil {
		t.Fatal("trailing byte validated")
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, stdout)
	}
	if report.Valid || report.Trailing != 1 || report.Error == "" {
		t.Errorf("report = %+v", report)
	}

	stdout, _, _ = execute(t, []byte{0x0d, 0x00, 0x00}, "validate", "--json")
	report = validateReport{}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, stdout)
	}
	if report.ErrorOffset == nil || *report.ErrorOffset != 0 {
		t.Errorf("unknown type id report = %+v, want error at offset 0", report)
	}
}

func TestHash(t *testing.T) {
	sorted := testutil.Hex(t, `
		0a 0000
		01 0001 61 01
		01 0001 62 02
		00
	`)
	unsorted := testutil.Hex(t, `
		0a 0000
		01 0001 62 02
		01 0001 61 01
		00
	`)
	framed, err := compress.Compress(unsorted, compress.FormatGzip)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	first, _, err := execute(t, sorted, "hash")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, _, err := execute(t, framed, "hash")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first != second {
		t.Errorf("equal trees hashed differently:\n%s%s", first, second)
	}
	fields := strings.Fields(first)
	if len(fields) != 2 || len(fields[0]) != 64 || fields[1] != "-" {
		t.Errorf("hash output = %q, want <hash>  -", first)
	}

	payload, _, err := execute(t, sorted, "hash", "--payload")
	if err != nil {
		t.Fatalf("hash --payload: %v", err)
	}
	if payload == first {
		t.Error("--payload produced the named-root hash")
	}
}

func TestHash_EntriesAndFiles(t *testing.T) {
	left := testutil.WriteFile(t, "left.nbt", testutil.Hex(t, "0a0000 01000161 01 01000162 02 00"))
	right := testutil.WriteFile(t, "right.nbt", testutil.Hex(t, "0a0000 01000161 01 01000162 03 00"))

	stdout, _, err := execute(t, nil, "hash", "--entries", "--json", left, right)
	if err != nil {
		t.Fatalf("hash --entries: %v", err)
	}
	var results []hashResult
	if err := json.Unmarshal([]byte(stdout), &results); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, stdout)
	}
	if len(results) != 2 || len(results[0].Entries) != 2 || len(results[1].Entries) != 2 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Hash == results[1].Hash {
		t.Error("different files hashed the same")
	}
	if results[0].Entries[0] != results[1].Entries[0] {
		t.Error("unchanged entry a hashed differently")
	}
	if results[0].Entries[1].Hash == results[1].Entries[1].Hash {
		t.Error("changed entry b hashed the same")
	}
	if results[0].Entries[0].Name != "a" || results[0].Entries[0].Kind != "byte" {
		t.Errorf("entry = %+v", results[0].Entries[0])
	}

	_, _, err = execute(t, testutil.Hex(t, "01 0000 05"), "hash", "--entries")
	if err == nil || !strings.Contains(err.Error(), "needs a compound root") {
		t.Errorf("--entries on a byte root: %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	configPath := testutil.WriteFile(t, "nbt.yaml", []byte("output:\n  format: yaml\n"))
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "decode", "--config", configPath)
	if err != nil {
		t.Fatalf("decode --config: %v", err)
	}
	if !strings.HasPrefix(stdout, "type: compound\nname: hello world\n") {
		t.Errorf("decode with yaml config = %q", stdout)
	}

	// A flag beats the config file.
	stdout, _, err = execute(t, testutil.Hex(t, helloWorldHex), "decode", "--config", configPath, "-f", "json")
	if err != nil {
		t.Fatalf("decode --config -f json: %v", err)
	}
	if stdout != helloWorldJSON {
		t.Errorf("flag did not override config: %q", stdout)
	}

	badPath := testutil.WriteFile(t, "bad.yaml", []byte("output:\n  format: xml\n"))
	_, _, err = execute(t, testutil.Hex(t, helloWorldHex), "decode", "--config", badPath)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("bad config error = %v", err)
	}
}

func TestConfigFile_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "nbt.log")
	configPath := testutil.WriteFile(t, "nbt.yaml",
		[]byte("log:\n  level: debug\n  format: json\n  file: "+logPath+"\n"))

	_, stderr, err := execute(t, testutil.Hex(t, helloWorldHex), "decode", "--config", configPath)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want logs in the file", stderr)
	}
	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.SplitN(logged, []byte("\n"), 2)[0], &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, logged)
	}
	if record["command"] != "decode" || record["compression"] != "none" {
		t.Errorf("log record = %v", record)
	}
}

func TestMaxSize(t *testing.T) {
	framed, err := compress.Compress(testutil.Hex(t, helloWorldHex), compress.FormatGzip)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	_, _, err = execute(t, framed, "decode", "--max-size", "8")
	if !errors.Is(err, compress.ErrTooLarge) {
		t.Errorf("decode --max-size 8: err = %v, want ErrTooLarge", err)
	}
}

func TestDecode_Highlight(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "decode", "--color", "always")
	if err != nil {
		t.Fatalf("decode --color always: %v", err)
	}
	if !strings.Contains(stdout, "\x1b[") {
		t.Errorf("no highlighting in %q", stdout)
	}
	if !strings.Contains(ansi.Strip(stdout), `"Bananrama"`) {
		t.Errorf("highlighted output lost text: %q", ansi.Strip(stdout))
	}
}

func TestDump_StripsToPlain(t *testing.T) {
	plain, _, err := execute(t, richTree(t), "dump", "--color", "never")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	colored, _, err := execute(t, richTree(t), "dump", "--color", "always")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if ansi.Strip(colored) != plain {
		t.Errorf("colored dump differs from plain once stripped:\n%s\nvs\n%s", ansi.Strip(colored), plain)
	}
}

func TestDump_Width(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "dump", "--color", "never", "--width", "16")
	if err != nil {
		t.Fatalf("dump --width: %v", err)
	}
	want := "compound \"hello…\n" +
		"  string \"name\"…\n"
	if stdout != want {
		t.Errorf("dump --width 16 = %q, want %q", stdout, want)
	}
}

func TestView_NeedsTerminal(t *testing.T) {
	_, _, err := execute(t, testutil.Hex(t, helloWorldHex), "view")
	if err == nil || !strings.Contains(err.Error(), "needs a terminal") {
		t.Errorf("view to a buffer: %v", err)
	}
}

func TestRenderTree(t *testing.T) {
	data := testutil.Hex(t, `
		09 0000   # TAG_List, empty name
		03        # of int
		00000003  # 3 items
		00000001 00000002 00000003
	`)
	name, tag, _, err := nbt.DecodeRoot(data)
	if err != nil {
		t.Fatalf("DecodeRoot: %v", err)
	}
	styles := tui.NewStyles(tui.NewRenderer(&bytes.Buffer{}, tui.ColorNever), tui.DefaultTheme)
	got := renderTree(styles, 0, 0, name, tag)
	want := "list \"\" of int (3 items)\n" +
		"  int [0]: 1\n" +
		"  int [1]: 2\n" +
		"  int [2]: 3\n"
	if got != want {
		t.Errorf("renderTree:\n%s\nwant:\n%s", got, want)
	}
}

func TestCBORDiagnostic(t *testing.T) {
	stdout, _, err := execute(t, testutil.Hex(t, helloWorldHex), "decode", "-f", "cbor")
	if err != nil {
		t.Fatalf("decode -f cbor: %v", err)
	}
	diagnostic, err := cborDiagnostic([]byte(stdout))
	if err != nil {
		t.Fatalf("cborDiagnostic: %v", err)
	}
	for _, want := range []string{`"type": "compound"`, `"string": "Bananrama"`} {
		if !strings.Contains(string(diagnostic), want) {
			t.Errorf("diagnostic notation missing %s:\n%s", want, diagnostic)
		}
	}
	if _, err := cborDiagnostic([]byte{0xff}); err == nil {
		t.Error("cborDiagnostic accepted a lone break byte")
	}
}
