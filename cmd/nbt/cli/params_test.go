// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type limitOptions struct {
	Max int64
}

func (options *limitOptions) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.Int64Var(&options.Max, "max-size", 1024, "size limit")
}

func TestBindFlags_TypesAndDefaults(t *testing.T) {
	var params struct {
		Format  string   `flag:"format,f" desc:"format" default:"json"`
		Compact bool     `flag:"compact" desc:"compact" default:"true"`
		Depth   int      `flag:"depth" desc:"depth" default:"4"`
		Size    int64    `flag:"size" desc:"size" default:"-1"`
		Ratio   float64  `flag:"ratio" desc:"ratio" default:"0.5"`
		Paths   []string `flag:"path" desc:"paths" default:"a,b"`
		Ignored string
	}

	flagSet := FlagsFromParams("test", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Format != "json" || !params.Compact || params.Depth != 4 || params.Size != -1 || params.Ratio != 0.5 {
		t.Errorf("defaults not applied: %+v", params)
	}
	if len(params.Paths) != 2 || params.Paths[1] != "b" {
		t.Errorf("Paths = %v, want [a b]", params.Paths)
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field bound as flag")
	}

	if err := flagSet.Parse([]string{"-f", "cbor", "--compact=false", "--depth", "9", "--path", "x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Format != "cbor" || params.Compact || params.Depth != 9 || len(params.Paths) != 1 {
		t.Errorf("flags not applied: %+v", params)
	}
}

func TestBindFlags_EmbeddedAndBinder(t *testing.T) {
	var params struct {
		JSONOutput
		Limits limitOptions
		Name   string `flag:"name" desc:"name"`
	}

	flagSet := FlagsFromParams("test", &params)
	if err := flagSet.Parse([]string{"--json", "--max-size", "7", "--name", "x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.OutputJSON {
		t.Error("embedded --json not bound")
	}
	if params.Limits.Max != 7 {
		t.Errorf("FlagBinder field Max = %d, want 7", params.Limits.Max)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	if err := BindFlags(struct{}{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("non-pointer params accepted")
	}

	var badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	err := BindFlags(&badDefault, pflag.NewFlagSet("x", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "--count") {
		t.Errorf("bad default error = %v", err)
	}

	var unsupported struct {
		Values map[string]string `flag:"values"`
	}
	if err := BindFlags(&unsupported, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("unsupported field type accepted")
	}
}
