// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewCommandLogger(t *testing.T) {
	var output bytes.Buffer

	// A buffer is not a terminal, so auto selects JSON.
	logger, err := NewCommandLogger(&output, "info", "auto")
	if err != nil {
		t.Fatalf("NewCommandLogger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("decoded", "bytes", 21)

	var record map[string]any
	if err := json.Unmarshal(output.Bytes(), &record); err != nil {
		t.Fatalf("log output is not one JSON record: %v\n%s", err, output.String())
	}
	if record["msg"] != "decoded" || record["bytes"] != float64(21) {
		t.Errorf("record = %v", record)
	}

	output.Reset()
	logger, err = NewCommandLogger(&output, "debug", "text")
	if err != nil {
		t.Fatalf("NewCommandLogger: %v", err)
	}
	logger.Debug("visible")
	if !strings.Contains(output.String(), "msg=visible") {
		t.Errorf("text output = %q", output.String())
	}
}

func TestNewCommandLogger_Errors(t *testing.T) {
	if _, err := NewCommandLogger(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Error("invalid level accepted")
	}
	if _, err := NewCommandLogger(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("invalid format accepted")
	}
}

func TestEmitJSON(t *testing.T) {
	var output bytes.Buffer
	options := JSONOutput{}
	if done, err := options.EmitJSON(&output, []string(nil)); done || err != nil {
		t.Errorf("EmitJSON without --json = %v, %v", done, err)
	}

	options.OutputJSON = true
	if done, err := options.EmitJSON(&output, []string(nil)); !done || err != nil {
		t.Fatalf("EmitJSON = %v, %v", done, err)
	}
	if strings.TrimSpace(output.String()) != "[]" {
		t.Errorf("nil slice rendered as %q, want []", output.String())
	}
}
