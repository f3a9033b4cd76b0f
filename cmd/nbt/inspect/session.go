// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/config"
)

// Streams are the process streams a command reads and writes. Tests
// substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns stdin, stdout and stderr.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// session is the per-invocation state shared by every command: the
// resolved configuration and a logger built from it.
type session struct {
	config  *config.Config
	logger  *slog.Logger
	logFile *os.File
}

// loadConfig resolves configuration from an explicit path, then
// NBT_CONFIG, then the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openSession loads configuration and builds the command logger. Log
// output goes to the configured file, or to streams.Err.
func openSession(streams Streams, configPath, command string) (*session, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	result := &session{config: cfg}
	logWriter := streams.Err
	if cfg.Log.File != "" {
		if err := cfg.EnsurePaths(); err != nil {
			return nil, err
		}
		result.logFile, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logWriter = result.logFile
	}

	logger, err := cli.NewCommandLogger(logWriter, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		result.Close()
		return nil, err
	}
	result.logger = logger.With("command", command)
	return result, nil
}

// Close releases the log file, if one was opened.
func (s *session) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}
