// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the nbt
// binary.
//
// [GitCommit], [GitDirty], [BuildTime] and [Version] are injected at
// build time via -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/nbt/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/nbt
//
// When they are not injected, the VCS stamp the Go toolchain embeds
// in the binary is used instead, so "go install" builds still report
// their commit.
package version
