// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides terminal styling shared by the nbt command's
// human-readable output. A [Theme] assigns colors to tag kinds and
// output chrome; [NewRenderer] builds a lipgloss renderer whose color
// profile follows the configured color mode rather than whatever the
// environment happens to detect.
//
// [Viewer] is a bubbletea model that pages through a rendered tree
// full-screen, and [Highlight] colors JSON and YAML documents with
// Chroma.
package tui
