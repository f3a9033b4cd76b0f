// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// Theme defines the color palette for tree views. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Tag kind labels, grouped by value family.
	IntegerKind   lipgloss.Color
	FloatKind     lipgloss.Color
	StringKind    lipgloss.Color
	ArrayKind     lipgloss.Color
	ContainerKind lipgloss.Color

	// Entry names and values.
	NameForeground  lipgloss.Color
	ValueForeground lipgloss.Color

	// Counts, offsets and elided content.
	FaintText lipgloss.Color

	// Validation results.
	OKForeground    lipgloss.Color
	ErrorForeground lipgloss.Color
}

// KindColor returns the label color for kind. Unknown kinds and End
// use FaintText.
func (theme Theme) KindColor(kind nbt.Kind) lipgloss.Color {
	switch kind {
	case nbt.KindByte, nbt.KindShort, nbt.KindInt, nbt.KindLong:
		return theme.IntegerKind
	case nbt.KindFloat, nbt.KindDouble:
		return theme.FloatKind
	case nbt.KindString:
		return theme.StringKind
	case nbt.KindByteArray, nbt.KindIntArray, nbt.KindLongArray:
		return theme.ArrayKind
	case nbt.KindList, nbt.KindCompound:
		return theme.ContainerKind
	}
	return theme.FaintText
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	IntegerKind:   lipgloss.Color("75"),  // blue
	FloatKind:     lipgloss.Color("141"), // light purple
	StringKind:    lipgloss.Color("114"), // green
	ArrayKind:     lipgloss.Color("220"), // amber
	ContainerKind: lipgloss.Color("208"), // orange

	NameForeground:  lipgloss.Color("255"),
	ValueForeground: lipgloss.Color("252"),

	FaintText: lipgloss.Color("245"),

	OKForeground:    lipgloss.Color("114"),
	ErrorForeground: lipgloss.Color("196"),
}
