// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// ColorMode selects when styled output carries color.
type ColorMode string

const (
	// ColorAuto colors output only when the writer is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces 256-color output, for pagers like less -R.
	ColorAlways ColorMode = "always"
	// ColorNever emits plain text.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(name string) (ColorMode, error) {
	switch mode := ColorMode(name); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always, or never)", name)
}

// NewRenderer returns a lipgloss renderer for w. The profile is set
// explicitly for always and never because lipgloss otherwise
// re-detects it from the environment.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	switch mode {
	case ColorAlways:
		renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
		renderer.SetColorProfile(termenv.ANSI256)
		return renderer
	case ColorNever:
		renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
		renderer.SetColorProfile(termenv.Ascii)
		return renderer
	}
	return lipgloss.NewRenderer(w)
}

// Styles holds the lipgloss styles for one renderer and theme.
type Styles struct {
	theme    Theme
	renderer *lipgloss.Renderer

	Name  lipgloss.Style
	Value lipgloss.Style
	Faint lipgloss.Style
	OK    lipgloss.Style
	Error lipgloss.Style
	Thumb lipgloss.Style
}

// NewStyles binds theme to renderer.
func NewStyles(renderer *lipgloss.Renderer, theme Theme) *Styles {
	return &Styles{
		theme:    theme,
		renderer: renderer,
		Name:     renderer.NewStyle().Foreground(theme.NameForeground).Bold(true),
		Value:    renderer.NewStyle().Foreground(theme.ValueForeground),
		Faint:    renderer.NewStyle().Foreground(theme.FaintText),
		OK:       renderer.NewStyle().Foreground(theme.OKForeground).Bold(true),
		Error:    renderer.NewStyle().Foreground(theme.ErrorForeground).Bold(true),
		Thumb:    renderer.NewStyle().Foreground(theme.ContainerKind),
	}
}

// Kind returns the style for a tag kind label.
func (styles *Styles) Kind(kind nbt.Kind) lipgloss.Style {
	return styles.renderer.NewStyle().Foreground(styles.theme.KindColor(kind))
}

// Theme returns the theme the styles were built from.
func (styles *Styles) Theme() Theme {
	return styles.theme
}
