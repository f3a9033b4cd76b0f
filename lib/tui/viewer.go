// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Viewer is a full-screen pager for pre-rendered tree text: a title
// row, the scrolling body with a scrollbar, and a status row.
type Viewer struct {
	title  string
	lines  []string
	styles *Styles
	keys   KeyMap

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewViewer returns a viewer for content, which may carry ANSI styling.
func NewViewer(title, content string, styles *Styles) Viewer {
	return Viewer{
		title:  title,
		lines:  strings.Split(strings.TrimSuffix(content, "\n"), "\n"),
		styles: styles,
		keys:   DefaultKeyMap,
	}
}

func (model Viewer) Init() tea.Cmd {
	return nil
}

func (model Viewer) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.resize()
		return model, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Up):
			model.viewport.LineUp(1)
		case key.Matches(message, model.keys.Down):
			model.viewport.LineDown(1)
		case key.Matches(message, model.keys.PageUp):
			model.viewport.HalfViewUp()
		case key.Matches(message, model.keys.PageDown):
			model.viewport.HalfViewDown()
		case key.Matches(message, model.keys.Home):
			model.viewport.GotoTop()
		case key.Matches(message, model.keys.End):
			model.viewport.GotoBottom()
		}
		return model, nil

	case tea.MouseMsg:
		switch message.Button {
		case tea.MouseButtonWheelUp:
			model.viewport.LineUp(3)
		case tea.MouseButtonWheelDown:
			model.viewport.LineDown(3)
		}
		return model, nil
	}
	return model, nil
}

// resize fits the viewport between the title and status rows, one
// column narrower than the screen for the scrollbar. Lines wider than
// the body are cut.
func (model *Viewer) resize() {
	bodyWidth := max(model.width-1, 1)
	bodyHeight := max(model.height-2, 1)

	truncated := make([]string, len(model.lines))
	for index, line := range model.lines {
		truncated[index] = ansi.Truncate(line, bodyWidth, "…")
	}

	offset := model.viewport.YOffset
	if !model.ready {
		model.viewport = viewport.New(bodyWidth, bodyHeight)
		model.ready = true
	}
	model.viewport.Width = bodyWidth
	model.viewport.Height = bodyHeight
	model.viewport.SetContent(strings.Join(truncated, "\n"))
	model.viewport.SetYOffset(offset)
}

func (model Viewer) View() string {
	if !model.ready {
		return "Loading..."
	}

	title := model.styles.Name.Render(ansi.Truncate(model.title, model.width, "…"))

	body := lipgloss.NewStyle().Width(model.viewport.Width).Render(model.viewport.View())
	scrollbar := RenderScrollbar(model.styles, model.viewport.Height,
		model.viewport.TotalLineCount(), model.viewport.Height, model.viewport.YOffset)

	first := min(model.viewport.YOffset+1, len(model.lines))
	last := min(model.viewport.YOffset+model.viewport.Height, len(model.lines))
	status := fmt.Sprintf("lines %d-%d of %d  %s %s  %s %s",
		first, last, len(model.lines),
		model.keys.Down.Help().Key, model.keys.Down.Help().Desc,
		model.keys.Quit.Help().Key, model.keys.Quit.Help().Desc)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar),
		model.styles.Faint.Render(ansi.Truncate(status, model.width, "…")),
	)
}

// Offset returns the index of the first visible line.
func (model Viewer) Offset() int {
	return model.viewport.YOffset
}
