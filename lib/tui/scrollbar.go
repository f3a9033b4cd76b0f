// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "strings"

// RenderScrollbar produces a single-column scrollbar of the given
// height. The thumb marks the visible lines within the total.
//
// The scrollbar is always fully rendered: track + thumb. When the
// content fits the thumb spans the entire height.
func RenderScrollbar(styles *Styles, height, totalLines, visibleLines, offset int) string {
	if height <= 0 {
		return ""
	}

	track := styles.Faint.Render("│")
	thumb := styles.Thumb.Render("┃")

	lines := make([]string, height)
	if totalLines <= visibleLines || totalLines <= 0 {
		for index := range lines {
			lines[index] = thumb
		}
		return strings.Join(lines, "\n")
	}

	// Proportional to visible/total, minimum 1 row.
	thumbSize := max(height*visibleLines/totalLines, 1)

	scrollableRange := totalLines - visibleLines
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = offset * trackRange / scrollableRange
	}
	thumbOffset = min(thumbOffset, height-thumbSize)

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumb
		} else {
			lines[index] = track
		}
	}
	return strings.Join(lines, "\n")
}
