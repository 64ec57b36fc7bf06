package button

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	arrowUpGlyph   = "▲"
	arrowDownGlyph = "▼"
)

// CurrentWidth returns the widget's on-screen width in cells, interpolated
// while a transition is in flight.
func (b *Button) CurrentWidth() int {
	return int(math.Round(b.currentProperties()[propWidth]))
}

// EntryVisible reports whether the entry area has faded in far enough to be
// shown and interacted with.
func (b *Button) EntryVisible() bool {
	return b.currentProperties()[propEntryOpacity] >= entryVisibleThreshold
}

// View renders the widget with lipgloss. entry is the numeric-entry
// collaborator's rendered view; when empty, the stored value is shown
// read-only.
func (b *Button) View(entry string) string {
	props := b.currentProperties()
	width := int(math.Round(props[propWidth]))
	entryOpacity := props[propEntryOpacity]
	borderOpacity := props[propBorderOpacity]

	t := b.resolved

	background := t.BgIdle
	switch {
	case b.state.expandedFamily() || b.state == StateCollapsing:
		background = t.BgActive
	case b.hovered:
		background = t.BgHover
	}

	borderColor := t.BorderIdle
	if b.hovered {
		borderColor = t.BorderHover
	}
	// The border fades out as the entry fades in; against a drawn
	// background a dimmed border is rendered in the background colour so it
	// disappears without changing the widget's footprint.
	if t.ShowBackground && borderOpacity < 0.5 {
		borderColor = background
	}
	if b.focused && t.FocusRing {
		borderColor = t.Accent
	}

	content := b.label
	if entryOpacity >= entryVisibleThreshold {
		entryView := entry
		if entryView == "" {
			entryView = b.formatValue()
		}

		arrowColor := t.Arrow
		if b.hovered {
			arrowColor = t.ArrowHover
		}
		faded := lipgloss.NewStyle().Faint(entryOpacity < 0.7)
		arrows := faded.Foreground(arrowColor).Render(arrowUpGlyph + arrowDownGlyph)
		entryView = faded.Foreground(t.Text).Render(entryView)

		content = b.label +
			strings.Repeat(" ", t.Spacing) +
			entryView + " " + arrows
	}

	height := t.Height - 2
	if height < 1 {
		height = 1
	}

	box := lipgloss.NewStyle().
		Border(t.Border()).
		BorderForeground(borderColor).
		Foreground(t.Text).
		PaddingLeft(t.PaddingH).
		PaddingRight(t.PaddingH).
		Width(width).
		Height(height)
	if t.ShowBackground {
		box = box.Background(background)
	}
	return box.Render(content)
}

// formatValue renders the stored value padded to the entry's digit width.
func (b *Button) formatValue() string {
	digits := len(strconv.Itoa(b.model.Max()))
	return fmt.Sprintf("%*d", digits, b.model.Get())
}
