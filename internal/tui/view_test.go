package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewShowsAllLabels(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Scale: 80%", "Scale: 100%", "Scale: 130%", "Scale: 175%"} {
		require.Contains(t, out, want)
	}
	require.Contains(t, out, "spinfold demo")
	require.Contains(t, out, "q: quit")
}

func TestViewMarksSelection(t *testing.T) {
	m := newTestModel(t)
	require.Contains(t, m.View(), "▸")
}

func TestViewShowsEntryWhenExpanded(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	m.entry.SetValue("42")
	require.Contains(t, m.View(), "42")
}

func TestViewShowsStatusLines(t *testing.T) {
	m := newTestModel(t)
	m.events.push("first button rescaled")
	require.Contains(t, m.View(), "first button rescaled")
}

func TestViewAfterQuit(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	out := m.View()
	require.Contains(t, out, "bye")
	require.False(t, strings.Contains(out, "Scale: 80%"))
}
