package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spinfold/internal/button"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// settle pumps tick messages until nothing is animating.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	now := m.lastTick
	for i := 0; i < 200; i++ {
		if !m.animating() {
			return m
		}
		now = now.Add(frameInterval)
		updated, _ := m.Update(tickMsg(now))
		m = updated.(Model)
	}
	t.Fatal("animations never settled")
	return m
}

func TestTabMovesSelectionAndHover(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	require.Equal(t, 1, m.Selected())
	require.Equal(t, button.StateCollapsed, m.Buttons()[0].CurrentState())
	require.Equal(t, button.StateHovered, m.Buttons()[1].CurrentState())
}

func TestSelectionWrapsAround(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	require.Equal(t, len(m.Buttons())-1, m.Selected())
}

func TestEnterExpandsSelectedButton(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.NotNil(t, cmd)
	require.Equal(t, button.StateExpanding, m.Buttons()[0].CurrentState())

	m = settle(t, m)
	require.Equal(t, button.StateExpanded, m.Buttons()[0].CurrentState())
	require.True(t, m.entry.Focused())
	require.Equal(t, "5", m.entry.Value())
}

func TestEditCommitOnEnter(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	m.entry.SetValue("123")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	require.Equal(t, 123, m.Buttons()[0].Value())
	require.Equal(t, button.StateHovered, m.Buttons()[0].CurrentState())
	require.False(t, m.entry.Focused())
}

func TestEditCancelOnEsc(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	m.entry.SetValue("123")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = settle(t, updated.(Model))

	require.Equal(t, 5, m.Buttons()[0].Value())
	require.False(t, m.entry.Focused())
}

func TestArrowKeysStepValueWhileEditing(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	require.Equal(t, 6, m.Buttons()[0].Value())
	require.Equal(t, "6", m.entry.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	require.Equal(t, 5, m.Buttons()[0].Value())
}

func TestMovingAwayCancelsEdit(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	m.entry.SetValue("999")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	require.Equal(t, 1, m.Selected())
	require.False(t, m.entry.Focused())
	require.Equal(t, 5, m.Buttons()[0].Value())
}

func TestScaleKeyTogglesFirstButton(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRune('s'))
	m = updated.(Model)
	require.InDelta(t, 1.5, m.Buttons()[0].Scale(), 1e-9)

	updated, _ = m.Update(keyRune('s'))
	m = updated.(Model)
	require.InDelta(t, 0.8, m.Buttons()[0].Scale(), 1e-9)
}

func TestStyleKeyRestylesAllButtons(t *testing.T) {
	m := newTestModel(t)
	before := m.Buttons()[1].Theme().BgActive
	updated, _ := m.Update(keyRune('c'))
	m = updated.(Model)
	require.NotEqual(t, before, m.Buttons()[1].Theme().BgActive)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestTickStopsWhenSettled(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model))

	updated, cmd := m.Update(tickMsg(m.lastTick.Add(frameInterval)))
	m = updated.(Model)
	require.Nil(t, cmd)
	require.False(t, m.ticking)
}

func TestTickClampsLargeFrameDelta(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	updated, _ = m.Update(tickMsg(m.lastTick.Add(10 * time.Second)))
	m = updated.(Model)
	require.Equal(t, button.StateExpanding, m.Buttons()[0].CurrentState())
}
