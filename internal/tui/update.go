package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spinfold/internal/button"
)

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is the Bubbletea message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick)
	if dt < 0 || dt > maxFrameDelta {
		dt = frameInterval
	}
	m.lastTick = now

	for _, b := range m.buttons {
		b.Advance(dt)
	}
	m.pulse.Update()
	m.drainEvents()

	if m.animating() {
		return m, tick()
	}
	m.ticking = false
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.buttons[m.selected]

	// While the entry is focused, keys drive the numeric editor first.
	if m.entry.Focused() && cur.CurrentState() == button.StateExpanded {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.entry.Value()); err == nil {
				cur.ConfirmEdit(v)
			} else {
				cur.CancelEdit()
			}
			m.entry.Blur()
			m.drainEvents()
			return m.scheduleTick()
		case "esc":
			cur.CancelEdit()
			m.entry.Blur()
			m.drainEvents()
			return m.scheduleTick()
		case "up":
			cur.StepValue(1)
			m.entry.SetValue(strconv.Itoa(cur.Value()))
			m.entry.CursorEnd()
			m.drainEvents()
			return m, nil
		case "down":
			cur.StepValue(-1)
			m.entry.SetValue(strconv.Itoa(cur.Value()))
			m.entry.CursorEnd()
			m.drainEvents()
			return m, nil
		case "tab", "shift+tab", "q", "ctrl+c":
			// fall through to navigation below
		default:
			var cmd tea.Cmd
			m.entry, cmd = m.entry.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveSelection(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveSelection(-1)

	case key.Matches(msg, m.keys.Activate):
		cur.Activate()
		m.drainEvents()
		return m.scheduleTick()

	case key.Matches(msg, m.keys.Scale):
		first := m.buttons[0]
		next := 1.5
		if first.Scale() > 1.0 {
			next = 0.8
		}
		if err := first.SetScale(next); err != nil {
			m.log.Warn(err.Error())
		}
		m.events.push("first button rescaled")
		return m.scheduleTick()

	case key.Matches(msg, m.keys.Style):
		for i, b := range m.buttons {
			if err := b.ApplyStyle(demoStyles[i%len(demoStyles)]); err != nil {
				m.log.Warn(err.Error())
			}
		}
		m.events.push("custom styles applied")
		return m.scheduleTick()
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	if m.entry.Focused() {
		m.buttons[m.selected].CancelEdit()
		m.entry.Blur()
	}
	m.buttons[m.selected].PointerLeave()
	m.selected = (m.selected + delta + len(m.buttons)) % len(m.buttons)
	m.buttons[m.selected].PointerEnter()
	m.pulse.Snap(0)
	m.pulse.SetTarget(1)
	m.drainEvents()
	return m.scheduleTick()
}

// drainEvents applies widget notifications raised during the last message.
func (m *Model) drainEvents() {
	if m.events.focusEntry {
		m.events.focusEntry = false
		cur := m.buttons[m.selected]
		m.entry.SetValue(strconv.Itoa(cur.Value()))
		m.entry.Focus()
		m.entry.CursorEnd()
	}
}

func (m Model) animating() bool {
	for _, b := range m.buttons {
		if b.Animating() {
			return true
		}
	}
	return !m.pulse.Settled()
}

// scheduleTick starts the frame clock if anything is moving and it is not
// already running.
func (m Model) scheduleTick() (tea.Model, tea.Cmd) {
	if m.ticking || !m.animating() {
		return m, nil
	}
	m.ticking = true
	m.lastTick = time.Now()
	return m, tick()
}
