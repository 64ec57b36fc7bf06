// Package tui hosts the demo application: a Bubbletea program showing a
// column of fold-out buttons at different scales, with keyboard-driven
// hover, toggling, numeric editing and live restyling.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spinfold/internal/animation"
	"github.com/alexisbeaulieu97/spinfold/internal/button"
	"github.com/alexisbeaulieu97/spinfold/internal/logger"
	"github.com/alexisbeaulieu97/spinfold/internal/theme"
)

const (
	frameInterval = time.Second / 30
	maxFrameDelta = 250 * time.Millisecond
	maxStatusRows = 3
)

// The scales shown by the demo, one button each.
var demoScales = []float64{0.8, 1.0, 1.3, 1.75}

// The restyle sets cycled by the style key, one per button.
var demoStyles = []theme.Overrides{
	{"padding": 4, "spacing": 4},
	{"active_color": "#FF8800"},
	{"text_color": "#00FFCC"},
	{"text_scale": 1.5, "anim_speed": 2.0},
}

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Scale    key.Binding
	Style    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Scale:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rescale first")),
		Style:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "restyle all")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// events collects widget notifications raised while a message is being
// processed; the model drains it after every update.
type events struct {
	focusEntry bool
	status     []string
}

func (e *events) push(line string) {
	e.status = append(e.status, line)
	if len(e.status) > maxStatusRows {
		e.status = e.status[len(e.status)-maxStatusRows:]
	}
}

// Model is the Bubbletea state for the demo.
type Model struct {
	buttons  []*button.Button
	selected int

	entry textinput.Model
	keys  keyMap
	pulse *animation.Spring

	events   *events
	log      *logger.Logger
	lastTick time.Time
	ticking  bool
	quitting bool
}

// NewModel constructs the demo with one button per scale.
func NewModel(log *logger.Logger, overrides theme.Overrides, scale float64) (Model, error) {
	ev := &events{}

	entry := textinput.New()
	entry.Prompt = ""
	entry.CharLimit = 4
	entry.Width = 5
	entry.Validate = digitsOnly

	m := Model{
		entry:  entry,
		keys:   defaultKeyMap(),
		pulse:  animation.NewSpring(30, 8.0, 0.72),
		events: ev,
		log:    log.WithComponent("demo"),
	}

	for i, s := range demoScales {
		label := fmt.Sprintf("Scale: %.0f%%", s*100)
		btn, err := button.New(label, button.Options{
			InitialValue: i*10 + 5,
			Scale:        s * scale,
			Logger:       log,
		})
		if err != nil {
			return Model{}, err
		}
		if len(overrides) > 0 {
			if err := btn.ApplyStyle(overrides); err != nil {
				log.Warn(err.Error())
			}
		}

		btn.OnClicked(func() {
			ev.push(fmt.Sprintf("%s toggled (%s)", btn.Label(), btn.CurrentState()))
		})
		btn.OnValueChanged(func(v int) {
			ev.push(fmt.Sprintf("%s value -> %d", btn.Label(), v))
		})
		btn.OnFocusEntry(func() {
			ev.focusEntry = true
		})
		m.buttons = append(m.buttons, btn)
	}

	m.buttons[m.selected].PointerEnter()
	m.pulse.Snap(1)
	return m, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the index of the highlighted button.
func (m Model) Selected() int {
	return m.selected
}

// Buttons exposes the demo's widgets.
func (m Model) Buttons() []*button.Button {
	return m.buttons
}

func digitsOnly(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("digits only")
	}
	return nil
}
