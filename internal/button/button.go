// Package button implements the fold-out numeric button: a widget that
// toggles between a compact label and an editable value, with every visual
// transition animated and themeable.
package button

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/spinfold/internal/animation"
	"github.com/alexisbeaulieu97/spinfold/internal/logger"
	"github.com/alexisbeaulieu97/spinfold/internal/theme"
	"github.com/alexisbeaulieu97/spinfold/internal/value"
	apperrors "github.com/alexisbeaulieu97/spinfold/pkg/errors"
)

// Animated property names shared by every transition plan.
const (
	propWidth         = "width"
	propEntryOpacity  = "entry_opacity"
	propBorderOpacity = "border_opacity"
)

// The entry area becomes interactive once its opacity crosses this threshold,
// and is treated as hidden below it.
const entryVisibleThreshold = 0.1

// Options configures a Button at construction time.
type Options struct {
	InitialValue int
	// Scale defaults to 1.0 when zero.
	Scale float64
	// MinValue/MaxValue default to the representable range (0..9999) when
	// both are zero.
	MinValue int
	MaxValue int
	// Base defaults to theme.Default() when nil.
	Base   *theme.BaseTheme
	Logger *logger.Logger
}

// Button is the public face of the widget. It wires the value model, the
// theme engine and the toggle state machine together and re-exposes their
// operations and notifications as one surface. A Button has exactly one
// owner; all methods must be called from the owning event loop.
type Button struct {
	label     string
	base      theme.BaseTheme
	scale     float64
	overrides theme.Overrides
	resolved  theme.ResolvedTheme

	state State
	orch  *animation.Orchestrator
	model *value.Model

	log *logger.Logger

	onClicked      func()
	onValueChanged func(int)
	onFocusEntry   func()

	hovered bool
	focused bool
}

// New constructs a collapsed Button labelled label.
func New(label string, opts Options) (*Button, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1.0
	}
	if scale <= 0 {
		return nil, apperrors.NewInvalidConfiguration(
			"scale", fmt.Sprintf("must be greater than zero, got %v", scale), nil)
	}

	min, max := opts.MinValue, opts.MaxValue
	if min == 0 && max == 0 {
		min, max = value.DefaultMin, value.DefaultMax
	}
	if opts.InitialValue < value.DefaultMin || opts.InitialValue > value.DefaultMax {
		return nil, apperrors.NewInvalidConfiguration(
			"initial_value",
			fmt.Sprintf("%d outside representable range %d..%d", opts.InitialValue, value.DefaultMin, value.DefaultMax),
			nil)
	}

	model, err := value.New(opts.InitialValue, min, max)
	if err != nil {
		return nil, err
	}

	base := theme.Default()
	if opts.Base != nil {
		base = *opts.Base
	}
	resolved, err := theme.Resolve(base, scale, nil)
	if err != nil {
		return nil, err
	}

	b := &Button{
		label:     label,
		base:      base,
		scale:     scale,
		overrides: theme.Overrides{},
		resolved:  resolved,
		state:     StateCollapsed,
		orch:      animation.NewOrchestrator(),
		model:     model,
		log:       opts.Logger.WithComponent("button").WithFields(map[string]any{"label": label}),
	}
	model.OnChange(func(v int) {
		b.log.WithFields(map[string]any{"value": v}).Debug("value changed")
		if b.onValueChanged != nil {
			b.onValueChanged(v)
		}
	})
	return b, nil
}

// Label returns the collapsed presentation text.
func (b *Button) Label() string {
	return b.label
}

// CurrentState returns the active logical state.
func (b *Button) CurrentState() State {
	return b.state
}

// Theme returns the current fully resolved theme.
func (b *Button) Theme() theme.ResolvedTheme {
	return b.resolved
}

// Value returns the stored value.
func (b *Button) Value() int {
	return b.model.Get()
}

// SetValue stores v clamped to the bounds and reports whether the stored
// value changed. It is independent of animation state.
func (b *Button) SetValue(v int) bool {
	return b.model.Set(v)
}

// StepValue adjusts the value by delta; the arrow sub-widget's activate
// events land here.
func (b *Button) StepValue(delta int) bool {
	return b.model.Step(delta)
}

// OnValueChanged registers the valueChanged notification. Edge-triggered: it
// never fires for a set that leaves the stored value unchanged.
func (b *Button) OnValueChanged(fn func(int)) {
	b.onValueChanged = fn
}

// OnClicked registers the toggled notification. It fires exactly once per
// completed collapse/expand transition, never for cancelled or dropped ones.
func (b *Button) OnClicked(fn func()) {
	b.onClicked = fn
}

// OnFocusEntry registers the focus hand-off invoked when the widget reaches
// the expanded state and the numeric-entry collaborator should take focus.
func (b *Button) OnFocusEntry(fn func()) {
	b.onFocusEntry = fn
}

// Toggle is the click-equivalent event. Valid from any state; requests
// arriving while a transition is in flight are dropped, not queued.
func (b *Button) Toggle() {
	b.Activate()
}

// Activate processes a click or programmatic toggle.
func (b *Button) Activate() {
	switch b.state {
	case StateCollapsed, StateHovered:
		b.beginExpand()
	case StateExpanded:
		b.beginCollapse()
	default:
		// In-flight transition: dropped so the visible state always
		// converges on the last fully processed intent.
		b.log.Debug("activate dropped during transition")
	}
}

// Expand expands the widget; a no-op unless it would change state.
func (b *Button) Expand() {
	if b.state == StateCollapsed || b.state == StateHovered {
		b.beginExpand()
	}
}

// Collapse collapses the widget; a no-op unless it would change state.
func (b *Button) Collapse() {
	if b.state == StateExpanded {
		b.beginCollapse()
	}
}

// PointerEnter marks the pointer as over the widget.
func (b *Button) PointerEnter() {
	b.hovered = true
	if b.state == StateCollapsed {
		b.setState(StateHovered)
	}
}

// PointerLeave marks the pointer as outside the widget.
func (b *Button) PointerLeave() {
	b.hovered = false
	if b.state == StateHovered {
		b.setState(StateCollapsed)
	}
}

// SetFocused records keyboard focus for the focus ring.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// ConfirmEdit commits v from the numeric-entry collaborator and collapses.
// Ignored outside the expanded state.
func (b *Button) ConfirmEdit(v int) {
	if b.state != StateExpanded {
		return
	}
	b.model.Set(v)
	b.beginCollapse()
}

// CancelEdit discards the collaborator's edit and collapses. Ignored outside
// the expanded state.
func (b *Button) CancelEdit() {
	if b.state != StateExpanded {
		return
	}
	b.beginCollapse()
}

// Animating reports whether a transition run is in flight.
func (b *Button) Animating() bool {
	return b.orch.Running()
}

// Advance drives the widget's animation clock from the owning event loop. It
// reports whether a run is still active; completion notifications fire from
// inside this call, never from Toggle/Expand/Collapse themselves.
func (b *Button) Advance(dt time.Duration) bool {
	return b.orch.Advance(dt)
}

// SetScale changes the scale factor and re-resolves the theme. A non-positive
// scale fails with InvalidConfigurationError and leaves everything untouched.
func (b *Button) SetScale(scale float64) error {
	resolved, err := theme.Resolve(b.base, scale, b.overrides)
	if err != nil {
		if _, nonFatal := apperrors.AsUnknownOverrideKeys(err); !nonFatal {
			b.log.Error(err, "scale rejected")
			return err
		}
	}
	b.scale = scale
	b.log.WithFields(map[string]any{"scale": scale}).Info("scale changed")
	b.adoptTheme(resolved)
	return nil
}

// Scale returns the current scale factor.
func (b *Button) Scale() float64 {
	return b.scale
}

// ApplyStyle merges overrides into the retained override set, last writer
// wins per key, and re-resolves the theme. Unknown keys are ignored and
// reported via the returned UnknownOverrideKeysError; the remaining overrides
// are still applied.
func (b *Button) ApplyStyle(overrides theme.Overrides) error {
	merged := make(theme.Overrides, len(b.overrides)+len(overrides))
	for k, v := range b.overrides {
		merged[k] = v
	}
	for k, v := range theme.ExpandAliases(b.base, overrides) {
		merged[k] = v
	}

	resolved, err := theme.Resolve(b.base, b.scale, merged)
	if err != nil {
		unknown, nonFatal := apperrors.AsUnknownOverrideKeys(err)
		if !nonFatal {
			b.log.Error(err, "style rejected")
			return err
		}
		b.log.Warn(err.Error())
		for _, key := range unknown.Keys {
			delete(merged, key)
		}
	}

	b.overrides = merged
	b.adoptTheme(resolved)
	return err
}

// adoptTheme switches to a freshly resolved theme. A transition in flight is
// cancelled and redriven in its original direction from the current
// interpolated position, so a mid-flight restyle never produces a visible
// jump.
func (b *Button) adoptTheme(resolved theme.ResolvedTheme) {
	previous := b.resolved
	b.resolved = resolved

	if !b.state.Transitional() {
		return
	}

	current := b.orch.Values()
	if len(current) == 0 {
		// No live values to preserve; rebuild the plan from scratch.
		current = map[string]float64{
			propWidth:         float64(previous.CollapsedWidth),
			propEntryOpacity:  0,
			propBorderOpacity: 1,
		}
	}
	b.log.Debug("restyle during transition, redriving animation")
	b.startPlan(b.planFrom(current, b.state == StateExpanding))
}

func (b *Button) beginExpand() {
	b.setState(StateExpanding)
	b.startPlan(b.planFrom(b.currentProperties(), true))
}

func (b *Button) beginCollapse() {
	b.setState(StateCollapsing)
	b.startPlan(b.planFrom(b.currentProperties(), false))
}

// planFrom builds a transition plan starting at the given property values and
// ending at the resolved theme's geometry for the requested direction.
func (b *Button) planFrom(start map[string]float64, expanding bool) animation.Plan {
	targetWidth := float64(b.resolved.CollapsedWidth)
	targetEntry := 0.0
	targetBorder := 1.0
	if expanding {
		targetWidth = float64(b.resolved.ExpandedWidth)
		targetEntry = 1.0
		targetBorder = 0.0
	}

	return animation.Plan{
		Tracks: []animation.Track{
			{Property: propWidth, From: start[propWidth], To: targetWidth},
			{Property: propEntryOpacity, From: start[propEntryOpacity], To: targetEntry},
			{Property: propBorderOpacity, From: start[propBorderOpacity], To: targetBorder},
		},
		Duration: b.resolved.AnimDuration,
		Curve:    b.resolved.Curve,
	}
}

func (b *Button) startPlan(plan animation.Plan) {
	b.orch.Start(plan, b.animationFinished)
}

func (b *Button) animationFinished(animation.Handle) {
	switch b.state {
	case StateExpanding:
		b.setState(StateExpanded)
		if b.onFocusEntry != nil {
			b.onFocusEntry()
		}
		b.emitClicked()
	case StateCollapsing:
		if b.hovered {
			b.setState(StateHovered)
		} else {
			b.setState(StateCollapsed)
		}
		b.emitClicked()
	}
}

func (b *Button) emitClicked() {
	if b.onClicked != nil {
		b.onClicked()
	}
}

func (b *Button) setState(next State) {
	if b.state == next {
		return
	}
	b.log.Transition(b.label, b.state.String(), next.String())
	b.state = next
}

// currentProperties snapshots the animated properties: mid-run interpolated
// values when a transition is live, otherwise the stable values implied by
// the state.
func (b *Button) currentProperties() map[string]float64 {
	if b.orch.Running() {
		return b.orch.Values()
	}

	props := map[string]float64{
		propWidth:         float64(b.resolved.CollapsedWidth),
		propEntryOpacity:  0,
		propBorderOpacity: 1,
	}
	if b.state.expandedFamily() {
		props[propWidth] = float64(b.resolved.ExpandedWidth)
		props[propEntryOpacity] = 1
		props[propBorderOpacity] = 0
	}
	return props
}
