// Package value holds the integer model behind a fold-out button: a current
// value with fixed inclusive bounds and an edge-triggered change
// notification.
package value

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/spinfold/pkg/errors"
)

// The representable range of a fold-out button's entry field.
const (
	DefaultMin = 0
	DefaultMax = 9999
)

// Model stores the current value and its bounds. Bounds are fixed at
// construction. Mutations that would leave the bounds are clamped, never
// dropped; a clamp counts as a change when the clamped result differs from
// the previous value.
type Model struct {
	current  int
	min      int
	max      int
	onChange func(int)
}

// New creates a Model with the given bounds. initial is clamped into them.
func New(initial, min, max int) (*Model, error) {
	if min > max {
		return nil, apperrors.NewInvalidConfiguration(
			"bounds", fmt.Sprintf("min %d exceeds max %d", min, max), nil)
	}
	return &Model{current: clamp(initial, min, max), min: min, max: max}, nil
}

// OnChange registers the change notification. It fires only when a mutation
// actually changes the stored value.
func (m *Model) OnChange(fn func(int)) {
	m.onChange = fn
}

// Get returns the current value.
func (m *Model) Get() int {
	return m.current
}

// Min returns the inclusive lower bound.
func (m *Model) Min() int {
	return m.min
}

// Max returns the inclusive upper bound.
func (m *Model) Max() int {
	return m.max
}

// Set stores v clamped to the bounds and reports whether the stored value
// changed. Setting the value it already holds is a no-op and emits nothing.
func (m *Model) Set(v int) bool {
	clamped := clamp(v, m.min, m.max)
	if clamped == m.current {
		return false
	}
	m.current = clamped
	if m.onChange != nil {
		m.onChange(clamped)
	}
	return true
}

// Step adjusts the value by delta, clamped to the bounds.
func (m *Model) Step(delta int) bool {
	return m.Set(m.current + delta)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
