package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const springSettleEpsilon = 0.001

// Spring is a framerate-aware damped spring for motion that has a moving
// target rather than a fixed duration, such as the demo's selection pulse.
type Spring struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewSpring creates a spring updated fps times per second.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// SetTarget retargets the spring without resetting its position.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Snap moves the spring to target immediately with zero velocity.
func (s *Spring) Snap(target float64) {
	s.position = target
	s.velocity = 0
	s.target = target
}

// Update advances the spring by one frame and returns the new position.
func (s *Spring) Update() float64 {
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	return s.position
}

// Position returns the current position without advancing.
func (s *Spring) Position() float64 {
	return s.position
}

// Settled reports whether the spring has come to rest at its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.position-s.target) < springSettleEpsilon &&
		math.Abs(s.velocity) < springSettleEpsilon
}
