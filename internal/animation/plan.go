package animation

import "time"

// Track interpolates one named property from From to To.
type Track struct {
	Property string
	From     float64
	To       float64
}

// Plan is the set of property interpolations belonging to a single run. All
// tracks share one duration and curve so every property reaches its end value
// at the same instant. A Plan is created fresh for each transition and owned
// exclusively by the orchestrator for the run's lifetime.
type Plan struct {
	Tracks   []Track
	Duration time.Duration
	Curve    Curve
}

// Fraction returns the raw elapsed fraction in [0,1] for the given elapsed
// time. Zero-duration plans are always at their end.
func (p Plan) Fraction(elapsed time.Duration) float64 {
	if p.Duration <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(p.Duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ValueAt returns the interpolated value of a property at the given elapsed
// time, or false when the plan has no track for it.
func (p Plan) ValueAt(property string, elapsed time.Duration) (float64, bool) {
	eased := p.Curve.Ease(p.Fraction(elapsed))
	for _, track := range p.Tracks {
		if track.Property == property {
			return track.From + (track.To-track.From)*eased, true
		}
	}
	return 0, false
}
