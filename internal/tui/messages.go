package tui

import "time"

// tickMsg advances the animation clocks. Ticks are only scheduled while a
// transition or the selection spring is live.
type tickMsg time.Time
