package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spinfold/internal/animation"
)

// BaseTheme holds the unscaled visual and timing constants for a fold-out
// button. Lengths are terminal cells. A BaseTheme is never used for rendering
// directly; it is an input to Resolve together with a scale factor and an
// override set.
type BaseTheme struct {
	CollapsedWidth int
	ExpandedWidth  int
	Height         int
	PaddingH       int
	Spacing        int
	ArrowSize      int
	BorderWidth    int
	Radius         int
	AnimDuration   time.Duration

	BgIdle      lipgloss.Color
	BgHover     lipgloss.Color
	BgActive    lipgloss.Color
	BorderIdle  lipgloss.Color
	BorderHover lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color
	Arrow       lipgloss.Color
	ArrowHover  lipgloss.Color

	ShowBackground bool
	FocusRing      bool
}

// ResolvedTheme is the fully computed, override-applied, scale-applied set of
// constants for one moment in time. Every field is always populated; a new
// instance is produced whenever any input changes, old instances are simply
// discarded.
type ResolvedTheme struct {
	CollapsedWidth int
	ExpandedWidth  int
	Height         int
	PaddingH       int
	Spacing        int
	ArrowSize      int
	BorderWidth    int
	Radius         int
	AnimDuration   time.Duration
	Curve          animation.Curve

	BgIdle      lipgloss.Color
	BgHover     lipgloss.Color
	BgActive    lipgloss.Color
	BorderIdle  lipgloss.Color
	BorderHover lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color
	Arrow       lipgloss.Color
	ArrowHover  lipgloss.Color

	ShowBackground bool
	FocusRing      bool
}

// Overrides maps canonical (or friendly alias) field names to literal values.
// Overrides are applied after scaling, last-writer-wins per field.
type Overrides map[string]any

// Default returns the stock dark theme.
func Default() BaseTheme {
	return BaseTheme{
		CollapsedWidth: 16,
		ExpandedWidth:  28,
		Height:         3,
		PaddingH:       2,
		Spacing:        2,
		ArrowSize:      1,
		BorderWidth:    1,
		Radius:         2,
		AnimDuration:   800 * time.Millisecond,

		BgIdle:      lipgloss.Color("#2A303A"),
		BgHover:     lipgloss.Color("#1A7AF6"),
		BgActive:    lipgloss.Color("#1A7AF6"),
		BorderIdle:  lipgloss.Color("#3C4250"),
		BorderHover: lipgloss.Color("#4A5162"),
		Text:        lipgloss.Color("#E4E8F0"),
		Accent:      lipgloss.Color("#1A7AF6"),
		Arrow:       lipgloss.Color("#E4E8F0"),
		ArrowHover:  lipgloss.Color("#D0E0FF"),

		ShowBackground: true,
		FocusRing:      true,
	}
}

// Border returns the lipgloss border matching the resolved corner radius.
func (t ResolvedTheme) Border() lipgloss.Border {
	if t.Radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
