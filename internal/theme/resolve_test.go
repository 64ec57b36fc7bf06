package theme

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spinfold/internal/animation"
	apperrors "github.com/alexisbeaulieu97/spinfold/pkg/errors"
)

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	base := Default()
	overrides := Overrides{"padding": 4, "active_color": "#FF8800"}

	first, err1 := Resolve(base, 1.3, overrides)
	second, err2 := Resolve(base, 1.3, overrides)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)
}

func TestResolveScalesLengthsOnly(t *testing.T) {
	t.Parallel()

	base := Default()
	resolved, err := Resolve(base, 2.0, nil)
	require.NoError(t, err)

	require.Equal(t, base.CollapsedWidth*2, resolved.CollapsedWidth)
	require.Equal(t, base.ExpandedWidth*2, resolved.ExpandedWidth)
	require.Equal(t, base.Height*2, resolved.Height)
	require.Equal(t, base.PaddingH*2, resolved.PaddingH)
	require.Equal(t, base.Spacing*2, resolved.Spacing)
	require.Equal(t, base.ArrowSize*2, resolved.ArrowSize)
	require.Equal(t, base.BorderWidth*2, resolved.BorderWidth)
	require.Equal(t, base.Radius*2, resolved.Radius)

	// Colors are untouched by scaling.
	require.Equal(t, base.BgIdle, resolved.BgIdle)
	require.Equal(t, base.BgHover, resolved.BgHover)
	require.Equal(t, base.Text, resolved.Text)
	require.Equal(t, base.Accent, resolved.Accent)
	require.Equal(t, base.Arrow, resolved.Arrow)
}

func TestResolveDurationGrowsWithSqrtScale(t *testing.T) {
	t.Parallel()

	base := Default()
	resolved, err := Resolve(base, 4.0, nil)
	require.NoError(t, err)
	require.Equal(t, 2*base.AnimDuration, resolved.AnimDuration)
}

func TestResolveRejectsNonPositiveScale(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{0, -1} {
		_, err := Resolve(Default(), scale, nil)
		require.Error(t, err)
		require.True(t, apperrors.IsInvalidConfiguration(err))
	}
}

func TestResolveAppliesOverridesAfterScaling(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(Default(), 2.0, Overrides{
		"padding_h":        9,
		"anim_duration_ms": 120,
		"bg_hover":         "#FF8800",
		"show_background":  false,
		"curve":            "in_out_cubic",
	})
	require.NoError(t, err)
	require.Equal(t, 9, resolved.PaddingH)
	require.Equal(t, 120*time.Millisecond, resolved.AnimDuration)
	require.Equal(t, lipgloss.Color("#FF8800"), resolved.BgHover)
	require.False(t, resolved.ShowBackground)
	require.Equal(t, animation.InOutCubic, resolved.Curve)

	// Fields without overrides still carry scaled base values.
	require.Equal(t, Default().CollapsedWidth*2, resolved.CollapsedWidth)
}

func TestResolveReportsUnknownKeysAndStillApplies(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(Default(), 1.0, Overrides{
		"bogus":     1,
		"padding_h": 7,
		"wat":       "x",
	})
	require.Error(t, err)

	unknown, ok := apperrors.AsUnknownOverrideKeys(err)
	require.True(t, ok)
	require.Equal(t, []string{"bogus", "wat"}, unknown.Keys)

	// The theme is fully resolved regardless.
	require.Equal(t, 7, resolved.PaddingH)
	require.Equal(t, Default().ExpandedWidth, resolved.ExpandedWidth)
}

func TestResolveRejectsWrongTypedValues(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(Default(), 1.0, Overrides{
		"padding_h": "wide",
		"bg_hover":  42,
	})
	require.Error(t, err)

	unknown, ok := apperrors.AsUnknownOverrideKeys(err)
	require.True(t, ok)
	require.Equal(t, []string{"bg_hover", "padding_h"}, unknown.Keys)
	require.Equal(t, Default().PaddingH, resolved.PaddingH)
	require.Equal(t, Default().BgHover, resolved.BgHover)
}

func TestExpandAliases(t *testing.T) {
	t.Parallel()

	base := Default()

	t.Run("padding maps to padding_h", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"padding": 30})
		require.Equal(t, 30, expanded["padding_h"])
		require.NotContains(t, expanded, "padding")
	})

	t.Run("anim_speed divides the base duration", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"anim_speed": 2.0})
		require.Equal(t, 400, expanded["anim_duration_ms"])
	})

	t.Run("text_scale multiplies the arrow size", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"text_scale": 3.0})
		require.Equal(t, base.ArrowSize*3, expanded["arrow_size"])
	})

	t.Run("active_color fans out to both backgrounds", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"active_color": "#FF8800"})
		require.Equal(t, "#FF8800", expanded["bg_hover"])
		require.Equal(t, "#FF8800", expanded["bg_active"])
	})

	t.Run("text_color fans out to text and arrows", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"text_color": "#00FFCC"})
		require.Equal(t, "#00FFCC", expanded["text"])
		require.Equal(t, "#00FFCC", expanded["arrow"])
		require.Equal(t, "#00FFCC", expanded["arrow_hover"])
	})

	t.Run("canonical key wins over its alias", func(t *testing.T) {
		t.Parallel()
		expanded := ExpandAliases(base, Overrides{"padding": 30, "padding_h": 5})
		require.Equal(t, 5, expanded["padding_h"])
	})
}

func TestResolvedThemeBorder(t *testing.T) {
	t.Parallel()

	rounded, err := Resolve(Default(), 1.0, nil)
	require.NoError(t, err)
	require.Equal(t, lipgloss.RoundedBorder(), rounded.Border())

	square, err := Resolve(Default(), 1.0, Overrides{"radius": 0})
	require.NoError(t, err)
	require.Equal(t, lipgloss.NormalBorder(), square.Border())
}
