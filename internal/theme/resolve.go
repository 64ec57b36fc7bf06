package theme

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spinfold/internal/animation"
	apperrors "github.com/alexisbeaulieu97/spinfold/pkg/errors"
)

// Resolve derives a fully populated ResolvedTheme from base, a scale factor
// and an override set. It is a pure function: the same inputs always produce
// the same output and nothing is mutated.
//
// A non-positive scale fails with an InvalidConfigurationError and a zero
// theme; callers keep whatever ResolvedTheme they already hold. Unknown
// override keys are skipped: the returned theme is still fully resolved with
// the remaining overrides applied, and the error is an UnknownOverrideKeysError
// listing the ignored keys.
func Resolve(base BaseTheme, scale float64, overrides Overrides) (ResolvedTheme, error) {
	if scale <= 0 {
		return ResolvedTheme{}, apperrors.NewInvalidConfiguration(
			"scale", fmt.Sprintf("must be greater than zero, got %v", scale), nil)
	}

	resolved := ResolvedTheme{
		CollapsedWidth: scaleLength(base.CollapsedWidth, scale),
		ExpandedWidth:  scaleLength(base.ExpandedWidth, scale),
		Height:         scaleLength(base.Height, scale),
		PaddingH:       scaleLength(base.PaddingH, scale),
		Spacing:        scaleLength(base.Spacing, scale),
		ArrowSize:      scaleLength(base.ArrowSize, scale),
		BorderWidth:    scaleLength(base.BorderWidth, scale),
		Radius:         scaleLength(base.Radius, scale),
		// Durations grow with the square root of the scale so large widgets
		// do not feel sluggish.
		AnimDuration: time.Duration(float64(base.AnimDuration) * math.Sqrt(scale)),
		Curve:        animation.OutCubic,

		BgIdle:      base.BgIdle,
		BgHover:     base.BgHover,
		BgActive:    base.BgActive,
		BorderIdle:  base.BorderIdle,
		BorderHover: base.BorderHover,
		Text:        base.Text,
		Accent:      base.Accent,
		Arrow:       base.Arrow,
		ArrowHover:  base.ArrowHover,

		ShowBackground: base.ShowBackground,
		FocusRing:      base.FocusRing,
	}

	expanded := ExpandAliases(base, overrides)
	keys := make([]string, 0, len(expanded))
	for key := range expanded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var unknown []string
	for _, key := range keys {
		if !applyOverride(&resolved, key, expanded[key]) {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		return resolved, apperrors.NewUnknownOverrideKeys(unknown)
	}
	return resolved, nil
}

// ExpandAliases converts the friendly override keys into canonical theme
// field names. Canonical keys supplied alongside an alias win.
//
// Supported aliases:
//
//	padding      -> padding_h
//	anim_speed   -> anim_duration_ms (base duration divided by the factor)
//	text_scale   -> arrow_size (base arrow size multiplied by the factor)
//	active_color -> bg_hover and bg_active
//	text_color   -> text, arrow and arrow_hover
func ExpandAliases(base BaseTheme, overrides Overrides) Overrides {
	expanded := make(Overrides, len(overrides))

	if v, ok := overrides["padding"]; ok {
		expanded["padding_h"] = v
	}
	if v, ok := overrides["anim_speed"]; ok {
		if factor, ok := toFloat(v); ok && factor > 0 {
			expanded["anim_duration_ms"] = int(math.Round(float64(base.AnimDuration.Milliseconds()) / factor))
		}
	}
	if v, ok := overrides["text_scale"]; ok {
		if factor, ok := toFloat(v); ok && factor > 0 {
			expanded["arrow_size"] = int(math.Round(float64(base.ArrowSize) * factor))
		}
	}
	if v, ok := overrides["active_color"]; ok {
		expanded["bg_hover"] = v
		expanded["bg_active"] = v
	}
	if v, ok := overrides["text_color"]; ok {
		expanded["text"] = v
		expanded["arrow"] = v
		expanded["arrow_hover"] = v
	}

	for key, value := range overrides {
		switch key {
		case "padding", "anim_speed", "text_scale", "active_color", "text_color":
			continue
		}
		expanded[key] = value
	}
	return expanded
}

// applyOverride writes one canonical override into resolved. It reports false
// when the key is unknown or its value has an unusable type.
func applyOverride(resolved *ResolvedTheme, key string, value any) bool {
	switch key {
	case "collapsed_width":
		return setLength(&resolved.CollapsedWidth, value)
	case "expanded_width":
		return setLength(&resolved.ExpandedWidth, value)
	case "height":
		return setLength(&resolved.Height, value)
	case "padding_h":
		return setLength(&resolved.PaddingH, value)
	case "spacing":
		return setLength(&resolved.Spacing, value)
	case "arrow_size":
		return setLength(&resolved.ArrowSize, value)
	case "border_width":
		return setLength(&resolved.BorderWidth, value)
	case "radius":
		return setLength(&resolved.Radius, value)
	case "anim_duration_ms":
		if ms, ok := toFloat(value); ok && ms >= 0 {
			resolved.AnimDuration = time.Duration(ms) * time.Millisecond
			return true
		}
		return false
	case "curve":
		if name, ok := value.(string); ok {
			if curve, known := animation.ParseCurve(name); known {
				resolved.Curve = curve
				return true
			}
		}
		return false
	case "bg_idle":
		return setColor(&resolved.BgIdle, value)
	case "bg_hover":
		return setColor(&resolved.BgHover, value)
	case "bg_active":
		return setColor(&resolved.BgActive, value)
	case "border_idle":
		return setColor(&resolved.BorderIdle, value)
	case "border_hover":
		return setColor(&resolved.BorderHover, value)
	case "text":
		return setColor(&resolved.Text, value)
	case "accent":
		return setColor(&resolved.Accent, value)
	case "arrow":
		return setColor(&resolved.Arrow, value)
	case "arrow_hover":
		return setColor(&resolved.ArrowHover, value)
	case "show_background":
		return setBool(&resolved.ShowBackground, value)
	case "focus_ring":
		return setBool(&resolved.FocusRing, value)
	default:
		return false
	}
}

func scaleLength(v int, scale float64) int {
	if v == 0 {
		return 0
	}
	scaled := int(math.Round(float64(v) * scale))
	if scaled < 1 {
		return 1
	}
	return scaled
}

func setLength(dst *int, value any) bool {
	f, ok := toFloat(value)
	if !ok || f < 0 {
		return false
	}
	*dst = int(math.Round(f))
	return true
}

func setColor(dst *lipgloss.Color, value any) bool {
	switch v := value.(type) {
	case string:
		*dst = lipgloss.Color(v)
		return true
	case lipgloss.Color:
		*dst = v
		return true
	default:
		return false
	}
}

func setBool(dst *bool, value any) bool {
	b, ok := value.(bool)
	if !ok {
		return false
	}
	*dst = b
	return true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}
