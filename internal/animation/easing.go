package animation

// Curve identifies a supported easing function. Every curve maps the elapsed
// fraction t in [0,1] to an eased fraction with Ease(0)=0 and Ease(1)=1.
type Curve int

const (
	Linear Curve = iota
	OutCubic
	InOutCubic
	OutQuad
)

// Ease returns the eased fraction for t. Inputs outside [0,1] are clamped.
func (c Curve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch c {
	case OutCubic:
		inv := 1 - t
		return 1 - inv*inv*inv
	case InOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		inv := -2*t + 2
		return 1 - inv*inv*inv/2
	case OutQuad:
		return 1 - (1-t)*(1-t)
	default:
		return t
	}
}

func (c Curve) String() string {
	switch c {
	case OutCubic:
		return "out_cubic"
	case InOutCubic:
		return "in_out_cubic"
	case OutQuad:
		return "out_quad"
	default:
		return "linear"
	}
}

// ParseCurve maps a curve name to its identifier.
func ParseCurve(name string) (Curve, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "out_cubic":
		return OutCubic, true
	case "in_out_cubic":
		return InOutCubic, true
	case "out_quad":
		return OutQuad, true
	default:
		return Linear, false
	}
}
