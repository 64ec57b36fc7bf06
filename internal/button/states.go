package button

// State is the logical presentation state of a fold-out button. Exactly one
// State is active at any instant. Expanding and Collapsing are transient and
// exist only while an animation run is outstanding. Hovered belongs to the
// collapsed family: it is pointer-over with no active animation and is the
// only state that does not change the logical expand/collapse flag.
type State int

const (
	StateCollapsed State = iota
	StateHovered
	StateExpanding
	StateExpanded
	StateCollapsing
)

func (s State) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StateExpanding:
		return "expanding"
	case StateExpanded:
		return "expanded"
	case StateCollapsing:
		return "collapsing"
	default:
		return "collapsed"
	}
}

// Transitional reports whether an animation run is outstanding for s.
func (s State) Transitional() bool {
	return s == StateExpanding || s == StateCollapsing
}

// expandedFamily reports whether s presents (or is moving toward) the
// editable value.
func (s State) expandedFamily() bool {
	return s == StateExpanding || s == StateExpanded
}
