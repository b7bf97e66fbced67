package expanding

import (
	"fmt"
	"time"

	"github.com/go-drift/expanding/pkg/layout"
)

// State is the discrete expansion state of a container.
type State int

const (
	// Expanded means the fraction is exactly FractionExpanded.
	Expanded State = iota
	// Expanding means a driver is moving the fraction toward FractionExpanded.
	Expanding
	// Collapsing means a driver is moving the fraction toward FractionCollapsed.
	Collapsing
	// Collapsed means the fraction is exactly FractionCollapsed.
	Collapsed
	// FixedSize means the fraction was set directly to an intermediate value.
	FixedSize
)

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	case Expanding:
		return "expanding"
	case Collapsing:
		return "collapsing"
	case Collapsed:
		return "collapsed"
	case FixedSize:
		return "fixed_size"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Fraction bounds in internal units.
const (
	FractionExpanded  = 1000.0
	FractionCollapsed = 0.0
)

// Defaults applied by NewController.
const (
	DefaultDuration = 300 * time.Millisecond
	DefaultParallax = 0.5
	DefaultFraction = FractionExpanded
)

// resolveDirect maps a directly applied fraction to its state.
func resolveDirect(fraction float64) State {
	switch fraction {
	case FractionCollapsed:
		return Collapsed
	case FractionExpanded:
		return Expanded
	default:
		return FixedSize
	}
}

// resolveSettled maps a finished animation's value to its state.
func resolveSettled(value float64) State {
	if value == FractionCollapsed {
		return Collapsed
	}
	return Expanded
}

func resolveInFlight(target float64) State {
	if target == FractionCollapsed {
		return Collapsing
	}
	return Expanding
}

func visibilityFor(s State) layout.Visibility {
	if s == Collapsed {
		return layout.Gone
	}
	return layout.Visible
}
