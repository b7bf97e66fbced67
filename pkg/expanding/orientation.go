package expanding

import (
	"fmt"
	"strings"

	"github.com/go-drift/expanding/pkg/errors"
)

// Orientation selects the axis a container collapses along.
type Orientation int

const (
	// Horizontal collapses the width.
	Horizontal Orientation = 0
	// Vertical collapses the height.
	Vertical Orientation = 1
)

// DefaultOrientation is used when none is configured.
const DefaultOrientation = Vertical

// Valid reports whether o is Horizontal or Vertical.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// CheckOrientation returns an invalid-argument error for values other than
// Horizontal and Vertical.
func CheckOrientation(op string, o Orientation) error {
	if !o.Valid() {
		return errors.InvalidArgument(op, "orientation must be horizontal (0) or vertical (1), got %d", int(o))
	}
	return nil
}

// ParseOrientation parses "horizontal" or "vertical" (case-insensitive).
// An empty string yields DefaultOrientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultOrientation, nil
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, errors.InvalidArgument("expanding.ParseOrientation", "unknown orientation %q", s)
	}
}
