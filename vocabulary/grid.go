package vocabulary

import (
	"fmt"
	"math"
)

// Grid is a world position: a pair of signed 16-bit coordinates. Wire
// endpoints and logic-item positions are always on a Grid point.
type Grid struct {
	X, Y int16
}

// GridFine is a sub-grid, double-precision position, used for selection
// rectangles and other continuous geometry that does not need to land on
// a grid cell.
type GridFine struct {
	X, Y float64
}

func (g Grid) String() string { return fmt.Sprintf("(%d,%d)", g.X, g.Y) }

// ToFine widens a Grid point to double precision.
func (g Grid) ToFine() GridFine {
	return GridFine{X: float64(g.X), Y: float64(g.Y)}
}

// Orientation is the facing direction of a connector or element.
type Orientation int

const (
	OrientationRight Orientation = iota
	OrientationLeft
	OrientationUp
	OrientationDown
	OrientationUndirected
)

func (o Orientation) String() string {
	switch o {
	case OrientationRight:
		return "right"
	case OrientationLeft:
		return "left"
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	case OrientationUndirected:
		return "undirected"
	default:
		return "invalid"
	}
}

// addInt32 performs the addition in a 32-bit signed intermediate so the
// overflow check below can detect int16+int16 overflow without relying
// on platform-specific 16-bit wraparound behavior. This resolves the
// "is_representable uses int{...} arithmetic" open question: a 32-bit
// signed intermediate is the chosen width, documented here because every
// bounding-rect check (decoration size plus position) funnels through
// AddGrid/checked below and must not silently wrap.
func addInt32(a, b int16) int32 {
	return int32(a) + int32(b)
}

// AddGrid adds a delta to a grid point, returning OverflowError if
// either resulting coordinate would not fit in int16.
func AddGrid(g Grid, dx, dy int16) (Grid, error) {
	x := addInt32(g.X, dx)
	y := addInt32(g.Y, dy)
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return Grid{}, New("AddGrid", OverflowError, "grid coordinate out of int16 range")
	}
	return Grid{X: int16(x), Y: int16(y)}, nil
}

// SubGrid subtracts b from a, checked the same way as AddGrid.
func SubGrid(a, b Grid) (dx, dy int32) {
	return addInt32(a.X, 0) - addInt32(b.X, 0), addInt32(a.Y, 0) - addInt32(b.Y, 0)
}

// IsRepresentable reports whether a rectangle anchored at origin with
// the given width and height (both non-negative, in grid cells) stays
// within the int16 range of Grid once added to origin. Decoration sizes
// plus positions must not exceed this bound; callers that need a
// bounding-rect check for a logic item or decoration call this with the
// element's position as origin and its declared width/height.
func IsRepresentable(origin Grid, width, height int32) bool {
	maxX := addInt32(origin.X, 0) + width
	maxY := addInt32(origin.Y, 0) + height
	return maxX <= math.MaxInt16 && maxY <= math.MaxInt16 &&
		addInt32(origin.X, 0) >= math.MinInt16 && addInt32(origin.Y, 0) >= math.MinInt16
}
