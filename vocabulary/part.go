package vocabulary

import "fmt"

// Offset is a position along a single segment, in grid-cell units.
type Offset int32

// Part is a half-open range [Begin, End) of offsets along one segment.
// Begin must be strictly less than End; a Part where Begin >= End is
// invalid and operations constructing one return RangeError.
type Part struct {
	Begin, End Offset
}

// NewPart validates and builds a Part.
func NewPart(begin, end Offset) (Part, error) {
	if begin >= end {
		return Part{}, New("NewPart", RangeError, "begin %d >= end %d", begin, end)
	}
	return Part{Begin: begin, End: end}, nil
}

// Length returns End - Begin.
func (p Part) Length() Offset { return p.End - p.Begin }

// Touches reports whether p and other are adjacent or overlapping, i.e.
// whether they would coalesce into one Part if both were selected.
func (p Part) Touches(other Part) bool {
	return p.Begin <= other.End && other.Begin <= p.End
}

// Overlaps reports whether p and other share any offset.
func (p Part) Overlaps(other Part) bool {
	return p.Begin < other.End && other.Begin < p.End
}

// Contains reports whether other lies entirely within p.
func (p Part) Contains(other Part) bool {
	return p.Begin <= other.Begin && other.End <= p.End
}

func (p Part) String() string { return fmt.Sprintf("[%d,%d)", p.Begin, p.End) }

// SegmentPointType classifies one endpoint of a segment.
type SegmentPointType int

const (
	PointInput SegmentPointType = iota
	PointOutput
	PointCollidingPoint
	PointCrossPointHorizontal
	PointCrossPointVertical
	PointShadowPoint
	PointVisualCrossPoint
	PointNewUnknown
)

func (t SegmentPointType) String() string {
	switch t {
	case PointInput:
		return "input"
	case PointOutput:
		return "output"
	case PointCollidingPoint:
		return "colliding_point"
	case PointCrossPointHorizontal:
		return "cross_point_horizontal"
	case PointCrossPointVertical:
		return "cross_point_vertical"
	case PointShadowPoint:
		return "shadow_point"
	case PointVisualCrossPoint:
		return "visual_cross_point"
	case PointNewUnknown:
		return "new_unknown"
	default:
		return "invalid"
	}
}

// Line is an unordered pair of grid endpoints. It must be axis-aligned
// and non-zero-length to become an OrderedLine.
type Line struct {
	P0, P1 Grid
}

// OrderedLine is a Line with P0 < P1 in the (x, then y) lexicographic
// order, guaranteed axis-aligned and non-zero-length.
type OrderedLine struct {
	P0, P1 Grid
}

func lessGrid(a, b Grid) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Order validates l and returns it with endpoints sorted, or RangeError
// if l is diagonal or zero-length.
func Order(l Line) (OrderedLine, error) {
	if l.P0.X != l.P1.X && l.P0.Y != l.P1.Y {
		return OrderedLine{}, New("Order", RangeError, "line is not axis-aligned")
	}
	if l.P0 == l.P1 {
		return OrderedLine{}, New("Order", RangeError, "line is zero-length")
	}
	if lessGrid(l.P0, l.P1) {
		return OrderedLine{P0: l.P0, P1: l.P1}, nil
	}
	return OrderedLine{P0: l.P1, P1: l.P0}, nil
}

// IsHorizontal reports whether the line runs along the x axis.
func (l OrderedLine) IsHorizontal() bool { return l.P0.Y == l.P1.Y }

// IsVertical reports whether the line runs along the y axis.
func (l OrderedLine) IsVertical() bool { return l.P0.X == l.P1.X }

// Length returns the line's length in grid cells.
func (l OrderedLine) Length() Offset {
	if l.IsHorizontal() {
		return Offset(l.P1.X - l.P0.X)
	}
	return Offset(l.P1.Y - l.P0.Y)
}

// PointAt returns the grid point at offset o along the line, measured
// from P0.
func (l OrderedLine) PointAt(o Offset) Grid {
	if l.IsHorizontal() {
		return Grid{X: l.P0.X + int16(o), Y: l.P0.Y}
	}
	return Grid{X: l.P0.X, Y: l.P0.Y + int16(o)}
}

// Segment identifies one segment within one wire's segment tree.
type Segment struct {
	Wire  WireID
	Index SegmentIndex
}

// SegmentPart is the finest granularity of wire selection: a part of one
// segment.
type SegmentPart struct {
	Segment Segment
	Part    Part
}
