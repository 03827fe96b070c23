package segmenttree

import "github.com/logiksim/circuitcore/vocabulary"

// Info is the persisted shape of one segment: its line and the
// SegmentPointType of each of its two ordered endpoints.
type Info struct {
	Line  vocabulary.OrderedLine
	P0Type vocabulary.SegmentPointType
	P1Type vocabulary.SegmentPointType
}

// FullPart returns the [0, length) part spanning the whole segment.
func (i Info) FullPart() vocabulary.Part {
	return vocabulary.Part{Begin: 0, End: i.Line.Length()}
}

// PointType returns the endpoint type at the given end of the segment: 0
// for P0, 1 for P1. Any other value is a programming error.
func (i Info) PointType(end int) vocabulary.SegmentPointType {
	if end == 0 {
		return i.P0Type
	}
	return i.P1Type
}
