package segmenttree

import "github.com/logiksim/circuitcore/vocabulary"

// RecomputeEndpoints re-derives every segment's endpoint SegmentPointType
// from the current geometry of the tree, following spec section 4.2:
// at a grid point that ends a segment of this wire, the point becomes
// cross_point_horizontal if the terminating segment is horizontal and a
// vertical segment of the same wire passes through it (symmetrically for
// vertical); a T junction (two segments terminating at the same point,
// with no third segment passing through) marks the segment that
// continues the dominant line as shadow_point and the other as a plain
// colliding_point, leaving input/output/visual_cross_point endpoints
// untouched since those are set explicitly by connector/crossing logic
// elsewhere.
func (t *Tree) RecomputeEndpoints() {
	type end struct {
		seg vocabulary.SegmentIndex
		idx int // 0 = P0, 1 = P1
	}

	byPoint := map[vocabulary.Grid][]end{}
	passing := map[vocabulary.Grid][]vocabulary.SegmentIndex{}

	for i := range t.entries {
		info := t.entries[i].info
		byPoint[info.Line.P0] = append(byPoint[info.Line.P0], end{seg: vocabulary.SegmentIndex(i), idx: 0})
		byPoint[info.Line.P1] = append(byPoint[info.Line.P1], end{seg: vocabulary.SegmentIndex(i), idx: 1})
		for _, p := range interiorPoints(info.Line) {
			passing[p] = append(passing[p], vocabulary.SegmentIndex(i))
		}
	}

	for point, ends := range byPoint {
		passers := passing[point]

		if len(ends) == 1 {
			e := ends[0]
			cur := t.entries[e.seg].info.PointType(e.idx)
			if preserved(cur) {
				continue
			}
			if len(passers) > 0 {
				t.setEndpoint(e.seg, e.idx, crossPointType(t.entries[e.seg].info.Line))
			}
			continue
		}

		// T junction: two or more segments terminate at the same point.
		// Pick the segment whose line is longest as the "passing" member
		// (deterministic, index-stable tie-break) and mark it
		// shadow_point; mark the rest colliding_point unless preserved.
		dominant := ends[0]
		for _, e := range ends[1:] {
			if t.entries[e.seg].info.Line.Length() > t.entries[dominant.seg].info.Line.Length() {
				dominant = e
			}
		}
		for _, e := range ends {
			cur := t.entries[e.seg].info.PointType(e.idx)
			if preserved(cur) {
				continue
			}
			if e == dominant {
				t.setEndpoint(e.seg, e.idx, vocabulary.PointShadowPoint)
			} else {
				t.setEndpoint(e.seg, e.idx, vocabulary.PointCollidingPoint)
			}
		}
	}
}

func preserved(t vocabulary.SegmentPointType) bool {
	switch t {
	case vocabulary.PointInput, vocabulary.PointOutput, vocabulary.PointVisualCrossPoint:
		return true
	default:
		return false
	}
}

func crossPointType(l vocabulary.OrderedLine) vocabulary.SegmentPointType {
	if l.IsHorizontal() {
		return vocabulary.PointCrossPointHorizontal
	}
	return vocabulary.PointCrossPointVertical
}

func (t *Tree) setEndpoint(seg vocabulary.SegmentIndex, idx int, typ vocabulary.SegmentPointType) {
	info := t.entries[seg].info
	if idx == 0 {
		info.P0Type = typ
	} else {
		info.P1Type = typ
	}
	t.entries[seg].info = info
}

// interiorPoints returns every grid cell strictly between l's endpoints.
func interiorPoints(l vocabulary.OrderedLine) []vocabulary.Grid {
	n := l.Length()
	if n <= 1 {
		return nil
	}
	pts := make([]vocabulary.Grid, 0, n-1)
	for o := vocabulary.Offset(1); o < n; o++ {
		pts = append(pts, l.PointAt(o))
	}
	return pts
}
