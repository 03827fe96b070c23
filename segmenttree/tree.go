package segmenttree

import (
	"fmt"

	"github.com/logiksim/circuitcore/vocabulary"
)

// entry bundles one segment's persisted shape with the part of it that
// currently survives collisions ("valid").
type entry struct {
	info  Info
	valid PartSelection
}

// Tree is the per-wire geometry store: a compact list of segments plus
// each one's valid PartSelection. One Tree exists per vocabulary.WireID,
// including the two uninserted aggregates (temporary, colliding).
type Tree struct {
	wire    vocabulary.WireID
	entries []entry
}

// NewTree creates an empty segment tree for wire.
func NewTree(wire vocabulary.WireID) *Tree {
	return &Tree{wire: wire}
}

// Wire returns the id this tree belongs to.
func (t *Tree) Wire() vocabulary.WireID { return t.wire }

// Len returns the number of segments in the tree.
func (t *Tree) Len() int { return len(t.entries) }

// Info returns the persisted shape of segment i.
func (t *Tree) Info(i vocabulary.SegmentIndex) Info {
	return t.entries[i].info
}

// ValidParts returns the PartSelection of segment i that currently
// survives collisions. Callers must not retain the pointer across a
// mutation of the tree.
func (t *Tree) ValidParts(i vocabulary.SegmentIndex) *PartSelection {
	return &t.entries[i].valid
}

// AddSegment appends a new segment and returns its index. The new
// segment starts with an empty valid-parts selection; callers that want
// the whole segment valid call ValidParts(idx).AddPart(info.FullPart()).
func (t *Tree) AddSegment(info Info) vocabulary.SegmentIndex {
	t.entries = append(t.entries, entry{info: info})
	return vocabulary.SegmentIndex(len(t.entries) - 1)
}

// UpdateSegment replaces the persisted shape of segment i, preserving
// its valid-parts selection.
func (t *Tree) UpdateSegment(i vocabulary.SegmentIndex, info Info) {
	t.entries[i].info = info
}

// DeleteSegment removes segment i by swap-remove. If a segment moved to
// fill the hole, movedFrom/movedTo report its old and new index and ok
// is true; callers must re-announce the moved segment's new index
// (mirrors the id-renumbering announced by InsertedSegmentIdUpdated).
func (t *Tree) DeleteSegment(i vocabulary.SegmentIndex) (movedFrom, movedTo vocabulary.SegmentIndex, ok bool) {
	last := vocabulary.SegmentIndex(len(t.entries) - 1)
	if i == last {
		t.entries = t.entries[:last]
		return 0, 0, false
	}
	t.entries[i] = t.entries[last]
	t.entries = t.entries[:last]
	return last, i, true
}

// collinearSameDirection reports whether two segments are collinear and
// run in the same direction (both horizontal or both vertical, on the
// same axis line).
func collinearSameDirection(a, b Info) bool {
	if a.Line.IsHorizontal() != b.Line.IsHorizontal() {
		return false
	}
	if a.Line.IsHorizontal() {
		return a.Line.P0.Y == b.Line.P0.Y
	}
	return a.Line.P0.X == b.Line.P0.X
}

// touchingEndpoint reports whether a and b share exactly one endpoint
// (the touching point), returning it and true.
func touchingEndpoint(a, b Info) (vocabulary.Grid, bool) {
	switch {
	case a.Line.P1 == b.Line.P0:
		return a.Line.P1, true
	case a.Line.P0 == b.Line.P1:
		return a.Line.P0, true
	case a.Line.P0 == b.Line.P0:
		return a.Line.P0, true
	case a.Line.P1 == b.Line.P1:
		return a.Line.P1, true
	default:
		return vocabulary.Grid{}, false
	}
}

// endTypeAt returns the SegmentPointType a segment declares at the given
// shared grid point, assuming point is one of its two endpoints.
func endTypeAt(info Info, point vocabulary.Grid) vocabulary.SegmentPointType {
	if info.Line.P0 == point {
		return info.P0Type
	}
	return info.P1Type
}

// CanMerge reports whether segments a and b (by index) are collinear,
// touching, and share an endpoint type that is not input/output/
// visual_cross_point — the precondition spec section 4.2 requires for
// Merge.
func (t *Tree) CanMerge(a, b vocabulary.SegmentIndex) bool {
	ia, ib := t.entries[a].info, t.entries[b].info
	if !collinearSameDirection(ia, ib) {
		return false
	}
	point, touches := touchingEndpoint(ia, ib)
	if !touches {
		return false
	}
	switch endTypeAt(ia, point) {
	case vocabulary.PointInput, vocabulary.PointOutput, vocabulary.PointVisualCrossPoint:
		return false
	}
	return true
}

// Merge combines segments a and b into one, keeping index a's slot (the
// lower id) and deleting b via swap-remove. Both must satisfy
// CanMerge; callers check that first so the error path here is only
// ever a programming error, and so asserts fatally instead of returning
// an error.
func (t *Tree) Merge(a, b vocabulary.SegmentIndex) (movedFrom, movedTo vocabulary.SegmentIndex, moved bool) {
	if !t.CanMerge(a, b) {
		vocabulary.Fatal("Tree.Merge", map[string]string{
			"a": fmt.Sprintf("%d", a), "b": fmt.Sprintf("%d", b)},
			"segments %d and %d do not satisfy the merge precondition", a, b)
	}
	ia, ib := t.entries[a].info, t.entries[b].info

	lo, hi := ia.Line, ib.Line
	merged := vocabulary.OrderedLine{P0: lo.P0, P1: lo.P1}
	if hi.P0.X < merged.P0.X || hi.P0.Y < merged.P0.Y {
		merged.P0 = hi.P0
	}
	if hi.P1.X > merged.P1.X || hi.P1.Y > merged.P1.Y {
		merged.P1 = hi.P1
	}

	// Re-anchor b's valid offsets into merged's coordinate space before
	// folding them into a.
	deltaA := int32(0)
	if ia.Line.P0 != merged.P0 {
		deltaA = distance(merged.P0, ia.Line.P0)
	}
	deltaB := distance(merged.P0, ib.Line.P0)

	newValid := PartSelection{}
	for _, p := range t.entries[a].valid.parts {
		newValid.addPart(vocabulary.Part{Begin: p.Begin + vocabulary.Offset(deltaA), End: p.End + vocabulary.Offset(deltaA)})
	}
	for _, p := range t.entries[b].valid.parts {
		newValid.addPart(vocabulary.Part{Begin: p.Begin + vocabulary.Offset(deltaB), End: p.End + vocabulary.Offset(deltaB)})
	}

	p0Type := ia.P0Type
	if merged.P0 != ia.Line.P0 {
		p0Type = ib.PointType(endIndex(ib, merged.P0))
	}
	p1Type := ia.P1Type
	if merged.P1 != ia.Line.P1 {
		p1Type = ib.PointType(endIndex(ib, merged.P1))
	}

	t.entries[a] = entry{info: Info{Line: merged, P0Type: p0Type, P1Type: p1Type}, valid: newValid}
	return t.DeleteSegment(b)
}

func endIndex(info Info, point vocabulary.Grid) int {
	if info.Line.P0 == point {
		return 0
	}
	return 1
}

func distance(a, b vocabulary.Grid) int32 {
	if a.X != b.X {
		d := int32(b.X) - int32(a.X)
		if d < 0 {
			d = -d
		}
		return d
	}
	d := int32(b.Y) - int32(a.Y)
	if d < 0 {
		d = -d
	}
	return d
}

// SplitSegment splits segment i at offset, which must be strictly
// inside the segment (0 < offset < length). It returns the indices of
// the two resulting segments (left keeps i's slot, right is appended).
// The split point's two new endpoint types (left's P1, right's P0) are
// both set to PointCollidingPoint; callers recompute exact types
// afterward with RecomputeEndpoints.
func (t *Tree) SplitSegment(i vocabulary.SegmentIndex, offset vocabulary.Offset) (left, right vocabulary.SegmentIndex, err error) {
	info := t.entries[i].info
	if offset <= 0 || offset >= info.Line.Length() {
		return 0, 0, vocabulary.New("SplitSegment", vocabulary.RangeError, "offset %d not strictly inside segment of length %d", offset, info.Line.Length())
	}

	splitPoint := info.Line.PointAt(offset)
	leftInfo := Info{Line: vocabulary.OrderedLine{P0: info.Line.P0, P1: splitPoint}, P0Type: info.P0Type, P1Type: vocabulary.PointCollidingPoint}
	rightInfo := Info{Line: vocabulary.OrderedLine{P0: splitPoint, P1: info.Line.P1}, P0Type: vocabulary.PointCollidingPoint, P1Type: info.P1Type}

	leftValid := PartSelection{}
	rightValid := PartSelection{}
	CopyParts(&leftValid, &t.entries[i].valid, CopyRange{Src: vocabulary.Part{Begin: 0, End: offset}, Dst: vocabulary.Part{Begin: 0, End: offset}})
	CopyParts(&rightValid, &t.entries[i].valid, CopyRange{Src: vocabulary.Part{Begin: offset, End: info.Line.Length()}, Dst: vocabulary.Part{Begin: 0, End: info.Line.Length() - offset}})

	t.entries[i] = entry{info: leftInfo, valid: leftValid}
	t.entries = append(t.entries, entry{info: rightInfo, valid: rightValid})
	return i, vocabulary.SegmentIndex(len(t.entries) - 1), nil
}
