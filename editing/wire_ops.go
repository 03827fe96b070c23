package editing

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// AddWireSegment creates a segment along line under mode, mirroring
// AddLogicItem's three-way InsertionMode split (spec section 4.3).
// Unlike a logic item, a wire segment's "state" is which wire tree it
// lives in rather than a DisplayState field: ModeTemporary always
// lands on vocabulary.TemporaryWireID, a colliding candidate moves to
// vocabulary.CollidingWireID, and a clean candidate is assigned a real
// wire id — either an existing network it touches, or a freshly
// allocated one — and registered in the index via SegmentInserted.
func (e *Editor) AddWireSegment(line vocabulary.OrderedLine, p0Type, p1Type vocabulary.SegmentPointType, mode layout.InsertionMode) (vocabulary.Segment, error) {
	info := segmenttree.Info{Line: line, P0Type: p0Type, P1Type: p1Type}
	seg, created := e.Layout.CreateSegment(vocabulary.TemporaryWireID, info)
	e.submit(created, nil)

	if mode == layout.ModeTemporary {
		return seg, nil
	}

	if IsWireSegmentColliding(e.Index, line) {
		seg = e.moveSegmentTree(seg, vocabulary.CollidingWireID)
		if mode == layout.ModeInsertOrDiscard {
			e.deleteSegmentRaw(seg)
			return vocabulary.Segment{}, vocabulary.New("AddWireSegment", vocabulary.Collision, "wire segment %v collides", line)
		}
		return seg, nil
	}

	wireID, loop := e.resolveWireNetwork(line)
	if loop {
		e.deleteSegmentRaw(seg)
		return vocabulary.Segment{}, vocabulary.New("AddWireSegment", vocabulary.Collision, "wire segment %v would close a loop on the same wire", line)
	}

	seg = e.moveSegmentTree(seg, wireID)
	seg = e.convertEndpointsOnInsert(seg, line)
	e.submit(message.InfoMessage{Kind: message.SegmentInserted, Segment: seg}, nil)
	return seg, nil
}

// convertEndpointsOnInsert folds a loose wire endpoint into a direct
// connection when it lands on an already-registered logic-item output
// connector (spec section 4.3's convertible-input conversion, scenario
// S5): FindConvertibleWireInputs names the endpoints eligible, and each
// is rewritten to PointInput before the segment is registered, so the
// index records it as a wire_connection rather than an unresolved
// endpoint from the start.
func (e *Editor) convertEndpointsOnInsert(seg vocabulary.Segment, line vocabulary.OrderedLine) vocabulary.Segment {
	convertible := FindConvertibleWireInputs(e.Index, line)
	if len(convertible) == 0 {
		return seg
	}

	info := e.Layout.WireTree(seg.Wire).Info(seg.Index)
	changed := false
	for _, point := range convertible {
		if point == info.Line.P0 && info.P0Type != vocabulary.PointInput {
			info.P0Type = vocabulary.PointInput
			changed = true
		}
		if point == info.Line.P1 && info.P1Type != vocabulary.PointInput {
			info.P1Type = vocabulary.PointInput
			changed = true
		}
	}
	if !changed {
		return seg
	}
	e.Layout.UpdateSegment(seg, info)
	return seg
}

// resolveWireNetwork decides which wire id a new, collision-free
// segment along line should join, by checking whether each endpoint
// already touches an existing inserted wire's geometry (via the
// collision index's per-axis owner, which carries the owning wire
// id). Two endpoints touching the very same existing wire would close
// a loop and are rejected (spec scenario S4); touching two distinct
// existing wires is not auto-merged here (see DESIGN.md) — the new
// segment simply joins whichever one exists, or a fresh id if
// neither endpoint touches anything yet. Callers that want two
// distinct networks joined use MergeWires explicitly.
func (e *Editor) resolveWireNetwork(line vocabulary.OrderedLine) (wireID vocabulary.WireID, loop bool) {
	w0, ok0 := e.wireAt(line.P0)
	w1, ok1 := e.wireAt(line.P1)

	switch {
	case ok0 && ok1 && w0 == w1:
		return 0, true
	case ok0:
		return w0, false
	case ok1:
		return w1, false
	default:
		return e.Layout.AllocateWireID(), false
	}
}

func (e *Editor) wireAt(point vocabulary.Grid) (vocabulary.WireID, bool) {
	t := e.Index.Collisions.Triple(point)
	if t.Horizontal.Kind != collision.OwnerNone {
		return t.Horizontal.Wire, true
	}
	if t.Vertical.Kind != collision.OwnerNone {
		return t.Vertical.Wire, true
	}
	return 0, false
}

// moveSegmentTree relocates a not-yet-inserted segment (living in
// TemporaryWireID or CollidingWireID, never registered in the index)
// from its current tree to target, preserving its Info.
func (e *Editor) moveSegmentTree(seg vocabulary.Segment, target vocabulary.WireID) vocabulary.Segment {
	info := e.Layout.WireTree(seg.Wire).Info(seg.Index)
	deleted, moved := e.Layout.DeleteSegment(seg)
	e.submit(deleted, moved)
	newSeg, created := e.Layout.CreateSegment(target, info)
	e.submit(created, nil)
	return newSeg
}

// deleteSegmentRaw discards an uninserted segment outright (used to
// unwind a discarded ModeInsertOrDiscard candidate).
func (e *Editor) deleteSegmentRaw(seg vocabulary.Segment) {
	deleted, moved := e.Layout.DeleteSegment(seg)
	e.submit(deleted, moved)
}

// DeleteWireSegment uninserts seg (if it is currently registered,
// i.e. lives on a real inserted wire id) and removes it from Layout.
// If that was the wire's last segment, the now-empty wire tree is
// discarded along with it.
func (e *Editor) DeleteWireSegment(seg vocabulary.Segment) error {
	if seg.Wire.IsInserted() {
		e.submit(message.InfoMessage{Kind: message.SegmentUninserted, Segment: seg}, nil)
	}
	deleted, moved := e.Layout.DeleteSegment(seg)
	e.submit(deleted, moved)
	return nil
}

// SplitWire splits seg at offset into two segments (spec section
// 4.2). If seg was registered in the index, both halves are
// re-registered under their new indices after the split since the
// original geometry no longer exists as one Segment key.
func (e *Editor) SplitWire(seg vocabulary.Segment, offset vocabulary.Offset) (left, right vocabulary.Segment, err error) {
	wasInserted := seg.Wire.IsInserted()
	if wasInserted {
		e.submit(message.InfoMessage{Kind: message.SegmentUninserted, Segment: seg}, nil)
	}

	split, err := e.Layout.SplitSegment(seg, offset)
	if err != nil {
		return vocabulary.Segment{}, vocabulary.Segment{}, err
	}
	e.submit(split, nil)

	if wasInserted {
		e.submit(message.InfoMessage{Kind: message.SegmentInserted, Segment: split.SplitLeft}, nil)
		e.submit(message.InfoMessage{Kind: message.SegmentInserted, Segment: split.SplitRight}, nil)
	}
	return split.SplitLeft, split.SplitRight, nil
}

// MergeWires folds segment b into segment a (same wire, must satisfy
// segmenttree.Tree.CanMerge). If the wire's segments are registered,
// they are uninserted first and the merged survivor re-inserted
// afterward.
func (e *Editor) MergeWires(wire vocabulary.WireID, a, b vocabulary.SegmentIndex) (vocabulary.Segment, error) {
	segA := vocabulary.Segment{Wire: wire, Index: a}
	segB := vocabulary.Segment{Wire: wire, Index: b}
	wasInserted := wire.IsInserted()

	if wasInserted {
		e.submit(message.InfoMessage{Kind: message.SegmentUninserted, Segment: segA}, nil)
		e.submit(message.InfoMessage{Kind: message.SegmentUninserted, Segment: segB}, nil)
	}

	merged, moved := e.Layout.MergeSegments(wire, a, b)
	e.submit(merged, moved)

	survivor := merged.MergedInto
	if moved != nil && moved.OldSegment == survivor {
		survivor = moved.Segment
	}

	if wasInserted {
		e.submit(message.InfoMessage{Kind: message.SegmentInserted, Segment: survivor}, nil)
	}
	return survivor, nil
}
