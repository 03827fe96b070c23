package selection

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// SanitizeMode selects which direction a boundary offset that lands on
// a crossing point is shifted (spec section 4.4).
type SanitizeMode int

const (
	// SanitizeExpand grows a selection's coverage outward past a
	// crossing point, used after every "add" replay.
	SanitizeExpand SanitizeMode = iota
	// SanitizeShrink pulls a selection's coverage inward away from a
	// crossing point, used after every "substract" replay.
	SanitizeShrink
)

// isCrossing reports whether the grid point at offset along info's line
// is a wire crossing: the approximation this module uses for "a point
// where two segments intersect without terminating" is the collision
// index's StateWireCrossing classification at that cell, which is
// exact for an isolated crossing and shares the same simplification
// documented on segmenttree.RecomputeEndpoints and
// layoutindex.LayoutIndex's segmentEndOwner.
func isCrossing(info segmenttree.Info, ci *layoutindex.CollisionIndex, offset vocabulary.Offset) bool {
	return ci.State(info.Line.PointAt(offset)) == collision.StateWireCrossing
}

// shiftOffset walks offset by direction (+1 or -1) while it names a
// crossing point, stopping the moment it lands on a non-crossing
// offset or reaches either bound of the segment.
func shiftOffset(info segmenttree.Info, ci *layoutindex.CollisionIndex, offset vocabulary.Offset, direction int32) vocabulary.Offset {
	length := info.Line.Length()
	for offset > 0 && offset < length && isCrossing(info, ci, offset) {
		offset += vocabulary.Offset(direction)
	}
	if offset < 0 {
		offset = 0
	}
	if offset > length {
		offset = length
	}
	return offset
}

// directions returns the (beginDirection, endDirection) offset deltas
// for mode: expand always grows a part (begin moves down, end moves
// up), shrink always shrinks one (begin moves up, end moves down).
func directions(mode SanitizeMode) (beginDir, endDir int32) {
	if mode == SanitizeExpand {
		return -1, 1
	}
	return 1, -1
}

// SanitizePart shifts one segment_part's boundaries off any crossing
// point per mode (spec section 4.4's sanitize_part, exercised directly
// by the round-trip testable property in spec section 8 invariant 4).
func SanitizePart(sp vocabulary.SegmentPart, l *layout.Layout, ci *layoutindex.CollisionIndex, mode SanitizeMode) vocabulary.SegmentPart {
	info := l.WireTree(sp.Segment.Wire).Info(sp.Segment.Index)
	beginDir, endDir := directions(mode)
	begin := shiftOffset(info, ci, sp.Part.Begin, beginDir)
	end := shiftOffset(info, ci, sp.Part.End, endDir)
	if begin >= end {
		return vocabulary.SegmentPart{Segment: sp.Segment, Part: vocabulary.Part{Begin: begin, End: begin}}
	}
	return vocabulary.SegmentPart{Segment: sp.Segment, Part: vocabulary.Part{Begin: begin, End: end}}
}

// sanitizePartSelection applies SanitizePart's boundary shift to every
// part of ps, dropping any part that collapses to zero length.
func sanitizePartSelection(ps *segmenttree.PartSelection, info segmenttree.Info, ci *layoutindex.CollisionIndex, mode SanitizeMode) *segmenttree.PartSelection {
	out := &segmenttree.PartSelection{}
	beginDir, endDir := directions(mode)
	for _, p := range ps.Parts() {
		begin := shiftOffset(info, ci, p.Begin, beginDir)
		end := shiftOffset(info, ci, p.End, endDir)
		if begin < end {
			out.AddPart(vocabulary.Part{Begin: begin, End: end})
		}
	}
	return out
}

// SanitizeSelection walks every selected segment in sel, shifting its
// PartSelection's boundaries per mode and dropping wires whose
// selection collapses to empty (spec section 4.4: "wires with empty
// selection are dropped").
func SanitizeSelection(sel *Selection, l *layout.Layout, ci *layoutindex.CollisionIndex, mode SanitizeMode) {
	for seg, ps := range sel.Segments {
		info := l.WireTree(seg.Wire).Info(seg.Index)
		sanitized := sanitizePartSelection(ps, info, ci, mode)
		if sanitized.Empty() {
			delete(sel.Segments, seg)
		} else {
			sel.Segments[seg] = sanitized
		}
	}
}

// sanitizeSegmentEntry sanitizes a single segment's current selection
// in place (used right after a VisibleSelection operation touches one
// segment, so a mixed-mode toggle sanitizes each element with the
// mode its own resolved add/substract produced).
func sanitizeSegmentEntry(sel *Selection, seg vocabulary.Segment, info segmenttree.Info, ci *layoutindex.CollisionIndex, mode SanitizeMode) {
	ps, ok := sel.Segments[seg]
	if !ok {
		return
	}
	sanitized := sanitizePartSelection(ps, info, ci, mode)
	if sanitized.Empty() {
		delete(sel.Segments, seg)
	} else {
		sel.Segments[seg] = sanitized
	}
}
