package layout

import (
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// CreateSegment appends a segment to wire's tree and returns its
// SegmentCreated message. It performs no collision checking; package
// editing decides which wire (temporary/colliding/a real inserted wire)
// a segment belongs to.
func (l *Layout) CreateSegment(wire vocabulary.WireID, info segmenttree.Info) (vocabulary.Segment, message.InfoMessage) {
	tree := l.WireTree(wire)
	idx := tree.AddSegment(info)
	seg := vocabulary.Segment{Wire: wire, Index: idx}
	return seg, message.InfoMessage{Kind: message.SegmentCreated, Segment: seg}
}

// UpdateSegment replaces the persisted shape of an existing segment.
func (l *Layout) UpdateSegment(seg vocabulary.Segment, info segmenttree.Info) message.InfoMessage {
	l.WireTree(seg.Wire).UpdateSegment(seg.Index, info)
	return message.InfoMessage{Kind: message.SegmentUpdated, Segment: seg}
}

// DeleteSegment removes a segment from its tree by swap-remove. If a
// segment moved to fill the hole, the caller must also submit the
// returned moved message.
func (l *Layout) DeleteSegment(seg vocabulary.Segment) (deleted message.InfoMessage, moved *message.InfoMessage) {
	tree := l.WireTree(seg.Wire)
	movedFrom, movedTo, ok := tree.DeleteSegment(seg.Index)
	deleted = message.InfoMessage{Kind: message.SegmentDeleted, Segment: seg}
	if ok {
		oldSeg := vocabulary.Segment{Wire: seg.Wire, Index: movedFrom}
		newSeg := vocabulary.Segment{Wire: seg.Wire, Index: movedTo}
		m := message.InfoMessage{Kind: message.InsertedSegmentIDUpdated, OldSegment: oldSeg, Segment: newSeg}
		moved = &m
	}
	if tree.Len() == 0 && seg.Wire.IsInserted() {
		l.DeleteWire(seg.Wire)
	}
	return deleted, moved
}

// MergeSegments folds segment b into segment a within the same wire
// (they must satisfy segmenttree.Tree.CanMerge) and returns the
// SegmentMerged message plus, if b's removal moved another segment, the
// id-updated follow-up.
func (l *Layout) MergeSegments(wire vocabulary.WireID, a, b vocabulary.SegmentIndex) (merged message.InfoMessage, moved *message.InfoMessage) {
	tree := l.WireTree(wire)
	survivorBefore := vocabulary.Segment{Wire: wire, Index: a}
	absorbed := vocabulary.Segment{Wire: wire, Index: b}
	movedFrom, movedTo, ok := tree.Merge(a, b)
	merged = message.InfoMessage{Kind: message.SegmentMerged, MergedInto: survivorBefore, MergedFrom: absorbed}
	if ok {
		oldSeg := vocabulary.Segment{Wire: wire, Index: movedFrom}
		newSeg := vocabulary.Segment{Wire: wire, Index: movedTo}
		m := message.InfoMessage{Kind: message.InsertedSegmentIDUpdated, OldSegment: oldSeg, Segment: newSeg}
		moved = &m
	}
	return merged, moved
}

// SplitSegment splits a segment at offset and returns the SegmentSplit
// message describing the resulting left/right segments.
func (l *Layout) SplitSegment(seg vocabulary.Segment, offset vocabulary.Offset) (message.InfoMessage, error) {
	tree := l.WireTree(seg.Wire)
	left, right, err := tree.SplitSegment(seg.Index, offset)
	if err != nil {
		return message.InfoMessage{}, err
	}
	return message.InfoMessage{
		Kind:          message.SegmentSplit,
		SplitOriginal: seg,
		SplitLeft:     vocabulary.Segment{Wire: seg.Wire, Index: left},
		SplitRight:    vocabulary.Segment{Wire: seg.Wire, Index: right},
	}, nil
}
