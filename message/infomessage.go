// Package message defines the InfoMessage bus: a tagged union of events
// describing a single committed mutation to the Layout, and the bus that
// fans them out synchronously to every observer.
package message

import (
	"fmt"

	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Kind tags the variant held by an InfoMessage.
type Kind int

const (
	ElementCreated Kind = iota
	ElementDeleted
	ElementUpdated

	LogicItemInserted
	LogicItemUninserted
	InsertedLogicItemIDUpdated

	SegmentCreated
	SegmentDeleted
	SegmentUpdated

	SegmentInserted
	SegmentUninserted
	InsertedSegmentIDUpdated

	SegmentMerged
	SegmentSplit
)

func (k Kind) String() string {
	names := [...]string{
		"ElementCreated", "ElementDeleted", "ElementUpdated",
		"LogicItemInserted", "LogicItemUninserted", "InsertedLogicItemIDUpdated",
		"SegmentCreated", "SegmentDeleted", "SegmentUpdated",
		"SegmentInserted", "SegmentUninserted", "InsertedSegmentIDUpdated",
		"SegmentMerged", "SegmentSplit",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ElementClass distinguishes which store a message's element id refers
// to, since logic items and decorations share the ElementCreated/
// Deleted/Updated kinds.
type ElementClass int

const (
	ClassLogicItem ElementClass = iota
	ClassDecoration
)

// InfoMessage is the single event type the message bus carries. Only
// the fields relevant to Kind are populated; callers switch on Kind.
type InfoMessage struct {
	Kind Kind

	Class ElementClass

	LogicItemID    vocabulary.LogicItemID
	OldLogicItemID vocabulary.LogicItemID
	DecorationID    vocabulary.DecorationID
	OldDecorationID vocabulary.DecorationID

	ItemType layoutinfo.LogicItemType

	Segment    vocabulary.Segment
	OldSegment vocabulary.Segment

	// MergedInto/MergedFrom are populated for SegmentMerged: the
	// surviving segment and the one folded into it.
	MergedInto vocabulary.Segment
	MergedFrom vocabulary.Segment

	// SplitOriginal/SplitLeft/SplitRight are populated for SegmentSplit.
	SplitOriginal vocabulary.Segment
	SplitLeft     vocabulary.Segment
	SplitRight    vocabulary.Segment
}

func (m InfoMessage) String() string {
	return fmt.Sprintf("%s{logicitem=%s decoration=%s segment=%v}", m.Kind, m.LogicItemID, m.DecorationID, m.Segment)
}
