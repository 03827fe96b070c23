package selection

import "github.com/logiksim/circuitcore/message"

// Apply keeps s valid under the message stream (spec section 4.6:
// "Selections receive the message stream so they remain valid under id
// renumbering"). It mirrors layoutindex.LayoutIndex.Apply's scope
// exactly: editing.Editor always uninserts a segment (emitting
// SegmentUninserted) before any structural change — split, merge, or
// delete — and re-inserts the result fresh afterward, so Apply never
// needs to special-case SegmentMerged/SegmentSplit directly; by the
// time one of those arrives the affected segments already left (and
// their survivors already rejoined) the selection via the surrounding
// Uninserted/Inserted pair.
func (s *Selection) Apply(msg message.InfoMessage) {
	switch msg.Kind {
	case message.ElementDeleted:
		if msg.Class == message.ClassDecoration {
			s.removeDecoration(msg.DecorationID)
		} else {
			s.removeLogicItem(msg.LogicItemID)
		}
	case message.LogicItemUninserted:
		s.removeLogicItem(msg.LogicItemID)
	case message.InsertedLogicItemIDUpdated:
		if msg.Class == message.ClassDecoration {
			s.renameDecoration(msg.OldDecorationID, msg.DecorationID)
		} else {
			s.renameLogicItem(msg.OldLogicItemID, msg.LogicItemID)
		}
	case message.SegmentDeleted, message.SegmentUninserted:
		s.removeSegment(msg.Segment)
	case message.InsertedSegmentIDUpdated:
		s.renameSegment(msg.OldSegment, msg.Segment)
	}
}
