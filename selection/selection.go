// Package selection implements the Selection composition (spec
// section 3: a set of logic-item ids, a set of decoration ids, and a
// per-segment PartSelection map), the ref-counted SelectionResource
// registry that keeps those live across id renumbering, the
// VisibleSelection operation list with its lazily-materialized cache,
// and the crossing-point sanitization rules that make selecting
// across a wire junction well-defined.
package selection

import (
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Selection composes every kind of element a user can select.
type Selection struct {
	LogicItems  map[vocabulary.LogicItemID]struct{}
	Decorations map[vocabulary.DecorationID]struct{}
	Segments    map[vocabulary.Segment]*segmenttree.PartSelection
}

// New returns an empty Selection.
func New() *Selection {
	return &Selection{
		LogicItems:  make(map[vocabulary.LogicItemID]struct{}),
		Decorations: make(map[vocabulary.DecorationID]struct{}),
		Segments:    make(map[vocabulary.Segment]*segmenttree.PartSelection),
	}
}

// Clone returns a deep copy; mutating the result never affects s.
func (s *Selection) Clone() *Selection {
	c := New()
	for id := range s.LogicItems {
		c.LogicItems[id] = struct{}{}
	}
	for id := range s.Decorations {
		c.Decorations[id] = struct{}{}
	}
	for seg, ps := range s.Segments {
		clone := &segmenttree.PartSelection{}
		for _, p := range ps.Parts() {
			clone.AddPart(p)
		}
		c.Segments[seg] = clone
	}
	return c
}

// Empty reports whether s holds no selected elements at all.
func (s *Selection) Empty() bool {
	return len(s.LogicItems) == 0 && len(s.Decorations) == 0 && len(s.Segments) == 0
}

// AddLogicItem marks id selected.
func (s *Selection) AddLogicItem(id vocabulary.LogicItemID) {
	s.LogicItems[id] = struct{}{}
}

// RemoveLogicItem unmarks id.
func (s *Selection) RemoveLogicItem(id vocabulary.LogicItemID) {
	delete(s.LogicItems, id)
}

// HasLogicItem reports whether id is selected.
func (s *Selection) HasLogicItem(id vocabulary.LogicItemID) bool {
	_, ok := s.LogicItems[id]
	return ok
}

// AddDecoration marks id selected.
func (s *Selection) AddDecoration(id vocabulary.DecorationID) {
	s.Decorations[id] = struct{}{}
}

// RemoveDecoration unmarks id.
func (s *Selection) RemoveDecoration(id vocabulary.DecorationID) {
	delete(s.Decorations, id)
}

// HasDecoration reports whether id is selected.
func (s *Selection) HasDecoration(id vocabulary.DecorationID) bool {
	_, ok := s.Decorations[id]
	return ok
}

// AddSegmentPart marks part of seg selected, creating the segment's
// PartSelection entry on first use and dropping it again if the
// add happens to leave it empty (it never does, since AddPart always
// grows coverage, but RemoveSegmentPart relies on the same cleanup).
func (s *Selection) AddSegmentPart(seg vocabulary.Segment, part vocabulary.Part) {
	ps, ok := s.Segments[seg]
	if !ok {
		ps = &segmenttree.PartSelection{}
		s.Segments[seg] = ps
	}
	ps.AddPart(part)
}

// RemoveSegmentPart unmarks part of seg, dropping the segment's entry
// entirely once nothing of it remains selected (spec section 4.4:
// "wires with empty selection are dropped").
func (s *Selection) RemoveSegmentPart(seg vocabulary.Segment, part vocabulary.Part) {
	ps, ok := s.Segments[seg]
	if !ok {
		return
	}
	ps.RemovePart(part)
	if ps.Empty() {
		delete(s.Segments, seg)
	}
}

// renameLogicItem rewrites a moved logic item's id in place, as driven
// by an InsertedLogicItemIdUpdated message.
func (s *Selection) renameLogicItem(old, updated vocabulary.LogicItemID) {
	if _, ok := s.LogicItems[old]; !ok {
		return
	}
	delete(s.LogicItems, old)
	s.LogicItems[updated] = struct{}{}
}

// renameDecoration is the decoration analogue of renameLogicItem.
func (s *Selection) renameDecoration(old, updated vocabulary.DecorationID) {
	if _, ok := s.Decorations[old]; !ok {
		return
	}
	delete(s.Decorations, old)
	s.Decorations[updated] = struct{}{}
}

// renameSegment rewrites a moved segment's key in place, preserving
// its PartSelection contents exactly (spec section 3: a "…IdUpdated"
// message rewrites contained ids without otherwise touching them).
func (s *Selection) renameSegment(old, updated vocabulary.Segment) {
	ps, ok := s.Segments[old]
	if !ok {
		return
	}
	delete(s.Segments, old)
	s.Segments[updated] = ps
}

// removeLogicItem drops id unconditionally, as driven by an Uninserted
// or Deleted message.
func (s *Selection) removeLogicItem(id vocabulary.LogicItemID) {
	delete(s.LogicItems, id)
}

func (s *Selection) removeDecoration(id vocabulary.DecorationID) {
	delete(s.Decorations, id)
}

func (s *Selection) removeSegment(seg vocabulary.Segment) {
	delete(s.Segments, seg)
}
