package layoutindex

import "github.com/logiksim/circuitcore/vocabulary"

// SelectionEntry names one spatially-indexed object: a logic item, a
// decoration, or one segment of one wire (spec section 4.5's
// "SelectionIndex stores rtree entries tagged by ElementKind").
type SelectionEntry struct {
	Kind      SelectionEntryKind
	LogicItem vocabulary.LogicItemID
	Decoration vocabulary.DecorationID
	Segment   vocabulary.Segment
}

// SelectionEntryKind discriminates a SelectionEntry's payload.
type SelectionEntryKind int

const (
	SelectionEntryLogicItem SelectionEntryKind = iota
	SelectionEntryDecoration
	SelectionEntrySegment
)

// SelectionIndex is the spatial index behind rectangle-based selection
// and point-based wire lookup (spec section 4.5: query_selection,
// query_line_segments). It stores one RTree entry per logic item body,
// per decoration body, and per wire segment currently inserted.
type SelectionIndex struct {
	tree *RTree
}

// NewSelectionIndex creates an empty index.
func NewSelectionIndex() *SelectionIndex {
	return &SelectionIndex{tree: NewRTree()}
}

// AddLogicItem registers a logic item's bounding rectangle.
func (s *SelectionIndex) AddLogicItem(id vocabulary.LogicItemID, bounds Rect) {
	s.tree.Insert(RTreeEntry{Bounds: bounds, Value: SelectionEntry{Kind: SelectionEntryLogicItem, LogicItem: id}})
}

// RemoveLogicItem unregisters a logic item's bounding rectangle.
func (s *SelectionIndex) RemoveLogicItem(id vocabulary.LogicItemID, bounds Rect) {
	s.tree.Remove(RTreeEntry{Bounds: bounds, Value: SelectionEntry{Kind: SelectionEntryLogicItem, LogicItem: id}})
}

// AddDecoration registers a decoration's bounding rectangle.
func (s *SelectionIndex) AddDecoration(id vocabulary.DecorationID, bounds Rect) {
	s.tree.Insert(RTreeEntry{Bounds: bounds, Value: SelectionEntry{Kind: SelectionEntryDecoration, Decoration: id}})
}

// RemoveDecoration unregisters a decoration's bounding rectangle.
func (s *SelectionIndex) RemoveDecoration(id vocabulary.DecorationID, bounds Rect) {
	s.tree.Remove(RTreeEntry{Bounds: bounds, Value: SelectionEntry{Kind: SelectionEntryDecoration, Decoration: id}})
}

// AddSegment registers one wire segment's line.
func (s *SelectionIndex) AddSegment(seg vocabulary.Segment, line vocabulary.OrderedLine) {
	s.tree.Insert(RTreeEntry{Bounds: FromLine(line), Value: SelectionEntry{Kind: SelectionEntrySegment, Segment: seg}})
}

// RemoveSegment unregisters one wire segment's line.
func (s *SelectionIndex) RemoveSegment(seg vocabulary.Segment, line vocabulary.OrderedLine) {
	s.tree.Remove(RTreeEntry{Bounds: FromLine(line), Value: SelectionEntry{Kind: SelectionEntrySegment, Segment: seg}})
}

// QuerySelection returns every entry whose bounds intersect rect (spec
// section 4.5: rectangle selection over all three element kinds).
func (s *SelectionIndex) QuerySelection(rect Rect) []SelectionEntry {
	hits := s.tree.Query(rect)
	out := make([]SelectionEntry, len(hits))
	for i, h := range hits {
		out[i] = h.Value.(SelectionEntry)
	}
	return out
}

// maxSegmentsAtPoint bounds query_line_segments' result size: at most
// four segments can legitimately meet at one grid point (one per
// compass direction) per spec section 4.5.
const maxSegmentsAtPoint = 4

// QueryLineSegments returns up to four wire segments whose line passes
// through point, the cap matching the at-most-one-segment-per-compass-
// direction invariant for a well-formed wire junction.
func (s *SelectionIndex) QueryLineSegments(point vocabulary.Grid) []vocabulary.Segment {
	pointRect := Rect{MinX: float64(point.X), MinY: float64(point.Y), MaxX: float64(point.X), MaxY: float64(point.Y)}
	hits := s.tree.Query(pointRect)
	var out []vocabulary.Segment
	for _, h := range hits {
		entry, ok := h.Value.(SelectionEntry)
		if !ok || entry.Kind != SelectionEntrySegment {
			continue
		}
		out = append(out, entry.Segment)
		if len(out) == maxSegmentsAtPoint {
			break
		}
	}
	return out
}
