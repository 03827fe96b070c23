package layoutindex

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// LayoutIndex aggregates the six derived sub-indices spec section 4.5
// describes: input/output connection indices for logic items and for
// wires, the collision index, and the spatial selection index. It owns
// no authoritative state of its own — everything here is rebuilt by
// replaying the InfoMessage stream a Layout emits, and Apply is the
// single entry point that keeps all six in sync with one message at a
// time.
type LayoutIndex struct {
	LogicItemInputs  *LogicItemConnectionIndex
	LogicItemOutputs *LogicItemConnectionIndex
	WireInputs       *WireConnectionIndex
	WireOutputs      *WireConnectionIndex
	Collisions       *CollisionIndex
	Selection        *SelectionIndex
}

// New creates an empty LayoutIndex with all six sub-indices
// initialized.
func New() *LayoutIndex {
	return &LayoutIndex{
		LogicItemInputs:  NewLogicItemConnectionIndex(),
		LogicItemOutputs: NewLogicItemConnectionIndex(),
		WireInputs:       NewWireConnectionIndex(),
		WireOutputs:      NewWireConnectionIndex(),
		Collisions:       NewCollisionIndex(),
		Selection:        NewSelectionIndex(),
	}
}

// Apply updates every sub-index for one InfoMessage. l resolves the
// geometry (position, definition, segment line) a bare id or Segment
// in msg does not itself carry; callers pass the same Layout the
// message stream for msg was produced from.
func (idx *LayoutIndex) Apply(msg message.InfoMessage, l *layout.Layout) {
	switch msg.Kind {
	case message.LogicItemInserted:
		idx.addLogicItemEntries(msg.LogicItemID, l.LogicItem(msg.LogicItemID))
	case message.LogicItemUninserted:
		idx.removeLogicItemEntries(msg.LogicItemID, l.LogicItem(msg.LogicItemID))

	case message.SegmentInserted:
		idx.addSegmentEntries(msg.Segment, l.WireTree(msg.Segment.Wire).Info(msg.Segment.Index))
	case message.SegmentUninserted:
		idx.removeSegmentEntries(msg.Segment, l.WireTree(msg.Segment.Wire).Info(msg.Segment.Index))

	case message.InsertedSegmentIDUpdated:
		idx.renameSegment(msg.OldSegment, msg.Segment, l)

	case message.InsertedLogicItemIDUpdated:
		if msg.Class == message.ClassLogicItem {
			idx.renameLogicItem(msg.OldLogicItemID, msg.LogicItemID, l)
		}
	}
}

func mustAdd(pos vocabulary.Grid, offset vocabulary.Grid) vocabulary.Grid {
	g, err := vocabulary.AddGrid(pos, offset.X, offset.Y)
	if err != nil {
		vocabulary.Fatal("layoutindex.mustAdd", map[string]string{"position": pos.String()}, "connector offset overflows an already-validated item")
	}
	return g
}

func (idx *LayoutIndex) addLogicItemEntries(id vocabulary.LogicItemID, item layout.LogicItem) {
	def := item.Definition

	for _, p := range layoutinfo.OrientedBodyPoints(def.Type, def.InputCount, def.Orientation) {
		idx.Collisions.SetBody(mustAdd(item.Position, p), collision.Owner{Kind: collision.OwnerElement, Item: id})
	}
	for i, c := range layoutinfo.OrientedInputConnectors(def.Type, def.InputCount, def.Orientation) {
		point := mustAdd(item.Position, c.Offset)
		idx.Collisions.SetBody(point, collision.Owner{Kind: collision.OwnerConnectionTag})
		idx.LogicItemInputs.Add(point, LogicItemConnectionRef{LogicItem: id, Connection: vocabulary.ConnectionID(i), Orientation: c.Orientation})
	}
	for i, c := range layoutinfo.OrientedOutputConnectors(def.Type, def.InputCount, def.OutputCount, def.Orientation) {
		point := mustAdd(item.Position, c.Offset)
		idx.Collisions.SetBody(point, collision.Owner{Kind: collision.OwnerConnectionTag})
		idx.LogicItemOutputs.Add(point, LogicItemConnectionRef{LogicItem: id, Connection: vocabulary.ConnectionID(i), Orientation: c.Orientation})
	}

	width, height := layoutinfo.BoundingSize(def.Type, def.InputCount, def.Orientation)
	idx.Selection.AddLogicItem(id, FromGrid(item.Position, width, height))
}

func (idx *LayoutIndex) removeLogicItemEntries(id vocabulary.LogicItemID, item layout.LogicItem) {
	def := item.Definition

	for _, p := range layoutinfo.OrientedBodyPoints(def.Type, def.InputCount, def.Orientation) {
		idx.Collisions.ClearBody(mustAdd(item.Position, p), collision.Owner{Kind: collision.OwnerElement, Item: id})
	}
	for i, c := range layoutinfo.OrientedInputConnectors(def.Type, def.InputCount, def.Orientation) {
		point := mustAdd(item.Position, c.Offset)
		idx.Collisions.ClearBody(point, collision.Owner{Kind: collision.OwnerConnectionTag})
		idx.LogicItemInputs.Remove(point, LogicItemConnectionRef{LogicItem: id, Connection: vocabulary.ConnectionID(i), Orientation: c.Orientation})
	}
	for i, c := range layoutinfo.OrientedOutputConnectors(def.Type, def.InputCount, def.OutputCount, def.Orientation) {
		point := mustAdd(item.Position, c.Offset)
		idx.Collisions.ClearBody(point, collision.Owner{Kind: collision.OwnerConnectionTag})
		idx.LogicItemOutputs.Remove(point, LogicItemConnectionRef{LogicItem: id, Connection: vocabulary.ConnectionID(i), Orientation: c.Orientation})
	}

	width, height := layoutinfo.BoundingSize(def.Type, def.InputCount, def.Orientation)
	idx.Selection.RemoveLogicItem(id, FromGrid(item.Position, width, height))
}

// segmentEndOwner classifies the collision owner a segment endpoint
// contributes, by its declared SegmentPointType. This is the
// simplified approximation documented in DESIGN.md: input/output
// endpoints behave like wire connection points, cross/shadow/visual
// markers behave like visual-only wire points, and every other
// interior or not-yet-classified point behaves like an ordinary wire
// segment cell.
func segmentEndOwner(t vocabulary.SegmentPointType, wire vocabulary.WireID) collision.Owner {
	switch t {
	case vocabulary.PointInput, vocabulary.PointOutput:
		return collision.Owner{Kind: collision.OwnerWireConnection, Wire: wire}
	case vocabulary.PointCrossPointHorizontal, vocabulary.PointCrossPointVertical,
		vocabulary.PointShadowPoint, vocabulary.PointVisualCrossPoint:
		return collision.Owner{Kind: collision.OwnerWirePointTag, Wire: wire}
	default:
		return collision.Owner{Kind: collision.OwnerWireSegment, Wire: wire}
	}
}

func (idx *LayoutIndex) addSegmentEntries(seg vocabulary.Segment, info segmenttree.Info) {
	length := info.Line.Length()
	for offset := vocabulary.Offset(0); offset <= length; offset++ {
		point := info.Line.PointAt(offset)
		owner := collision.Owner{Kind: collision.OwnerWireSegment, Wire: seg.Wire}
		switch offset {
		case 0:
			owner = segmentEndOwner(info.P0Type, seg.Wire)
		case length:
			owner = segmentEndOwner(info.P1Type, seg.Wire)
		}
		if info.Line.IsHorizontal() {
			idx.Collisions.SetHorizontal(point, owner)
		} else {
			idx.Collisions.SetVertical(point, owner)
		}
	}

	if info.P0Type == vocabulary.PointInput {
		idx.WireInputs.Add(info.Line.P0, WireConnectionRef{Segment: seg, End: 0})
	} else if info.P0Type == vocabulary.PointOutput {
		idx.WireOutputs.Add(info.Line.P0, WireConnectionRef{Segment: seg, End: 0})
	}
	if info.P1Type == vocabulary.PointInput {
		idx.WireInputs.Add(info.Line.P1, WireConnectionRef{Segment: seg, End: 1})
	} else if info.P1Type == vocabulary.PointOutput {
		idx.WireOutputs.Add(info.Line.P1, WireConnectionRef{Segment: seg, End: 1})
	}

	idx.Selection.AddSegment(seg, info.Line)
}

func (idx *LayoutIndex) removeSegmentEntries(seg vocabulary.Segment, info segmenttree.Info) {
	length := info.Line.Length()
	for offset := vocabulary.Offset(0); offset <= length; offset++ {
		point := info.Line.PointAt(offset)
		owner := collision.Owner{Kind: collision.OwnerWireSegment, Wire: seg.Wire}
		switch offset {
		case 0:
			owner = segmentEndOwner(info.P0Type, seg.Wire)
		case length:
			owner = segmentEndOwner(info.P1Type, seg.Wire)
		}
		if info.Line.IsHorizontal() {
			idx.Collisions.ClearHorizontal(point, owner)
		} else {
			idx.Collisions.ClearVertical(point, owner)
		}
	}

	if info.P0Type == vocabulary.PointInput {
		idx.WireInputs.Remove(info.Line.P0, WireConnectionRef{Segment: seg, End: 0})
	} else if info.P0Type == vocabulary.PointOutput {
		idx.WireOutputs.Remove(info.Line.P0, WireConnectionRef{Segment: seg, End: 0})
	}
	if info.P1Type == vocabulary.PointInput {
		idx.WireInputs.Remove(info.Line.P1, WireConnectionRef{Segment: seg, End: 1})
	} else if info.P1Type == vocabulary.PointOutput {
		idx.WireOutputs.Remove(info.Line.P1, WireConnectionRef{Segment: seg, End: 1})
	}

	idx.Selection.RemoveSegment(seg, info.Line)
}

// renameSegment updates every sub-index entry that still references
// old's SegmentIndex after a swap-remove moved a different segment
// into that slot (InsertedSegmentIdUpdated). By the time this fires
// the tree has already shrunk, so old.Index is no longer a valid
// slot: the geometry that used to live there now lives at
// updated.Index, unchanged. Sub-indices are keyed by Segment value,
// so every entry holding the old key is removed and re-added under
// the new one against that same (unmoved) geometry.
func (idx *LayoutIndex) renameSegment(old, updated vocabulary.Segment, l *layout.Layout) {
	info := l.WireTree(updated.Wire).Info(updated.Index)
	idx.removeSegmentEntries(old, info)
	idx.addSegmentEntries(updated, info)
}

// renameLogicItem is the logic-item analogue of renameSegment.
func (idx *LayoutIndex) renameLogicItem(old, updated vocabulary.LogicItemID, l *layout.Layout) {
	item := l.LogicItem(updated)
	idx.removeLogicItemEntries(old, item)
	idx.addLogicItemEntries(updated, item)
}
