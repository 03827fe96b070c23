package editing

import (
	"fmt"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

// AddLogicItem creates def at position under mode (spec section 4.3):
//
//   - ModeTemporary never checks collisions; the item is created and
//     left uninserted (StateTemporary), ready for further positioning.
//   - ModeCollisions checks collisions; a colliding item is left
//     uninserted with DisplayState StateColliding (so a caller can
//     still show it, e.g. highlighted red, mid-drag), a non-colliding
//     one is registered in the index with DisplayState StateValid.
//   - ModeInsertOrDiscard checks collisions; a colliding item is
//     deleted outright (AddLogicItem returns InvalidLogicItemID), a
//     non-colliding one is committed with DisplayState StateNormal.
func (e *Editor) AddLogicItem(def layout.LogicItemDefinition, position vocabulary.Grid, mode layout.InsertionMode) (vocabulary.LogicItemID, error) {
	id, created, err := e.Layout.CreateLogicItem(def, position)
	if err != nil {
		return vocabulary.InvalidLogicItemID, err
	}
	e.submit(created, nil)

	if mode == layout.ModeTemporary {
		return id, nil
	}

	colliding := IsLogicItemColliding(e.Index, def, position)
	switch {
	case mode == layout.ModeInsertOrDiscard && colliding:
		if _, _, err := e.Layout.DeleteLogicItem(id); err != nil {
			vocabulary.Fatal("Editor.AddLogicItem", map[string]string{"logicitem": id.String()}, "discarding a just-created temporary item failed: %v", err)
		}
		return vocabulary.InvalidLogicItemID, vocabulary.New("AddLogicItem", vocabulary.Collision, "placement at %v collides", position)

	case mode == layout.ModeInsertOrDiscard:
		e.Layout.SetLogicItemDisplayState(id, layout.StateNormal)
		e.submit(message.InfoMessage{Kind: message.LogicItemInserted, LogicItemID: id}, nil)
		e.convertMeetingWireEndpoints(def, position, vocabulary.PointInput)
		return id, nil

	case colliding:
		e.Layout.SetLogicItemDisplayState(id, layout.StateColliding)
		return id, nil

	default:
		e.Layout.SetLogicItemDisplayState(id, layout.StateValid)
		e.submit(message.InfoMessage{Kind: message.LogicItemInserted, LogicItemID: id}, nil)
		e.convertMeetingWireEndpoints(def, position, vocabulary.PointInput)
		return id, nil
	}
}

// convertMeetingWireEndpoints scans def's output connector positions
// for an existing wire endpoint anchored there and flips it between
// PointOutput and PointInput (spec section 4.3's convertible-input
// conversion, the direction triggered by a logic item's own insertion
// or deletion rather than by the wire's). target is the type the
// meeting endpoint should become; the type it must currently hold to
// qualify is its opposite.
func (e *Editor) convertMeetingWireEndpoints(def layout.LogicItemDefinition, position vocabulary.Grid, target vocabulary.SegmentPointType) {
	from, index := vocabulary.PointOutput, e.Index.WireOutputs
	if target == vocabulary.PointOutput {
		from, index = vocabulary.PointInput, e.Index.WireInputs
	}

	for _, c := range layoutinfo.OrientedOutputConnectors(def.Type, def.InputCount, def.OutputCount, def.Orientation) {
		point := addOffset(position, c.Offset)
		ref, ok := index.Lookup(point)
		if !ok {
			continue
		}
		e.flipSegmentEndpoint(ref.Segment, ref.End, from, target)
	}
}

// flipSegmentEndpoint rewrites one already-registered segment
// endpoint's SegmentPointType, uninserting and reinserting the segment
// so the index's connection and collision entries are rebuilt under
// the new type.
func (e *Editor) flipSegmentEndpoint(seg vocabulary.Segment, end int, from, target vocabulary.SegmentPointType) {
	info := e.Layout.WireTree(seg.Wire).Info(seg.Index)
	switch end {
	case 0:
		if info.P0Type != from {
			return
		}
		info.P0Type = target
	default:
		if info.P1Type != from {
			return
		}
		info.P1Type = target
	}

	e.submit(message.InfoMessage{Kind: message.SegmentUninserted, Segment: seg}, nil)
	e.Layout.UpdateSegment(seg, info)
	e.submit(message.InfoMessage{Kind: message.SegmentInserted, Segment: seg}, nil)
}

// DeleteLogicItem uninserts id if it is currently registered in the
// index, then removes it from Layout entirely. id must be in
// StateTemporary, StateColliding, or StateValid/StateNormal; all are
// accepted here since deletion is always legal once the caller
// decides to discard an item.
func (e *Editor) DeleteLogicItem(id vocabulary.LogicItemID) error {
	item := e.Layout.LogicItem(id)
	wasInserted := item.DisplayState == layout.StateValid || item.DisplayState == layout.StateNormal
	if wasInserted {
		e.convertMeetingWireEndpoints(item.Definition, item.Position, vocabulary.PointOutput)
		e.submit(message.InfoMessage{Kind: message.LogicItemUninserted, LogicItemID: id}, nil)
	}
	e.Layout.SetLogicItemDisplayState(id, layout.StateTemporary)

	deleted, moved, err := e.Layout.DeleteLogicItem(id)
	if err != nil {
		return err
	}
	e.submit(deleted, moved)
	return nil
}

// MoveLogicItem relocates an uninserted (StateTemporary or
// StateColliding) logic item to a new position; moving an already-
// inserted item is not supported here since the index has no
// in-place relocation primitive — callers uninsert, move, then
// re-insert through AddLogicItem's ModeCollisions/ModeInsertOrDiscard
// path instead.
func (e *Editor) MoveLogicItem(id vocabulary.LogicItemID, newPosition vocabulary.Grid) error {
	item := e.Layout.LogicItem(id)
	if item.DisplayState == layout.StateValid || item.DisplayState == layout.StateNormal {
		return vocabulary.New("MoveLogicItem", vocabulary.InvalidState, "logic item %s is inserted; uninsert before moving", id)
	}
	if err := item.Definition.IsWellFormed(newPosition); err != nil {
		return err
	}
	e.Layout.SetLogicItemPosition(id, newPosition)
	return nil
}

// SetAttribute overwrites one attribute key on an inserted or
// uninserted logic item and announces ElementUpdated.
func (e *Editor) SetAttribute(id vocabulary.LogicItemID, key, value string) {
	e.Layout.SetLogicItemAttribute(id, key, value)
	e.submit(message.InfoMessage{Kind: message.ElementUpdated, Class: message.ClassLogicItem, LogicItemID: id}, nil)
}

// ToggleInverter flips the boolean "inverted" attribute on one
// connector of id, identified by its ConnectionID (spec section 4.3:
// toggling an input/output inverter is a pure attribute edit, no
// collision check since it never changes the item's footprint).
func (e *Editor) ToggleInverter(id vocabulary.LogicItemID, connection vocabulary.ConnectionID) {
	item := e.Layout.LogicItem(id)
	key := fmt.Sprintf("inverted_%d", connection)
	current := item.Definition.Attributes[key] == "true"
	e.SetAttribute(id, key, fmt.Sprintf("%t", !current))
}
