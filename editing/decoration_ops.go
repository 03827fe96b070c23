package editing

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

// isDecorationColliding checks every cell of def's footprint at
// position as a CandidateBody; decorations have no connectors.
func isDecorationColliding(idx *layoutindex.LayoutIndex, def layout.DecorationDefinition, position vocabulary.Grid) bool {
	for x := int32(0); x < def.Width; x++ {
		for y := int32(0); y < def.Height; y++ {
			point := addOffset(position, vocabulary.Grid{X: int16(x), Y: int16(y)})
			if !collision.CheckDecision(idx.Collisions.State(point), collision.CandidateBody, false) {
				return true
			}
		}
	}
	return false
}

// AddDecoration is the decoration analogue of AddLogicItem: same three
// InsertionMode semantics, with a decoration's full rectangle standing
// in for a logic item's body-plus-connector footprint.
func (e *Editor) AddDecoration(def layout.DecorationDefinition, position vocabulary.Grid, mode layout.InsertionMode) (vocabulary.DecorationID, error) {
	id, created, err := e.Layout.CreateDecoration(def, position)
	if err != nil {
		return vocabulary.InvalidDecorationID, err
	}
	e.submit(created, nil)

	if mode == layout.ModeTemporary {
		return id, nil
	}

	colliding := isDecorationColliding(e.Index, def, position)
	switch {
	case mode == layout.ModeInsertOrDiscard && colliding:
		if _, _, err := e.Layout.DeleteDecoration(id); err != nil {
			vocabulary.Fatal("Editor.AddDecoration", map[string]string{"decoration": id.String()}, "discarding a just-created temporary decoration failed: %v", err)
		}
		return vocabulary.InvalidDecorationID, vocabulary.New("AddDecoration", vocabulary.Collision, "placement at %v collides", position)

	case mode == layout.ModeInsertOrDiscard:
		e.Layout.SetDecorationDisplayState(id, layout.StateNormal)
		e.submit(message.InfoMessage{Kind: message.ElementUpdated, Class: message.ClassDecoration, DecorationID: id}, nil)
		e.registerDecoration(id, def, position)
		return id, nil

	case colliding:
		e.Layout.SetDecorationDisplayState(id, layout.StateColliding)
		return id, nil

	default:
		e.Layout.SetDecorationDisplayState(id, layout.StateValid)
		e.registerDecoration(id, def, position)
		return id, nil
	}
}

// registerDecoration directly enters a decoration's body into the
// collision and selection indices. Unlike logic items and wire
// segments, decorations have no InfoMessage.Kind of their own for
// entering/leaving the index (they never participate in connection
// indices), so Editor drives the index update inline rather than
// through LayoutIndex.Apply.
func (e *Editor) registerDecoration(id vocabulary.DecorationID, def layout.DecorationDefinition, position vocabulary.Grid) {
	for x := int32(0); x < def.Width; x++ {
		for y := int32(0); y < def.Height; y++ {
			point := addOffset(position, vocabulary.Grid{X: int16(x), Y: int16(y)})
			e.Index.Collisions.SetBody(point, collision.Owner{Kind: collision.OwnerElement})
		}
	}
	e.Index.Selection.AddDecoration(id, layoutindex.FromGrid(position, def.Width, def.Height))
}

func (e *Editor) unregisterDecoration(id vocabulary.DecorationID, def layout.DecorationDefinition, position vocabulary.Grid) {
	for x := int32(0); x < def.Width; x++ {
		for y := int32(0); y < def.Height; y++ {
			point := addOffset(position, vocabulary.Grid{X: int16(x), Y: int16(y)})
			e.Index.Collisions.ClearBody(point, collision.Owner{Kind: collision.OwnerElement})
		}
	}
	e.Index.Selection.RemoveDecoration(id, layoutindex.FromGrid(position, def.Width, def.Height))
}

// DeleteDecoration is the decoration analogue of DeleteLogicItem.
func (e *Editor) DeleteDecoration(id vocabulary.DecorationID) error {
	dec := e.Layout.Decoration(id)
	wasInserted := dec.DisplayState == layout.StateValid || dec.DisplayState == layout.StateNormal
	if wasInserted {
		e.unregisterDecoration(id, dec.Definition, dec.Position)
	}
	e.Layout.SetDecorationDisplayState(id, layout.StateTemporary)

	deleted, moved, err := e.Layout.DeleteDecoration(id)
	if err != nil {
		return err
	}
	e.submit(deleted, moved)
	return nil
}
