package editing

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

// IsLogicItemColliding reports whether def placed at position would
// collide with anything already registered in idx: every body cell is
// checked as a CandidateBody, every connector cell as a
// CandidateElementConnection, against the decision table in
// collision.CheckDecision.
func IsLogicItemColliding(idx *layoutindex.LayoutIndex, def layout.LogicItemDefinition, position vocabulary.Grid) bool {
	for _, p := range layoutinfo.OrientedBodyPoints(def.Type, def.InputCount, def.Orientation) {
		point := addOffset(position, p)
		if !collision.CheckDecision(idx.Collisions.State(point), collision.CandidateBody, false) {
			return true
		}
	}
	for _, c := range layoutinfo.OrientedInputConnectors(def.Type, def.InputCount, def.Orientation) {
		point := addOffset(position, c.Offset)
		if !collision.CheckDecision(idx.Collisions.State(point), collision.CandidateElementConnection, false) {
			return true
		}
	}
	for _, c := range layoutinfo.OrientedOutputConnectors(def.Type, def.InputCount, def.OutputCount, def.Orientation) {
		point := addOffset(position, c.Offset)
		if !collision.CheckDecision(idx.Collisions.State(point), collision.CandidateElementConnection, false) {
			return true
		}
	}
	return false
}

func addOffset(pos vocabulary.Grid, offset vocabulary.Grid) vocabulary.Grid {
	g, err := vocabulary.AddGrid(pos, offset.X, offset.Y)
	if err != nil {
		vocabulary.Fatal("editing.addOffset", map[string]string{"position": pos.String()}, "connector offset overflows an already-validated item")
	}
	return g
}

// IsWireSegmentColliding reports whether line, oriented horizontal or
// vertical, would collide with anything registered in idx. Each
// interior cell is checked as the axis-matching wire candidate
// (CandidateWireHorizontal/Vertical); the two endpoints are checked as
// CandidateWireNew, compatible with a pre-existing logic-item
// connector or wire endpoint at that exact cell (spec section 4.3's
// special-cased probe-only candidate).
func IsWireSegmentColliding(idx *layoutindex.LayoutIndex, line vocabulary.OrderedLine) bool {
	candidate := collision.CandidateWireHorizontal
	if line.IsVertical() {
		candidate = collision.CandidateWireVertical
	}

	length := line.Length()
	for offset := vocabulary.Offset(0); offset <= length; offset++ {
		point := line.PointAt(offset)
		state := idx.Collisions.State(point)
		if offset == 0 || offset == length {
			compatible := hasCompatibleEndpoint(idx, point)
			if !collision.CheckDecision(state, collision.CandidateWireNew, compatible) {
				return true
			}
			continue
		}
		if !collision.CheckDecision(state, candidate, false) {
			return true
		}
	}
	return false
}

// hasCompatibleEndpoint reports whether point names an existing
// logic-item connector or wire endpoint a new wire may legitimately
// land on.
func hasCompatibleEndpoint(idx *layoutindex.LayoutIndex, point vocabulary.Grid) bool {
	if _, ok := idx.LogicItemInputs.Lookup(point); ok {
		return true
	}
	if _, ok := idx.LogicItemOutputs.Lookup(point); ok {
		return true
	}
	if _, ok := idx.WireInputs.Lookup(point); ok {
		return true
	}
	if _, ok := idx.WireOutputs.Lookup(point); ok {
		return true
	}
	t := idx.Collisions.Triple(point)
	if t.Horizontal.Kind == collision.OwnerWirePointTag || t.Vertical.Kind == collision.OwnerWirePointTag {
		return true
	}
	return false
}

// FindConvertibleWireInputs returns the endpoints of line (P0 and P1
// only; interior points are not examined) that land on a logic-item
// output connector already registered in idx.LogicItemOutputs, the
// precondition spec section 4.3's
// convertible-input conversion checks before folding a loose wire
// endpoint into a direct connection.
func FindConvertibleWireInputs(idx *layoutindex.LayoutIndex, line vocabulary.OrderedLine) []vocabulary.Grid {
	var out []vocabulary.Grid
	for _, point := range []vocabulary.Grid{line.P0, line.P1} {
		if _, ok := idx.LogicItemOutputs.Lookup(point); ok {
			out = append(out, point)
		}
	}
	return out
}
