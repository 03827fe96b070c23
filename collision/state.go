// Package collision classifies grid-cell occupancy for collision-aware
// insertion. A cell's CellState is derived from a triple of owners
// (body, horizontal wire, vertical wire) via a pure total function,
// ToState; candidate placements are checked against the existing state
// through a fixed decision table, CheckDecision.
package collision

import "github.com/logiksim/circuitcore/vocabulary"

// CellState classifies what currently occupies a grid cell.
type CellState int

const (
	StateEmpty CellState = iota
	StateElementBody
	StateElementConnection
	StateWireConnection
	StateWireHorizontal
	StateWireVertical
	StateWirePoint
	StateWireCrossing
	StateElementWireConnection
	StateInvalid
)

func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateElementBody:
		return "element_body"
	case StateElementConnection:
		return "element_connection"
	case StateWireConnection:
		return "wire_connection"
	case StateWireHorizontal:
		return "wire_horizontal"
	case StateWireVertical:
		return "wire_vertical"
	case StateWirePoint:
		return "wire_point"
	case StateWireCrossing:
		return "wire_crossing"
	case StateElementWireConnection:
		return "element_wire_connection"
	default:
		return "invalid"
	}
}

// OwnerKind tags what (if anything) owns one axis of a cell triple.
type OwnerKind int

const (
	OwnerNone OwnerKind = iota
	OwnerElement
	OwnerWireConnection
	// OwnerConnectionTag marks "this cell anchors a connector" without
	// naming a specific element/wire id.
	OwnerConnectionTag
	OwnerWireSegment
	// OwnerWirePointTag marks "visual crossing only", a wire passing
	// through without claiming the body.
	OwnerWirePointTag
)

// Owner is one axis of a cell's occupancy triple.
type Owner struct {
	Kind OwnerKind
	Item vocabulary.LogicItemID
	Wire vocabulary.WireID
}

// Triple is the raw per-cell state the collision index maintains:
// one owner for the element body, one for a horizontal wire segment,
// one for a vertical wire segment.
type Triple struct {
	Body       Owner
	Horizontal Owner
	Vertical   Owner
}

func (o Owner) occupied() bool { return o.Kind != OwnerNone }

// ToState derives the public CellState from a raw Triple. This is a
// pure total function: every reachable triple maps to exactly one
// state, and unreachable combinations map to StateInvalid so a fatal
// assertion upstream can catch a corrupted index instead of silently
// misclassifying a cell.
func ToState(t Triple) CellState {
	switch {
	case !t.Body.occupied() && !t.Horizontal.occupied() && !t.Vertical.occupied():
		return StateEmpty

	case t.Body.Kind == OwnerElement && !t.Horizontal.occupied() && !t.Vertical.occupied():
		return StateElementBody

	case t.Body.Kind == OwnerConnectionTag && !t.Horizontal.occupied() && !t.Vertical.occupied():
		return StateElementConnection

	case !t.Body.occupied() && t.Horizontal.Kind == OwnerWireConnection && !t.Vertical.occupied():
		return StateWireConnection
	case !t.Body.occupied() && !t.Horizontal.occupied() && t.Vertical.Kind == OwnerWireConnection:
		return StateWireConnection

	case !t.Body.occupied() && t.Horizontal.Kind == OwnerWireSegment && !t.Vertical.occupied():
		return StateWireHorizontal
	case !t.Body.occupied() && !t.Horizontal.occupied() && t.Vertical.Kind == OwnerWireSegment:
		return StateWireVertical

	case !t.Body.occupied() && t.Horizontal.Kind == OwnerWirePointTag && !t.Vertical.occupied():
		return StateWirePoint
	case !t.Body.occupied() && !t.Horizontal.occupied() && t.Vertical.Kind == OwnerWirePointTag:
		return StateWirePoint

	case !t.Body.occupied() && t.Horizontal.occupied() && t.Vertical.occupied():
		return StateWireCrossing

	case t.Body.occupied() && (t.Horizontal.Kind == OwnerWireConnection || t.Vertical.Kind == OwnerWireConnection):
		return StateElementWireConnection

	default:
		return StateInvalid
	}
}

// Candidate classifies what a candidate placement wants to claim at one
// cell, for collision checking against the existing CellState.
type Candidate int

const (
	CandidateBody Candidate = iota
	CandidateElementConnection
	CandidateWireConnection
	CandidateWireHorizontal
	CandidateWireVertical
	CandidateWirePoint
	// CandidateWireNew is a probe only, used while a wire segment is
	// still being routed: it collides unless the cell is empty or a
	// compatible wire endpoint (checked separately, see CheckDecision).
	CandidateWireNew
)

var decisionTable = map[CellState]map[Candidate]bool{
	StateEmpty: {
		CandidateBody: true, CandidateElementConnection: true, CandidateWireConnection: true,
		CandidateWireHorizontal: true, CandidateWireVertical: true, CandidateWirePoint: true,
		CandidateWireNew: true,
	},
	StateWireConnection: {
		CandidateElementConnection: true,
	},
	StateElementConnection: {
		CandidateWireConnection: true,
	},
	StateWireHorizontal: {
		CandidateWireVertical: true,
	},
	StateWireVertical: {
		CandidateWireHorizontal: true,
	},
}

// CheckDecision reports whether a candidate placement may land on a cell
// currently in state existing, per the decision table in spec section
// 4.3. compatibleWireEndpoint only matters for CandidateWireNew: a probe
// is allowed onto a non-empty cell solely when it names a wire endpoint
// the candidate would legitimately connect to.
func CheckDecision(existing CellState, candidate Candidate, compatibleWireEndpoint bool) bool {
	if candidate == CandidateWireNew {
		return existing == StateEmpty || compatibleWireEndpoint
	}
	row, ok := decisionTable[existing]
	if !ok {
		return false
	}
	return row[candidate]
}
