// Package layoutinfo provides the static, per-type metadata tables that
// describe the shape of every logic-item and decoration type: input and
// output count ranges, direction policy, body points, and connector
// layout. It has no mutable state; everything here is a pure function
// of a type (and, for variable-arity types, an input count).
package layoutinfo

import "github.com/logiksim/circuitcore/vocabulary"

// LogicItemType enumerates every kind of logic item the core knows
// about.
type LogicItemType int

const (
	TypeAnd LogicItemType = iota
	TypeOr
	TypeXor
	TypeBuffer
	TypeLED
	TypeButton
	TypeClock
	TypeFlipFlopJK
	TypeLatchD
	TypeShiftRegister
	TypeNumberDisplay
	TypeAsciiDisplay
	TypeSubCircuit

	typeCount
)

func (t LogicItemType) String() string {
	switch t {
	case TypeAnd:
		return "and"
	case TypeOr:
		return "or"
	case TypeXor:
		return "xor"
	case TypeBuffer:
		return "buffer"
	case TypeLED:
		return "led"
	case TypeButton:
		return "button"
	case TypeClock:
		return "clock"
	case TypeFlipFlopJK:
		return "flipflop_jk"
	case TypeLatchD:
		return "latch_d"
	case TypeShiftRegister:
		return "shift_register"
	case TypeNumberDisplay:
		return "number_display"
	case TypeAsciiDisplay:
		return "ascii_display"
	case TypeSubCircuit:
		return "sub_circuit"
	default:
		return "invalid"
	}
}

// DirectionPolicy constrains which orientations a type may take.
type DirectionPolicy int

const (
	// PolicyUndirected means only OrientationUndirected is valid.
	PolicyUndirected DirectionPolicy = iota
	// PolicyDirected means any of right/left/up/down is valid; the
	// table below declares each type's default facing as FixedDirection.
	PolicyDirected
	// PolicyAny means any of the four directed orientations, or the
	// undirected one, is valid.
	PolicyAny
)

// ConnectorInfo describes one static connector: its offset from the
// item's grid position (at input count InputCount, for variable-arity
// types) and its orientation.
type ConnectorInfo struct {
	Offset      vocabulary.Grid
	Orientation vocabulary.Orientation
}

// FixedSize is a width/height pair for types whose footprint does not
// depend on input count.
type FixedSize struct {
	Width, Height int32
}

// Info is the complete static description of one LogicItemType.
type Info struct {
	Type LogicItemType

	MinInputs, MaxInputs, DefaultInputs   vocabulary.ConnectionCount
	MinOutputs, MaxOutputs, DefaultOutputs vocabulary.ConnectionCount

	Direction     DirectionPolicy
	FixedDirection vocabulary.Orientation // valid only when Direction == PolicyDirected

	// Fixed is used when the footprint does not depend on input count.
	// VariableHeight, when true, means height grows with input count
	// (the standard-gate / shift-register / number-display shape) and
	// Fixed.Width is authoritative while height is max(inputs,1).
	Fixed          FixedSize
	VariableHeight bool

	// EnableInputIndex, when >= 0, names the connector index that acts
	// as an enable input (clock/flipflop-style types).
	EnableInputIndex int
}

// table is indexed by LogicItemType. Counts and layout mirror
// src/core/element/logicitem/layout_logicitem.h in original_source:
// standard gates are directed, variable-input, single-output; displays
// are undirected; buffer/LED/button/clock are fixed 1x1-ish shapes.
var table = [typeCount]Info{
	TypeAnd: {Type: TypeAnd, MinInputs: 2, MaxInputs: 16, DefaultInputs: 2,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 2}, VariableHeight: true, EnableInputIndex: -1},
	TypeOr: {Type: TypeOr, MinInputs: 2, MaxInputs: 16, DefaultInputs: 2,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 2}, VariableHeight: true, EnableInputIndex: -1},
	TypeXor: {Type: TypeXor, MinInputs: 2, MaxInputs: 16, DefaultInputs: 2,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 2}, VariableHeight: true, EnableInputIndex: -1},
	TypeBuffer: {Type: TypeBuffer, MinInputs: 1, MaxInputs: 1, DefaultInputs: 1,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 1, Height: 1}, EnableInputIndex: -1},
	TypeLED: {Type: TypeLED, MinInputs: 1, MaxInputs: 1, DefaultInputs: 1,
		MinOutputs: 0, MaxOutputs: 0, DefaultOutputs: 0,
		Direction: PolicyUndirected,
		Fixed: FixedSize{Width: 1, Height: 1}, EnableInputIndex: -1},
	TypeButton: {Type: TypeButton, MinInputs: 0, MaxInputs: 0, DefaultInputs: 0,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyUndirected,
		Fixed: FixedSize{Width: 1, Height: 1}, EnableInputIndex: -1},
	TypeClock: {Type: TypeClock, MinInputs: 0, MaxInputs: 0, DefaultInputs: 0,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyUndirected,
		Fixed: FixedSize{Width: 1, Height: 1}, EnableInputIndex: -1},
	TypeFlipFlopJK: {Type: TypeFlipFlopJK, MinInputs: 3, MaxInputs: 3, DefaultInputs: 3,
		MinOutputs: 2, MaxOutputs: 2, DefaultOutputs: 2,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 2, Height: 3}, EnableInputIndex: 2},
	TypeLatchD: {Type: TypeLatchD, MinInputs: 2, MaxInputs: 2, DefaultInputs: 2,
		MinOutputs: 1, MaxOutputs: 1, DefaultOutputs: 1,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 2, Height: 2}, EnableInputIndex: 1},
	TypeShiftRegister: {Type: TypeShiftRegister, MinInputs: 2, MaxInputs: 2, DefaultInputs: 2,
		MinOutputs: 1, MaxOutputs: 8, DefaultOutputs: 2,
		Direction: PolicyDirected, FixedDirection: vocabulary.OrientationRight,
		Fixed: FixedSize{Width: 3}, VariableHeight: true, EnableInputIndex: 1},
	TypeNumberDisplay: {Type: TypeNumberDisplay, MinInputs: 1, MaxInputs: 8, DefaultInputs: 3,
		MinOutputs: 0, MaxOutputs: 0, DefaultOutputs: 0,
		Direction: PolicyUndirected,
		Fixed: FixedSize{Width: 3}, VariableHeight: true, EnableInputIndex: -1},
	TypeAsciiDisplay: {Type: TypeAsciiDisplay, MinInputs: 7, MaxInputs: 7, DefaultInputs: 7,
		MinOutputs: 0, MaxOutputs: 0, DefaultOutputs: 0,
		Direction: PolicyUndirected,
		Fixed: FixedSize{Width: 3, Height: 4}, EnableInputIndex: -1},
	TypeSubCircuit: {Type: TypeSubCircuit, MinInputs: 0, MaxInputs: 64, DefaultInputs: 1,
		MinOutputs: 0, MaxOutputs: 64, DefaultOutputs: 1,
		Direction: PolicyAny,
		Fixed: FixedSize{Width: 4}, VariableHeight: true, EnableInputIndex: -1},
}

// Lookup returns the static Info for t.
func Lookup(t LogicItemType) Info {
	return table[t]
}

// IsInputOutputCountValid reports whether in/out fall within the type's
// declared [min,max] range.
func IsInputOutputCountValid(t LogicItemType, in, out vocabulary.ConnectionCount) bool {
	info := table[t]
	return in >= info.MinInputs && in <= info.MaxInputs &&
		out >= info.MinOutputs && out <= info.MaxOutputs
}

// IsOrientationValid reports whether o is compatible with t's direction
// policy: Undirected accepts only the undirected orientation, Directed
// accepts any of the four directed orientations (the item may be
// rotated in 90-degree steps but never mirrored), and Any additionally
// accepts the undirected orientation for types indifferent to facing
// (e.g. sub-circuits with no declared direction).
func IsOrientationValid(t LogicItemType, o vocabulary.Orientation) bool {
	info := table[t]
	isDirected := o == vocabulary.OrientationRight || o == vocabulary.OrientationLeft ||
		o == vocabulary.OrientationUp || o == vocabulary.OrientationDown
	switch info.Direction {
	case PolicyUndirected:
		return o == vocabulary.OrientationUndirected
	case PolicyDirected:
		return isDirected
	case PolicyAny:
		return isDirected || o == vocabulary.OrientationUndirected
	default:
		return false
	}
}

// Height returns the footprint height of t at the given input count.
func Height(t LogicItemType, inputCount vocabulary.ConnectionCount) int32 {
	info := table[t]
	if !info.VariableHeight {
		return info.Fixed.Height
	}
	if int32(inputCount) < 1 {
		return 1
	}
	return int32(inputCount)
}

// Width returns the footprint width of t (input-count independent in
// every declared type).
func Width(t LogicItemType) int32 {
	return table[t].Fixed.Width
}
