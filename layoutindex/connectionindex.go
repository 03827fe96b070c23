// Package layoutindex builds the derived indices LayoutIndex aggregates
// (spec section 4.5): connection indices for logic-item and wire
// endpoints, the collision index, and the spatial selection index. Every
// sub-index is stateless with respect to Layout beyond the InfoMessage
// stream: it is rebuilt correctly by replaying every message a fresh
// Layout would emit (the invariant the message validator checks).
package layoutindex

import "github.com/logiksim/circuitcore/vocabulary"

// LogicItemConnectionRef names one connector of one logic item.
type LogicItemConnectionRef struct {
	LogicItem   vocabulary.LogicItemID
	Connection  vocabulary.ConnectionID
	Orientation vocabulary.Orientation
}

// LogicItemConnectionIndex maps a grid point to the logic-item connector
// anchored there. One instance serves inputs, another outputs (spec
// section 3: LogicItemInputIndex, LogicItemOutputIndex).
type LogicItemConnectionIndex struct {
	byPoint map[vocabulary.Grid]LogicItemConnectionRef
}

// NewLogicItemConnectionIndex creates an empty index.
func NewLogicItemConnectionIndex() *LogicItemConnectionIndex {
	return &LogicItemConnectionIndex{byPoint: make(map[vocabulary.Grid]LogicItemConnectionRef)}
}

// Add registers ref at point, asserting the cell was previously empty
// (spec section 4.5: the inverse insert/remove asserts the current
// value equals the expected old value before writing).
func (idx *LogicItemConnectionIndex) Add(point vocabulary.Grid, ref LogicItemConnectionRef) {
	if _, exists := idx.byPoint[point]; exists {
		vocabulary.Fatal("LogicItemConnectionIndex.Add", map[string]string{
			"point": point.String(),
		}, "point already claimed by another logic-item connector")
	}
	idx.byPoint[point] = ref
}

// Remove clears point, asserting it currently holds ref.
func (idx *LogicItemConnectionIndex) Remove(point vocabulary.Grid, ref LogicItemConnectionRef) {
	got, exists := idx.byPoint[point]
	if !exists || got != ref {
		vocabulary.Fatal("LogicItemConnectionIndex.Remove", map[string]string{
			"point": point.String(),
		}, "point does not hold the expected connector")
	}
	delete(idx.byPoint, point)
}

// Lookup returns the connector registered at point, if any.
func (idx *LogicItemConnectionIndex) Lookup(point vocabulary.Grid) (LogicItemConnectionRef, bool) {
	ref, ok := idx.byPoint[point]
	return ref, ok
}
