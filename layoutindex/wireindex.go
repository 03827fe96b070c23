package layoutindex

import "github.com/logiksim/circuitcore/vocabulary"

// WireConnectionRef names one wire endpoint.
type WireConnectionRef struct {
	Segment vocabulary.Segment
	End     int // 0 = P0, 1 = P1
}

// WireConnectionIndex maps a grid point to the wire endpoint anchored
// there. One instance serves input-typed endpoints, another
// output-typed (spec section 3: WireInputIndex, WireOutputIndex).
type WireConnectionIndex struct {
	byPoint map[vocabulary.Grid]WireConnectionRef
}

// NewWireConnectionIndex creates an empty index.
func NewWireConnectionIndex() *WireConnectionIndex {
	return &WireConnectionIndex{byPoint: make(map[vocabulary.Grid]WireConnectionRef)}
}

// Add registers ref at point, asserting the cell was previously empty.
func (idx *WireConnectionIndex) Add(point vocabulary.Grid, ref WireConnectionRef) {
	if _, exists := idx.byPoint[point]; exists {
		vocabulary.Fatal("WireConnectionIndex.Add", map[string]string{"point": point.String()},
			"point already claimed by another wire endpoint")
	}
	idx.byPoint[point] = ref
}

// Remove clears point, asserting it currently holds ref.
func (idx *WireConnectionIndex) Remove(point vocabulary.Grid, ref WireConnectionRef) {
	got, exists := idx.byPoint[point]
	if !exists || got != ref {
		vocabulary.Fatal("WireConnectionIndex.Remove", map[string]string{"point": point.String()},
			"point does not hold the expected wire endpoint")
	}
	delete(idx.byPoint, point)
}

// Lookup returns the wire endpoint registered at point, if any.
func (idx *WireConnectionIndex) Lookup(point vocabulary.Grid) (WireConnectionRef, bool) {
	ref, ok := idx.byPoint[point]
	return ref, ok
}
