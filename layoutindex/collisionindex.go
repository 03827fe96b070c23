package layoutindex

import (
	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/vocabulary"
)

// CollisionIndex maps a grid point to the raw Triple of owners that
// determines its collision.CellState (spec section 4.5).
type CollisionIndex struct {
	cells map[vocabulary.Grid]collision.Triple
}

// NewCollisionIndex creates an empty index.
func NewCollisionIndex() *CollisionIndex {
	return &CollisionIndex{cells: make(map[vocabulary.Grid]collision.Triple)}
}

// State returns the derived CellState at point (StateEmpty if nothing
// has ever touched it).
func (idx *CollisionIndex) State(point vocabulary.Grid) collision.CellState {
	return collision.ToState(idx.cells[point])
}

// Triple returns the raw owner triple at point.
func (idx *CollisionIndex) Triple(point vocabulary.Grid) collision.Triple {
	return idx.cells[point]
}

func (idx *CollisionIndex) set(point vocabulary.Grid, mutate func(*collision.Triple)) {
	t := idx.cells[point]
	mutate(&t)
	idx.cells[point] = t
}

// SetBody claims point's body owner, asserting it was previously empty.
func (idx *CollisionIndex) SetBody(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Body.Kind != collision.OwnerNone {
		vocabulary.Fatal("CollisionIndex.SetBody", map[string]string{"point": point.String()}, "body owner already set")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Body = owner })
}

// ClearBody releases point's body owner, asserting it currently equals
// owner.
func (idx *CollisionIndex) ClearBody(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Body != owner {
		vocabulary.Fatal("CollisionIndex.ClearBody", map[string]string{"point": point.String()}, "body owner does not match")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Body = collision.Owner{} })
}

// SetHorizontal claims point's horizontal-wire owner.
func (idx *CollisionIndex) SetHorizontal(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Horizontal.Kind != collision.OwnerNone {
		vocabulary.Fatal("CollisionIndex.SetHorizontal", map[string]string{"point": point.String()}, "horizontal owner already set")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Horizontal = owner })
}

// ClearHorizontal releases point's horizontal-wire owner.
func (idx *CollisionIndex) ClearHorizontal(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Horizontal != owner {
		vocabulary.Fatal("CollisionIndex.ClearHorizontal", map[string]string{"point": point.String()}, "horizontal owner does not match")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Horizontal = collision.Owner{} })
}

// SetVertical claims point's vertical-wire owner.
func (idx *CollisionIndex) SetVertical(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Vertical.Kind != collision.OwnerNone {
		vocabulary.Fatal("CollisionIndex.SetVertical", map[string]string{"point": point.String()}, "vertical owner already set")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Vertical = owner })
}

// ClearVertical releases point's vertical-wire owner.
func (idx *CollisionIndex) ClearVertical(point vocabulary.Grid, owner collision.Owner) {
	t := idx.cells[point]
	if t.Vertical != owner {
		vocabulary.Fatal("CollisionIndex.ClearVertical", map[string]string{"point": point.String()}, "vertical owner does not match")
	}
	idx.set(point, func(tr *collision.Triple) { tr.Vertical = collision.Owner{} })
}
