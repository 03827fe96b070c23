package layoutindex

import "github.com/logiksim/circuitcore/vocabulary"

// Rect is an axis-aligned bounding rectangle in fine (sub-grid)
// coordinates, the unit the spatial index stores and queries in (spec
// section 4.5: selection rectangles are GridFine, not Grid).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// FromGrid builds the Rect spanning [pos, pos+(w,h)) in fine
// coordinates.
func FromGrid(pos vocabulary.Grid, w, h int32) Rect {
	return Rect{
		MinX: float64(pos.X), MinY: float64(pos.Y),
		MaxX: float64(pos.X) + float64(w), MaxY: float64(pos.Y) + float64(h),
	}
}

// FromLine builds the (possibly zero-width or zero-height) Rect
// spanning a wire segment's line.
func FromLine(l vocabulary.OrderedLine) Rect {
	return Rect{
		MinX: float64(l.P0.X), MinY: float64(l.P0.Y),
		MaxX: float64(l.P1.X), MaxY: float64(l.P1.Y),
	}
}

// Intersects reports whether r and other share any area (touching
// edges count, matching a half-open selection rectangle's inclusive
// boundary test).
func (r Rect) Intersects(other Rect) bool {
	return r.MinX <= other.MaxX && other.MinX <= r.MaxX &&
		r.MinY <= other.MaxY && other.MinY <= r.MaxY
}

// Contains reports whether point lies within r, inclusive of the
// boundary.
func (r Rect) Contains(point vocabulary.GridFine) bool {
	return point.X >= r.MinX && point.X <= r.MaxX && point.Y >= r.MinY && point.Y <= r.MaxY
}

func union(a, b Rect) Rect {
	return Rect{
		MinX: min(a.MinX, b.MinX), MinY: min(a.MinY, b.MinY),
		MaxX: max(a.MaxX, b.MaxX), MaxY: max(a.MaxY, b.MaxY),
	}
}

func area(r Rect) float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// maxEntries bounds the fan-out of one RTree node, matching spec
// section 4.5's "max 16 children per node".
const maxEntries = 16

// RTreeEntry is one leaf payload: a bounding rectangle plus an opaque
// value the caller attaches (a LogicItemID, DecorationID, or
// SegmentPart, depending on which spatial index owns this tree).
type RTreeEntry struct {
	Bounds Rect
	Value  interface{}
}

type rtreeNode struct {
	leaf     bool
	bounds   Rect
	entries  []RTreeEntry  // leaf payloads, when leaf
	children []*rtreeNode  // child nodes, when !leaf
}

// RTree is a bounding-volume tree over Rect-tagged values, used as the
// spatial backbone of SelectionIndex. This is a plain R-tree built by
// one-at-a-time insertion (there is no bulk load) with quadratic-split
// rebalancing, not a true R*-tree
// (forced reinsertion, topological split heuristics): spec.md's
// query patterns (rectangle overlap, nearest-segment-to-point) only
// need bounding-volume pruning, and no library in the example pack
// ships a spatial index to wire instead, so a hand-rolled tree is the
// documented stdlib exception for this one component (see DESIGN.md).
type RTree struct {
	root *rtreeNode
}

// NewRTree creates an empty tree.
func NewRTree() *RTree {
	return &RTree{root: &rtreeNode{leaf: true}}
}

// Insert adds entry to the tree.
func (t *RTree) Insert(entry RTreeEntry) {
	path := t.chooseLeaf(t.root, entry.Bounds, nil)
	leaf := path[len(path)-1]
	leaf.entries = append(leaf.entries, entry)
	for _, n := range path {
		n.bounds = union(n.bounds, entry.Bounds)
	}
	if len(leaf.entries) > maxEntries {
		t.split(leaf)
	}
}

// chooseLeaf descends to the leaf that would grow least by absorbing
// bounds, returning the full root-to-leaf path so Insert can widen
// every ancestor's bounds along the way.
func (t *RTree) chooseLeaf(n *rtreeNode, bounds Rect, path []*rtreeNode) []*rtreeNode {
	path = append(path, n)
	if n.leaf {
		return path
	}
	best := n.children[0]
	bestGrowth := area(union(best.bounds, bounds)) - area(best.bounds)
	for _, c := range n.children[1:] {
		growth := area(union(c.bounds, bounds)) - area(c.bounds)
		if growth < bestGrowth {
			best, bestGrowth = c, growth
		}
	}
	return t.chooseLeaf(best, bounds, path)
}

// split performs a quadratic-cost split of an overflowing leaf,
// seeding two new leaves from the pair of entries whose combined
// bounds waste the most area together, then distributing the rest by
// least enlargement. The overflowing node is replaced by two new
// siblings inserted into its parent (or, at the root, a new root is
// grown).
func (t *RTree) split(n *rtreeNode) {
	entries := n.entries
	seedA, seedB := pickSeeds(entries)
	groupA := []RTreeEntry{entries[seedA]}
	groupB := []RTreeEntry{entries[seedB]}
	boundsA := entries[seedA].Bounds
	boundsB := entries[seedB].Bounds

	for i, e := range entries {
		if i == seedA || i == seedB {
			continue
		}
		growthA := area(union(boundsA, e.Bounds)) - area(boundsA)
		growthB := area(union(boundsB, e.Bounds)) - area(boundsB)
		if growthA < growthB {
			groupA = append(groupA, e)
			boundsA = union(boundsA, e.Bounds)
		} else {
			groupB = append(groupB, e)
			boundsB = union(boundsB, e.Bounds)
		}
	}

	leafA := &rtreeNode{leaf: true, entries: groupA, bounds: boundsA}
	leafB := &rtreeNode{leaf: true, entries: groupB, bounds: boundsB}

	if n == t.root {
		t.root = &rtreeNode{children: []*rtreeNode{leafA, leafB}, bounds: union(boundsA, boundsB)}
		return
	}

	parent := t.findParent(t.root, n)
	if parent == nil {
		vocabulary.Fatal("RTree.split", nil, "overflowing node has no parent and is not root")
	}
	replaced := false
	newChildren := parent.children[:0:0]
	for _, c := range parent.children {
		if c == n {
			newChildren = append(newChildren, leafA, leafB)
			replaced = true
		} else {
			newChildren = append(newChildren, c)
		}
	}
	if !replaced {
		vocabulary.Fatal("RTree.split", nil, "overflowing node not found among parent's children")
	}
	parent.children = newChildren
	if len(parent.children) > maxEntries {
		t.splitInternal(parent)
	}
}

// splitInternal mirrors split for an overflowing internal node,
// grouping by child bounds instead of leaf entries.
func (t *RTree) splitInternal(n *rtreeNode) {
	children := n.children
	seedA, seedB := pickSeedsNodes(children)
	groupA := []*rtreeNode{children[seedA]}
	groupB := []*rtreeNode{children[seedB]}
	boundsA := children[seedA].bounds
	boundsB := children[seedB].bounds

	for i, c := range children {
		if i == seedA || i == seedB {
			continue
		}
		growthA := area(union(boundsA, c.bounds)) - area(boundsA)
		growthB := area(union(boundsB, c.bounds)) - area(boundsB)
		if growthA < growthB {
			groupA = append(groupA, c)
			boundsA = union(boundsA, c.bounds)
		} else {
			groupB = append(groupB, c)
			boundsB = union(boundsB, c.bounds)
		}
	}

	nodeA := &rtreeNode{children: groupA, bounds: boundsA}
	nodeB := &rtreeNode{children: groupB, bounds: boundsB}

	if n == t.root {
		t.root = &rtreeNode{children: []*rtreeNode{nodeA, nodeB}, bounds: union(boundsA, boundsB)}
		return
	}

	parent := t.findParent(t.root, n)
	if parent == nil {
		vocabulary.Fatal("RTree.splitInternal", nil, "overflowing internal node has no parent and is not root")
	}
	newChildren := parent.children[:0:0]
	for _, c := range parent.children {
		if c == n {
			newChildren = append(newChildren, nodeA, nodeB)
		} else {
			newChildren = append(newChildren, c)
		}
	}
	parent.children = newChildren
	if len(parent.children) > maxEntries {
		t.splitInternal(parent)
	}
}

func pickSeeds(entries []RTreeEntry) (int, int) {
	bestI, bestJ, bestWaste := 0, 1, -1.0
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			waste := area(union(entries[i].Bounds, entries[j].Bounds)) - area(entries[i].Bounds) - area(entries[j].Bounds)
			if waste > bestWaste {
				bestI, bestJ, bestWaste = i, j, waste
			}
		}
	}
	return bestI, bestJ
}

func pickSeedsNodes(nodes []*rtreeNode) (int, int) {
	bestI, bestJ, bestWaste := 0, 1, -1.0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			waste := area(union(nodes[i].bounds, nodes[j].bounds)) - area(nodes[i].bounds) - area(nodes[j].bounds)
			if waste > bestWaste {
				bestI, bestJ, bestWaste = i, j, waste
			}
		}
	}
	return bestI, bestJ
}

func (t *RTree) findParent(n *rtreeNode, target *rtreeNode) *rtreeNode {
	if n.leaf {
		return nil
	}
	for _, c := range n.children {
		if c == target {
			return n
		}
		if found := t.findParent(c, target); found != nil {
			return found
		}
	}
	return nil
}

// Remove deletes the first entry equal to target's Bounds and Value
// from the tree, asserting it was present. Rebalancing after removal
// is not implemented: nodes may fall below a minimum fill factor,
// which only costs query efficiency, never correctness, so the
// editing-frequency profile of this module (removals are rare
// relative to queries) does not justify the extra complexity.
func (t *RTree) Remove(target RTreeEntry) {
	if !t.remove(t.root, target) {
		vocabulary.Fatal("RTree.Remove", nil, "entry not found in tree")
	}
}

func (t *RTree) remove(n *rtreeNode, target RTreeEntry) bool {
	if n.leaf {
		for i, e := range n.entries {
			if e.Bounds == target.Bounds && e.Value == target.Value {
				n.entries = append(n.entries[:i], n.entries[i+1:]...)
				return true
			}
		}
		return false
	}
	for _, c := range n.children {
		if c.bounds.Intersects(target.Bounds) && t.remove(c, target) {
			return true
		}
	}
	return false
}

// Query returns every entry whose bounds intersect rect.
func (t *RTree) Query(rect Rect) []RTreeEntry {
	var out []RTreeEntry
	t.query(t.root, rect, &out)
	return out
}

func (t *RTree) query(n *rtreeNode, rect Rect, out *[]RTreeEntry) {
	if n.leaf {
		for _, e := range n.entries {
			if e.Bounds.Intersects(rect) {
				*out = append(*out, e)
			}
		}
		return
	}
	for _, c := range n.children {
		if c.bounds.Intersects(rect) {
			t.query(c, rect, out)
		}
	}
}
