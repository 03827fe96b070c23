package selection

import (
	"math"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Function is the set-algebra operator a VisibleSelection operation
// applies (spec section 3).
type Function int

const (
	FunctionAdd Function = iota
	FunctionSubstract
	FunctionToggle
)

func (f Function) String() string {
	switch f {
	case FunctionAdd:
		return "add"
	case FunctionSubstract:
		return "substract"
	case FunctionToggle:
		return "toggle"
	default:
		return "invalid"
	}
}

// Operation is one entry in a VisibleSelection's operation list: a
// function applied to everything the spatial index finds under Rect
// (a GridFine rectangle).
type Operation struct {
	Function Function
	Rect     layoutindex.Rect
}

// VisibleSelection is an initial_selection plus an ordered list of
// operations (spec section 3). Its materialized selection,
// (((initial + op1) +- op2) +- ...), is computed lazily by Calculate
// and cached; any mutation of Initial or Operations invalidates the
// cache. The cache invariant holds by construction here: cache is only
// ever set inside Calculate when len(Operations) > 0.
type VisibleSelection struct {
	Initial    *Selection
	Operations []Operation

	cache *Selection
}

// NewVisibleSelection creates a VisibleSelection with the given initial
// selection (or an empty one if nil) and no operations.
func NewVisibleSelection(initial *Selection) *VisibleSelection {
	if initial == nil {
		initial = New()
	}
	return &VisibleSelection{Initial: initial}
}

func (vs *VisibleSelection) invalidate() {
	vs.cache = nil
}

// Apply keeps vs valid under id renumbering (spec section 4.6), the
// same contract Selection.Apply gives every plain selection: it rewrites
// Initial in place and, if a cached materialization currently exists,
// rewrites it too rather than invalidating it, since a renumbering
// message changes no geometry an Operation's Rect would re-query
// differently.
func (vs *VisibleSelection) Apply(msg message.InfoMessage) {
	vs.Initial.Apply(msg)
	if vs.cache != nil {
		vs.cache.Apply(msg)
	}
}

// SetInitial replaces the initial selection outright and drops every
// pending operation (spec external interface: visible_selection_set).
func (vs *VisibleSelection) SetInitial(sel *Selection) {
	vs.Initial = sel
	vs.Operations = nil
	vs.invalidate()
}

// Clear empties the initial selection and drops every pending
// operation (visible_selection_clear).
func (vs *VisibleSelection) Clear() {
	vs.Initial = New()
	vs.Operations = nil
	vs.invalidate()
}

// AddOperation appends op to the operation list
// (visible_selection_add_operation).
func (vs *VisibleSelection) AddOperation(op Operation) {
	vs.Operations = append(vs.Operations, op)
	vs.invalidate()
}

// UpdateLast replaces the rect of the most recently added operation,
// the common case of a live rubber-band drag updating its extent
// every pointer-move event (visible_selection_update_last). It is a
// no-op if there is no pending operation.
func (vs *VisibleSelection) UpdateLast(rect layoutindex.Rect) {
	if len(vs.Operations) == 0 {
		return
	}
	vs.Operations[len(vs.Operations)-1].Rect = rect
	vs.invalidate()
}

// PopLast removes the most recently added operation
// (visible_selection_pop_last). It is a no-op if there is none.
func (vs *VisibleSelection) PopLast() {
	if len(vs.Operations) == 0 {
		return
	}
	vs.Operations = vs.Operations[:len(vs.Operations)-1]
	vs.invalidate()
}

// resolveFunction turns Toggle into Add or Substract by testing
// current membership, per spec section 9's resolution of the open
// "SelectionFunction::toggle" question: never invent partial-overlap
// semantics, just route through add/substract after a membership test.
func resolveFunction(fn Function, currentlySelected bool) Function {
	if fn != FunctionToggle {
		return fn
	}
	if currentlySelected {
		return FunctionSubstract
	}
	return FunctionAdd
}

// clipSegmentToRect intersects an axis-aligned segment line with rect
// and returns the covered Part in the segment's own offset space. ok
// is false when the line's cross-axis coordinate falls outside rect
// entirely (no overlap) or the overlap rounds down to zero length.
func clipSegmentToRect(line vocabulary.OrderedLine, rect layoutindex.Rect) (vocabulary.Part, bool) {
	length := line.Length()
	var lo, hi float64
	if line.IsHorizontal() {
		y := float64(line.P0.Y)
		if y < rect.MinY || y > rect.MaxY {
			return vocabulary.Part{}, false
		}
		lo = rect.MinX - float64(line.P0.X)
		hi = rect.MaxX - float64(line.P0.X)
	} else {
		x := float64(line.P0.X)
		if x < rect.MinX || x > rect.MaxX {
			return vocabulary.Part{}, false
		}
		lo = rect.MinY - float64(line.P0.Y)
		hi = rect.MaxY - float64(line.P0.Y)
	}

	begin := int32(math.Ceil(lo))
	if begin < 0 {
		begin = 0
	}
	end := int32(math.Floor(hi))
	if vocabulary.Offset(end) > length {
		end = int32(length)
	}
	if begin >= end {
		return vocabulary.Part{}, false
	}
	return vocabulary.Part{Begin: vocabulary.Offset(begin), End: vocabulary.Offset(end)}, true
}

// applyOperation clones base, applies op against everything
// idx.Selection finds under op.Rect, and sanitizes every segment it
// touches immediately with the mode its own resolved add/substract
// produced (spec section 4.4: "every add ... followed by expand,
// every substract ... by shrink" — resolved per-element so a mixed
// toggle sanitizes each element correctly).
func applyOperation(base *Selection, op Operation, l *layout.Layout, idx *layoutindex.LayoutIndex) *Selection {
	result := base.Clone()
	for _, hit := range idx.Selection.QuerySelection(op.Rect) {
		switch hit.Kind {
		case layoutindex.SelectionEntryLogicItem:
			fn := resolveFunction(op.Function, result.HasLogicItem(hit.LogicItem))
			if fn == FunctionAdd {
				result.AddLogicItem(hit.LogicItem)
			} else {
				result.RemoveLogicItem(hit.LogicItem)
			}

		case layoutindex.SelectionEntryDecoration:
			fn := resolveFunction(op.Function, result.HasDecoration(hit.Decoration))
			if fn == FunctionAdd {
				result.AddDecoration(hit.Decoration)
			} else {
				result.RemoveDecoration(hit.Decoration)
			}

		case layoutindex.SelectionEntrySegment:
			info := l.WireTree(hit.Segment.Wire).Info(hit.Segment.Index)
			part, ok := clipSegmentToRect(info.Line, op.Rect)
			if !ok {
				continue
			}
			current := result.Segments[hit.Segment]
			alreadySelected := current != nil && segmenttree.AOverlapsAnyOfB(part, current)
			fn := resolveFunction(op.Function, alreadySelected)

			mode := SanitizeExpand
			if fn == FunctionAdd {
				result.AddSegmentPart(hit.Segment, part)
			} else {
				result.RemoveSegmentPart(hit.Segment, part)
				mode = SanitizeShrink
			}
			sanitizeSegmentEntry(result, hit.Segment, info, idx.Collisions, mode)
		}
	}
	return result
}

// Calculate materializes vs against l and idx, caching the result
// until the next mutation (spec section 3: "computed lazily and
// cached"). An empty operation list is a no-op: Calculate returns
// Initial directly without ever populating the cache.
func (vs *VisibleSelection) Calculate(l *layout.Layout, idx *layoutindex.LayoutIndex) *Selection {
	if len(vs.Operations) == 0 {
		return vs.Initial
	}
	if vs.cache != nil {
		return vs.cache
	}
	result := vs.Initial
	for _, op := range vs.Operations {
		result = applyOperation(result, op, l, idx)
	}
	vs.cache = result
	return result
}

// ApplyAllOperations collapses every pending operation into Initial
// and clears the operation list (spec section 4.6). It is a no-op on
// an empty operation list, satisfying the idempotence testable
// property in spec section 8: calling it twice in a row leaves
// Initial/Operations unchanged the second time.
func (vs *VisibleSelection) ApplyAllOperations(l *layout.Layout, idx *layoutindex.LayoutIndex) {
	if len(vs.Operations) == 0 {
		return
	}
	vs.Initial = vs.Calculate(l, idx)
	vs.Operations = nil
	vs.invalidate()
}
