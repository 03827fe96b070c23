// Package segmenttree implements per-wire geometry: the list of
// segments that make up one wire, and the PartSelection algebra used to
// track which sub-parts of those segments are selected or valid.
package segmenttree

import (
	"sort"

	"github.com/logiksim/circuitcore/vocabulary"
)

// PartSelection is an ordered, non-overlapping, coalesced set of parts
// on one segment. Touching parts are always merged; callers never see
// two adjacent entries that could be expressed as one.
type PartSelection struct {
	parts []vocabulary.Part
}

// Parts returns the selection's parts in ascending order. The returned
// slice must not be mutated by the caller.
func (s *PartSelection) Parts() []vocabulary.Part {
	return s.parts
}

// Empty reports whether the selection holds no parts.
func (s *PartSelection) Empty() bool {
	return len(s.parts) == 0
}

// AddPart inserts part into the selection, merging it with any parts it
// touches (spec section 3: "touching parts are merged on insertion").
func (s *PartSelection) AddPart(part vocabulary.Part) {
	s.addPart(part)
}

func (s *PartSelection) addPart(part vocabulary.Part) {
	insertAt := sort.Search(len(s.parts), func(i int) bool {
		return s.parts[i].Begin >= part.Begin
	})

	lo, hi := insertAt, insertAt
	merged := part
	for lo > 0 && s.parts[lo-1].Touches(merged) {
		lo--
		merged = union(s.parts[lo], merged)
	}
	for hi < len(s.parts) && s.parts[hi].Touches(merged) {
		merged = union(s.parts[hi], merged)
		hi++
	}

	next := make([]vocabulary.Part, 0, len(s.parts)-(hi-lo)+1)
	next = append(next, s.parts[:lo]...)
	next = append(next, merged)
	next = append(next, s.parts[hi:]...)
	s.parts = next
}

func union(a, b vocabulary.Part) vocabulary.Part {
	begin := a.Begin
	if b.Begin < begin {
		begin = b.Begin
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return vocabulary.Part{Begin: begin, End: end}
}

// RemovePart removes part from the selection, splitting any part it
// partially overlaps.
func (s *PartSelection) RemovePart(part vocabulary.Part) {
	if part.Begin >= part.End {
		return
	}
	next := make([]vocabulary.Part, 0, len(s.parts)+1)
	for _, p := range s.parts {
		if !p.Overlaps(part) {
			next = append(next, p)
			continue
		}
		if p.Begin < part.Begin {
			next = append(next, vocabulary.Part{Begin: p.Begin, End: part.Begin})
		}
		if p.End > part.End {
			next = append(next, vocabulary.Part{Begin: part.End, End: p.End})
		}
	}
	s.parts = next
}

// Clear empties the selection.
func (s *PartSelection) Clear() {
	s.parts = nil
}

// CopyRange describes the source and destination ranges for CopyParts.
type CopyRange struct {
	Src vocabulary.Part
	Dst vocabulary.Part
}

// CopyParts copies the portion of src's selection that lies within
// r.Src into dst's selection, translated so r.Src.Begin maps to
// r.Dst.Begin. r.Src and r.Dst must have equal length.
func CopyParts(dst, src *PartSelection, r CopyRange) {
	if r.Src.Length() != r.Dst.Length() {
		vocabulary.Fatal("CopyParts", map[string]string{
			"src": r.Src.String(), "dst": r.Dst.String(),
		}, "copy ranges must have equal length")
	}
	delta := int32(r.Dst.Begin) - int32(r.Src.Begin)
	for _, p := range src.parts {
		clipped, ok := intersect(p, r.Src)
		if !ok {
			continue
		}
		dst.addPart(vocabulary.Part{
			Begin: vocabulary.Offset(int32(clipped.Begin) + delta),
			End:   vocabulary.Offset(int32(clipped.End) + delta),
		})
	}
}

// MoveParts moves the selected sub-range r.Src (within s) to r.Dst,
// removing the original and inserting the translated copy. r.Src and
// r.Dst must have equal length and may be in the same selection.
func MoveParts(s *PartSelection, r CopyRange) {
	tmp := &PartSelection{}
	CopyParts(tmp, s, r)
	s.RemovePart(r.Src)
	for _, p := range tmp.parts {
		s.addPart(p)
	}
}

func intersect(a, b vocabulary.Part) (vocabulary.Part, bool) {
	begin := a.Begin
	if b.Begin > begin {
		begin = b.Begin
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if begin >= end {
		return vocabulary.Part{}, false
	}
	return vocabulary.Part{Begin: begin, End: end}, true
}

// Inverted returns the complement of s within full: every sub-range of
// full that is not covered by s.
func (s *PartSelection) Inverted(full vocabulary.Part) *PartSelection {
	inv := &PartSelection{}
	cursor := full.Begin
	for _, p := range s.parts {
		clipped, ok := intersect(p, full)
		if !ok {
			continue
		}
		if clipped.Begin > cursor {
			inv.addPart(vocabulary.Part{Begin: cursor, End: clipped.Begin})
		}
		if clipped.End > cursor {
			cursor = clipped.End
		}
	}
	if cursor < full.End {
		inv.addPart(vocabulary.Part{Begin: cursor, End: full.End})
	}
	return inv
}

// AOverlapsAnyOfB reports whether a overlaps at least one part of b.
func AOverlapsAnyOfB(a vocabulary.Part, b *PartSelection) bool {
	for _, p := range b.parts {
		if a.Overlaps(p) {
			return true
		}
	}
	return false
}

// ADisjointB reports whether every part of a is disjoint from every
// part of b.
func ADisjointB(a, b *PartSelection) bool {
	for _, pa := range a.parts {
		if AOverlapsAnyOfB(pa, b) {
			return false
		}
	}
	return true
}

// AInsideB reports whether every part of a lies entirely within some
// part of b.
func AInsideB(a, b *PartSelection) bool {
	for _, pa := range a.parts {
		contained := false
		for _, pb := range b.parts {
			if pb.Contains(pa) {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}

// RangeKind tags one sub-range yielded by IterParts.
type RangeKind int

const (
	RangeUnselected RangeKind = iota
	RangeSelected
)

// IterParts walks full, calling fn once per maximal sub-range that is
// either entirely selected or entirely unselected, covering full exactly
// (spec S3: alternating selected/unselected ranges).
func IterParts(full vocabulary.Part, selection *PartSelection, fn func(part vocabulary.Part, kind RangeKind)) {
	cursor := full.Begin
	for _, p := range selection.parts {
		clipped, ok := intersect(p, full)
		if !ok {
			continue
		}
		if clipped.Begin > cursor {
			fn(vocabulary.Part{Begin: cursor, End: clipped.Begin}, RangeUnselected)
		}
		if clipped.End > cursor {
			fn(clipped, RangeSelected)
			cursor = clipped.End
		}
	}
	if cursor < full.End {
		fn(vocabulary.Part{Begin: cursor, End: full.End}, RangeUnselected)
	}
}

// OverlapRange is one target range delivered by IterOverlappingParts.
type OverlapRange struct {
	Part     vocabulary.Part
	Selected bool
}

// IterOverlappingParts walks every part of query; for each, it delivers
// every sub-range of target's coverage of full that the query part
// overlaps, tagged with whether that sub-range is selected in target.
func IterOverlappingParts(full vocabulary.Part, query, target *PartSelection, fn func(queryPart vocabulary.Part, overlaps []OverlapRange)) {
	for _, qp := range query.parts {
		clippedQuery, ok := intersect(qp, full)
		if !ok {
			continue
		}
		var overlaps []OverlapRange
		IterParts(full, target, func(part vocabulary.Part, kind RangeKind) {
			clipped, ok := intersect(part, clippedQuery)
			if !ok {
				return
			}
			overlaps = append(overlaps, OverlapRange{Part: clipped, Selected: kind == RangeSelected})
		})
		fn(clippedQuery, overlaps)
	}
}
