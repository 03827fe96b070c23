package segmenttree_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/segmenttree"
	"github.com/logiksim/circuitcore/vocabulary"
)

func part(b, e int32) vocabulary.Part {
	return vocabulary.Part{Begin: vocabulary.Offset(b), End: vocabulary.Offset(e)}
}

var _ = Describe("PartSelection", func() {
	// Scenario S1 from spec section 8.
	It("merges touching and overlapping parts on add", func() {
		var s segmenttree.PartSelection
		s.AddPart(part(5, 10))
		s.AddPart(part(0, 4))
		s.AddPart(part(4, 5))

		Expect(s.Parts()).To(Equal([]vocabulary.Part{part(0, 10)}))
	})

	// Scenario S2 from spec section 8.
	It("answers overlap and disjoint queries", func() {
		var s segmenttree.PartSelection
		s.AddPart(part(5, 10))
		s.AddPart(part(15, 20))
		s.AddPart(part(25, 30))

		Expect(segmenttree.AOverlapsAnyOfB(part(0, 6), &s)).To(BeTrue())
		Expect(segmenttree.AOverlapsAnyOfB(part(10, 15), &s)).To(BeFalse())

		var other segmenttree.PartSelection
		other.AddPart(part(0, 1))
		other.AddPart(part(2, 3))
		other.AddPart(part(4, 5))
		Expect(segmenttree.ADisjointB(&other, &s)).To(BeTrue())
	})

	// Scenario S3 from spec section 8.
	It("iterates alternating selected and unselected ranges", func() {
		var s segmenttree.PartSelection
		s.AddPart(part(10, 20))
		s.AddPart(part(50, 60))

		type want struct {
			p vocabulary.Part
			k segmenttree.RangeKind
		}
		var got []want
		segmenttree.IterParts(part(0, 100), &s, func(p vocabulary.Part, k segmenttree.RangeKind) {
			got = append(got, want{p, k})
		})

		Expect(got).To(Equal([]want{
			{part(0, 10), segmenttree.RangeUnselected},
			{part(10, 20), segmenttree.RangeSelected},
			{part(20, 50), segmenttree.RangeUnselected},
			{part(50, 60), segmenttree.RangeSelected},
			{part(60, 100), segmenttree.RangeUnselected},
		}))
	})

	It("removes parts, splitting overlapped ranges", func() {
		var s segmenttree.PartSelection
		s.AddPart(part(0, 20))
		s.RemovePart(part(5, 10))

		Expect(s.Parts()).To(Equal([]vocabulary.Part{part(0, 5), part(10, 20)}))
	})

	It("computes the inverse of a selection within a full range", func() {
		var s segmenttree.PartSelection
		s.AddPart(part(10, 20))
		s.AddPart(part(50, 60))

		inv := s.Inverted(part(0, 100))
		Expect(inv.Parts()).To(Equal([]vocabulary.Part{part(0, 10), part(20, 50), part(60, 100)}))
	})

	It("copies a sub-range between selections with a translation", func() {
		var src, dst segmenttree.PartSelection
		src.AddPart(part(0, 10))

		segmenttree.CopyParts(&dst, &src, segmenttree.CopyRange{
			Src: part(0, 10),
			Dst: part(100, 110),
		})

		Expect(dst.Parts()).To(Equal([]vocabulary.Part{part(100, 110)}))
	})

	It("reports AInsideB", func() {
		var inner, outer segmenttree.PartSelection
		inner.AddPart(part(2, 4))
		outer.AddPart(part(0, 10))
		Expect(segmenttree.AInsideB(&inner, &outer)).To(BeTrue())

		inner.AddPart(part(20, 22))
		Expect(segmenttree.AInsideB(&inner, &outer)).To(BeFalse())
	})
})
