package layoutindex_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layoutindex"
)

func rect(minX, minY, maxX, maxY float64) layoutindex.Rect {
	return layoutindex.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

var _ = Describe("RTree", func() {
	It("finds entries whose bounds intersect a query rectangle", func() {
		tree := layoutindex.NewRTree()
		tree.Insert(layoutindex.RTreeEntry{Bounds: rect(0, 0, 1, 1), Value: "a"})
		tree.Insert(layoutindex.RTreeEntry{Bounds: rect(5, 5, 6, 6), Value: "b"})
		tree.Insert(layoutindex.RTreeEntry{Bounds: rect(10, 10, 11, 11), Value: "c"})

		hits := tree.Query(rect(4, 4, 7, 7))
		Expect(hits).To(HaveLen(1))
		Expect(hits[0].Value).To(Equal("b"))
	})

	It("survives splitting once a node overflows maxEntries", func() {
		tree := layoutindex.NewRTree()
		for i := 0; i < 100; i++ {
			x := float64(i)
			tree.Insert(layoutindex.RTreeEntry{Bounds: rect(x, x, x+1, x+1), Value: i})
		}

		hits := tree.Query(rect(49, 49, 51, 51))
		values := map[int]bool{}
		for _, h := range hits {
			values[h.Value.(int)] = true
		}
		Expect(values).To(HaveKey(49))
		Expect(values).To(HaveKey(50))
	})

	It("removes an entry so later queries no longer find it", func() {
		tree := layoutindex.NewRTree()
		entry := layoutindex.RTreeEntry{Bounds: rect(0, 0, 1, 1), Value: "solo"}
		tree.Insert(entry)
		Expect(tree.Query(rect(0, 0, 1, 1))).To(HaveLen(1))

		tree.Remove(entry)
		Expect(tree.Query(rect(0, 0, 1, 1))).To(BeEmpty())
	})

	It("panics when removing an entry that was never inserted", func() {
		tree := layoutindex.NewRTree()
		Expect(func() {
			tree.Remove(layoutindex.RTreeEntry{Bounds: rect(0, 0, 1, 1), Value: "ghost"})
		}).To(Panic())
	})
})
