package layoutindex_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("CollisionIndex", func() {
	It("derives StateEmpty for an untouched point", func() {
		idx := layoutindex.NewCollisionIndex()
		Expect(idx.State(vocabulary.Grid{X: 1, Y: 1})).To(Equal(collision.StateEmpty))
	})

	It("derives StateElementBody after SetBody and reverts on ClearBody", func() {
		idx := layoutindex.NewCollisionIndex()
		p := vocabulary.Grid{X: 2, Y: 3}
		owner := collision.Owner{Kind: collision.OwnerElement, Item: 7}

		idx.SetBody(p, owner)
		Expect(idx.State(p)).To(Equal(collision.StateElementBody))

		idx.ClearBody(p, owner)
		Expect(idx.State(p)).To(Equal(collision.StateEmpty))
	})

	It("derives StateWireCrossing when horizontal and vertical both occupy a point", func() {
		idx := layoutindex.NewCollisionIndex()
		p := vocabulary.Grid{X: 0, Y: 0}
		h := collision.Owner{Kind: collision.OwnerWireSegment, Wire: 1}
		v := collision.Owner{Kind: collision.OwnerWireSegment, Wire: 2}

		idx.SetHorizontal(p, h)
		idx.SetVertical(p, v)
		Expect(idx.State(p)).To(Equal(collision.StateWireCrossing))
	})

	It("panics when claiming an already-claimed body owner", func() {
		idx := layoutindex.NewCollisionIndex()
		p := vocabulary.Grid{X: 0, Y: 0}
		idx.SetBody(p, collision.Owner{Kind: collision.OwnerElement, Item: 1})

		Expect(func() {
			idx.SetBody(p, collision.Owner{Kind: collision.OwnerElement, Item: 2})
		}).To(Panic())
	})

	It("panics when clearing a body owner that does not match", func() {
		idx := layoutindex.NewCollisionIndex()
		p := vocabulary.Grid{X: 0, Y: 0}
		idx.SetBody(p, collision.Owner{Kind: collision.OwnerElement, Item: 1})

		Expect(func() {
			idx.ClearBody(p, collision.Owner{Kind: collision.OwnerElement, Item: 2})
		}).To(Panic())
	})
})
