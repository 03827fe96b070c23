package editing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/editing"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("Editor decoration operations", func() {
	var (
		l   *layout.Layout
		idx *layoutindex.LayoutIndex
		bus *message.Bus
		e   *editing.Editor
		def layout.DecorationDefinition
	)

	BeforeEach(func() {
		l = layout.New()
		idx = layoutindex.New()
		bus = message.NewBus()
		e = editing.New(l, idx, bus)
		def = layout.DecorationDefinition{Type: layoutinfo.DecorationTextElement, Width: 2, Height: 1}
	})

	It("commits a non-colliding decoration and indexes its body", func() {
		id, err := e.AddDecoration(def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Decoration(id).DisplayState).To(Equal(layout.StateNormal))

		hits := idx.Selection.QuerySelection(layoutindex.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 0})
		Expect(hits).To(ContainElement(layoutindex.SelectionEntry{Kind: layoutindex.SelectionEntryDecoration, Decoration: id}))
	})

	It("rejects a decoration placed on top of another", func() {
		_, err := e.AddDecoration(def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		_, err = e.AddDecoration(def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
		Expect(err).To(HaveOccurred())
	})

	It("removes a decoration's body from the index on delete", func() {
		id, err := e.AddDecoration(def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		Expect(e.DeleteDecoration(id)).To(Succeed())
		hits := idx.Selection.QuerySelection(layoutindex.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 0})
		Expect(hits).To(BeEmpty())
	})
})
