package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("Decoration storage", func() {
	var l *layout.Layout
	var def layout.DecorationDefinition

	BeforeEach(func() {
		l = layout.New()
		def = layout.DecorationDefinition{Type: layoutinfo.DecorationTextElement, Width: 2, Height: 1}
	})

	It("rejects a definition smaller than the type's minimum", func() {
		bad := def
		bad.Width = 0
		_, _, err := l.CreateDecoration(bad, vocabulary.Grid{})
		Expect(err).To(HaveOccurred())
		Expect(err.(*vocabulary.Error).Kind).To(Equal(vocabulary.InvalidDefinition))
	})

	It("stores a well-formed decoration as temporary", func() {
		id, msg, err := l.CreateDecoration(def, vocabulary.Grid{X: 1, Y: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Kind).To(Equal(message.ElementCreated))
		Expect(l.Decoration(id).DisplayState).To(Equal(layout.StateTemporary))
	})

	It("rejects deleting a decoration that is not temporary", func() {
		id, _, _ := l.CreateDecoration(def, vocabulary.Grid{})
		l.SetDecorationDisplayState(id, layout.StateNormal)
		_, _, err := l.DeleteDecoration(id)
		Expect(err).To(HaveOccurred())
	})

	It("deleting a non-last decoration swaps the last one into its slot", func() {
		first, _, _ := l.CreateDecoration(def, vocabulary.Grid{X: 0, Y: 0})
		last, _, _ := l.CreateDecoration(def, vocabulary.Grid{X: 1, Y: 0})

		_, moved, err := l.DeleteDecoration(first)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).NotTo(BeNil())
		Expect(moved.OldDecorationID).To(Equal(last))
		Expect(moved.DecorationID).To(Equal(first))
		Expect(l.IsDecorationValid(last)).To(BeFalse())
	})

	It("lists every live id in storage order", func() {
		a, _, _ := l.CreateDecoration(def, vocabulary.Grid{})
		b, _, _ := l.CreateDecoration(def, vocabulary.Grid{X: 1})
		Expect(l.DecorationIDs()).To(Equal([]vocabulary.DecorationID{a, b}))
	})
})
