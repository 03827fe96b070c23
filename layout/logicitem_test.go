package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("LogicItem storage", func() {
	var l *layout.Layout
	var def layout.LogicItemDefinition

	BeforeEach(func() {
		l = layout.New()
		def = layout.LogicItemDefinition{
			Type:        layoutinfo.TypeBuffer,
			InputCount:  1,
			OutputCount: 1,
			Orientation: vocabulary.OrientationRight,
		}
	})

	It("rejects a malformed definition", func() {
		bad := def
		bad.InputCount = 0
		_, _, err := l.CreateLogicItem(bad, vocabulary.Grid{})
		Expect(err).To(HaveOccurred())
		Expect(err.(*vocabulary.Error).Kind).To(Equal(vocabulary.InvalidDefinition))
		Expect(l.LogicItemCount()).To(Equal(0))
	})

	It("stores a well-formed item as temporary and reports it created", func() {
		id, msg, err := l.CreateLogicItem(def, vocabulary.Grid{X: 3, Y: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Kind).To(Equal(message.ElementCreated))
		Expect(msg.LogicItemID).To(Equal(id))

		item := l.LogicItem(id)
		Expect(item.DisplayState).To(Equal(layout.StateTemporary))
		Expect(item.Position).To(Equal(vocabulary.Grid{X: 3, Y: 4}))
	})

	It("rejects deleting an id that was never created", func() {
		_, _, err := l.DeleteLogicItem(vocabulary.LogicItemID(0))
		Expect(err).To(HaveOccurred())
		Expect(err.(*vocabulary.Error).Kind).To(Equal(vocabulary.InvalidID))
	})

	It("rejects deleting an item that is not temporary", func() {
		id, _, _ := l.CreateLogicItem(def, vocabulary.Grid{})
		l.SetLogicItemDisplayState(id, layout.StateNormal)
		_, _, err := l.DeleteLogicItem(id)
		Expect(err).To(HaveOccurred())
		Expect(err.(*vocabulary.Error).Kind).To(Equal(vocabulary.InvalidState))
	})

	It("deleting the last item reports no move", func() {
		id, _, _ := l.CreateLogicItem(def, vocabulary.Grid{})
		deleted, moved, err := l.DeleteLogicItem(id)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted.Kind).To(Equal(message.ElementDeleted))
		Expect(moved).To(BeNil())
		Expect(l.LogicItemCount()).To(Equal(0))
	})

	It("deleting a non-last item swaps the last item into its slot and reports the move", func() {
		first, _, _ := l.CreateLogicItem(def, vocabulary.Grid{X: 0, Y: 0})
		_, _, _ = l.CreateLogicItem(def, vocabulary.Grid{X: 1, Y: 0})
		last, _, _ := l.CreateLogicItem(def, vocabulary.Grid{X: 2, Y: 0})

		_, moved, err := l.DeleteLogicItem(first)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).NotTo(BeNil())
		Expect(moved.Kind).To(Equal(message.InsertedLogicItemIDUpdated))
		Expect(moved.OldLogicItemID).To(Equal(last))
		Expect(moved.LogicItemID).To(Equal(first))

		Expect(l.LogicItemCount()).To(Equal(2))
		Expect(l.LogicItem(first).Position).To(Equal(vocabulary.Grid{X: 2, Y: 0}))
		Expect(l.IsLogicItemValid(last)).To(BeFalse())
	})

	It("lists every live id in storage order", func() {
		a, _, _ := l.CreateLogicItem(def, vocabulary.Grid{})
		b, _, _ := l.CreateLogicItem(def, vocabulary.Grid{})
		Expect(l.LogicItemIDs()).To(Equal([]vocabulary.LogicItemID{a, b}))
	})

	It("overwrites position, orientation, display state, and attributes in place", func() {
		id, _, _ := l.CreateLogicItem(def, vocabulary.Grid{})
		l.SetLogicItemPosition(id, vocabulary.Grid{X: 5, Y: 5})
		l.SetLogicItemOrientation(id, vocabulary.OrientationDown)
		l.SetLogicItemDisplayState(id, layout.StateValid)
		l.SetLogicItemAttribute(id, "label", "G1")

		item := l.LogicItem(id)
		Expect(item.Position).To(Equal(vocabulary.Grid{X: 5, Y: 5}))
		Expect(item.Definition.Orientation).To(Equal(vocabulary.OrientationDown))
		Expect(item.DisplayState).To(Equal(layout.StateValid))
		Expect(item.Definition.Attributes).To(Equal(map[string]string{"label": "G1"}))
	})
})
