package selection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("Registry", func() {
	var r *selection.Registry

	BeforeEach(func() {
		r = selection.NewRegistry()
	})

	It("creates a handle with a refcount of one naming an empty selection", func() {
		h := r.Create()
		Expect(h.IsValid()).To(BeTrue())
		Expect(r.RefCount(h)).To(Equal(1))
		Expect(r.Get(h).Empty()).To(BeTrue())
	})

	It("reports a zero refcount for an unknown handle", func() {
		Expect(r.RefCount(selection.SelectionResource{})).To(Equal(0))
	})

	It("increments the refcount on Clone and shares the same underlying selection", func() {
		h := r.Create()
		r.Get(h).AddLogicItem(1)

		clone := r.Clone(h)
		Expect(r.RefCount(h)).To(Equal(2))
		Expect(r.Get(clone).HasLogicItem(1)).To(BeTrue())
	})

	It("frees the entry once every clone has been released", func() {
		h := r.Create()
		clone := r.Clone(h)
		Expect(r.RefCount(h)).To(Equal(2))

		r.Release(clone)
		Expect(r.RefCount(h)).To(Equal(1))

		r.Release(h)
		Expect(r.RefCount(h)).To(Equal(0))
	})

	It("panics via vocabulary.Fatal when cloning, releasing, or dereferencing an unknown handle", func() {
		unknown := selection.SelectionResource{}
		Expect(func() { r.Clone(unknown) }).To(Panic())
		Expect(func() { r.Release(unknown) }).To(Panic())
		Expect(func() { r.Get(unknown) }).To(Panic())
	})

	It("keeps every live selection valid under id renumbering via Apply", func() {
		h1 := r.Create()
		h2 := r.Create()
		r.Get(h1).AddLogicItem(5)
		r.Get(h2).AddLogicItem(5)

		r.Apply(message.InfoMessage{
			Kind:           message.InsertedLogicItemIDUpdated,
			Class:          message.ClassLogicItem,
			OldLogicItemID: vocabulary.LogicItemID(5),
			LogicItemID:    vocabulary.LogicItemID(9),
		})

		Expect(r.Get(h1).HasLogicItem(9)).To(BeTrue())
		Expect(r.Get(h2).HasLogicItem(9)).To(BeTrue())
	})
})
