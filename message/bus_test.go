package message_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("Bus", func() {
	var b *message.Bus

	BeforeEach(func() {
		b = message.NewBus()
	})

	It("dispatches a submitted message to every subscribed observer", func() {
		var gotA, gotB message.InfoMessage
		b.Subscribe(func(m message.InfoMessage) { gotA = m })
		b.Subscribe(func(m message.InfoMessage) { gotB = m })

		b.Submit(message.InfoMessage{Kind: message.LogicItemInserted, LogicItemID: vocabulary.LogicItemID(3)})

		Expect(gotA.Kind).To(Equal(message.LogicItemInserted))
		Expect(gotA.LogicItemID).To(Equal(vocabulary.LogicItemID(3)))
		Expect(gotB).To(Equal(gotA))
	})

	It("delivers messages to one observer strictly in submit order", func() {
		var seen []message.Kind
		b.Subscribe(func(m message.InfoMessage) { seen = append(seen, m.Kind) })

		b.Submit(message.InfoMessage{Kind: message.SegmentCreated})
		b.Submit(message.InfoMessage{Kind: message.SegmentInserted})
		b.Submit(message.InfoMessage{Kind: message.SegmentDeleted})

		Expect(seen).To(Equal([]message.Kind{message.SegmentCreated, message.SegmentInserted, message.SegmentDeleted}))
	})

	It("stops delivering to an unsubscribed observer", func() {
		count := 0
		sub := b.Subscribe(func(message.InfoMessage) { count++ })

		b.Submit(message.InfoMessage{Kind: message.ElementCreated})
		b.Unsubscribe(sub)
		b.Submit(message.InfoMessage{Kind: message.ElementCreated})

		Expect(count).To(Equal(1))
	})

	It("is a no-op to unsubscribe an unknown or already-removed subscription", func() {
		sub := b.Subscribe(func(message.InfoMessage) {})
		b.Unsubscribe(sub)
		Expect(func() { b.Unsubscribe(sub) }).NotTo(Panic())
		Expect(func() { b.Unsubscribe(message.Subscription{}) }).NotTo(Panic())
	})

	It("delivers to no one once every observer has unsubscribed", func() {
		called := false
		sub := b.Subscribe(func(message.InfoMessage) { called = true })
		b.Unsubscribe(sub)

		b.Submit(message.InfoMessage{Kind: message.ElementDeleted})
		Expect(called).To(BeFalse())
	})
})

var _ = Describe("Kind", func() {
	It("names every declared kind and falls back for unknown ones", func() {
		Expect(message.ElementCreated.String()).To(Equal("ElementCreated"))
		Expect(message.SegmentSplit.String()).To(Equal("SegmentSplit"))
		Expect(message.Kind(999).String()).To(Equal("Kind(999)"))
	})
})

var _ = Describe("InfoMessage", func() {
	It("formats a readable summary naming its logic item, decoration, and segment fields", func() {
		m := message.InfoMessage{Kind: message.LogicItemInserted, LogicItemID: vocabulary.LogicItemID(1)}
		Expect(m.String()).To(ContainSubstring("LogicItemInserted"))
	})
})
