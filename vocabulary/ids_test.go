package vocabulary_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("WireID", func() {
	It("reports only non-negative ids as inserted", func() {
		Expect(vocabulary.TemporaryWireID.IsInserted()).To(BeFalse())
		Expect(vocabulary.CollidingWireID.IsInserted()).To(BeFalse())
		Expect(vocabulary.WireID(0).IsInserted()).To(BeTrue())
		Expect(vocabulary.WireID(7).IsInserted()).To(BeTrue())
	})

	DescribeTable("String",
		func(id vocabulary.WireID, want string) {
			Expect(id.String()).To(Equal(want))
		},
		Entry("temporary", vocabulary.TemporaryWireID, "wire_temporary"),
		Entry("colliding", vocabulary.CollidingWireID, "wire_colliding"),
		Entry("real id", vocabulary.WireID(3), "wire_3"),
	)
})

var _ = Describe("LogicItemID and DecorationID", func() {
	It("format with their type prefix", func() {
		Expect(vocabulary.LogicItemID(5).String()).To(Equal("logicitem_5"))
		Expect(vocabulary.DecorationID(5).String()).To(Equal("decoration_5"))
	})
})

var _ = Describe("AddConnectionCount", func() {
	It("rejects a result that goes negative", func() {
		_, err := vocabulary.AddConnectionCount(vocabulary.ConnectionCount(1), -5)
		Expect(err).To(HaveOccurred())
		verr := err.(*vocabulary.Error)
		Expect(verr.Kind).To(Equal(vocabulary.OverflowError))
	})

	It("rejects a result exceeding the representable range", func() {
		_, err := vocabulary.AddConnectionCount(vocabulary.ConnectionCount(1<<16), 1<<16)
		Expect(err).To(HaveOccurred())
	})

	It("adds within range", func() {
		got, err := vocabulary.AddConnectionCount(vocabulary.ConnectionCount(2), 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(vocabulary.ConnectionCount(5)))
	})
})
