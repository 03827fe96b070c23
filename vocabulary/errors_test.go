package vocabulary_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("Error", func() {
	It("formats with and without a message", func() {
		bare := &vocabulary.Error{Op: "AddWireSegment", Kind: vocabulary.Collision}
		Expect(bare.Error()).To(Equal("AddWireSegment: Collision"))

		withMsg := vocabulary.New("AddWireSegment", vocabulary.Collision, "placement at %v collides", vocabulary.Grid{X: 1, Y: 1})
		Expect(withMsg.Error()).To(ContainSubstring("AddWireSegment: Collision:"))
		Expect(withMsg.Error()).To(ContainSubstring("(1,1)"))
	})

	It("matches errors.Is by Kind alone, regardless of Op or Message", func() {
		err := vocabulary.New("DeleteLogicItem", vocabulary.InvalidID, "no such item")
		Expect(errors.Is(err, vocabulary.Sentinel(vocabulary.InvalidID))).To(BeTrue())
		Expect(errors.Is(err, vocabulary.Sentinel(vocabulary.Collision))).To(BeFalse())
	})

	It("does not match a non-Error target", func() {
		err := vocabulary.New("Op", vocabulary.RangeError, "bad range")
		Expect(errors.Is(err, errors.New("plain error"))).To(BeFalse())
	})

	DescribeTable("Kind.String",
		func(k vocabulary.Kind, want string) {
			Expect(k.String()).To(Equal(want))
		},
		Entry("invalid definition", vocabulary.InvalidDefinition, "InvalidDefinition"),
		Entry("invalid id", vocabulary.InvalidID, "InvalidID"),
		Entry("invalid state", vocabulary.InvalidState, "InvalidState"),
		Entry("collision", vocabulary.Collision, "Collision"),
		Entry("range error", vocabulary.RangeError, "RangeError"),
		Entry("overflow error", vocabulary.OverflowError, "OverflowError"),
		Entry("out of range falls back to a numbered name", vocabulary.Kind(99), "Kind(99)"),
	)
})

var _ = Describe("Fatal", func() {
	It("panics with a message naming the broken invariant and its details", func() {
		defer func() {
			r := recover()
			Expect(r).NotTo(BeNil())
			msg, ok := r.(string)
			Expect(ok).To(BeTrue())
			Expect(msg).To(ContainSubstring("FATAL invariant violation"))
			Expect(msg).To(ContainSubstring("point already claimed"))
			Expect(msg).To(ContainSubstring("(3,4)"))
		}()
		vocabulary.Fatal("LogicItemConnectionIndex.Add", map[string]string{"point": vocabulary.Grid{X: 3, Y: 4}.String()}, "point already claimed by another logic-item connector")
	})
})
