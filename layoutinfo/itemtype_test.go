package layoutinfo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("IsInputOutputCountValid", func() {
	DescribeTable("checks counts against a type's declared range",
		func(t layoutinfo.LogicItemType, in, out vocabulary.ConnectionCount, want bool) {
			Expect(layoutinfo.IsInputOutputCountValid(t, in, out)).To(Equal(want))
		},
		Entry("and gate at its minimum", layoutinfo.TypeAnd, vocabulary.ConnectionCount(2), vocabulary.ConnectionCount(1), true),
		Entry("and gate below its minimum input count", layoutinfo.TypeAnd, vocabulary.ConnectionCount(1), vocabulary.ConnectionCount(1), false),
		Entry("and gate above its maximum input count", layoutinfo.TypeAnd, vocabulary.ConnectionCount(17), vocabulary.ConnectionCount(1), false),
		Entry("buffer only ever has exactly one input and output", layoutinfo.TypeBuffer, vocabulary.ConnectionCount(1), vocabulary.ConnectionCount(1), true),
		Entry("button has no inputs and exactly one output", layoutinfo.TypeButton, vocabulary.ConnectionCount(0), vocabulary.ConnectionCount(1), true),
	)
})

var _ = Describe("IsOrientationValid", func() {
	DescribeTable("checks orientation against a type's direction policy",
		func(t layoutinfo.LogicItemType, o vocabulary.Orientation, want bool) {
			Expect(layoutinfo.IsOrientationValid(t, o)).To(Equal(want))
		},
		Entry("directed type accepts right", layoutinfo.TypeAnd, vocabulary.OrientationRight, true),
		Entry("directed type accepts up", layoutinfo.TypeAnd, vocabulary.OrientationUp, true),
		Entry("directed type rejects undirected", layoutinfo.TypeAnd, vocabulary.OrientationUndirected, false),
		Entry("undirected type accepts undirected", layoutinfo.TypeLED, vocabulary.OrientationUndirected, true),
		Entry("undirected type rejects a direction", layoutinfo.TypeLED, vocabulary.OrientationRight, false),
		Entry("any-policy type accepts undirected", layoutinfo.TypeSubCircuit, vocabulary.OrientationUndirected, true),
		Entry("any-policy type accepts a direction", layoutinfo.TypeSubCircuit, vocabulary.OrientationLeft, true),
	)
})

var _ = Describe("Height", func() {
	It("returns the fixed height for a non-variable type", func() {
		Expect(layoutinfo.Height(layoutinfo.TypeBuffer, vocabulary.ConnectionCount(1))).To(Equal(int32(1)))
	})

	It("grows with input count for a variable-height type", func() {
		Expect(layoutinfo.Height(layoutinfo.TypeAnd, vocabulary.ConnectionCount(5))).To(Equal(int32(5)))
	})

	It("floors at 1 even for a zero input count", func() {
		Expect(layoutinfo.Height(layoutinfo.TypeAnd, vocabulary.ConnectionCount(0))).To(Equal(int32(1)))
	})
})

var _ = Describe("Width", func() {
	It("is input-count independent", func() {
		Expect(layoutinfo.Width(layoutinfo.TypeAnd)).To(Equal(int32(2)))
		Expect(layoutinfo.Width(layoutinfo.TypeBuffer)).To(Equal(int32(1)))
	})
})

var _ = Describe("LogicItemType.String", func() {
	DescribeTable("names every declared type",
		func(t layoutinfo.LogicItemType, want string) {
			Expect(t.String()).To(Equal(want))
		},
		Entry("and", layoutinfo.TypeAnd, "and"),
		Entry("or", layoutinfo.TypeOr, "or"),
		Entry("xor", layoutinfo.TypeXor, "xor"),
		Entry("buffer", layoutinfo.TypeBuffer, "buffer"),
		Entry("led", layoutinfo.TypeLED, "led"),
		Entry("button", layoutinfo.TypeButton, "button"),
		Entry("clock", layoutinfo.TypeClock, "clock"),
		Entry("flipflop_jk", layoutinfo.TypeFlipFlopJK, "flipflop_jk"),
		Entry("latch_d", layoutinfo.TypeLatchD, "latch_d"),
		Entry("shift_register", layoutinfo.TypeShiftRegister, "shift_register"),
		Entry("number_display", layoutinfo.TypeNumberDisplay, "number_display"),
		Entry("ascii_display", layoutinfo.TypeAsciiDisplay, "ascii_display"),
		Entry("sub_circuit", layoutinfo.TypeSubCircuit, "sub_circuit"),
		Entry("out of range falls back to invalid", layoutinfo.LogicItemType(99), "invalid"),
	)
})
