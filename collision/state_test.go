package collision_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/collision"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("ToState", func() {
	body := collision.Owner{Kind: collision.OwnerElement, Item: vocabulary.LogicItemID(1)}
	tag := collision.Owner{Kind: collision.OwnerConnectionTag}
	wireConn := collision.Owner{Kind: collision.OwnerWireConnection, Wire: vocabulary.WireID(1)}
	wireSeg := collision.Owner{Kind: collision.OwnerWireSegment, Wire: vocabulary.WireID(1)}
	wirePoint := collision.Owner{Kind: collision.OwnerWirePointTag, Wire: vocabulary.WireID(1)}

	DescribeTable("classifies every reachable triple",
		func(t collision.Triple, want collision.CellState) {
			Expect(collision.ToState(t)).To(Equal(want))
		},
		Entry("nothing occupied", collision.Triple{}, collision.StateEmpty),
		Entry("element body alone", collision.Triple{Body: body}, collision.StateElementBody),
		Entry("connector tag alone", collision.Triple{Body: tag}, collision.StateElementConnection),
		Entry("wire connection on the horizontal axis", collision.Triple{Horizontal: wireConn}, collision.StateWireConnection),
		Entry("wire connection on the vertical axis", collision.Triple{Vertical: wireConn}, collision.StateWireConnection),
		Entry("wire segment on the horizontal axis", collision.Triple{Horizontal: wireSeg}, collision.StateWireHorizontal),
		Entry("wire segment on the vertical axis", collision.Triple{Vertical: wireSeg}, collision.StateWireVertical),
		Entry("wire point tag on the horizontal axis", collision.Triple{Horizontal: wirePoint}, collision.StateWirePoint),
		Entry("wire point tag on the vertical axis", collision.Triple{Vertical: wirePoint}, collision.StateWirePoint),
		Entry("both axes occupied is a crossing", collision.Triple{Horizontal: wireSeg, Vertical: wireSeg}, collision.StateWireCrossing),
		Entry("body plus a wire connection on the horizontal axis", collision.Triple{Body: tag, Horizontal: wireConn}, collision.StateElementWireConnection),
		Entry("body plus a wire connection on the vertical axis", collision.Triple{Body: tag, Vertical: wireConn}, collision.StateElementWireConnection),
		Entry("an unreachable combination is invalid", collision.Triple{Body: body, Horizontal: wireSeg}, collision.StateInvalid),
	)
})

var _ = Describe("CellState.String", func() {
	DescribeTable("names every declared state",
		func(s collision.CellState, want string) {
			Expect(s.String()).To(Equal(want))
		},
		Entry("empty", collision.StateEmpty, "empty"),
		Entry("element body", collision.StateElementBody, "element_body"),
		Entry("element connection", collision.StateElementConnection, "element_connection"),
		Entry("wire connection", collision.StateWireConnection, "wire_connection"),
		Entry("wire horizontal", collision.StateWireHorizontal, "wire_horizontal"),
		Entry("wire vertical", collision.StateWireVertical, "wire_vertical"),
		Entry("wire point", collision.StateWirePoint, "wire_point"),
		Entry("wire crossing", collision.StateWireCrossing, "wire_crossing"),
		Entry("element wire connection", collision.StateElementWireConnection, "element_wire_connection"),
		Entry("out of range falls back to invalid", collision.CellState(99), "invalid"),
	)
})

var _ = Describe("CheckDecision", func() {
	It("allows any candidate onto an empty cell", func() {
		Expect(collision.CheckDecision(collision.StateEmpty, collision.CandidateBody, false)).To(BeTrue())
		Expect(collision.CheckDecision(collision.StateEmpty, collision.CandidateWireNew, false)).To(BeTrue())
	})

	It("allows an element connector onto an existing wire connection, and vice versa", func() {
		Expect(collision.CheckDecision(collision.StateWireConnection, collision.CandidateElementConnection, false)).To(BeTrue())
		Expect(collision.CheckDecision(collision.StateElementConnection, collision.CandidateWireConnection, false)).To(BeTrue())
	})

	It("allows a perpendicular wire candidate to cross an existing one", func() {
		Expect(collision.CheckDecision(collision.StateWireHorizontal, collision.CandidateWireVertical, false)).To(BeTrue())
		Expect(collision.CheckDecision(collision.StateWireVertical, collision.CandidateWireHorizontal, false)).To(BeTrue())
	})

	It("rejects a parallel wire candidate overlapping an existing one", func() {
		Expect(collision.CheckDecision(collision.StateWireHorizontal, collision.CandidateWireHorizontal, false)).To(BeFalse())
	})

	It("rejects every candidate on a state absent from the table", func() {
		Expect(collision.CheckDecision(collision.StateWireCrossing, collision.CandidateBody, false)).To(BeFalse())
	})

	It("probes CandidateWireNew onto a non-empty cell only when the endpoint is compatible", func() {
		Expect(collision.CheckDecision(collision.StateElementConnection, collision.CandidateWireNew, false)).To(BeFalse())
		Expect(collision.CheckDecision(collision.StateElementConnection, collision.CandidateWireNew, true)).To(BeTrue())
	})
})
