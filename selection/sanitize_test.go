package selection_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/vocabulary"
)

// crossingCircuit builds two wires crossing at (5,5) without connecting,
// returning the circuit and the horizontal wire's segment.
func crossingCircuit() (*circuit.CircuitData, vocabulary.Segment) {
	ctx := context.Background()
	c := circuit.New()

	horizontal := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 0, Y: 5}, P1: vocabulary.Grid{X: 10, Y: 5}}
	horizSeg, err := c.AddWireSegment(ctx, horizontal, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	Expect(err).NotTo(HaveOccurred())
	c.BeginGroup()

	vertical := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 5, Y: 0}, P1: vocabulary.Grid{X: 5, Y: 10}}
	_, err = c.AddWireSegment(ctx, vertical, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	Expect(err).NotTo(HaveOccurred())
	c.BeginGroup()

	return c, horizSeg
}

var _ = Describe("SanitizePart", func() {
	It("shifts a boundary sitting exactly on a wire crossing off the crossing point", func() {
		c, seg := crossingCircuit()

		// The horizontal wire crosses the vertical one at offset 5
		// (grid x=5). A part whose Begin lands exactly there must move
		// under SanitizeExpand.
		sp := vocabulary.SegmentPart{Segment: seg, Part: vocabulary.Part{Begin: 5, End: 8}}
		sanitized := selection.SanitizePart(sp, c.Layout(), c.Index().Collisions, selection.SanitizeExpand)

		Expect(sanitized.Part.Begin).NotTo(Equal(vocabulary.Offset(5)))
		Expect(sanitized.Part.Begin).To(BeNumerically("<", 5))
	})

	It("leaves a part with no boundary on a crossing point unchanged", func() {
		c, seg := crossingCircuit()

		sp := vocabulary.SegmentPart{Segment: seg, Part: vocabulary.Part{Begin: 1, End: 3}}
		sanitized := selection.SanitizePart(sp, c.Layout(), c.Index().Collisions, selection.SanitizeExpand)

		Expect(sanitized.Part).To(Equal(sp.Part))
	})
})

var _ = Describe("SanitizeSelection", func() {
	It("drops a wire whose sanitized selection collapses to empty", func() {
		c, seg := crossingCircuit()

		sel := selection.New()
		// A one-cell part beginning on the crossing offset collapses to
		// nothing once its begin is shrunk off the crossing.
		sel.AddSegmentPart(seg, vocabulary.Part{Begin: 5, End: 6})

		selection.SanitizeSelection(sel, c.Layout(), c.Index().Collisions, selection.SanitizeShrink)

		_, stillPresent := sel.Segments[seg]
		Expect(stillPresent).To(BeFalse())
	})
})
