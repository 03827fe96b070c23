package layoutinfo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("InputConnectors", func() {
	It("places directed inputs along the left edge, facing left", func() {
		got := layoutinfo.InputConnectors(layoutinfo.TypeAnd, vocabulary.ConnectionCount(2))
		Expect(got).To(Equal([]layoutinfo.ConnectorInfo{
			{Offset: vocabulary.Grid{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
			{Offset: vocabulary.Grid{X: 0, Y: 1}, Orientation: vocabulary.OrientationLeft},
		}))
	})

	It("places undirected inputs at the origin column, facing undirected", func() {
		got := layoutinfo.InputConnectors(layoutinfo.TypeLED, vocabulary.ConnectionCount(1))
		Expect(got).To(Equal([]layoutinfo.ConnectorInfo{
			{Offset: vocabulary.Grid{X: 0, Y: 0}, Orientation: vocabulary.OrientationUndirected},
		}))
	})
})

var _ = Describe("OutputConnectors", func() {
	It("places directed outputs at the type's width, facing right", func() {
		got := layoutinfo.OutputConnectors(layoutinfo.TypeAnd, vocabulary.ConnectionCount(1))
		Expect(got).To(Equal([]layoutinfo.ConnectorInfo{
			{Offset: vocabulary.Grid{X: 2, Y: 0}, Orientation: vocabulary.OrientationRight},
		}))
	})

	It("places undirected outputs at the origin column", func() {
		got := layoutinfo.OutputConnectors(layoutinfo.TypeButton, vocabulary.ConnectionCount(1))
		Expect(got).To(Equal([]layoutinfo.ConnectorInfo{
			{Offset: vocabulary.Grid{X: 0, Y: 0}, Orientation: vocabulary.OrientationUndirected},
		}))
	})
})

var _ = Describe("BodyPoints", func() {
	It("is the column between a two-wide directed gate's inputs and its outputs", func() {
		Expect(layoutinfo.BodyPoints(layoutinfo.TypeAnd, vocabulary.ConnectionCount(2))).To(Equal([]vocabulary.Grid{
			{X: 1, Y: 0}, {X: 1, Y: 1},
		}))
	})

	It("is empty for a one-wide directed type, fully covered by its connector columns", func() {
		Expect(layoutinfo.BodyPoints(layoutinfo.TypeBuffer, vocabulary.ConnectionCount(1))).To(BeEmpty())
	})

	It("is empty for a one-cell undirected type whose only cell is its connector", func() {
		Expect(layoutinfo.BodyPoints(layoutinfo.TypeLED, vocabulary.ConnectionCount(1))).To(BeEmpty())
	})

	It("has two interior columns for a three-wide directed type", func() {
		got := layoutinfo.BodyPoints(layoutinfo.TypeShiftRegister, vocabulary.ConnectionCount(2))
		Expect(got).To(Equal([]vocabulary.Grid{
			{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1},
		}))
	})
})
