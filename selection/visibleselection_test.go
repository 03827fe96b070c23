package selection_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/selection"
	"github.com/logiksim/circuitcore/vocabulary"
)

var _ = Describe("VisibleSelection", func() {
	var vs *selection.VisibleSelection

	BeforeEach(func() {
		vs = selection.NewVisibleSelection(nil)
	})

	It("starts with an empty initial selection and no operations", func() {
		Expect(vs.Initial.Empty()).To(BeTrue())
		Expect(vs.Operations).To(BeEmpty())
	})

	It("returns Initial directly when there are no operations", func() {
		vs.Initial.AddLogicItem(1)
		Expect(vs.Calculate(nil, nil)).To(BeIdenticalTo(vs.Initial))
	})

	It("clears the initial selection and drops operations", func() {
		vs.Initial.AddLogicItem(1)
		vs.AddOperation(selection.Operation{Function: selection.FunctionAdd, Rect: layoutindex.Rect{MaxX: 1, MaxY: 1}})
		vs.Clear()
		Expect(vs.Initial.Empty()).To(BeTrue())
		Expect(vs.Operations).To(BeEmpty())
	})

	It("replaces the initial selection and drops operations on SetInitial", func() {
		vs.AddOperation(selection.Operation{Function: selection.FunctionAdd, Rect: layoutindex.Rect{MaxX: 1, MaxY: 1}})
		replacement := selection.New()
		replacement.AddDecoration(7)
		vs.SetInitial(replacement)
		Expect(vs.Initial.HasDecoration(7)).To(BeTrue())
		Expect(vs.Operations).To(BeEmpty())
	})

	It("updates only the most recently added operation's rect", func() {
		vs.AddOperation(selection.Operation{Function: selection.FunctionAdd, Rect: layoutindex.Rect{MaxX: 1, MaxY: 1}})
		vs.UpdateLast(layoutindex.Rect{MaxX: 5, MaxY: 5})
		Expect(vs.Operations).To(HaveLen(1))
		Expect(vs.Operations[0].Rect).To(Equal(layoutindex.Rect{MaxX: 5, MaxY: 5}))
	})

	It("is a no-op to update or pop with no pending operations", func() {
		Expect(func() {
			vs.UpdateLast(layoutindex.Rect{MaxX: 1, MaxY: 1})
			vs.PopLast()
		}).NotTo(Panic())
		Expect(vs.Operations).To(BeEmpty())
	})

	It("removes the most recently added operation on PopLast", func() {
		vs.AddOperation(selection.Operation{Function: selection.FunctionAdd, Rect: layoutindex.Rect{MaxX: 1, MaxY: 1}})
		vs.AddOperation(selection.Operation{Function: selection.FunctionAdd, Rect: layoutindex.Rect{MaxX: 2, MaxY: 2}})
		vs.PopLast()
		Expect(vs.Operations).To(HaveLen(1))
		Expect(vs.Operations[0].Rect.MaxX).To(Equal(1.0))
	})

	Describe("Calculate against a live layout", func() {
		It("materializes an add-rect operation into the logic items it covers", func() {
			ctx := context.Background()
			c := circuit.New()
			def := layout.LogicItemDefinition{
				Type:        layoutinfo.TypeAnd,
				InputCount:  2,
				OutputCount: 1,
				Orientation: vocabulary.OrientationRight,
			}
			id, err := c.AddLogicItem(ctx, def, vocabulary.Grid{X: 3, Y: 3}, layout.ModeInsertOrDiscard)
			Expect(err).NotTo(HaveOccurred())

			vs.AddOperation(selection.Operation{
				Function: selection.FunctionAdd,
				Rect:     layoutindex.Rect{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100},
			})

			result := vs.Calculate(c.Layout(), c.Index())
			Expect(result.HasLogicItem(id)).To(BeTrue())
		})

		It("caches the materialized selection until the next mutation", func() {
			ctx := context.Background()
			c := circuit.New()
			def := layout.LogicItemDefinition{
				Type:        layoutinfo.TypeAnd,
				InputCount:  2,
				OutputCount: 1,
				Orientation: vocabulary.OrientationRight,
			}
			_, err := c.AddLogicItem(ctx, def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
			Expect(err).NotTo(HaveOccurred())

			vs.AddOperation(selection.Operation{
				Function: selection.FunctionAdd,
				Rect:     layoutindex.Rect{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100},
			})

			first := vs.Calculate(c.Layout(), c.Index())
			second := vs.Calculate(c.Layout(), c.Index())
			Expect(second).To(BeIdenticalTo(first))
		})

		It("ApplyAllOperations collapses the materialized selection into Initial and is idempotent", func() {
			ctx := context.Background()
			c := circuit.New()
			def := layout.LogicItemDefinition{
				Type:        layoutinfo.TypeAnd,
				InputCount:  2,
				OutputCount: 1,
				Orientation: vocabulary.OrientationRight,
			}
			id, err := c.AddLogicItem(ctx, def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
			Expect(err).NotTo(HaveOccurred())

			vs.AddOperation(selection.Operation{
				Function: selection.FunctionAdd,
				Rect:     layoutindex.Rect{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100},
			})
			vs.ApplyAllOperations(c.Layout(), c.Index())
			Expect(vs.Operations).To(BeEmpty())
			Expect(vs.Initial.HasLogicItem(id)).To(BeTrue())

			vs.ApplyAllOperations(c.Layout(), c.Index())
			Expect(vs.Operations).To(BeEmpty())
			Expect(vs.Initial.HasLogicItem(id)).To(BeTrue())
		})
	})
})
