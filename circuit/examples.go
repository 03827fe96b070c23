package circuit

import (
	"context"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

// ExampleCircuit builds one of four canned circuits from scratch
// against a fresh CircuitData and returns it (spec section 6's
// load_circuit_example). Each example is built purely through the
// public editing API in a fixed, deterministic order, so every id and
// segment index it produces is byte-stable across runs: grounded on
// easyconf.CreateFourSideArray's from-scratch, deterministic
// construction style.
func ExampleCircuit(n int) *CircuitData {
	switch n {
	case 1:
		return exampleSingleGate()
	case 2:
		return exampleGateAndLED()
	case 3:
		return exampleCrossingWires()
	case 4:
		return exampleButtonClockChain()
	default:
		vocabulary.Fatal("ExampleCircuit", map[string]string{"n": itoaSmall(n)}, "no example circuit %d", n)
		return nil
	}
}

func itoaSmall(n int) string {
	digits := "0123456789"
	if n >= 0 && n < 10 {
		return string(digits[n])
	}
	return "?"
}

// exampleSingleGate places one 2-input AND gate, nothing else.
func exampleSingleGate() *CircuitData {
	ctx := context.Background()
	c := New()
	def := layout.LogicItemDefinition{
		Type:        layoutinfo.TypeAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocabulary.OrientationRight,
	}
	_, _ = c.AddLogicItem(ctx, def, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)
	c.BeginGroup()
	return c
}

// exampleGateAndLED places a 2-input AND gate and an LED, connected by
// a single wire segment from the gate's output to the LED's input.
func exampleGateAndLED() *CircuitData {
	ctx := context.Background()
	c := New()

	andDef := layout.LogicItemDefinition{
		Type:        layoutinfo.TypeAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocabulary.OrientationRight,
	}
	_, _ = c.AddLogicItem(ctx, andDef, vocabulary.Grid{X: 0, Y: 0}, layout.ModeInsertOrDiscard)

	ledDef := layout.LogicItemDefinition{
		Type:        layoutinfo.TypeLED,
		InputCount:  1,
		OutputCount: 0,
		Orientation: vocabulary.OrientationUndirected,
	}
	_, _ = c.AddLogicItem(ctx, ledDef, vocabulary.Grid{X: 6, Y: 0}, layout.ModeInsertOrDiscard)

	line := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 2, Y: 0}, P1: vocabulary.Grid{X: 6, Y: 0}}
	_, _ = c.AddWireSegment(ctx, line, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)

	c.BeginGroup()
	return c
}

// exampleCrossingWires places two wires that cross without connecting,
// exercising the StateWireCrossing classification sanitize.go relies on.
func exampleCrossingWires() *CircuitData {
	ctx := context.Background()
	c := New()

	horizontal := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 0, Y: 5}, P1: vocabulary.Grid{X: 10, Y: 5}}
	_, _ = c.AddWireSegment(ctx, horizontal, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	c.BeginGroup()

	vertical := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 5, Y: 0}, P1: vocabulary.Grid{X: 5, Y: 10}}
	_, _ = c.AddWireSegment(ctx, vertical, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	c.BeginGroup()

	return c
}

// exampleButtonClockChain places a button and a clock feeding two
// inputs of a 2-input AND gate driving an LED, the largest of the four
// canned examples.
func exampleButtonClockChain() *CircuitData {
	ctx := context.Background()
	c := New()

	buttonDef := layout.LogicItemDefinition{Type: layoutinfo.TypeButton, OutputCount: 1, Orientation: vocabulary.OrientationUndirected}
	_, _ = c.AddLogicItem(ctx, buttonDef, vocabulary.Grid{X: 0, Y: 1}, layout.ModeInsertOrDiscard)

	clockDef := layout.LogicItemDefinition{Type: layoutinfo.TypeClock, OutputCount: 1, Orientation: vocabulary.OrientationUndirected}
	_, _ = c.AddLogicItem(ctx, clockDef, vocabulary.Grid{X: 0, Y: 2}, layout.ModeInsertOrDiscard)

	andDef := layout.LogicItemDefinition{
		Type:        layoutinfo.TypeAnd,
		InputCount:  2,
		OutputCount: 1,
		Orientation: vocabulary.OrientationRight,
	}
	_, _ = c.AddLogicItem(ctx, andDef, vocabulary.Grid{X: 6, Y: 1}, layout.ModeInsertOrDiscard)

	ledDef := layout.LogicItemDefinition{Type: layoutinfo.TypeLED, InputCount: 1, Orientation: vocabulary.OrientationUndirected}
	_, _ = c.AddLogicItem(ctx, ledDef, vocabulary.Grid{X: 12, Y: 1}, layout.ModeInsertOrDiscard)

	top := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 0, Y: 1}, P1: vocabulary.Grid{X: 6, Y: 1}}
	_, _ = c.AddWireSegment(ctx, top, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	bottom := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 0, Y: 2}, P1: vocabulary.Grid{X: 6, Y: 2}}
	_, _ = c.AddWireSegment(ctx, bottom, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)
	out := vocabulary.OrderedLine{P0: vocabulary.Grid{X: 8, Y: 1}, P1: vocabulary.Grid{X: 12, Y: 1}}
	_, _ = c.AddWireSegment(ctx, out, vocabulary.PointShadowPoint, vocabulary.PointShadowPoint, layout.ModeInsertOrDiscard)

	c.BeginGroup()
	return c
}
