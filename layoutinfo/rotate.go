package layoutinfo

import "github.com/logiksim/circuitcore/vocabulary"

// quarterTurns returns how many 90-degree clockwise turns separate the
// baseline orientation (right) from o, for the four directed
// orientations. Undirected items never rotate.
func quarterTurns(o vocabulary.Orientation) int {
	switch o {
	case vocabulary.OrientationRight:
		return 0
	case vocabulary.OrientationDown:
		return 1
	case vocabulary.OrientationLeft:
		return 2
	case vocabulary.OrientationUp:
		return 3
	default:
		return 0
	}
}

// rotatePoint rotates (x, y), a cell within a W x H box anchored at the
// origin, clockwise by turns quarter turns, keeping the rotated result
// anchored at the origin too (each turn remaps [0,W)x[0,H) to
// [0,H)x[0,W)).
func rotatePoint(x, y, w, h int32, turns int) (int32, int32) {
	for i := 0; i < turns; i++ {
		x, y, w, h = h-1-y, x, h, w
	}
	return x, y
}

func rotateOrientation(o vocabulary.Orientation, turns int) vocabulary.Orientation {
	if o == vocabulary.OrientationUndirected {
		return o
	}
	order := [4]vocabulary.Orientation{
		vocabulary.OrientationRight, vocabulary.OrientationDown,
		vocabulary.OrientationLeft, vocabulary.OrientationUp,
	}
	idx := 0
	for i, v := range order {
		if v == o {
			idx = i
		}
	}
	return order[(idx+turns)%4]
}

// BoundingSize returns the width/height of t's bounding rectangle at
// the given input count and facing orientation; width and height swap
// for the Up/Down orientations since the baseline table is declared for
// Right.
func BoundingSize(t LogicItemType, inputCount vocabulary.ConnectionCount, o vocabulary.Orientation) (width, height int32) {
	w := Width(t)
	h := Height(t, inputCount)
	if quarterTurns(o)%2 == 1 {
		return h, w
	}
	return w, h
}

// OrientedInputConnectors returns InputConnectors rotated to face o.
func OrientedInputConnectors(t LogicItemType, inputCount vocabulary.ConnectionCount, o vocabulary.Orientation) []ConnectorInfo {
	return rotateConnectors(InputConnectors(t, inputCount), Width(t), Height(t, inputCount), o)
}

// OrientedOutputConnectors returns OutputConnectors rotated to face o.
func OrientedOutputConnectors(t LogicItemType, inputCount, outputCount vocabulary.ConnectionCount, o vocabulary.Orientation) []ConnectorInfo {
	return rotateConnectors(OutputConnectors(t, outputCount), Width(t), Height(t, inputCount), o)
}

func rotateConnectors(in []ConnectorInfo, w, h int32, o vocabulary.Orientation) []ConnectorInfo {
	turns := quarterTurns(o)
	if turns == 0 {
		return in
	}
	out := make([]ConnectorInfo, len(in))
	for i, c := range in {
		x, y := rotatePoint(int32(c.Offset.X), int32(c.Offset.Y), w, h, turns)
		out[i] = ConnectorInfo{
			Offset:      vocabulary.Grid{X: int16(x), Y: int16(y)},
			Orientation: rotateOrientation(c.Orientation, turns),
		}
	}
	return out
}

// OrientedBodyPoints returns BodyPoints rotated to face o.
func OrientedBodyPoints(t LogicItemType, inputCount vocabulary.ConnectionCount, o vocabulary.Orientation) []vocabulary.Grid {
	base := BodyPoints(t, inputCount)
	turns := quarterTurns(o)
	if turns == 0 {
		return base
	}
	w, h := Width(t), Height(t, inputCount)
	out := make([]vocabulary.Grid, len(base))
	for i, p := range base {
		x, y := rotatePoint(int32(p.X), int32(p.Y), w, h, turns)
		out[i] = vocabulary.Grid{X: int16(x), Y: int16(y)}
	}
	return out
}
