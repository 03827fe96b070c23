package layoutinfo

import "github.com/logiksim/circuitcore/vocabulary"

// InputConnectors returns the static input-connector layout for t at the
// given input count, in declaration order (connector index == slice
// index). Offsets are relative to the item's grid position, orientation
// assuming the item itself is at OrientationRight; callers rotate for
// other orientations.
func InputConnectors(t LogicItemType, inputCount vocabulary.ConnectionCount) []ConnectorInfo {
	info := table[t]
	n := int32(inputCount)
	out := make([]ConnectorInfo, 0, n)

	switch info.Direction {
	case PolicyUndirected:
		for i := int32(0); i < n; i++ {
			out = append(out, ConnectorInfo{
				Offset:      vocabulary.Grid{X: 0, Y: int16(i)},
				Orientation: vocabulary.OrientationUndirected,
			})
		}
	default:
		for i := int32(0); i < n; i++ {
			out = append(out, ConnectorInfo{
				Offset:      vocabulary.Grid{X: 0, Y: int16(i)},
				Orientation: vocabulary.OrientationLeft,
			})
		}
	}
	return out
}

// OutputConnectors returns the static output-connector layout for t at
// the given output count.
func OutputConnectors(t LogicItemType, outputCount vocabulary.ConnectionCount) []ConnectorInfo {
	info := table[t]
	n := int32(outputCount)
	width := info.Fixed.Width
	out := make([]ConnectorInfo, 0, n)

	switch info.Direction {
	case PolicyUndirected:
		// Undirected types with outputs (button, clock) place a single
		// output at the origin; n is always <= 1 for declared types.
		for i := int32(0); i < n; i++ {
			out = append(out, ConnectorInfo{
				Offset:      vocabulary.Grid{X: 0, Y: int16(i)},
				Orientation: vocabulary.OrientationUndirected,
			})
		}
	default:
		for i := int32(0); i < n; i++ {
			out = append(out, ConnectorInfo{
				Offset:      vocabulary.Grid{X: int16(width), Y: int16(i)},
				Orientation: vocabulary.OrientationRight,
			})
		}
	}
	return out
}

// BodyPoints returns the grid cells t's body occupies at the given
// input count, excluding any connector cells: every column of the
// footprint rectangle except x==0, which holds the input connectors
// (and, for undirected types, the output connectors too). Directed
// outputs sit at x==width, outside the footprint.
func BodyPoints(t LogicItemType, inputCount vocabulary.ConnectionCount) []vocabulary.Grid {
	info := table[t]
	width := info.Fixed.Width
	height := Height(t, inputCount)

	var points []vocabulary.Grid
	for x := int32(1); x < width; x++ {
		for y := int32(0); y < height; y++ {
			points = append(points, vocabulary.Grid{X: int16(x), Y: int16(y)})
		}
	}
	return points
}
