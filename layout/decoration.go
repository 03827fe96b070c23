package layout

import "github.com/logiksim/circuitcore/vocabulary"

// Decoration is one placed (or in-progress) decoration.
type Decoration struct {
	Definition   DecorationDefinition
	Position     vocabulary.Grid
	DisplayState DisplayState
}

// DecorationCount returns the number of decorations currently stored.
func (l *Layout) DecorationCount() int { return len(l.decorations) }

// Decoration returns the decoration stored at id.
func (l *Layout) Decoration(id vocabulary.DecorationID) Decoration {
	return l.decorations[id]
}

// IsDecorationValid reports whether id refers to a live decoration.
func (l *Layout) IsDecorationValid(id vocabulary.DecorationID) bool {
	return id >= 0 && int(id) < len(l.decorations)
}

// DecorationIDs returns every live decoration id in storage order.
func (l *Layout) DecorationIDs() []vocabulary.DecorationID {
	ids := make([]vocabulary.DecorationID, len(l.decorations))
	for i := range l.decorations {
		ids[i] = vocabulary.DecorationID(i)
	}
	return ids
}

// SetDecorationPosition overwrites id's position.
func (l *Layout) SetDecorationPosition(id vocabulary.DecorationID, pos vocabulary.Grid) {
	l.decorations[id].Position = pos
}

// SetDecorationDisplayState overwrites id's display state.
func (l *Layout) SetDecorationDisplayState(id vocabulary.DecorationID, s DisplayState) {
	l.decorations[id].DisplayState = s
}

func (l *Layout) addDecorationRaw(d Decoration) vocabulary.DecorationID {
	l.decorations = append(l.decorations, d)
	return vocabulary.DecorationID(len(l.decorations) - 1)
}

func (l *Layout) deleteDecorationRaw(id vocabulary.DecorationID) (movedFrom vocabulary.DecorationID, moved bool) {
	last := vocabulary.DecorationID(len(l.decorations) - 1)
	if id == last {
		l.decorations = l.decorations[:last]
		return 0, false
	}
	l.decorations[id] = l.decorations[last]
	l.decorations = l.decorations[:last]
	return last, true
}
