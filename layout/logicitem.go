package layout

import "github.com/logiksim/circuitcore/vocabulary"

// LogicItem is one placed (or in-progress) logic item: its definition,
// position, and lifecycle display state.
type LogicItem struct {
	Definition   LogicItemDefinition
	Position     vocabulary.Grid
	DisplayState DisplayState
}

// LogicItemCount returns the number of logic items currently stored,
// including temporary/colliding ones.
func (l *Layout) LogicItemCount() int { return len(l.logicItems) }

// LogicItem returns the logic item stored at id. Callers must check
// IsLogicItemValid first; this panics on an out-of-range id since every
// caller inside this module always validates first and an out-of-range
// access here is a programming error, not a recoverable condition.
func (l *Layout) LogicItem(id vocabulary.LogicItemID) LogicItem {
	return l.logicItems[id]
}

// IsLogicItemValid reports whether id refers to a live logic item.
func (l *Layout) IsLogicItemValid(id vocabulary.LogicItemID) bool {
	return id >= 0 && int(id) < len(l.logicItems)
}

// LogicItemIDs returns every live logic item id in storage order.
func (l *Layout) LogicItemIDs() []vocabulary.LogicItemID {
	ids := make([]vocabulary.LogicItemID, len(l.logicItems))
	for i := range l.logicItems {
		ids[i] = vocabulary.LogicItemID(i)
	}
	return ids
}

// SetLogicItemPosition overwrites id's position.
func (l *Layout) SetLogicItemPosition(id vocabulary.LogicItemID, pos vocabulary.Grid) {
	l.logicItems[id].Position = pos
}

// SetLogicItemOrientation overwrites id's orientation.
func (l *Layout) SetLogicItemOrientation(id vocabulary.LogicItemID, o vocabulary.Orientation) {
	l.logicItems[id].Definition.Orientation = o
}

// SetLogicItemDisplayState overwrites id's display state.
func (l *Layout) SetLogicItemDisplayState(id vocabulary.LogicItemID, s DisplayState) {
	l.logicItems[id].DisplayState = s
}

// SetLogicItemAttribute overwrites one attribute key on id.
func (l *Layout) SetLogicItemAttribute(id vocabulary.LogicItemID, key, value string) {
	item := &l.logicItems[id]
	if item.Definition.Attributes == nil {
		item.Definition.Attributes = map[string]string{}
	}
	item.Definition.Attributes[key] = value
}

// addLogicItemRaw appends item and returns its new id. It performs no
// validation; callers in package editing validate first.
func (l *Layout) addLogicItemRaw(item LogicItem) vocabulary.LogicItemID {
	l.logicItems = append(l.logicItems, item)
	return vocabulary.LogicItemID(len(l.logicItems) - 1)
}

// deleteLogicItemRaw removes id by swap-remove, mirroring
// segmenttree.Tree.DeleteSegment. It reports whether another item moved
// into id's slot and, if so, its old id (movedFrom) so the caller can
// announce InsertedLogicItemIdUpdated.
func (l *Layout) deleteLogicItemRaw(id vocabulary.LogicItemID) (movedFrom vocabulary.LogicItemID, moved bool) {
	last := vocabulary.LogicItemID(len(l.logicItems) - 1)
	if id == last {
		l.logicItems = l.logicItems[:last]
		return 0, false
	}
	l.logicItems[id] = l.logicItems[last]
	l.logicItems = l.logicItems[:last]
	return last, true
}
