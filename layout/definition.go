package layout

import (
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

// LogicItemDefinition fully describes a logic item before it is placed:
// its type, declared input/output counts, orientation, and optional
// type-specific attributes (e.g. clock period, display digit count).
type LogicItemDefinition struct {
	Type        layoutinfo.LogicItemType
	InputCount  vocabulary.ConnectionCount
	OutputCount vocabulary.ConnectionCount
	Orientation vocabulary.Orientation
	Attributes  map[string]string
}

// IsWellFormed reports whether def is well-formed at position: valid
// input/output counts, a compatible orientation, and a representable
// bounding rectangle (spec section 4.1). On failure it returns an
// InvalidDefinition error describing which check failed.
func (def LogicItemDefinition) IsWellFormed(position vocabulary.Grid) error {
	if !layoutinfo.IsInputOutputCountValid(def.Type, def.InputCount, def.OutputCount) {
		return vocabulary.New("LogicItemDefinition.IsWellFormed", vocabulary.InvalidDefinition,
			"input/output count %d/%d invalid for %s", def.InputCount, def.OutputCount, def.Type)
	}
	if !layoutinfo.IsOrientationValid(def.Type, def.Orientation) {
		return vocabulary.New("LogicItemDefinition.IsWellFormed", vocabulary.InvalidDefinition,
			"orientation %s invalid for %s", def.Orientation, def.Type)
	}

	width, height := layoutinfo.BoundingSize(def.Type, def.InputCount, def.Orientation)
	if !vocabulary.IsRepresentable(position, width, height) {
		return vocabulary.New("LogicItemDefinition.IsWellFormed", vocabulary.InvalidDefinition,
			"bounding rect at %v is not representable in grid_t", position)
	}
	return nil
}

// DecorationDefinition fully describes a decoration before placement.
type DecorationDefinition struct {
	Type   layoutinfo.DecorationType
	Width  int32
	Height int32
}

// IsWellFormed reports whether def is well-formed at position: declared
// size at least the type's minimum, and a representable bounding
// rectangle.
func (def DecorationDefinition) IsWellFormed(position vocabulary.Grid) error {
	info := layoutinfo.LookupDecoration(def.Type)
	if def.Width < info.MinWidth || def.Height < info.MinHeight {
		return vocabulary.New("DecorationDefinition.IsWellFormed", vocabulary.InvalidDefinition,
			"size %dx%d below minimum %dx%d for %s", def.Width, def.Height, info.MinWidth, info.MinHeight, def.Type)
	}
	if !vocabulary.IsRepresentable(position, def.Width, def.Height) {
		return vocabulary.New("DecorationDefinition.IsWellFormed", vocabulary.InvalidDefinition,
			"bounding rect at %v is not representable in grid_t", position)
	}
	return nil
}
