// Package vocabulary holds the strong value types shared by every other
// package in this module: grid coordinates, ids, parts, time, color, and
// the error kinds editing operations report.
package vocabulary

import "fmt"

// Kind classifies the error returned by an editing operation. Every
// failure mode an editing operation can report (spec section 7) maps to
// exactly one Kind.
type Kind int

const (
	// InvalidDefinition means a logic-item or decoration definition
	// violates its type's constraints (bad counts, incompatible
	// orientation, unrepresentable bounds).
	InvalidDefinition Kind = iota
	// InvalidID means an id does not refer to a live element.
	InvalidID
	// InvalidState means the operation requires a display state the
	// element is not currently in (e.g. moving a non-temporary item).
	InvalidState
	// Collision means insert_or_discard was requested while the
	// candidate element is colliding.
	Collision
	// RangeError means an offset, part, or line argument is out of
	// bounds or malformed (begin >= end, non-axis-aligned, zero length).
	RangeError
	// OverflowError means checked arithmetic on a grid/count/index/time
	// value would overflow its representation.
	OverflowError
)

func (k Kind) String() string {
	switch k {
	case InvalidDefinition:
		return "InvalidDefinition"
	case InvalidID:
		return "InvalidID"
	case InvalidState:
		return "InvalidState"
	case Collision:
		return "Collision"
	case RangeError:
		return "RangeError"
	case OverflowError:
		return "OverflowError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type every core operation returns. It never
// wraps control-flow exceptions; recoverable conditions are always
// reported as a value (spec section 7).
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Is lets callers use errors.Is(err, vocabulary.Collision) style checks
// against a sentinel built with New(kind, "", "").
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an Error for the given op ("AddWireSegment", ...) and kind.
func New(op string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Sentinel returns a bare Error of the given kind, suitable for
// errors.Is comparisons in tests and callers.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
