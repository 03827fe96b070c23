package history

import "github.com/logiksim/circuitcore/layout"

// This file names the seven coalescing rules spec section 4.7 lists,
// each enforced at the matching PushXxx call site in stack.go:
//
//  1. create, then delete of the same key: cancel both.
//  2. delete, then create of the same key: cancel both.
//  3. mode-change X->Y, then the inverse Y->X of the same key: cancel both.
//  4. mode-change chaining through StateColliding: collapse the
//     intermediate step, keeping only the endpoint transition.
//  5. repeated change_attributes on the same key/attribute: suppress,
//     keeping the original From and the latest To.
//  6. add_operation immediately preceded by pop_last (with only
//     update_last entries between them): cancel the pop_last and every
//     intervening update_last.
//  7. repeated update_last in the same group: suppress, keeping the
//     original Before and the latest After.
//
// collapsesModeChange reports whether chaining prev (from,to) with a
// new transition to `next` passes entirely through StateColliding, the
// case rule 4 collapses away.
func collapsesModeChange(prevTo, next layout.DisplayState) bool {
	return prevTo == layout.StateColliding
}
