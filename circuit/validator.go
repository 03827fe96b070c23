package circuit

import (
	"reflect"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutindex"
	"github.com/logiksim/circuitcore/message"
	"github.com/logiksim/circuitcore/vocabulary"
)

// Validator is the shadow-replay consistency check spec section 4.8
// describes: it keeps the full message log, and on every new message
// rebuilds a LayoutIndex from scratch by replaying the entire log
// against the live Layout, then structurally diffs that shadow index
// against the one Editor maintains incrementally. A divergence means
// one of the incremental Apply paths in package layoutindex drifted
// from a from-scratch rebuild, which is always a programming error,
// never a recoverable condition, so it goes through vocabulary.Fatal
// rather than an error return. Grounded on verify.VerificationReport's
// diagnostic-report style (verify/report.go).
type Validator struct {
	l    *layout.Layout
	live *layoutindex.LayoutIndex
	log  []message.InfoMessage

	logger logr.Logger
}

func newValidator(l *layout.Layout, live *layoutindex.LayoutIndex, logger logr.Logger) *Validator {
	return &Validator{l: l, live: live, logger: logger}
}

// allowAllUnexported permits cmp.Diff to compare every type's
// unexported fields: LayoutIndex's sub-indices hold unexported maps
// and slices (the R*-tree's nodes, the collision map) with no public
// accessor granular enough for a field-by-field diagnostic diff.
var allowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

func (v *Validator) observe(msg message.InfoMessage) {
	v.log = append(v.log, msg)

	shadow := layoutindex.New()
	for _, m := range v.log {
		shadow.Apply(m, v.l)
	}

	diff := cmp.Diff(shadow, v.live, allowAllUnexported)
	if diff == "" {
		return
	}

	v.logger.Error(nil, "layout index diverged from shadow replay", "diff", diff)
	vocabulary.Fatal("Validator.observe",
		map[string]string{"message_count": strconv.Itoa(len(v.log)), "last_kind": msg.Kind.String()},
		"shadow-replayed LayoutIndex diverged from the live one:\n%s", diff)
}
