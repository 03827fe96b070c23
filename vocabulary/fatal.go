package vocabulary

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kr/text"
)

// Fatal reports a broken internal invariant: a sub-index inconsistency,
// a failed message-validator replay, or a popped history entry of the
// wrong kind. These are programming errors, never caught, and must not
// be silently swallowed (spec section 7): the process aborts with a
// descriptive message.
func Fatal(where string, details map[string]string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"field", "value"})
	t.AppendRow(table.Row{"where", where})
	for k, v := range details {
		t.AppendRow(table.Row{k, v})
	}

	var b strings.Builder
	b.WriteString("FATAL invariant violation: ")
	b.WriteString(msg)
	b.WriteString("\n")
	b.WriteString(text.Indent(t.Render(), "    "))

	panic(b.String())
}
