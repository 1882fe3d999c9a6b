// Package diff renders readable struct diffs for test failure output.
package diff

import (
	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
)

// ExportedOnly pretty-prints both values (exported fields only, no
// color) and returns a line diff from actual to expected, or the empty
// string when they match.
func ExportedOnly[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)
	d := diff.Diff(printer.Sprint(got), printer.Sprint(want))
	if d == "" {
		return ""
	}
	return "\n\nactual -> expected (-actual / +expected):\n\n" + d
}
