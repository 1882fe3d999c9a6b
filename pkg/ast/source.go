package ast

import (
	"github.com/walteh/semlight/pkg/position"
)

// Loc is an opaque handle to a location in the analyzed source, minted by
// the front end and resolved through a SourceManager. The zero value is
// the invalid location.
type Loc uint32

// InvalidLoc is the zero, unresolvable location.
const InvalidLoc Loc = 0

// IsValid reports whether the location can be resolved at all.
func (l Loc) IsValid() bool {
	return l != InvalidLoc
}

// SourceManager resolves opaque locations against the analyzed sources.
// Implementations belong to the front end; the highlighting engine only
// reads through this interface and never retains it past one cycle.
type SourceManager interface {
	// IsMacroLoc reports whether loc points into a macro expansion
	// rather than at text written directly in a file.
	IsMacroLoc(loc Loc) bool

	// IsMacroArgExpansion reports whether loc expands from text that
	// appears literally as an argument of a macro invocation.
	IsMacroArgExpansion(loc Loc) bool

	// SpellingLoc maps a macro location back to the location where its
	// text was actually spelled.
	SpellingLoc(loc Loc) Loc

	// InMainFile reports whether loc resolves into the main source file,
	// as opposed to an included file.
	InMainFile(loc Loc) bool

	// TokenRange returns the half-open range covering the single token
	// that starts at loc.
	TokenRange(loc Loc) (position.Range, error)
}
