package highlight

import (
	"fmt"

	"github.com/walteh/semlight/pkg/position"
)

// Token is one classified occurrence: a source range paired with
// exactly one kind. Tokens are plain values; equality and ordering are
// lexicographic on (range, kind).
type Token struct {
	Range position.Range
	Kind  Kind
}

// Cmp orders tokens by range, then kind.
func (t Token) Cmp(o Token) int {
	if c := t.Range.Cmp(o.Range); c != 0 {
		return c
	}
	return int(t.Kind) - int(o.Kind)
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Range, t.Kind)
}

// LineTokens is the token group of a single line: every token whose
// range starts on Line, in canonical order. The differ emits one of
// these per changed line; an empty Tokens group means the line was
// cleared.
type LineTokens struct {
	Line   int
	Tokens []Token
}

// tokensEqual reports structural equality of two token groups.
func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
