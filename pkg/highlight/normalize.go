package highlight

import (
	"sort"
)

// Normalize turns a raw token multiset into the canonical sequence:
// sorted by (range, kind), exact duplicates removed, and every run of
// tokens sharing a range but disagreeing on kind dropped entirely.
// Disagreement means the classification is not reliable (macro bodies
// are the usual culprit), and no answer beats a wrong one.
//
// The result is deterministic for a given multiset regardless of the
// order the collector produced it in, and Normalize is idempotent.
func Normalize(raw []Token) []Token {
	tokens := make([]Token, len(raw))
	copy(tokens, raw)
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Cmp(tokens[j]) < 0
	})

	// Drop adjacent exact duplicates (initializer lists and template
	// instantiations revisit the same occurrence).
	deduped := tokens[:0]
	for _, t := range tokens {
		if len(deduped) == 0 || deduped[len(deduped)-1] != t {
			deduped = append(deduped, t)
		}
	}

	// Keep only ranges with exactly one surviving kind.
	out := make([]Token, 0, len(deduped))
	for i := 0; i < len(deduped); {
		j := i + 1
		for j < len(deduped) && deduped[j].Range == deduped[i].Range {
			j++
		}
		if j-i == 1 {
			out = append(out, deduped[i])
		}
		i = j
	}
	return out
}
