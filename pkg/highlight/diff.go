package highlight

import (
	"math"
)

// DiffLines compares the current token sequence against the previous
// one and returns the lines whose token group changed, each paired
// with the line's new group. Lines absent from the result are
// unchanged; a LineTokens with an empty group means the line no longer
// has tokens and must be cleared. Both inputs must already be
// canonical (see Normalize) — that is the caller's contract, not
// something this function validates.
//
// Known limitation, kept on purpose: when a token spans multiple
// lines, a later line that begins inside it is grouped under the
// token's starting line. If the multi-line token changes, the
// unchanged single-line tokens that follow it on its last line can be
// suppressed along with it. Fixing this would require splitting
// multi-line tokens per line, which needs the file buffer, and
// consumers compensate for today's behavior already.
func DiffLines(newTokens, oldTokens []Token) []LineTokens {
	takeLine := func(tokens []Token, start, line int) int {
		end := start
		for end < len(tokens) && tokens[end].Range.Start.Line == line {
			end++
		}
		return end
	}

	var diffed []LineTokens
	ni, oi := 0, 0
	for line := 0; ni < len(newTokens) || oi < len(oldTokens); {
		nEnd := takeLine(newTokens, ni, line)
		oEnd := takeLine(oldTokens, oi, line)
		if !tokensEqual(newTokens[ni:nEnd], oldTokens[oi:oEnd]) {
			diffed = append(diffed, LineTokens{
				Line:   line,
				Tokens: newTokens[ni:nEnd:nEnd],
			})
		}
		ni, oi = nEnd, oEnd

		next := math.MaxInt
		if ni < len(newTokens) {
			next = newTokens[ni].Range.Start.Line
		}
		if oi < len(oldTokens) && oldTokens[oi].Range.Start.Line < next {
			next = oldTokens[oi].Range.Start.Line
		}
		line = next
	}
	return diffed
}
