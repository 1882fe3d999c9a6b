package position

import "fmt"

// Position is a zero-based (line, character) point in the main source file.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Cmp orders positions by line, then character. It returns a negative
// number, zero, or a positive number as p sorts before, equal to, or
// after o.
func (p Position) Cmp(o Position) int {
	if p.Line != o.Line {
		return p.Line - o.Line
	}
	return p.Character - o.Character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Range is a half-open span [Start, End) of rendered source text.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NewRange builds a range from raw line/character coordinates.
func NewRange(startLine, startChar, endLine, endChar int) Range {
	return Range{
		Start: Position{Line: startLine, Character: startChar},
		End:   Position{Line: endLine, Character: endChar},
	}
}

// Valid reports whether Start does not come after End.
func (r Range) Valid() bool {
	return r.Start.Cmp(r.End) <= 0
}

// Cmp orders ranges lexicographically by (Start, End).
func (r Range) Cmp(o Range) int {
	if c := r.Start.Cmp(o.Start); c != 0 {
		return c
	}
	return r.End.Cmp(o.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
