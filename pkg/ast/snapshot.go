package ast

import (
	"github.com/walteh/semlight/pkg/position"
)

// Snapshot is one fully analyzed view of a document: the resolved tree,
// the recorded macro expansion ranges (which are not reachable through
// the tree), and the source manager that resolves locations. All three
// are owned by the caller and must stay immutable for the duration of
// one highlighting cycle.
type Snapshot struct {
	Root    Node
	Macros  []position.Range
	Sources SourceManager
}
