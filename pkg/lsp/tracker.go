package lsp

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/semlight/pkg/ast"
	"github.com/walteh/semlight/pkg/highlight"
	"gitlab.com/tozd/go/errors"
)

// Publisher delivers a highlighting notification to the editor client.
// Implementations live in the transport layer.
type Publisher interface {
	PublishSemanticHighlighting(ctx context.Context, params *SemanticHighlightingParams) error
}

// Tracker holds the previous canonical token sequence per open document
// and turns each new snapshot into a minimal per-line update.
//
// Cycles for the same document must be serialized by the caller; the
// mutex here only guards the cross-document map, it does not make
// concurrent updates of one document meaningful.
type Tracker struct {
	mu        sync.Mutex
	docs      map[string][]highlight.Token
	publisher Publisher
}

// NewTracker creates a tracker that pushes updates through publisher.
// A nil publisher is allowed; updates are then computed but not sent.
func NewTracker(publisher Publisher) *Tracker {
	return &Tracker{
		docs:      make(map[string][]highlight.Token),
		publisher: publisher,
	}
}

// Update runs one classification cycle for uri over snap: collect,
// normalize, diff against the previous cycle, encode, publish. The new
// sequence replaces the previous one even when nothing changed. It
// returns the encoded changed lines, which are nil when the document's
// highlighting is already up to date (nothing is published then).
func (t *Tracker) Update(ctx context.Context, uri string, snap *ast.Snapshot) ([]SemanticHighlightingInformation, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("cycle_id", uuid.NewString()).
		Str("uri", uri).
		Logger()
	ctx = logger.WithContext(ctx)

	newTokens := highlight.GetTokens(ctx, snap)

	t.mu.Lock()
	oldTokens := t.docs[uri]
	t.docs[uri] = newTokens
	t.mu.Unlock()

	lines := ToSemanticHighlightingInformation(highlight.DiffLines(newTokens, oldTokens))
	logger.Debug().
		Int("tokens", len(newTokens)).
		Int("changed_lines", len(lines)).
		Msg("semantic highlighting cycle complete")

	if len(lines) == 0 {
		return nil, nil
	}
	if t.publisher != nil {
		params := &SemanticHighlightingParams{
			TextDocument: TextDocumentIdentifier{URI: uri},
			Lines:        lines,
		}
		if err := t.publisher.PublishSemanticHighlighting(ctx, params); err != nil {
			return lines, errors.Errorf("publishing semantic highlighting for %s: %w", uri, err)
		}
	}
	return lines, nil
}

// Forget drops the stored sequence for uri, typically when the
// document is closed. The next Update starts from a clean slate.
func (t *Tracker) Forget(uri string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.docs, uri)
}
