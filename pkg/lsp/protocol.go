/*
Package lsp is the push surface between the highlighting engine and an
editor protocol transport.

	pkg/highlight                pkg/lsp                    transport
	     |                          |                       (caller's)
	     v                          v                           |
	GetTokens ----> Tracker.Update ----> Publisher.Publish... --+
	                (owns previous          (interface)
	                 token sequence)

The transport itself (message framing, jsonrpc, buffer management) is
deliberately not here; callers hand in a Publisher and serialize cycles
per document themselves.
*/
package lsp

import (
	"github.com/walteh/semlight/pkg/highlight"
)

// TextDocumentIdentifier names the document a notification is about.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// SemanticHighlightingInformation is one changed line: its number and
// the base64 wire encoding of its token group. Tokens is deliberately
// not omitempty — an explicit empty string clears the line, while an
// absent line means "unchanged".
type SemanticHighlightingInformation struct {
	Line   int    `json:"line"`
	Tokens string `json:"tokens"`
}

// SemanticHighlightingParams is the payload of one incremental
// highlighting notification.
type SemanticHighlightingParams struct {
	TextDocument TextDocumentIdentifier            `json:"textDocument"`
	Lines        []SemanticHighlightingInformation `json:"lines"`
}

// ToSemanticHighlightingInformation encodes diffed lines into their
// notification form, in line order.
func ToSemanticHighlightingInformation(lines []highlight.LineTokens) []SemanticHighlightingInformation {
	if len(lines) == 0 {
		return nil
	}
	out := make([]SemanticHighlightingInformation, 0, len(lines))
	for _, line := range lines {
		out = append(out, SemanticHighlightingInformation{
			Line:   line.Line,
			Tokens: highlight.EncodeLine(line.Tokens),
		})
	}
	return out
}
