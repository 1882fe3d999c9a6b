/*
Package highlight derives classified highlighting tokens from a
resolved syntax tree and keeps an editor up to date with them
incrementally.

	Snapshot (pkg/ast)
	      |
	      v
	+-----------+   raw multiset   +-----------+
	| collector | ---------------> | normalize |
	+-----------+                  +-----------+
	                                     |
	                 canonical TokenSequence (sorted, unique,
	                 one kind per range)
	                                     |
	      previous snapshot -->  +-----------+
	                             | DiffLines |
	                             +-----------+
	                                     |
	                       changed lines only, encoded per
	                       line (EncodeLine) or mapped to
	                       theme scopes (TextMateScope)

The whole pipeline is synchronous and pure with respect to its inputs;
the only state carried between cycles is the previous token sequence,
which belongs to the caller.
*/
package highlight

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/semlight/pkg/ast"
)

// collector accumulates raw tokens over one downward walk. The
// accumulator lives and dies with a single CollectTokens call.
type collector struct {
	ctx    context.Context
	snap   *ast.Snapshot
	tokens []Token
}

// CollectTokens walks the snapshot's tree once and returns the raw
// token multiset, including one Macro token per recorded macro
// expansion range (those are not reachable through the tree). The
// result is unordered and may contain duplicates and conflicts; run it
// through Normalize before using it.
func CollectTokens(ctx context.Context, snap *ast.Snapshot) []Token {
	c := &collector{
		ctx:    ctx,
		snap:   snap,
		tokens: make([]Token, 0, 64),
	}
	if snap.Root != nil {
		c.visit(snap.Root)
	}
	for _, r := range snap.Macros {
		c.tokens = append(c.tokens, Token{Range: r, Kind: KindMacro})
	}
	return c.tokens
}

// GetTokens computes the canonical token sequence for one snapshot.
// This is the entry point for a full classification cycle.
func GetTokens(ctx context.Context, snap *ast.Snapshot) []Token {
	return Normalize(CollectTokens(ctx, snap))
}

// visit dispatches on the concrete node type, emits tokens for the
// occurrence categories that carry them, and recurses.
func (c *collector) visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.DeclNode:
		if n.Decl != nil && n.Decl.Name.CanHighlight() {
			c.addDeclToken(n.Decl.Loc, n.Decl)
		}
		// A deduced placeholder type is highlighted as what it
		// resolved to, not as a keyword.
		if n.DeducedType != nil && n.TypeSpecLoc.IsValid() {
			if k, ok := KindForType(n.DeducedType); ok {
				c.addToken(n.TypeSpecLoc, k)
			}
		}
	case *ast.RefNode:
		if n.Name.CanHighlight() {
			c.addDeclToken(n.Loc, n.Decl)
		}
	case *ast.OverloadNode:
		if n.Name.CanHighlight() {
			k, ok := KindForCandidates(n.Candidates)
			if !ok {
				k = KindDependentName
			}
			c.addToken(n.Loc, k)
		}
	case *ast.DependentRefNode:
		if n.Name.CanHighlight() {
			c.addToken(n.Loc, KindDependentName)
		}
	case *ast.UsingNode:
		// Unlike overload references, an ambiguous shadow set emits
		// nothing rather than DependentName.
		if k, ok := KindForCandidates(n.Shadows); ok {
			c.addToken(n.Loc, k)
		}
	case *ast.NamespaceAliasNode:
		// The aliased namespace is only reachable here; the alias
		// name itself arrives as a DeclNode.
		c.addDeclToken(n.TargetLoc, n.Aliased)
	case *ast.TypedefTypeNode:
		c.addDeclToken(n.Loc, n.Decl)
	case *ast.TemplateSpecTypeNode:
		if n.Template != nil {
			c.addDeclToken(n.Loc, n.Template)
		}
	case *ast.TagTypeNode:
		// Tag definitions are covered by their DeclNode; emitting
		// here too would duplicate the token.
		if !n.Definition {
			if k, ok := KindForType(n.Type); ok {
				c.addToken(n.Loc, k)
			}
		}
	case *ast.DecltypeTypeNode:
		if k, ok := KindForType(n.Type); ok {
			c.addToken(n.Loc, k)
		}
	case *ast.DependentTypeNode:
		c.addToken(n.Loc, KindDependentType)
	case *ast.TemplateParamTypeNode:
		c.addToken(n.Loc, KindTemplateParameter)
	case *ast.ScopeSpecifierNode:
		if n.Namespace {
			c.addToken(n.Loc, KindNamespace)
		}
	case *ast.CtorInitNode:
		if n.Member != nil {
			c.addDeclToken(n.Loc, n.Member)
		}
	}

	for _, kid := range n.Children() {
		c.visit(kid)
	}
}

func (c *collector) addDeclToken(loc ast.Loc, d *ast.Decl) {
	if k, ok := KindForDecl(d); ok {
		c.addToken(loc, k)
	}
}

// addToken records one token at loc. Locations inside macro expansions
// are only kept when they come from a macro invocation argument, and
// are then resolved to their spelling location; everything that does
// not land in the main file after that is dropped.
func (c *collector) addToken(loc ast.Loc, k Kind) {
	if !loc.IsValid() {
		return
	}
	sm := c.snap.Sources
	if sm.IsMacroLoc(loc) {
		if !sm.IsMacroArgExpansion(loc) {
			return
		}
		loc = sm.SpellingLoc(loc)
	}
	if !sm.InMainFile(loc) {
		return
	}
	r, err := sm.TokenRange(loc)
	if err != nil {
		// The range should always resolve here; losing one token is
		// not worth aborting the cycle over.
		zerolog.Ctx(c.ctx).Warn().
			Err(err).
			Str("kind", k.String()).
			Msg("dropping highlighting token with unresolvable range")
		return
	}
	c.tokens = append(c.tokens, Token{Range: r, Kind: k})
}
