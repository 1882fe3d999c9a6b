/*
Package ast models the fully resolved syntax tree the highlighting
engine consumes. It is the read-only surface between the compiler front
end (out of scope here) and pkg/highlight.

	Front End                     Highlighting Engine
	    |                                 |
	    v                                 v
	+-----------+      Snapshot     +------------+
	| parse +   | ----------------> | collector  |
	| resolve   |   (Root, Macros,  | classifier |
	+-----------+    SourceManager) +------------+

The node set is closed on purpose: only the occurrence categories the
engine classifies exist, and every node exposes its children for one
generic downward walk.
*/
package ast

// Node is one syntactic occurrence in the resolved tree. The concrete
// node set is closed; consumers dispatch on the concrete type and
// recurse through Children.
type Node interface {
	Children() []Node
}

// branch carries child nodes and implements the recursion half of Node.
type branch struct {
	Kids []Node
}

func (b *branch) Children() []Node {
	return b.Kids
}

// FileNode is the root container of a snapshot's tree.
type FileNode struct {
	branch
}

// DeclNode is the occurrence of a named declaration at its declaration
// site. When the declarator was spelled with a deduced placeholder type
// ("auto"), TypeSpecLoc points at the placeholder and DeducedType holds
// what it resolved to.
type DeclNode struct {
	branch
	Decl        *Decl
	TypeSpecLoc Loc
	DeducedType *Type
}

// RefNode is a reference that resolved to exactly one declaration,
// covering both plain references and member accesses.
type RefNode struct {
	branch
	Name Name
	Loc  Loc
	Decl *Decl
}

// OverloadNode is a reference whose resolution produced a candidate set
// rather than a single declaration.
type OverloadNode struct {
	branch
	Name       Name
	Loc        Loc
	Candidates []*Decl
}

// DependentRefNode is a reference whose meaning depends on template
// instantiation: a dependent-scope reference or a dependent member
// access.
type DependentRefNode struct {
	branch
	Name Name
	Loc  Loc
}

// UsingNode is a using-declaration together with the shadow declarations
// it introduces.
type UsingNode struct {
	branch
	Loc     Loc
	Shadows []*Decl
}

// NamespaceAliasNode records the target side of a namespace alias: the
// location where the aliased namespace is named. The alias name itself
// is a regular DeclNode.
type NamespaceAliasNode struct {
	branch
	TargetLoc Loc
	Aliased   *Decl
}

// TypedefTypeNode is a use of a typedef or alias as a type.
type TypedefTypeNode struct {
	branch
	Loc  Loc
	Decl *Decl
}

// TemplateSpecTypeNode is a use of a template specialization as a type.
// Template may be nil when the template name did not resolve to a
// declaration.
type TemplateSpecTypeNode struct {
	branch
	Loc      Loc
	Template *Decl
}

// TagTypeNode is a use of a record or enum as a type. Definition marks
// tag definitions, whose names are covered by their DeclNode instead.
type TagTypeNode struct {
	branch
	Loc        Loc
	Type       *Type
	Definition bool
}

// DecltypeTypeNode is a decltype specifier with its resolved type.
type DecltypeTypeNode struct {
	branch
	Loc  Loc
	Type *Type
}

// DependentTypeNode is a dependent name used as a type.
type DependentTypeNode struct {
	branch
	Loc Loc
}

// TemplateParamTypeNode is a use of a template type parameter.
type TemplateParamTypeNode struct {
	branch
	Loc Loc
}

// ScopeSpecifierNode is one segment of a nested-name-specifier.
// Namespace is set when the segment denotes a namespace or a namespace
// alias; other segments (types, decltype) are covered by their own
// type nodes.
type ScopeSpecifierNode struct {
	branch
	Loc       Loc
	Namespace bool
}

// CtorInitNode is one constructor initializer. Member is nil for base
// class initializers, which carry no highlightable name of their own.
type CtorInitNode struct {
	branch
	Loc    Loc
	Member *Decl
}
