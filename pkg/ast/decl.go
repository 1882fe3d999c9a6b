package ast

// DeclClass distinguishes the categories of named declarations the
// highlighting engine knows how to classify. The set is closed: front
// ends must map every resolved declaration onto one of these or leave
// the occurrence out of the tree.
type DeclClass int

const (
	// DeclRecord is a class, struct or union declaration.
	DeclRecord DeclClass = iota

	// DeclConstructor is a constructor declaration.
	DeclConstructor

	// DeclMethod is a member function declaration.
	DeclMethod

	// DeclFunction is a free function declaration.
	DeclFunction

	// DeclField is a non-static data member.
	DeclField

	// DeclVar is a variable that is not a parameter or data member.
	DeclVar

	// DeclBinding is one name introduced by a destructuring binding.
	DeclBinding

	// DeclEnum is an enumeration declaration.
	DeclEnum

	// DeclEnumConstant is a single enumerator.
	DeclEnumConstant

	// DeclParam is a function or lambda parameter.
	DeclParam

	// DeclNamespace is a namespace declaration.
	DeclNamespace

	// DeclNamespaceAlias is a namespace alias declaration.
	DeclNamespaceAlias

	// DeclUsingDirective is a using-directive.
	DeclUsingDirective

	// DeclTypedef is a typedef or alias declaration.
	DeclTypedef

	// DeclTemplate is a template declaration; Target holds the
	// templated declaration when the front end resolved one.
	DeclTemplate

	// DeclTemplateTypeParam is a template type parameter.
	DeclTemplateTypeParam

	// DeclNonTypeTemplateParam is a non-type template parameter.
	DeclNonTypeTemplateParam

	// DeclTemplateTemplateParam is a template template parameter.
	DeclTemplateTemplateParam

	// DeclUsingShadow is the shadow introduced by a using-declaration;
	// Target holds the declaration it redirects to.
	DeclUsingShadow
)

// NameKind describes how a declaration name is written in source.
type NameKind int

const (
	// NameIdentifier is an ordinary identifier; Text carries its
	// spelling, empty for names the compiler synthesized.
	NameIdentifier NameKind = iota

	// NameConstructor is a constructor name, spelled as its class.
	NameConstructor

	// NameUsingDirective is the pseudo-name of a using-directive.
	NameUsingDirective

	// NameSpecial covers operators, conversion functions and other
	// names with no plain identifier spelling.
	NameSpecial
)

// Name is a declaration name as written (or not written) in source.
type Name struct {
	Kind NameKind
	Text string
}

// CanHighlight reports whether the name is spelled literally in source
// and can therefore carry a highlighting token. Constructor names and
// using-directives always qualify; everything else needs a non-empty
// identifier spelling.
func (n Name) CanHighlight() bool {
	switch n.Kind {
	case NameConstructor, NameUsingDirective:
		return true
	case NameIdentifier:
		return n.Text != ""
	default:
		return false
	}
}

// Decl is one resolved named declaration. Decls are shared between their
// declaration site and every reference that resolved to them, and are
// read-only for the duration of a highlighting cycle.
type Decl struct {
	Class DeclClass
	Name  Name

	// Loc is the location of the declared name at the declaration site.
	Loc Loc

	// Static is set for static member functions and static data members.
	Static bool

	// Local is set for variables declared at function scope.
	Local bool

	// Lambda is set for record declarations that back a lambda
	// expression rather than a class written by the user.
	Lambda bool

	// Underlying is the aliased type of a typedef or alias declaration.
	Underlying *Type

	// Target is the declaration this one redirects to: the shadowed
	// target of a using-declaration, the templated declaration of a
	// template, or the namespace named by a namespace alias.
	Target *Decl
}

// Type is a resolved type reference. Builtin types carry no declaration;
// tag types and template type parameters point at theirs.
type Type struct {
	Builtin bool
	Decl    *Decl
}
