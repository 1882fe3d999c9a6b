package highlight

import (
	"github.com/walteh/semlight/pkg/ast"
)

// KindForDecl classifies a named declaration. The rules form an ordered
// list and the first match wins; declarations that match nothing are
// simply not highlighted (ok is false, never an error).
func KindForDecl(d *ast.Decl) (Kind, bool) {
	if d == nil {
		return 0, false
	}
	// A using-declaration shadow is classified as what it redirects to.
	if d.Class == ast.DeclUsingShadow && d.Target != nil {
		d = d.Target
	}
	// A template is classified as its templated declaration.
	if d.Class == ast.DeclTemplate && d.Target != nil {
		d = d.Target
	}
	switch d.Class {
	case ast.DeclTypedef:
		// Typedefs take the kind of their underlying type, with a
		// generic fallback when that yields nothing.
		if k, ok := KindForType(d.Underlying); ok {
			return k, true
		}
		return KindTypedef, true
	case ast.DeclRecord:
		// Records backing lambdas are not highlighted like classes.
		if d.Lambda {
			return 0, false
		}
		return KindClass, true
	case ast.DeclConstructor:
		return KindClass, true
	case ast.DeclMethod:
		if d.Static {
			return KindStaticMethod, true
		}
		return KindMethod, true
	case ast.DeclField:
		return KindField, true
	case ast.DeclEnum:
		return KindEnum, true
	case ast.DeclEnumConstant:
		return KindEnumConstant, true
	case ast.DeclParam:
		return KindParameter, true
	case ast.DeclVar:
		switch {
		case d.Static:
			return KindStaticField, true
		case d.Local:
			return KindLocalVariable, true
		default:
			return KindVariable, true
		}
	case ast.DeclBinding:
		return KindVariable, true
	case ast.DeclFunction:
		return KindFunction, true
	case ast.DeclNamespace, ast.DeclNamespaceAlias, ast.DeclUsingDirective:
		return KindNamespace, true
	case ast.DeclTemplateTypeParam, ast.DeclNonTypeTemplateParam, ast.DeclTemplateTemplateParam:
		return KindTemplateParameter, true
	}
	return 0, false
}

// KindForType classifies a resolved type. Builtins have no declaration
// and classify directly as Primitive; tag types and template type
// parameters delegate to their declaration.
func KindForType(t *ast.Type) (Kind, bool) {
	if t == nil {
		return 0, false
	}
	if t.Builtin {
		return KindPrimitive, true
	}
	if t.Decl != nil {
		return KindForDecl(t.Decl)
	}
	return 0, false
}

// KindForCandidates classifies a candidate declaration set. The result
// is defined only when every candidate classifies identically; an empty
// set, an unclassifiable candidate, or two disagreeing candidates all
// yield ok == false. Call sites decide whether that means
// DependentName or no token at all.
func KindForCandidates(decls []*ast.Decl) (Kind, bool) {
	var result Kind
	found := false
	for _, d := range decls {
		k, ok := KindForDecl(d)
		if !ok || (found && k != result) {
			return 0, false
		}
		result = k
		found = true
	}
	return result, found
}
