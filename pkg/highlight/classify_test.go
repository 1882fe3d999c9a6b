package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/semlight/pkg/ast"
	"github.com/walteh/semlight/pkg/highlight"
)

func TestKindForDecl(t *testing.T) {
	intType := &ast.Type{Builtin: true}
	fooClass := &ast.Decl{
		Class: ast.DeclRecord,
		Name:  ast.Name{Kind: ast.NameIdentifier, Text: "Foo"},
	}

	tests := []struct {
		name     string
		decl     *ast.Decl
		wantKind highlight.Kind
		wantOK   bool
	}{
		{
			name:   "nil decl yields nothing",
			decl:   nil,
			wantOK: false,
		},
		{
			name:     "record is a class",
			decl:     fooClass,
			wantKind: highlight.KindClass,
			wantOK:   true,
		},
		{
			name:   "lambda record is excluded",
			decl:   &ast.Decl{Class: ast.DeclRecord, Lambda: true},
			wantOK: false,
		},
		{
			name:     "constructor is a class",
			decl:     &ast.Decl{Class: ast.DeclConstructor},
			wantKind: highlight.KindClass,
			wantOK:   true,
		},
		{
			name:     "method",
			decl:     &ast.Decl{Class: ast.DeclMethod},
			wantKind: highlight.KindMethod,
			wantOK:   true,
		},
		{
			name:     "static method",
			decl:     &ast.Decl{Class: ast.DeclMethod, Static: true},
			wantKind: highlight.KindStaticMethod,
			wantOK:   true,
		},
		{
			name:     "free function",
			decl:     &ast.Decl{Class: ast.DeclFunction},
			wantKind: highlight.KindFunction,
			wantOK:   true,
		},
		{
			name:     "field",
			decl:     &ast.Decl{Class: ast.DeclField},
			wantKind: highlight.KindField,
			wantOK:   true,
		},
		{
			name:     "static data member",
			decl:     &ast.Decl{Class: ast.DeclVar, Static: true},
			wantKind: highlight.KindStaticField,
			wantOK:   true,
		},
		{
			name:     "local variable",
			decl:     &ast.Decl{Class: ast.DeclVar, Local: true},
			wantKind: highlight.KindLocalVariable,
			wantOK:   true,
		},
		{
			name:     "namespace scope variable",
			decl:     &ast.Decl{Class: ast.DeclVar},
			wantKind: highlight.KindVariable,
			wantOK:   true,
		},
		{
			name:     "destructured binding",
			decl:     &ast.Decl{Class: ast.DeclBinding},
			wantKind: highlight.KindVariable,
			wantOK:   true,
		},
		{
			name:     "enum",
			decl:     &ast.Decl{Class: ast.DeclEnum},
			wantKind: highlight.KindEnum,
			wantOK:   true,
		},
		{
			name:     "enumerator",
			decl:     &ast.Decl{Class: ast.DeclEnumConstant},
			wantKind: highlight.KindEnumConstant,
			wantOK:   true,
		},
		{
			name:     "parameter",
			decl:     &ast.Decl{Class: ast.DeclParam},
			wantKind: highlight.KindParameter,
			wantOK:   true,
		},
		{
			name:     "namespace",
			decl:     &ast.Decl{Class: ast.DeclNamespace},
			wantKind: highlight.KindNamespace,
			wantOK:   true,
		},
		{
			name:     "namespace alias",
			decl:     &ast.Decl{Class: ast.DeclNamespaceAlias},
			wantKind: highlight.KindNamespace,
			wantOK:   true,
		},
		{
			name:     "using directive",
			decl:     &ast.Decl{Class: ast.DeclUsingDirective},
			wantKind: highlight.KindNamespace,
			wantOK:   true,
		},
		{
			name:     "template type parameter",
			decl:     &ast.Decl{Class: ast.DeclTemplateTypeParam},
			wantKind: highlight.KindTemplateParameter,
			wantOK:   true,
		},
		{
			name:     "non-type template parameter",
			decl:     &ast.Decl{Class: ast.DeclNonTypeTemplateParam},
			wantKind: highlight.KindTemplateParameter,
			wantOK:   true,
		},
		{
			name:     "template template parameter",
			decl:     &ast.Decl{Class: ast.DeclTemplateTemplateParam},
			wantKind: highlight.KindTemplateParameter,
			wantOK:   true,
		},
		{
			name:     "using shadow redirects to its target",
			decl:     &ast.Decl{Class: ast.DeclUsingShadow, Target: &ast.Decl{Class: ast.DeclFunction}},
			wantKind: highlight.KindFunction,
			wantOK:   true,
		},
		{
			name:   "using shadow without target yields nothing",
			decl:   &ast.Decl{Class: ast.DeclUsingShadow},
			wantOK: false,
		},
		{
			name:     "template redirects to its templated decl",
			decl:     &ast.Decl{Class: ast.DeclTemplate, Target: fooClass},
			wantKind: highlight.KindClass,
			wantOK:   true,
		},
		{
			name:   "template without templated decl yields nothing",
			decl:   &ast.Decl{Class: ast.DeclTemplate},
			wantOK: false,
		},
		{
			name:     "typedef of a builtin takes the underlying kind",
			decl:     &ast.Decl{Class: ast.DeclTypedef, Underlying: intType},
			wantKind: highlight.KindPrimitive,
			wantOK:   true,
		},
		{
			name:     "typedef of a record takes the underlying kind",
			decl:     &ast.Decl{Class: ast.DeclTypedef, Underlying: &ast.Type{Decl: fooClass}},
			wantKind: highlight.KindClass,
			wantOK:   true,
		},
		{
			name:     "typedef with unresolvable underlying falls back",
			decl:     &ast.Decl{Class: ast.DeclTypedef},
			wantKind: highlight.KindTypedef,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := highlight.KindForDecl(tt.decl)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, got)
			}
		})
	}
}

func TestKindForType(t *testing.T) {
	tests := []struct {
		name     string
		typ      *ast.Type
		wantKind highlight.Kind
		wantOK   bool
	}{
		{
			name:   "nil type yields nothing",
			typ:    nil,
			wantOK: false,
		},
		{
			name:     "builtin is primitive",
			typ:      &ast.Type{Builtin: true},
			wantKind: highlight.KindPrimitive,
			wantOK:   true,
		},
		{
			name:     "tag type delegates to its decl",
			typ:      &ast.Type{Decl: &ast.Decl{Class: ast.DeclEnum}},
			wantKind: highlight.KindEnum,
			wantOK:   true,
		},
		{
			name:     "template type parameter delegates to its decl",
			typ:      &ast.Type{Decl: &ast.Decl{Class: ast.DeclTemplateTypeParam}},
			wantKind: highlight.KindTemplateParameter,
			wantOK:   true,
		},
		{
			name:   "declless non-builtin yields nothing",
			typ:    &ast.Type{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := highlight.KindForType(tt.typ)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, got)
			}
		})
	}
}

func TestKindForCandidates(t *testing.T) {
	method := &ast.Decl{Class: ast.DeclMethod}
	staticMethod := &ast.Decl{Class: ast.DeclMethod, Static: true}
	lambda := &ast.Decl{Class: ast.DeclRecord, Lambda: true}

	tests := []struct {
		name     string
		decls    []*ast.Decl
		wantKind highlight.Kind
		wantOK   bool
	}{
		{
			name:   "empty set is undefined",
			decls:  nil,
			wantOK: false,
		},
		{
			name:     "agreeing candidates keep their kind",
			decls:    []*ast.Decl{method, method},
			wantKind: highlight.KindMethod,
			wantOK:   true,
		},
		{
			name:   "disagreeing candidates are undefined",
			decls:  []*ast.Decl{method, staticMethod},
			wantOK: false,
		},
		{
			name:   "one unclassifiable candidate poisons the set",
			decls:  []*ast.Decl{method, lambda},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := highlight.KindForCandidates(tt.decls)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, got)
			}
		})
	}
}
