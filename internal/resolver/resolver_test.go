package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/resolver"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

func TestResolveFindsLocalBinding(t *testing.T) {
	s := scope.NewScope(scope.Module, nil)
	s.Variables["x"] = &scope.Variable{Name: "x", Kind: scope.Const, Scope: s}

	v, ok := resolver.Resolve(s, "x")
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
}

func TestResolveStopsAtGlobalBoundary(t *testing.T) {
	global := scope.NewScope(scope.Global, nil)
	global.Variables["ext"] = &scope.Variable{Name: "ext", Kind: scope.Const, Scope: global}
	module := scope.NewScope(scope.Module, global)

	_, ok := resolver.Resolve(module, "ext")
	assert.False(t, ok, "a binding only present at Global must be treated as an unresolved global")
}

func TestImportSourceOfNamedImport(t *testing.T) {
	decl := &ast.ImportDeclaration{Source: &ast.Literal{Value: "./sibling"}}
	spec := &ast.ImportSpecifier{
		Kind:             ast.ImportNamed,
		Local:            &ast.Identifier{Name: "helper"},
		Imported:         &ast.Identifier{Name: "helper"},
		DeclarationOwner: decl,
	}
	decl.Specifiers = []*ast.ImportSpecifier{spec}

	v := &scope.Variable{Name: "helper", Kind: scope.Import, Definitions: []*scope.Definition{{Node: spec}}}

	src, ok := resolver.ImportSourceOf(v)
	require.True(t, ok)
	assert.Equal(t, "./sibling", src.Module)
	assert.Equal(t, "helper", src.ExportName)
	assert.True(t, src.IsRelative)
}

func TestImportSourceOfNonImportVariable(t *testing.T) {
	v := &scope.Variable{Name: "x", Kind: scope.Const}
	_, ok := resolver.ImportSourceOf(v)
	assert.False(t, ok)
}

func TestIsRelativeSpecifier(t *testing.T) {
	assert.True(t, resolver.IsRelativeSpecifier("./a"))
	assert.True(t, resolver.IsRelativeSpecifier("/a"))
	assert.False(t, resolver.IsRelativeSpecifier("a"))
	assert.False(t, resolver.IsRelativeSpecifier("lodash"))
}
