// Package resolver looks up an identifier reference in a scope graph and,
// for bindings that turn out to be imports, extracts the (module specifier,
// exported name) pair the purity oracle needs.
package resolver

import (
	"strings"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// Resolve looks up name starting at s, walking outward but never crossing
// the global scope boundary. Callers that get ok == false must treat the
// identifier as a global.
func Resolve(s *scope.Scope, name string) (*scope.Variable, bool) {
	return s.Lookup(name)
}

// ImportSource describes the (module, exportName) pair a Variable bound by
// an import statement refers to.
type ImportSource struct {
	Module     string
	ExportName string // empty for a default/namespace import
	IsRelative bool
}

// ImportSourceOf inspects v's declaration and, if v is an import binding,
// returns the module it came from. The resolver — not the scope package —
// owns this because the scope graph doesn't carry the module specifier on
// every binding, only on the ImportDeclaration node the binding's
// Definition points through.
func ImportSourceOf(v *scope.Variable) (ImportSource, bool) {
	if v == nil || v.Kind != scope.Import {
		return ImportSource{}, false
	}
	for _, def := range v.Definitions {
		spec, ok := def.Node.(*ast.ImportSpecifier)
		if !ok {
			continue
		}
		decl, ok := spec.DeclarationOwner.(*ast.ImportDeclaration)
		if !ok || decl.Source == nil {
			continue
		}
		src := ImportSource{
			Module:     decl.Source.Value,
			IsRelative: IsRelativeSpecifier(decl.Source.Value),
		}
		if spec.Kind == ast.ImportNamed && spec.Imported != nil {
			src.ExportName = spec.Imported.Name
		}
		return src, true
	}
	return ImportSource{}, false
}

// IsRelativeSpecifier reports whether a module specifier is a relative path
// (starts with "." or "/"), the shape the "#local" config sentinel matches.
func IsRelativeSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "/")
}
