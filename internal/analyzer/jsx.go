package analyzer

import "github.com/sidefxlint/sidefxlint/internal/ast"

// reportJSXElement treats an uppercase-starting (or dotted member) tag
// as `new Name(props)` for effect
// purposes — components are classes or functions, and JSX never calls them
// without `new`-like fresh-instance semantics in this analysis. A
// lowercase tag is a host intrinsic (`<div>`) and contributes no effect of
// its own; either way, attribute values and children are always evaluated.
func (d *Dispatcher) reportJSXElement(n *ast.JSXElement, ctx Context) {
	for _, attr := range n.Attributes {
		d.ReportEffects(attr, ctx)
	}
	for _, child := range n.Children {
		d.ReportEffects(child, ctx)
	}

	callee, isComponent := componentCallee(n.Name)
	if !isComponent {
		return
	}
	d.ReportEffectsWhenCalled(n, callee, true, ctx)
}

// componentCallee reports whether a JSX element name denotes a component
// (as opposed to a host-intrinsic tag), and if so, the expression the rest
// of the engine resolves like any other callee.
func componentCallee(name ast.Expression) (ast.Expression, bool) {
	switch n := name.(type) {
	case *ast.JSXIdentifier:
		if !isUppercaseStart(n.Name) {
			return nil, false
		}
		return &ast.Identifier{Base: n.Base, Name: n.Name}, true
	case *ast.Identifier:
		if !isUppercaseStart(n.Name) {
			return nil, false
		}
		return n, true
	case *ast.MemberExpression:
		// Namespaced/member component references (`<Foo.Bar/>`) are always
		// components by JSX convention, regardless of casing.
		return n, true
	default:
		return nil, false
	}
}

func isUppercaseStart(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}
