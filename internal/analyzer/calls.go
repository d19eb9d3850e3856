package analyzer

import (
	"strings"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
	"github.com/sidefxlint/sidefxlint/internal/resolver"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// reportCallLike is the shared entry point for CallExpression, NewExpression,
// and TaggedTemplateExpression: arguments are analyzed first,
// always with hasValidThis=false, then the callee is classified unless the
// call site itself carries a `@__PURE__`/`#__PURE__` marker.
func (d *Dispatcher) reportCallLike(anchor ast.Node, callee ast.Expression, args []ast.Expression, calledWithNew bool, ctx Context) {
	argCtx := ctx.asUncalledArgs()
	for _, a := range args {
		d.ReportEffects(a, argCtx)
	}
	if d.oracle.IsCallSitePure(anchor) {
		return
	}
	d.ReportEffectsWhenCalled(anchor, callee, calledWithNew, ctx)
	d.reportParamFlowAtCallSite(callee, args, calledWithNew, ctx)
}

func (d *Dispatcher) reportCallExpression(n *ast.CallExpression, ctx Context) {
	d.reportCallLike(n, n.Callee, n.Arguments, false, ctx)
}

func (d *Dispatcher) reportNewExpression(n *ast.NewExpression, ctx Context) {
	d.reportCallLike(n, n.Callee, n.Arguments, true, ctx)
}

// ReportEffectsWhenCalled assumes value denotes
// something about to be invoked, and emits diagnostics for what that
// invocation would do. anchor is the diagnostic's source location — the
// original call/new expression, never a node reached by following a
// variable's writes or a re-entered function body (those emit at their own
// locations through the normal ReportEffects walk).
func (d *Dispatcher) ReportEffectsWhenCalled(anchor ast.Node, value ast.Expression, calledWithNew bool, ctx Context) {
	switch callee := value.(type) {
	case *ast.Identifier:
		d.reportIdentifierCallee(anchor, callee, calledWithNew, ctx)

	case *ast.MemberExpression:
		d.ReportEffects(callee.Object, ctx.asUncalledArgs())
		if callee.Computed {
			d.ReportEffects(callee.Property, ctx.asUncalledArgs())
		}
		if path, ok := dottedPathOnUnshadowedGlobal(callee, ctx.Scope); ok && d.oracle.IsGlobalPure(path) {
			return
		}
		d.emit(anchor, diagnostics.CallingMember)

	case *ast.FunctionExpression:
		hasValidThis := calledWithNew
		d.reportFunctionCallee(callee, callee.Params, callee.Body, hasValidThis, calledWithNew, ctx)

	case *ast.FunctionDeclaration:
		hasValidThis := calledWithNew
		d.reportFunctionCallee(callee, callee.Params, callee.Body, hasValidThis, calledWithNew, ctx)

	case *ast.ArrowFunctionExpression:
		if calledWithNew {
			d.emit(anchor, diagnostics.ArrowCalledWithNew)
		}
		d.reportArrowCallee(callee, calledWithNew, ctx)

	case *ast.CallExpression:
		d.emit(anchor, diagnostics.CallingCallResult)
		d.ReportEffects(callee, ctx.asUncalledArgs())

	case *ast.NewExpression:
		d.emit(anchor, diagnostics.CallingCallResult)
		d.ReportEffects(callee, ctx.asUncalledArgs())

	case *ast.Literal:
		d.emit(anchor, diagnostics.CallingLiteral)

	case *ast.Super:
		d.reportSuperCallee(anchor, ctx)

	case *ast.ClassExpression:
		if calledWithNew {
			d.reportClassConstructor(callee.SuperClass, callee.Body, ctx)
			return
		}
		// Calling a class without `new` is a runtime TypeError in real JS;
		// nothing useful to classify.
		d.emit(anchor, diagnostics.CannotDetermineGeneric)

	case *ast.ClassDeclaration:
		if calledWithNew {
			d.reportClassConstructor(callee.SuperClass, callee.Body, ctx)
			return
		}
		d.emit(anchor, diagnostics.CannotDetermineGeneric)

	case *ast.Unknown:
		d.emit(anchor, diagnostics.CannotDetermineGeneric)

	default:
		// A callee shape outside the enumerated grammar (e.g. a
		// ConditionalExpression callee `(c ? f : g)()`). Valid JS, just not
		// one of the classified forms above: fall back to the generic
		// diagnostic and still walk its children for their own effects,
		// rather than failing the whole analysis over one exotic call site.
		d.emit(anchor, diagnostics.CannotDetermineGeneric)
		d.ReportEffects(value, ctx.asUncalledArgs())
	}
}

func (d *Dispatcher) reportIdentifierCallee(anchor ast.Node, id *ast.Identifier, calledWithNew bool, ctx Context) {
	v, ok := resolver.Resolve(ctx.Scope, id.Name)
	if !ok {
		if !d.oracle.IsGlobalPure(id.Name) {
			d.emit(anchor, diagnostics.CallingGlobal)
		}
		return
	}

	switch v.Kind {
	case scope.Parameter:
		// No diagnostic here: calling a parameter is reported at the
		// argument position of the call site(s) that supplied it, computed
		// separately by reportParamFlowAtCallSite.
		return

	case scope.Import:
		d.reportImportCallee(anchor, v)
		return

	case scope.FunctionDecl:
		if !ctx.memo.enterBinding(v.ID(), calledWithNew) {
			return
		}
		for _, def := range v.Definitions {
			if fd, ok := def.Node.(*ast.FunctionDeclaration); ok {
				hasValidThis := calledWithNew
				d.reportFunctionCallee(fd, fd.Params, fd.Body, hasValidThis, calledWithNew, ctx.WithScope(v.Scope))
			}
		}
		return

	case scope.ClassDecl:
		if !ctx.memo.enterBinding(v.ID(), calledWithNew) {
			return
		}
		for _, def := range v.Definitions {
			if cd, ok := def.Node.(*ast.ClassDeclaration); ok {
				d.reportClassConstructor(cd.SuperClass, cd.Body, ctx.WithScope(v.Scope))
			}
		}
		return
	}

	if v.FromDestructuring {
		d.emit(anchor, diagnostics.CallingUnknownVariable)
		return
	}
	if !ctx.memo.enterBinding(v.ID(), calledWithNew) {
		return
	}

	any := false
	for _, def := range v.Definitions {
		if def.Initializer != nil {
			any = true
			d.reportWrittenValue(anchor, def.Initializer, calledWithNew, ctx.WithScope(v.Scope))
		}
	}
	for _, ref := range v.References {
		if ref.WriteExpr != nil {
			any = true
			d.reportWrittenValue(anchor, ref.WriteExpr, calledWithNew, ctx.WithScope(v.Scope))
		}
	}
	if !any {
		d.emit(anchor, diagnostics.CallingUnknownVariable)
	}
}

// reportWrittenValue re-enters report-effects-when-called on one of a
// variable's write expressions. A write that is neither a function/arrow
// value nor one of the other classified callee shapes is "call-of-unknown",
// worded in the fixed vocabulary as calling a destructured variable — the
// typical case a bare write expression resists classification is a
// destructuring projection.
func (d *Dispatcher) reportWrittenValue(anchor ast.Node, value ast.Expression, calledWithNew bool, ctx Context) {
	switch value.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.FunctionExpression, *ast.FunctionDeclaration,
		*ast.ArrowFunctionExpression, *ast.CallExpression, *ast.NewExpression, *ast.Literal, *ast.Super,
		*ast.ClassExpression, *ast.ClassDeclaration, *ast.Unknown:
		d.ReportEffectsWhenCalled(anchor, value, calledWithNew, ctx)
	default:
		d.emit(anchor, diagnostics.CallingUnknownVariable)
	}
}

func (d *Dispatcher) reportImportCallee(anchor ast.Node, v *scope.Variable) {
	src, ok := resolver.ImportSourceOf(v)
	if !ok {
		d.emit(anchor, diagnostics.CallingImport)
		return
	}
	if v.FromDestructuring {
		d.emit(anchor, diagnostics.CallingUnknownVariable)
		return
	}
	for _, def := range v.Definitions {
		if d.oracle.IsDeclaredPure(def.Node) {
			return
		}
	}
	if d.oracle.IsModuleExportPure(src.Module, src.ExportName, src.IsRelative) {
		return
	}
	d.emit(anchor, diagnostics.CallingImport)
}

// reportFunctionCallee re-enters a function/arrow-shaped callee's body under
// the function's own lexical scope, with a scope that includes its
// parameters.
func (d *Dispatcher) reportFunctionCallee(fn ast.Node, params []ast.Pattern, body *ast.BlockStatement, hasValidThis, calledWithNew bool, ctx Context) {
	if !ctx.memo.enterNode(fn, calledWithNew) {
		return
	}
	bodyScope := requireChildScope(ctx.Scope, fn)
	bodyCtx := ctx.WithScope(bodyScope)
	bodyCtx.HasValidThis = hasValidThis
	bodyCtx.CalledWithNew = calledWithNew

	for _, p := range params {
		d.reportEffectsPattern(p, bodyCtx)
	}
	d.ReportEffects(body, bodyCtx)
	d.computeParamFlow(fn, params, body, bodyScope, calledWithNew)
}

func (d *Dispatcher) reportArrowCallee(fn *ast.ArrowFunctionExpression, calledWithNew bool, ctx Context) {
	// Arrows always re-enter with hasValidThis=false, even under `new`
	// (which itself emits arrow-called-with-new above): an arrow body never
	// gets a fresh `this` of its own.
	if !ctx.memo.enterNode(fn, calledWithNew) {
		return
	}
	bodyScope := requireChildScope(ctx.Scope, fn)
	bodyCtx := ctx.WithScope(bodyScope)
	bodyCtx.HasValidThis = false

	for _, p := range fn.Params {
		d.reportEffectsPattern(p, bodyCtx)
	}
	if fn.Body != nil {
		d.ReportEffects(fn.Body, bodyCtx)
		d.computeParamFlow(fn, fn.Params, fn.Body, bodyScope, calledWithNew)
	} else if fn.ExpressionBody != nil {
		d.ReportEffects(fn.ExpressionBody, bodyCtx)
		d.computeParamFlowExpr(fn, fn.Params, fn.ExpressionBody, calledWithNew)
	}
}

// reportSuperCallee handles an explicit `super()` call. Like calling a
// member or an imported function, the engine does not chase the superclass
// chain to see what the base constructor actually does; it flags the call
// and stops, the same conservative treatment every other opaque callee
// category gets.
func (d *Dispatcher) reportSuperCallee(anchor ast.Node, ctx Context) {
	d.emit(anchor, diagnostics.CallingSuper)
}

// requireChildScope fetches the scope a function/class/block introduces.
// A missing child scope is a host invariant violation: the ingestion layer
// is required to have built one for every scope-introducing node, so this
// can only mean a malformed scope graph was supplied.
func requireChildScope(parent *scope.Scope, n ast.Node) *scope.Scope {
	child := parent.ChildFor(n)
	if child == nil {
		panic("analyzer: scope graph has no child scope for a scope-introducing node")
	}
	return child
}

// dottedPath renders a chain of non-computed MemberExpressions over a
// trailing Identifier root as "Root.a.b", the shape the static allow-list is
// keyed on. ok is false for any computed segment or non-Identifier
// leaf, since those can never match a static dotted path.
func dottedPath(e ast.Expression) (string, bool) {
	var segments []string
	cur := e
	for {
		switch n := cur.(type) {
		case *ast.MemberExpression:
			if n.Computed {
				return "", false
			}
			prop, ok := n.Property.(*ast.Identifier)
			if !ok {
				return "", false
			}
			segments = append([]string{prop.Name}, segments...)
			cur = n.Object
		case *ast.Identifier:
			segments = append([]string{n.Name}, segments...)
			return joinDotted(segments), true
		default:
			return "", false
		}
	}
}

// dottedPathOnUnshadowedGlobal is dottedPath plus the "shadowing Object
// locally makes it dirty" boundary: the allow-list only ever matches the
// real global, never a local rebound to the same name.
func dottedPathOnUnshadowedGlobal(e ast.Expression, s *scope.Scope) (string, bool) {
	path, ok := dottedPath(e)
	if !ok {
		return "", false
	}
	root := path
	if idx := strings.IndexByte(path, '.'); idx >= 0 {
		root = path[:idx]
	}
	if _, shadowed := resolver.Resolve(s, root); shadowed {
		return "", false
	}
	return path, true
}

func joinDotted(segments []string) string {
	out := segments[0]
	for _, s := range segments[1:] {
		out += "." + s
	}
	return out
}
