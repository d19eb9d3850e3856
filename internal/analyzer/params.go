package analyzer

import (
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// paramEffect records whether a parameter is ever called or mutated inside
// the function body it belongs to.
type paramEffect struct {
	called  bool
	mutated bool
}

// paramFlowKey identifies one (function body, call mode) parameter-flow
// scan. Keyed by node identity like memo.nodesByMode, since an anonymous
// function/arrow has no BindingID of its own.
type paramFlowKey struct {
	fn            ast.Node
	calledWithNew bool
}

// computeParamFlow scans fn's body once per (fn, calledWithNew) and records,
// for each simple-identifier parameter, whether it is ever used as a call
// callee or as the mutation root of an assignment/update/delete — tracking
// aliases introduced only by a direct `const|let|var x = param`, with no
// deeper flow. Nested function/class bodies are treated as opaque
// boundaries: a parameter captured by a closure and invoked there is outside
// what this single-body scan follows.
func (d *Dispatcher) computeParamFlow(fn ast.Node, params []ast.Pattern, body *ast.BlockStatement, bodyScope *scope.Scope, calledWithNew bool) map[string]paramEffect {
	key := paramFlowKey{fn: fn, calledWithNew: calledWithNew}
	if d.paramFlow == nil {
		d.paramFlow = make(map[paramFlowKey]map[string]paramEffect)
	}
	if cached, ok := d.paramFlow[key]; ok {
		return cached
	}

	names := make(map[string]bool)
	for _, p := range params {
		if id, ok := p.(*ast.Identifier); ok {
			names[id.Name] = true
		}
	}
	result := make(map[string]paramEffect, len(names))
	for n := range names {
		result[n] = paramEffect{}
	}
	if len(names) == 0 {
		d.paramFlow[key] = result
		return result
	}

	aliasOf := make(map[string]string) // alias name -> ultimate parameter name
	scanParamFlowStatement(body, names, aliasOf, result)
	d.paramFlow[key] = result
	return result
}

// computeParamFlowExpr is computeParamFlow's counterpart for an
// expression-bodied arrow (`a => a.x = 1`), which has no BlockStatement to
// scan.
func (d *Dispatcher) computeParamFlowExpr(fn ast.Node, params []ast.Pattern, bodyExpr ast.Expression, calledWithNew bool) map[string]paramEffect {
	key := paramFlowKey{fn: fn, calledWithNew: calledWithNew}
	if d.paramFlow == nil {
		d.paramFlow = make(map[paramFlowKey]map[string]paramEffect)
	}
	if cached, ok := d.paramFlow[key]; ok {
		return cached
	}

	names := make(map[string]bool)
	for _, p := range params {
		if id, ok := p.(*ast.Identifier); ok {
			names[id.Name] = true
		}
	}
	result := make(map[string]paramEffect, len(names))
	for n := range names {
		result[n] = paramEffect{}
	}
	if len(names) > 0 {
		scanParamFlowExpr(bodyExpr, names, make(map[string]string), result)
	}
	d.paramFlow[key] = result
	return result
}

func scanParamFlowRoot(name string, aliasOf map[string]string) (string, bool) {
	seen := make(map[string]bool)
	for {
		if seen[name] {
			return "", false
		}
		seen[name] = true
		target, ok := aliasOf[name]
		if !ok {
			return name, true
		}
		name = target
	}
}

// scanParamFlowStatement walks a function body's direct statement tree,
// skipping into nested block/control-flow statements but not into nested
// function, arrow, or class bodies.
func scanParamFlowStatement(n ast.Node, names map[string]bool, aliasOf map[string]string, result map[string]paramEffect) {
	switch s := n.(type) {
	case nil:
		return
	case *ast.BlockStatement:
		for _, st := range s.Body {
			scanParamFlowStatement(st, names, aliasOf, result)
		}
	case *ast.ExpressionStatement:
		scanParamFlowExpr(s.Expression, names, aliasOf, result)
	case *ast.VariableDeclaration:
		for _, decl := range s.Declarations {
			if decl.Init != nil {
				scanParamFlowExpr(decl.Init, names, aliasOf, result)
				if id, ok := decl.Id.(*ast.Identifier); ok {
					if rhsID, ok := decl.Init.(*ast.Identifier); ok {
						if root, ok := scanParamFlowRoot(rhsID.Name, aliasOf); ok && names[root] {
							aliasOf[id.Name] = root
						}
					}
				}
			}
		}
	case *ast.IfStatement:
		scanParamFlowExpr(s.Test, names, aliasOf, result)
		scanParamFlowStatement(s.Consequent, names, aliasOf, result)
		scanParamFlowStatement(s.Alternate, names, aliasOf, result)
	case *ast.ForStatement:
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.ForInStatement:
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.ForOfStatement:
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.WhileStatement:
		scanParamFlowExpr(s.Test, names, aliasOf, result)
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.DoWhileStatement:
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.SwitchStatement:
		for _, c := range s.Cases {
			for _, st := range c.Consequent {
				scanParamFlowStatement(st, names, aliasOf, result)
			}
		}
	case *ast.TryStatement:
		scanParamFlowStatement(s.Block, names, aliasOf, result)
		if s.Handler != nil {
			scanParamFlowStatement(s.Handler.Body, names, aliasOf, result)
		}
		if s.Finalizer != nil {
			scanParamFlowStatement(s.Finalizer, names, aliasOf, result)
		}
	case *ast.LabeledStatement:
		scanParamFlowStatement(s.Body, names, aliasOf, result)
	case *ast.ReturnStatement:
		if s.Argument != nil {
			scanParamFlowExpr(s.Argument, names, aliasOf, result)
		}
	case *ast.ThrowStatement:
		scanParamFlowExpr(s.Argument, names, aliasOf, result)
	}
}

func scanParamFlowExpr(n ast.Node, names map[string]bool, aliasOf map[string]string, result map[string]paramEffect) {
	switch e := n.(type) {
	case nil:
		return
	case *ast.CallExpression:
		if id, ok := e.Callee.(*ast.Identifier); ok {
			if root, ok := scanParamFlowRoot(id.Name, aliasOf); ok && names[root] {
				result[root] = paramEffect{called: true, mutated: result[root].mutated}
			}
		}
		scanParamFlowExpr(e.Callee, names, aliasOf, result)
		for _, a := range e.Arguments {
			scanParamFlowExpr(a, names, aliasOf, result)
		}
	case *ast.NewExpression:
		scanParamFlowExpr(e.Callee, names, aliasOf, result)
		for _, a := range e.Arguments {
			scanParamFlowExpr(a, names, aliasOf, result)
		}
	case *ast.AssignmentExpression:
		markParamMutationRoot(e.Left, names, aliasOf, result)
		scanParamFlowExpr(e.Left, names, aliasOf, result)
		scanParamFlowExpr(e.Right, names, aliasOf, result)
	case *ast.UpdateExpression:
		markParamMutationRoot(e.Argument, names, aliasOf, result)
	case *ast.UnaryExpression:
		if e.Operator == "delete" {
			markParamMutationRoot(e.Argument, names, aliasOf, result)
		}
		scanParamFlowExpr(e.Argument, names, aliasOf, result)
	case *ast.MemberExpression:
		scanParamFlowExpr(e.Object, names, aliasOf, result)
		if e.Computed {
			scanParamFlowExpr(e.Property, names, aliasOf, result)
		}
	case *ast.BinaryExpression:
		scanParamFlowExpr(e.Left, names, aliasOf, result)
		scanParamFlowExpr(e.Right, names, aliasOf, result)
	case *ast.LogicalExpression:
		scanParamFlowExpr(e.Left, names, aliasOf, result)
		scanParamFlowExpr(e.Right, names, aliasOf, result)
	case *ast.ConditionalExpression:
		scanParamFlowExpr(e.Test, names, aliasOf, result)
		scanParamFlowExpr(e.Consequent, names, aliasOf, result)
		scanParamFlowExpr(e.Alternate, names, aliasOf, result)
	case *ast.SequenceExpression:
		for _, x := range e.Expressions {
			scanParamFlowExpr(x, names, aliasOf, result)
		}
	case *ast.AwaitExpression:
		scanParamFlowExpr(e.Argument, names, aliasOf, result)
	case *ast.YieldExpression:
		if e.Argument != nil {
			scanParamFlowExpr(e.Argument, names, aliasOf, result)
		}
	case *ast.ArrayExpression:
		for _, el := range e.Elements {
			if el != nil {
				scanParamFlowExpr(el, names, aliasOf, result)
			}
		}
	case *ast.ObjectExpression:
		for _, p := range e.Properties {
			scanParamFlowExpr(p, names, aliasOf, result)
		}
	case *ast.Property:
		scanParamFlowExpr(e.Value, names, aliasOf, result)
	case *ast.SpreadElement:
		scanParamFlowExpr(e.Argument, names, aliasOf, result)
	case *ast.TemplateLiteral:
		for _, x := range e.Expressions {
			scanParamFlowExpr(x, names, aliasOf, result)
		}
	case *ast.TaggedTemplateExpression:
		scanParamFlowExpr(e.Tag, names, aliasOf, result)
	}
	// *ast.FunctionExpression, *ast.ArrowFunctionExpression, *ast.ClassExpression
	// intentionally fall through unvisited: a nested closure is an opaque
	// boundary for this scan (see computeParamFlow's doc comment).
}

func markParamMutationRoot(target ast.Expression, names map[string]bool, aliasOf map[string]string, result map[string]paramEffect) {
	var rootName string
	switch t := target.(type) {
	case *ast.Identifier:
		rootName = t.Name
	case *ast.MemberExpression:
		cur := ast.Expression(t)
		for {
			mem, ok := cur.(*ast.MemberExpression)
			if !ok {
				break
			}
			cur = mem.Object
		}
		id, ok := cur.(*ast.Identifier)
		if !ok {
			return
		}
		rootName = id.Name
	default:
		return
	}
	if root, ok := scanParamFlowRoot(rootName, aliasOf); ok && names[root] {
		result[root] = paramEffect{called: result[root].called, mutated: true}
	}
}

// reportParamFlowAtCallSite emits calling-parameter/mutating-parameter at
// each argument position of a call site whose callee resolves to a function
// whose matching parameter is ever called or mutated in its body. This runs
// on every call site regardless of whether the body itself was re-walked
// this time (the body scan is memoized per function; the per-call-site
// diagnostic is not).
func (d *Dispatcher) reportParamFlowAtCallSite(callee ast.Expression, args []ast.Expression, calledWithNew bool, ctx Context) {
	fn, scopeOfFn := d.resolveParamFlowTarget(callee, ctx)
	if fn == nil {
		return
	}
	key := paramFlowKey{fn: fn, calledWithNew: calledWithNew}
	flow, ok := d.paramFlow[key]
	if !ok {
		return
	}
	params := paramFlowParams(fn)
	_ = scopeOfFn
	for i, p := range params {
		id, ok := p.(*ast.Identifier)
		if !ok || i >= len(args) {
			continue
		}
		eff, ok := flow[id.Name]
		if !ok {
			continue
		}
		if eff.called {
			d.emit(args[i], diagnostics.CallingParameter)
		}
		if eff.mutated {
			d.emit(args[i], diagnostics.MutatingParameter)
		}
	}
}

func paramFlowParams(fn ast.Node) []ast.Pattern {
	switch f := fn.(type) {
	case *ast.FunctionDeclaration:
		return f.Params
	case *ast.FunctionExpression:
		return f.Params
	case *ast.ArrowFunctionExpression:
		return f.Params
	}
	return nil
}

// resolveParamFlowTarget recovers the function/arrow node a callee
// expression denotes, following at most one variable indirection — enough
// to cover both `function f(a){...}; f(x)` and `const f = (a) => {...}; f(x)`.
func (d *Dispatcher) resolveParamFlowTarget(callee ast.Expression, ctx Context) (ast.Node, *scope.Scope) {
	id, ok := callee.(*ast.Identifier)
	if !ok {
		return nil, nil
	}
	v, ok := ctx.Scope.Lookup(id.Name)
	if !ok {
		return nil, nil
	}
	switch v.Kind {
	case scope.FunctionDecl:
		for _, def := range v.Definitions {
			if fd, ok := def.Node.(*ast.FunctionDeclaration); ok {
				return fd, v.Scope
			}
		}
	default:
		for _, def := range v.Definitions {
			switch init := def.Initializer.(type) {
			case *ast.FunctionExpression:
				return init, v.Scope
			case *ast.ArrowFunctionExpression:
				return init, v.Scope
			}
		}
	}
	return nil, nil
}
