package analyzer

import (
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
)

// ReportEffects emits diagnostics for observable effects produced by
// evaluating n as written, at the position where it appears. Unknown node
// kinds are silently skipped, to tolerate extensions like TypeScript type
// nodes.
func (d *Dispatcher) ReportEffects(n ast.Node, ctx Context) {
	if n == nil {
		return
	}
	switch node := n.(type) {

	// --- ∅: no effect by itself ---
	case *ast.Literal, *ast.FunctionDeclaration, *ast.FunctionExpression,
		*ast.ArrowFunctionExpression, *ast.MetaProperty, *ast.ThisExpression,
		*ast.Super, *ast.JSXEmptyExpression, *ast.JSXText, *ast.EmptyStatement,
		*ast.Unknown:
		return

	case *ast.Identifier:
		return // a bare read; only a reference, never an effect

	// --- recurse into bodies/children, ⊕ ---
	case *ast.Program:
		for _, s := range node.Body {
			d.ReportEffects(s, ctx)
		}
	case *ast.BlockStatement:
		for _, s := range node.Body {
			d.ReportEffects(s, ctx)
		}
	case *ast.ExpressionStatement:
		d.ReportEffects(node.Expression, ctx)
	case *ast.LabeledStatement:
		d.ReportEffects(node.Body, ctx)
	case *ast.BreakStatement, *ast.ContinueStatement:
		return
	case *ast.ReturnStatement:
		if node.Argument != nil {
			d.ReportEffects(node.Argument, ctx)
		}
	case *ast.RestElement:
		// default values live on AssignmentPattern, not RestElement itself
		return

	case *ast.VariableDeclaration:
		for _, decl := range node.Declarations {
			d.ReportEffects(decl, ctx)
		}
	case *ast.VariableDeclarator:
		d.reportEffectsPattern(node.Id, ctx)
		if node.Init != nil {
			d.ReportEffects(node.Init, ctx)
		}

	case *ast.IfStatement:
		d.reportConditional(node.Test, node.Consequent, node.Alternate, ctx)

	case *ast.SwitchStatement:
		d.ReportEffects(node.Discriminant, ctx)
		for _, c := range node.Cases {
			d.ReportEffects(c, ctx)
		}
	case *ast.SwitchCase:
		if node.Test != nil {
			d.ReportEffects(node.Test, ctx)
		}
		for _, s := range node.Consequent {
			d.ReportEffects(s, ctx)
		}

	case *ast.TryStatement:
		d.ReportEffects(node.Block, ctx)
		if node.Handler != nil {
			d.ReportEffects(node.Handler, ctx)
		}
		if node.Finalizer != nil {
			d.ReportEffects(node.Finalizer, ctx)
		}
	case *ast.CatchClause:
		if node.Param != nil {
			d.reportEffectsPattern(node.Param, ctx)
		}
		d.ReportEffects(node.Body, ctx)

	case *ast.WhileStatement:
		d.ReportEffects(node.Test, ctx)
		d.ReportEffects(node.Body, ctx)
	case *ast.DoWhileStatement:
		d.ReportEffects(node.Body, ctx)
		d.ReportEffects(node.Test, ctx)
	case *ast.ForStatement:
		if node.Init != nil {
			d.ReportEffects(node.Init, ctx)
		}
		if node.Test != nil {
			d.ReportEffects(node.Test, ctx)
		}
		if node.Update != nil {
			d.ReportEffects(node.Update, ctx)
		}
		d.ReportEffects(node.Body, ctx)
	case *ast.ForInStatement:
		d.ReportEffects(node.Left, ctx)
		d.ReportEffects(node.Right, ctx)
		d.ReportEffects(node.Body, ctx)
	case *ast.ForOfStatement:
		d.ReportEffects(node.Left, ctx)
		d.ReportEffects(node.Right, ctx)
		if !isArrayLiteralWithoutSpread(node.Right) {
			d.emit(node, diagnostics.IteratingOverIterable)
		}
		d.ReportEffects(node.Body, ctx)

	case *ast.ThrowStatement:
		d.ReportEffects(node.Argument, ctx)
		d.emit(node, diagnostics.Throwing)
	case *ast.DebuggerStatement:
		d.emit(node, diagnostics.Debugger)

	// --- expressions that recurse into their children; logical and
	// conditional expressions prune only on a literal true/false guard ---
	case *ast.BinaryExpression:
		d.ReportEffects(node.Left, ctx)
		d.ReportEffects(node.Right, ctx)
	case *ast.LogicalExpression:
		d.reportLogical(node, ctx)
	case *ast.SequenceExpression:
		for _, e := range node.Expressions {
			d.ReportEffects(e, ctx)
		}
	case *ast.ConditionalExpression:
		d.reportConditionalExpr(node, ctx)
	case *ast.TemplateLiteral:
		for _, e := range node.Expressions {
			d.ReportEffects(e, ctx)
		}
	case *ast.TaggedTemplateExpression:
		d.reportCallLike(node, node.Tag, quasiArgs(node.Quasi), false, ctx)

	case *ast.UnaryExpression:
		d.reportUnary(node, ctx)
	case *ast.AwaitExpression:
		d.ReportEffects(node.Argument, ctx)
	case *ast.YieldExpression:
		if node.Argument != nil {
			d.ReportEffects(node.Argument, ctx)
		}

	case *ast.ArrayExpression:
		for _, e := range node.Elements {
			if e != nil {
				d.ReportEffects(e, ctx)
			}
		}
	case *ast.ObjectExpression:
		for _, p := range node.Properties {
			d.ReportEffects(p, ctx)
		}
	case *ast.Property:
		if node.Computed {
			d.ReportEffects(node.Key, ctx)
		}
		d.ReportEffects(node.Value, ctx)
	case *ast.SpreadElement:
		d.ReportEffects(node.Argument, ctx)

	case *ast.MemberExpression:
		// A bare member-expression read (not a call, not a mutation
		// target) has no effect of its own beyond its children.
		d.ReportEffects(node.Object, ctx)
		if node.Computed {
			d.ReportEffects(node.Property, ctx)
		}

	case *ast.AssignmentExpression:
		d.reportAssignment(node, ctx)
	case *ast.UpdateExpression:
		d.ReportEffectsWhenMutated(node, node.Argument, ctx)

	case *ast.CallExpression:
		d.reportCallExpression(node, ctx)
	case *ast.NewExpression:
		d.reportNewExpression(node, ctx)

	case *ast.ArrayPattern, *ast.ObjectPattern, *ast.AssignmentPattern:
		d.reportEffectsPattern(n, ctx)

	case *ast.ClassDeclaration:
		d.reportClass(node.SuperClass, node.Body, ctx)
	case *ast.ClassExpression:
		d.reportClass(node.SuperClass, node.Body, ctx)

	case *ast.ImportDeclaration:
		return // bare imports have no analyzed effect
	case *ast.ExportNamedDeclaration:
		if node.Declaration != nil {
			d.ReportEffects(node.Declaration, ctx)
		}
	case *ast.ExportDefaultDeclaration:
		d.ReportEffects(node.Declaration, ctx)
	case *ast.ExportAllDeclaration:
		return

	case *ast.JSXElement:
		d.reportJSXElement(node, ctx)
	case *ast.JSXFragment:
		for _, c := range node.Children {
			d.ReportEffects(c, ctx)
		}
	case *ast.JSXExpressionContainer:
		d.ReportEffects(node.Expression, ctx)
	case *ast.JSXAttribute:
		if node.Value != nil {
			d.ReportEffects(node.Value, ctx)
		}
	case *ast.JSXSpreadAttribute:
		d.ReportEffects(node.Argument, ctx)

	default:
		// Unrecognized kind: tolerate it for evaluation-effect purposes.
		return
	}
}

// reportEffectsPattern recurses into the default values and computed keys a
// binding pattern carries; the pattern's own bound names are not reads.
func (d *Dispatcher) reportEffectsPattern(p ast.Node, ctx Context) {
	switch pat := p.(type) {
	case *ast.Identifier, nil:
		return
	case *ast.ArrayPattern:
		for _, el := range pat.Elements {
			if el != nil {
				d.reportEffectsPattern(el, ctx)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range pat.Properties {
			if prop.Computed {
				d.ReportEffects(prop.Key, ctx)
			}
			d.reportEffectsPattern(prop.Value, ctx)
		}
	case *ast.AssignmentPattern:
		d.reportEffectsPattern(pat.Left, ctx)
		d.ReportEffects(pat.Right, ctx)
	case *ast.RestElement:
		d.reportEffectsPattern(pat.Argument, ctx)
	}
}

func quasiArgs(t *ast.TemplateLiteral) []ast.Expression {
	if t == nil {
		return nil
	}
	return t.Expressions
}

func isArrayLiteralWithoutSpread(e ast.Expression) bool {
	arr, ok := e.(*ast.ArrayExpression)
	if !ok {
		return false
	}
	for _, el := range arr.Elements {
		if _, isSpread := el.(*ast.SpreadElement); isSpread {
			return false
		}
	}
	return true
}
