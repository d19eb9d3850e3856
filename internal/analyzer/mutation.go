package analyzer

import (
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
	"github.com/sidefxlint/sidefxlint/internal/resolver"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// reportAssignment handles an AssignmentExpression: the RHS always gets a
// normal report-effects pass, and the LHS is classified by
// ReportEffectsWhenMutated.
func (d *Dispatcher) reportAssignment(n *ast.AssignmentExpression, ctx Context) {
	d.ReportEffects(n.Right, ctx)
	d.ReportEffectsWhenMutated(n, n.Left, ctx)
}

// ReportEffectsWhenMutated assumes target denotes something whose
// properties are about to be written or deleted, and emits
// diagnostics for the effects that would cause. It is also the shared
// classifier for a plain-identifier/this mutation target, which an
// AssignmentExpression's LHS or an UpdateExpression's operand can be
// directly (not only through a MemberExpression).
func (d *Dispatcher) ReportEffectsWhenMutated(anchor ast.Node, target ast.Expression, ctx Context) {
	switch t := target.(type) {
	case *ast.Identifier:
		v, ok := resolver.Resolve(ctx.Scope, t.Name)
		if !ok {
			d.emit(anchor, diagnostics.AssignmentToGlobal)
			return
		}
		if v.FromDestructuring {
			d.emit(anchor, diagnostics.MutatingUnknownVar)
		}
		// Otherwise a plain local (including a parameter, whose mutation is
		// instead tracked at the supplying call site by the parameter-flow
		// scan): ⊕ nothing further, no diagnostic here.

	case *ast.MemberExpression:
		d.reportMemberMutationRoot(anchor, t, ctx)

	case *ast.ThisExpression:
		if !ctx.HasValidThis {
			d.emit(anchor, diagnostics.MutatingUnknownThis)
		}

	case *ast.Unknown:
		// A node kind the engine does not recognize still answers a
		// mutated query, with the generic diagnostic.
		d.emit(anchor, diagnostics.CannotDetermineGeneric)

	default:
		// Any other assignment/update/delete target that is none of
		// Identifier, MemberExpression, or ThisExpression indicates a malformed AST
		// from the host, not a user-code condition the engine is designed
		// to classify.
		panic("analyzer: assignment/update/delete target is not Identifier, MemberExpression, or ThisExpression")
	}
}

// reportMemberMutationRoot walks down a MemberExpression's Object chain to
// its root, evaluating every computed property along the way (they execute
// regardless of whether the mutation itself is ever reached), then
// classifies the root.
func (d *Dispatcher) reportMemberMutationRoot(anchor ast.Node, mem *ast.MemberExpression, ctx Context) {
	cur := ast.Expression(mem)
	for {
		m, ok := cur.(*ast.MemberExpression)
		if !ok {
			break
		}
		if m.Computed {
			d.ReportEffects(m.Property, ctx)
		}
		cur = m.Object
	}

	switch root := cur.(type) {
	case *ast.Identifier:
		v, ok := resolver.Resolve(ctx.Scope, root.Name)
		if !ok {
			d.emit(anchor, diagnostics.MutatingGlobal)
			return
		}
		if v.Kind == scope.Import {
			d.emit(anchor, diagnostics.MutatingImport)
			return
		}
		if v.FromDestructuring {
			d.emit(anchor, diagnostics.MutatingUnknownVar)
		}
		// Plain local root (parameter included): ∅ here; see
		// ReportEffectsWhenMutated's Identifier case for why.

	case *ast.ThisExpression:
		if !ctx.HasValidThis {
			d.emit(anchor, diagnostics.MutatingUnknownThis)
		}

	case *ast.CallExpression, *ast.NewExpression:
		d.emit(anchor, diagnostics.MutatingCallResult)
		d.ReportEffects(root, ctx)

	case *ast.ObjectExpression, *ast.ArrayExpression:
		// A freshly constructed literal has no alias anywhere else yet, so
		// mutating a property on it raises no diagnostic of its own.
		d.ReportEffects(root, ctx)

	default:
		// Any other root shape (ConditionalExpression, SequenceExpression,
		// a parenthesized expression wrapping one of those, etc.) could
		// still denote an aliased, externally visible object; there is no
		// way to classify what the write reaches.
		d.emit(anchor, diagnostics.MutatingMember)
		d.ReportEffects(root, ctx)
	}
}
