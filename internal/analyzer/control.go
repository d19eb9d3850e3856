package analyzer

import (
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
)

// literalBool reports whether e is a syntactically decidable boolean guard
// — a literal `true`/`false`. Nothing else (not even `!false` or a
// const-folded expression) qualifies: the engine does no
// arithmetic/constant evaluation.
func literalBool(e ast.Expression) (value bool, ok bool) {
	lit, isLit := e.(*ast.Literal)
	if !isLit || lit.Kind != ast.LiteralBoolean {
		return false, false
	}
	return lit.Bool, true
}

// reportConditional implements the `if` pruning rule: a literal-true/false
// test analyzes only the taken branch; anything else analyzes both.
func (d *Dispatcher) reportConditional(test ast.Expression, consequent, alternate ast.Statement, ctx Context) {
	d.ReportEffects(test, ctx)
	if v, ok := literalBool(test); ok {
		if v {
			d.ReportEffects(consequent, ctx)
		} else if alternate != nil {
			d.ReportEffects(alternate, ctx)
		}
		return
	}
	d.ReportEffects(consequent, ctx)
	if alternate != nil {
		d.ReportEffects(alternate, ctx)
	}
}

// reportConditionalExpr is the ternary's counterpart to reportConditional.
func (d *Dispatcher) reportConditionalExpr(n *ast.ConditionalExpression, ctx Context) {
	d.ReportEffects(n.Test, ctx)
	if v, ok := literalBool(n.Test); ok {
		if v {
			d.ReportEffects(n.Consequent, ctx)
		} else {
			d.ReportEffects(n.Alternate, ctx)
		}
		return
	}
	d.ReportEffects(n.Consequent, ctx)
	d.ReportEffects(n.Alternate, ctx)
}

// reportLogical applies the same literal-guard pruning to `&&`/`||`: when
// the left side is a literal true/false, its truthiness syntactically
// decides whether the right side ever runs.
func (d *Dispatcher) reportLogical(n *ast.LogicalExpression, ctx Context) {
	d.ReportEffects(n.Left, ctx)
	if v, ok := literalBool(n.Left); ok {
		takesRight := (n.Operator == "&&" && v) || (n.Operator == "||" && !v) || n.Operator == "??"
		if takesRight {
			d.ReportEffects(n.Right, ctx)
		}
		return
	}
	d.ReportEffects(n.Right, ctx)
}

func (d *Dispatcher) reportUnary(n *ast.UnaryExpression, ctx Context) {
	if n.Operator == "delete" {
		if mem, ok := n.Argument.(*ast.MemberExpression); ok {
			d.ReportEffectsWhenMutated(n, mem, ctx)
			return
		}
		d.emit(n, diagnostics.DeleteNonMember)
		d.ReportEffects(n.Argument, ctx)
		return
	}
	d.ReportEffects(n.Argument, ctx)
}
