package analyzer

import "github.com/sidefxlint/sidefxlint/internal/ast"

// reportClass handles ClassDeclaration/ClassExpression for report-effects
// *as written*: the superclass expression and every
// computed member key evaluate at declaration time; method bodies and
// class-field initializer values do not — those are deferred to
// reportClassConstructor, entered only when the class is actually `new`-ed.
// A `static { ... }` block is the one member kind that does run immediately.
func (d *Dispatcher) reportClass(superClass ast.Expression, body *ast.ClassBody, ctx Context) {
	if superClass != nil {
		d.ReportEffects(superClass, ctx)
	}
	if body == nil {
		return
	}
	for _, m := range body.Body {
		switch member := m.(type) {
		case *ast.MethodDefinition:
			if member.Computed {
				d.ReportEffects(member.Key, ctx)
			}
		case *ast.PropertyDefinition:
			if member.Computed {
				d.ReportEffects(member.Key, ctx)
			}
		case *ast.StaticBlock:
			for _, st := range member.Body {
				d.ReportEffects(st, ctx)
			}
		}
	}
}

// reportClassConstructor is the `new`-time counterpart: it runs field
// initializer values and the constructor body, with hasValidThis=true (the
// object under construction is fresh). An explicit `super()` call inside the
// body is handled by reportSuperCallee without consulting superClass; it is
// only read here for the implicit-default-constructor case below.
func (d *Dispatcher) reportClassConstructor(superClass ast.Expression, body *ast.ClassBody, ctx Context) {
	if body == nil {
		return
	}
	if !ctx.memo.enterNode(body, true) {
		return
	}

	ctorCtx := ctx
	ctorCtx.HasValidThis = true
	ctorCtx.CalledWithNew = true

	var constructor *ast.MethodDefinition
	for _, m := range body.Body {
		if md, ok := m.(*ast.MethodDefinition); ok && md.Kind == "constructor" {
			constructor = md
			break
		}
	}

	for _, m := range body.Body {
		if pd, ok := m.(*ast.PropertyDefinition); ok && pd.Value != nil {
			d.ReportEffects(pd.Value, ctorCtx)
		}
	}

	switch {
	case constructor != nil && constructor.Value != nil:
		fn := constructor.Value
		fnScope := requireChildScope(ctx.Scope, fn)
		bodyCtx := ctorCtx.WithScope(fnScope)
		for _, p := range fn.Params {
			d.reportEffectsPattern(p, bodyCtx)
		}
		d.ReportEffects(fn.Body, bodyCtx)
	case superClass != nil:
		// No explicit constructor in a derived class: the implicit default
		// constructor forwards every argument to `super(...)`.
		d.ReportEffectsWhenCalled(body, superClass, true, ctorCtx)
	}
}
