package analyzer

import (
	"sort"

	"github.com/google/uuid"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
	"github.com/sidefxlint/sidefxlint/internal/purity"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// Dispatcher is the sole driver of the walk: it consults the resolver and
// purity oracle as pure queries and emits into the sink. A
// Dispatcher owns no state beyond its oracle and sink, so running several
// Dispatchers concurrently (one per Analyze call) over the same Oracle is
// safe.
type Dispatcher struct {
	oracle *purity.Oracle
	sink   *diagnostics.Sink
	// paramFlow caches computeParamFlow's per-(function, call-mode) scan
	// result, so every call site to the same function consults it without
	// re-walking the body.
	paramFlow map[paramFlowKey]map[string]paramEffect
}

// Analyze runs the engine once over program, scoped at moduleScope (the
// scope graph's `module` scope for this file), and returns every diagnostic
// found, in source order. All analysis state — the Memo sets and the sink
// — is created here and discarded on return.
func Analyze(program *ast.Program, moduleScope *scope.Scope, oracle *purity.Oracle) []diagnostics.Diagnostic {
	runID := uuid.NewString()
	d := &Dispatcher{oracle: oracle, sink: diagnostics.NewSink(runID)}
	ctx := Context{Scope: moduleScope, HasValidThis: false, CalledWithNew: false, memo: newMemo()}
	d.ReportEffects(program, ctx)
	diags := d.sink.All()
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Node.GetLoc().Start, diags[j].Node.GetLoc().Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return diags
}

func (d *Dispatcher) emit(n ast.Node, message string) {
	d.sink.Add(n, message)
}
