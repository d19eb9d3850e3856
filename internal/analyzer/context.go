// Package analyzer implements the side-effect inference engine: the
// dispatcher, call analysis, and parameter-flow analysis, threaded through
// an immutable Context and a mutable per-analysis Memo that bounds
// re-entry.
package analyzer

import (
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// Context is the immutable record threaded through the walk. Copy it by
// value when recursing into a different lexical/call context;
// never mutate a Context in place.
type Context struct {
	Scope         *scope.Scope
	HasValidThis  bool
	CalledWithNew bool
	memo          *memo
}

// WithScope returns a copy of c scoped to s.
func (c Context) WithScope(s *scope.Scope) Context {
	c.Scope = s
	return c
}

// asUncalledArgs is the context arguments are analyzed under: report-effects
// as written, never a called/mutated query by themselves, and always with
// hasValidThis=false since an argument expression's `this` is never the
// enclosing constructor's.
func (c Context) asUncalledArgs() Context {
	c.HasValidThis = false
	return c
}

// memo is the pair of "already re-entered" sets gating re-analysis of a
// function/class body under a given call mode, keyed by BindingID where the
// callee came from a variable, or by node identity for a directly-called
// function/class expression that has no binding of its own.
type memo struct {
	bindingsByMode [2]map[scope.BindingID]bool
	nodesByMode    [2]map[ast.Node]bool
}

func newMemo() *memo {
	return &memo{
		bindingsByMode: [2]map[scope.BindingID]bool{
			{}, {},
		},
		nodesByMode: [2]map[ast.Node]bool{
			{}, {},
		},
	}
}

func modeIndex(calledWithNew bool) int {
	if calledWithNew {
		return 1
	}
	return 0
}

// enterBinding returns true the first time (id, calledWithNew) is seen and
// marks it seen; false on every subsequent attempt, which callers must
// treat as "skip re-entry".
func (m *memo) enterBinding(id scope.BindingID, calledWithNew bool) bool {
	set := m.bindingsByMode[modeIndex(calledWithNew)]
	if set[id] {
		return false
	}
	set[id] = true
	return true
}

// enterNode is enterBinding's counterpart for callees with no variable
// binding (e.g. an immediately-invoked function expression).
func (m *memo) enterNode(n ast.Node, calledWithNew bool) bool {
	set := m.nodesByMode[modeIndex(calledWithNew)]
	if set[n] {
		return false
	}
	set[n] = true
	return true
}
