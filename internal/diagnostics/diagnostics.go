// Package diagnostics defines the fixed message vocabulary the engine
// emits and an ordered, append-only sink to collect them. Wording is part
// of the contract: downstream tooling matches on the Message string, so
// the constants below must not be paraphrased.
package diagnostics

import "github.com/sidefxlint/sidefxlint/internal/ast"

const (
	CallingGlobal          = "Cannot determine side-effects of calling global function"
	CallingMember          = "Cannot determine side-effects of calling member function"
	CallingParameter       = "Cannot determine side-effects of calling function parameter"
	CallingCallResult      = "Cannot determine side-effects of calling function return value"
	CallingImport          = "Cannot determine side-effects of calling imported function"
	CallingUnknownVariable = "Cannot determine side-effects of calling destructured variable"
	CallingSuper           = "Cannot determine side-effects of calling super"
	CallingLiteral         = "Cannot determine side-effects of calling a literal value"

	AssignmentToGlobal = "Cannot determine side-effects of assignment to global variable"
	MutatingGlobal     = "Cannot determine side-effects of mutating global variable"
	MutatingImport     = "Cannot determine side-effects of mutating imported variable"
	MutatingParameter  = "Cannot determine side-effects of mutating function parameter"
	MutatingCallResult = "Cannot determine side-effects of mutating function return value"
	MutatingUnknownVar = "Cannot determine side-effects of mutating destructured variable"
	MutatingMember     = "Cannot determine side-effects of mutating member"
	MutatingUnknownThis = "Cannot determine side-effects of mutating unknown this value"

	IteratingOverIterable = "Cannot determine side-effects of iterating over an iterable"
	DeleteNonMember        = "Cannot determine side-effects of deleting anything but a MemberExpression"

	ArrowCalledWithNew = `Calling an arrow function with "new" is a side-effect`
	Debugger           = "Debugger statements are side-effects"
	Throwing           = "Throwing an error is a side-effect"

	// CannotDetermineGeneric is emitted for report-effects-when-called /
	// report-effects-when-mutated queries against a node kind the
	// dispatcher does not recognize (unknown kinds still answer
	// called/mutated queries, conservatively), for a callee shape outside
	// the classified callee forms, and for a class called without `new`.
	CannotDetermineGeneric = "Cannot determine side-effects of an unrecognized construct"
)

// Diagnostic is a single finding: the node it was raised against and the
// fixed message describing the effect.
type Diagnostic struct {
	Node    ast.Node
	Message string
	// RunID correlates every diagnostic from one Analyze() call back to a
	// single analysis, for hosts that log a batch of diagnostics (CLI run,
	// daemon request) and want to group them.
	RunID string
}

// Sink is an ordered, append-only diagnostic list. Diagnostics never
// short-circuit the walk: the engine keeps recursing after every Add call.
type Sink struct {
	diagnostics []Diagnostic
	runID       string
}

// NewSink creates an empty sink tagging every diagnostic it collects with
// runID.
func NewSink(runID string) *Sink {
	return &Sink{runID: runID}
}

// Add appends a diagnostic at the given node with the given fixed message.
func (s *Sink) Add(node ast.Node, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Node: node, Message: message, RunID: s.runID})
}

// All returns the diagnostics collected so far, in the order they were added.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}
