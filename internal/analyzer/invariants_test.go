package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidefxlint/sidefxlint/internal/analyzer"
	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/purity"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// A scope graph that declares a function but never attaches a child scope
// to its FunctionDeclaration node is malformed input from the host, not a
// user-code condition.
func TestMissingChildScopePanics(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		Id:     &ast.Identifier{Name: "f"},
		Params: nil,
		Body:   &ast.BlockStatement{},
	}
	call := &ast.CallExpression{
		Callee:    &ast.Identifier{Name: "f"},
		Arguments: nil,
	}
	program := &ast.Program{Body: []ast.Statement{
		fn,
		&ast.ExpressionStatement{Expression: call},
	}}

	module := scope.NewScope(scope.Module, nil)
	module.Variables["f"] = &scope.Variable{
		Name:        "f",
		Kind:        scope.FunctionDecl,
		Scope:       module,
		Definitions: []*scope.Definition{{Node: fn}},
	}
	// Deliberately no module.Children[fn] entry.

	assert.Panics(t, func() {
		analyzer.Analyze(program, module, purity.NewOracle(nil))
	})
}

// An assignment whose left-hand side is none of Identifier, MemberExpression,
// or ThisExpression cannot come from a syntactically valid parse of `=`'s
// grammar; it indicates a malformed AST from the host.
func TestMalformedAssignmentTargetPanics(t *testing.T) {
	assign := &ast.AssignmentExpression{
		Operator: "=",
		Left:     &ast.Literal{Value: "1"},
		Right:    &ast.Literal{Value: "2"},
	}
	program := &ast.Program{Body: []ast.Statement{
		&ast.ExpressionStatement{Expression: assign},
	}}

	module := scope.NewScope(scope.Module, nil)

	assert.Panics(t, func() {
		analyzer.Analyze(program, module, purity.NewOracle(nil))
	})
}
