package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidefxlint/sidefxlint/internal/ast"
)

// callGlobalDocument encodes `ext();` — one ExpressionStatement holding a
// CallExpression whose callee is an unresolved global Identifier, with no
// variables in the module scope.
const callGlobalDocument = `{
  "program": {
    "ref": 1,
    "type": "Program",
    "body": [
      {
        "type": "ExpressionStatement",
        "expression": {
          "ref": 2,
          "type": "CallExpression",
          "callee": {"ref": 3, "type": "Identifier", "name": "ext"},
          "arguments": []
        }
      }
    ]
  },
  "scope": {
    "kind": "module",
    "variables": [],
    "children": []
  }
}`

func TestDecodeCallGlobal(t *testing.T) {
	ctx := Decode([]byte(callGlobalDocument))
	require.Empty(t, ctx.Errors)
	require.NotNil(t, ctx.Program)
	require.Len(t, ctx.Program.Body, 1)

	exprStmt, ok := ctx.Program.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "ext", callee.Name)

	require.NotNil(t, ctx.ModuleScope)
	_, found := ctx.ModuleScope.Lookup("ext")
	assert.False(t, found, "ext must not resolve locally: it is the unresolved-global case")
}

// destructuredDocument encodes `const {a} = ext;` — a single module-scope
// binding introduced via ObjectPattern, which must come back with
// FromDestructuring set so the call/mutation classifiers treat it as
// untraceable rather than recursing into a nonexistent single initializer.
const destructuredDocument = `{
  "program": {
    "type": "Program",
    "body": [
      {
        "ref": 10,
        "type": "VariableDeclaration",
        "kind": "const",
        "declarations": [
          {
            "id": {
              "type": "ObjectPattern",
              "properties": [
                {"key": {"type": "Identifier", "name": "a"}, "value": {"type": "Identifier", "name": "a"}}
              ]
            },
            "init": {"type": "Identifier", "name": "ext"}
          }
        ]
      }
    ]
  },
  "scope": {
    "kind": "module",
    "variables": [
      {
        "name": "a",
        "kind": "const",
        "fromDestructuring": true,
        "definitions": [{"nodeRef": 10}],
        "references": []
      }
    ],
    "children": []
  }
}`

func TestDecodeDestructuredBinding(t *testing.T) {
	ctx := Decode([]byte(destructuredDocument))
	require.Empty(t, ctx.Errors)

	v, found := ctx.ModuleScope.Lookup("a")
	require.True(t, found)
	assert.True(t, v.FromDestructuring)
	require.Len(t, v.Definitions, 1)
	assert.IsType(t, &ast.VariableDeclaration{}, v.Definitions[0].Node)
}

func TestDecodeMissingProgramIsError(t *testing.T) {
	ctx := Decode([]byte(`{"scope": {"kind": "module"}}`))
	assert.NotEmpty(t, ctx.Errors)
}
