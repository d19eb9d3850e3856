package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/scope"
)

// Context threads a module's ingestion state through the pipeline stages,
// the way the host toolchain's own PipelineContext threads a lexer/parser
// result through its stages. A stage records a failure by appending to
// Errors rather than panicking. Decoding stops at the first malformed node,
// and the scope stage does not run once Errors is non-empty, so a failed
// document carries one error.
type Context struct {
	// Document is the raw wire-format bytes given to Decode.
	Document []byte

	Program     *ast.Program
	ModuleScope *scope.Scope

	Errors []error
}

func (c Context) fail(err error) Context {
	c.Errors = append(c.Errors, err)
	return c
}

// wireDocument is the top-level shape a host sends: an already-parsed
// program tree plus the scope-resolution pass's output over it.
type wireDocument struct {
	Program json.RawMessage `json:"program"`
	Scope   json.RawMessage `json:"scope"`
}

// asExpression narrows n to ast.Expression, reporting false for node kinds
// that can occur as a definition/reference target but never as a value
// (e.g. a Pattern in a for-in left-hand side).
func asExpression(n ast.Node) (ast.Expression, bool) {
	e, ok := n.(ast.Expression)
	return e, ok
}

func parseDocument(data []byte) (wireDocument, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("ingest: decoding document envelope: %w", err)
	}
	return doc, nil
}
