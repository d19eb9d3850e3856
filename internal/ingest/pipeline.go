package ingest

import (
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/pipeline"
)

// decodeProgramStage parses the wire document's envelope and AST tree,
// populating Context.Program and the shared node registry the scope stage
// consumes next.
type decodeProgramStage struct {
	reg *registry
}

func (s *decodeProgramStage) Process(ctx Context) Context {
	doc, err := parseDocument(ctx.Document)
	if err != nil {
		return ctx.fail(err)
	}
	program, err := decodeProgram(doc.Program, s.reg)
	if err != nil {
		return ctx.fail(err)
	}
	ctx.Program = program
	return ctx
}

// decodeScopeStage builds the scope.Scope tree the document's "scope"
// section describes, resolving its node references against the registry
// the previous stage populated.
type decodeScopeStage struct {
	reg *registry
}

func (s *decodeScopeStage) Process(ctx Context) Context {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	doc, err := parseDocument(ctx.Document)
	if err != nil {
		return ctx.fail(err)
	}
	w, err := decodeScopeDoc(doc.Scope)
	if err != nil {
		return ctx.fail(err)
	}
	ctx.ModuleScope = buildScope(w, nil, s.reg)
	return ctx
}

// Decode runs a wire-format document (a host-supplied parse result, never
// raw source text) through the ingestion pipeline and returns the
// populated Context. Callers should check Context.Errors before using
// Program/ModuleScope.
func Decode(document []byte) Context {
	reg := newRegistry()
	p := pipeline.New[Context](
		&decodeProgramStage{reg: reg},
		&decodeScopeStage{reg: reg},
	)
	ctx := p.Run(Context{Document: document})
	if ctx.Program == nil && len(ctx.Errors) == 0 {
		ctx = ctx.fail(fmt.Errorf("ingest: document produced no program"))
	}
	return ctx
}
