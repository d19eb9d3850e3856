// Package ingest decodes the wire format a host (CLI, daemon, editor
// integration) delivers an already-parsed, already-scope-resolved module
// in. The engine itself never parses source text: this package is the one
// adapter between "JSON over the wire" and the internal/ast +
// internal/scope trees the analyzer walks.
package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/ast"
)

type rawFields = map[string]json.RawMessage

// registry resolves a node's wire-format "ref" integer back to the decoded
// ast.Node, so the scope document (which points at nodes by ref) and
// cross-references like ImportSpecifier ownership can be wired up after
// the fact without a second parse.
type registry struct {
	byRef map[int]ast.Node
}

func newRegistry() *registry { return &registry{byRef: make(map[int]ast.Node)} }

func (r *registry) record(ref int, n ast.Node) {
	if ref != 0 {
		r.byRef[ref] = n
	}
}

func (r *registry) lookup(ref int) (ast.Node, bool) {
	n, ok := r.byRef[ref]
	return n, ok
}

func fields(data json.RawMessage) (rawFields, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var m rawFields
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ingest: decoding node object: %w", err)
	}
	return m, nil
}

func strField(m rawFields, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

func boolField(m rawFields, key string) bool {
	raw, ok := m[key]
	if !ok {
		return false
	}
	var b bool
	_ = json.Unmarshal(raw, &b)
	return b
}

func intField(m rawFields, key string) int {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var n int
	_ = json.Unmarshal(raw, &n)
	return n
}

func rawListField(m rawFields, key string) ([]json.RawMessage, error) {
	raw, ok := m[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("ingest: decoding %q array: %w", key, err)
	}
	return list, nil
}

func locOf(m rawFields) ast.Loc {
	raw, ok := m["loc"]
	if !ok {
		return ast.Loc{}
	}
	var l struct {
		Start ast.Position `json:"start"`
		End   ast.Position `json:"end"`
	}
	_ = json.Unmarshal(raw, &l)
	return ast.Loc{Start: l.Start, End: l.End}
}

func commentsOf(m rawFields) []ast.Comment {
	raw, ok := m["comments"]
	if !ok {
		return nil
	}
	var cs []struct {
		Text  string `json:"text"`
		Block bool   `json:"block"`
	}
	if err := json.Unmarshal(raw, &cs); err != nil {
		return nil
	}
	out := make([]ast.Comment, len(cs))
	for i, c := range cs {
		out[i] = ast.Comment{Text: c.Text, Block: c.Block}
	}
	return out
}

func baseOf(m rawFields) ast.Base {
	return ast.Base{Loc: locOf(m), Comments: commentsOf(m)}
}
