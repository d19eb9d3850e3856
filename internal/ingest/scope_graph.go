package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/scope"
)

type wireScope struct {
	Kind      string           `json:"kind"`
	AtNodeRef int              `json:"atNodeRef"`
	Variables []wireVariable   `json:"variables"`
	Children  []wireScope      `json:"children"`
}

type wireVariable struct {
	Name              string           `json:"name"`
	Kind              string           `json:"kind"`
	FromDestructuring bool             `json:"fromDestructuring"`
	Definitions       []wireDefinition `json:"definitions"`
	References        []wireReference  `json:"references"`
}

type wireDefinition struct {
	NodeRef        int `json:"nodeRef"`
	InitializerRef int `json:"initializerRef"`
}

type wireReference struct {
	NodeRef      int `json:"nodeRef"`
	WriteExprRef int `json:"writeExprRef"`
}

func decodeScopeDoc(data json.RawMessage) (wireScope, error) {
	var w wireScope
	if len(data) == 0 || string(data) == "null" {
		return w, fmt.Errorf("ingest: \"scope\" document is required")
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("ingest: decoding scope document: %w", err)
	}
	return w, nil
}

func scopeKindOf(s string) scope.Kind {
	switch s {
	case "module":
		return scope.Module
	case "function":
		return scope.Function
	case "block":
		return scope.Block
	case "class":
		return scope.Class
	case "catch":
		return scope.Catch
	default:
		return scope.Global
	}
}

func declKindOf(s string) scope.DeclKind {
	switch s {
	case "let":
		return scope.Let
	case "var":
		return scope.Var
	case "function":
		return scope.FunctionDecl
	case "class":
		return scope.ClassDecl
	case "parameter":
		return scope.Parameter
	case "import":
		return scope.Import
	default:
		return scope.Const
	}
}

// buildScope recursively instantiates the scope.Scope tree described by w,
// attaching each child at the ast.Node its atNodeRef resolves to in reg so
// Scope.ChildFor works for the analyzer exactly like a parser's own
// scope-resolution pass would have left it.
func buildScope(w wireScope, parent *scope.Scope, reg *registry) *scope.Scope {
	s := scope.NewScope(scopeKindOf(w.Kind), parent)
	for _, wv := range w.Variables {
		v := &scope.Variable{
			Name:              wv.Name,
			Kind:              declKindOf(wv.Kind),
			Scope:             s,
			FromDestructuring: wv.FromDestructuring,
		}
		for _, wd := range wv.Definitions {
			node, ok := reg.lookup(wd.NodeRef)
			if !ok {
				continue
			}
			def := &scope.Definition{Node: node}
			if wd.InitializerRef != 0 {
				if initNode, ok := reg.lookup(wd.InitializerRef); ok {
					if e, ok := asExpression(initNode); ok {
						def.Initializer = e
					}
				}
			}
			v.Definitions = append(v.Definitions, def)
		}
		for _, wr := range wv.References {
			node, ok := reg.lookup(wr.NodeRef)
			if !ok {
				continue
			}
			ref := &scope.Reference{Node: node}
			if wr.WriteExprRef != 0 {
				if writeNode, ok := reg.lookup(wr.WriteExprRef); ok {
					if e, ok := asExpression(writeNode); ok {
						ref.WriteExpr = e
					}
				}
			}
			v.References = append(v.References, ref)
		}
		s.Variables[wv.Name] = v
	}
	for _, wc := range w.Children {
		child := buildScope(wc, s, reg)
		if atNode, ok := reg.lookup(wc.AtNodeRef); ok {
			s.Children[atNode] = child
		}
	}
	return s
}
