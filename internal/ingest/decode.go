package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/ast"
)

// decodeProgram decodes the top-level "program" document into an
// *ast.Program, recording every ref-tagged node into reg along the way.
func decodeProgram(data json.RawMessage, reg *registry) (*ast.Program, error) {
	n, err := decodeNode(data, reg)
	if err != nil {
		return nil, err
	}
	p, ok := n.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("ingest: top-level \"program\" must be a Program node, got %T", n)
	}
	return p, nil
}

func decodeNode(data json.RawMessage, reg *registry) (ast.Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	m, err := fields(data)
	if err != nil {
		return nil, err
	}
	kind := strField(m, "type")
	n, err := decodeByKind(kind, m, reg)
	if err != nil {
		return nil, fmt.Errorf("ingest: decoding %s node: %w", kind, err)
	}
	reg.record(intField(m, "ref"), n)
	return n, nil
}

func decodeExpr(data json.RawMessage, reg *registry) (ast.Expression, error) {
	n, err := decodeNode(data, reg)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("ingest: expected an expression node, got %T", n)
	}
	return e, nil
}

func decodeStmt(data json.RawMessage, reg *registry) (ast.Statement, error) {
	n, err := decodeNode(data, reg)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("ingest: expected a statement node, got %T", n)
	}
	return s, nil
}

func decodePattern(data json.RawMessage, reg *registry) (ast.Pattern, error) {
	n, err := decodeNode(data, reg)
	if err != nil || n == nil {
		return nil, err
	}
	p, ok := n.(ast.Pattern)
	if !ok {
		return nil, fmt.Errorf("ingest: expected a pattern node, got %T", n)
	}
	return p, nil
}

func decodeIdentifier(data json.RawMessage, reg *registry) (*ast.Identifier, error) {
	n, err := decodeNode(data, reg)
	if err != nil || n == nil {
		return nil, err
	}
	id, ok := n.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("ingest: expected an Identifier node, got %T", n)
	}
	return id, nil
}

func decodeLiteral(data json.RawMessage, reg *registry) (*ast.Literal, error) {
	n, err := decodeNode(data, reg)
	if err != nil || n == nil {
		return nil, err
	}
	l, ok := n.(*ast.Literal)
	if !ok {
		return nil, fmt.Errorf("ingest: expected a Literal node, got %T", n)
	}
	return l, nil
}

func decodeExprList(m rawFields, key string, reg *registry) ([]ast.Expression, error) {
	raws, err := rawListField(m, key)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Expression, len(raws))
	for i, r := range raws {
		e, err := decodeExpr(r, reg)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeStmtList(m rawFields, key string, reg *registry) ([]ast.Statement, error) {
	raws, err := rawListField(m, key)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Statement, len(raws))
	for i, r := range raws {
		s, err := decodeStmt(r, reg)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func decodePatternList(m rawFields, key string, reg *registry) ([]ast.Pattern, error) {
	raws, err := rawListField(m, key)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Pattern, len(raws))
	for i, r := range raws {
		if len(r) == 0 || string(r) == "null" {
			continue // elision in an array pattern
		}
		p, err := decodePattern(r, reg)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeNodeList(m rawFields, key string, reg *registry) ([]ast.Node, error) {
	raws, err := rawListField(m, key)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Node, len(raws))
	for i, r := range raws {
		n, err := decodeNode(r, reg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func decodeByKind(kind string, m rawFields, reg *registry) (ast.Node, error) {
	base := baseOf(m)
	switch kind {
	case "Program":
		body, err := decodeStmtList(m, "body", reg)
		if err != nil {
			return nil, err
		}
		return &ast.Program{Base: base, Body: body}, nil

	case "Identifier":
		return &ast.Identifier{Base: base, Name: strField(m, "name")}, nil

	case "Literal":
		l := &ast.Literal{Base: base, Value: strField(m, "value"), Bool: boolField(m, "bool")}
		switch strField(m, "kind") {
		case "string":
			l.Kind = ast.LiteralString
		case "number":
			l.Kind = ast.LiteralNumber
		case "boolean":
			l.Kind = ast.LiteralBoolean
		case "null":
			l.Kind = ast.LiteralNull
		case "regexp":
			l.Kind = ast.LiteralRegExp
		}
		// An ESTree-style boolean literal carries a JSON true/false "value"
		// and may omit "kind" and "bool".
		if raw := string(m["value"]); raw == "true" || raw == "false" {
			l.Kind = ast.LiteralBoolean
			l.Bool = raw == "true"
		}
		return l, nil

	case "ThisExpression":
		return &ast.ThisExpression{Base: base}, nil

	case "Super":
		return &ast.Super{Base: base}, nil

	case "MetaProperty":
		return &ast.MetaProperty{Base: base, Meta: strField(m, "meta"), Property: strField(m, "property")}, nil

	case "Unknown":
		return &ast.Unknown{Base: base, OriginalKind: strField(m, "originalKind")}, nil

	case "BinaryExpression", "LogicalExpression":
		left, err := decodeExpr(m["left"], reg)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(m["right"], reg)
		if err != nil {
			return nil, err
		}
		if kind == "BinaryExpression" {
			return &ast.BinaryExpression{Base: base, Operator: strField(m, "operator"), Left: left, Right: right}, nil
		}
		return &ast.LogicalExpression{Base: base, Operator: strField(m, "operator"), Left: left, Right: right}, nil

	case "AssignmentExpression":
		left, err := decodeExpr(m["left"], reg)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(m["right"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Base: base, Operator: strField(m, "operator"), Left: left, Right: right}, nil

	case "UpdateExpression", "UnaryExpression":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		if kind == "UpdateExpression" {
			return &ast.UpdateExpression{Base: base, Operator: strField(m, "operator"), Prefix: boolField(m, "prefix"), Argument: arg}, nil
		}
		return &ast.UnaryExpression{Base: base, Operator: strField(m, "operator"), Prefix: boolField(m, "prefix"), Argument: arg}, nil

	case "ConditionalExpression":
		test, err := decodeExpr(m["test"], reg)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExpr(m["consequent"], reg)
		if err != nil {
			return nil, err
		}
		alt, err := decodeExpr(m["alternate"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{Base: base, Test: test, Consequent: cons, Alternate: alt}, nil

	case "SequenceExpression":
		exprs, err := decodeExprList(m, "expressions", reg)
		if err != nil {
			return nil, err
		}
		return &ast.SequenceExpression{Base: base, Expressions: exprs}, nil

	case "TemplateLiteral":
		exprs, err := decodeExprList(m, "expressions", reg)
		if err != nil {
			return nil, err
		}
		return &ast.TemplateLiteral{Base: base, Expressions: exprs}, nil

	case "TaggedTemplateExpression":
		tag, err := decodeExpr(m["tag"], reg)
		if err != nil {
			return nil, err
		}
		quasiNode, err := decodeNode(m["quasi"], reg)
		if err != nil {
			return nil, err
		}
		quasi, _ := quasiNode.(*ast.TemplateLiteral)
		return &ast.TaggedTemplateExpression{Base: base, Tag: tag, Quasi: quasi}, nil

	case "ArrayExpression":
		raws, err := rawListField(m, "elements")
		if err != nil {
			return nil, err
		}
		elems := make([]ast.Expression, len(raws))
		for i, r := range raws {
			if len(r) == 0 || string(r) == "null" {
				continue
			}
			e, err := decodeExpr(r, reg)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return &ast.ArrayExpression{Base: base, Elements: elems}, nil

	case "ObjectExpression":
		raws, err := rawListField(m, "properties")
		if err != nil {
			return nil, err
		}
		props := make([]ast.Expression, len(raws))
		for i, r := range raws {
			e, err := decodeExpr(r, reg)
			if err != nil {
				return nil, err
			}
			props[i] = e
		}
		return &ast.ObjectExpression{Base: base, Properties: props}, nil

	case "Property":
		key, err := decodeExpr(m["key"], reg)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(m["value"], reg)
		if err != nil {
			return nil, err
		}
		k := strField(m, "kind")
		if k == "" {
			k = "init"
		}
		return &ast.Property{Base: base, Key: key, Value: value, Computed: boolField(m, "computed"), Shorthand: boolField(m, "shorthand"), Kind: k}, nil

	case "SpreadElement":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.SpreadElement{Base: base, Argument: arg}, nil

	case "AwaitExpression":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpression{Base: base, Argument: arg}, nil

	case "YieldExpression":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.YieldExpression{Base: base, Argument: arg, Delegate: boolField(m, "delegate")}, nil

	case "MemberExpression":
		obj, err := decodeExpr(m["object"], reg)
		if err != nil {
			return nil, err
		}
		prop, err := decodeExpr(m["property"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Base: base, Object: obj, Property: prop, Computed: boolField(m, "computed"), Optional: boolField(m, "optional")}, nil

	case "CallExpression":
		callee, err := decodeExpr(m["callee"], reg)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(m, "arguments", reg)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Base: base, Callee: callee, Arguments: args, Optional: boolField(m, "optional")}, nil

	case "NewExpression":
		callee, err := decodeExpr(m["callee"], reg)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(m, "arguments", reg)
		if err != nil {
			return nil, err
		}
		return &ast.NewExpression{Base: base, Callee: callee, Arguments: args}, nil

	case "FunctionDeclaration", "FunctionExpression":
		id, err := decodeIdentifier(m["id"], reg)
		if err != nil {
			return nil, err
		}
		params, err := decodePatternList(m, "params", reg)
		if err != nil {
			return nil, err
		}
		bodyNode, err := decodeNode(m["body"], reg)
		if err != nil {
			return nil, err
		}
		body, _ := bodyNode.(*ast.BlockStatement)
		if kind == "FunctionDeclaration" {
			return &ast.FunctionDeclaration{Base: base, Id: id, Params: params, Body: body}, nil
		}
		return &ast.FunctionExpression{Base: base, Id: id, Params: params, Body: body}, nil

	case "ArrowFunctionExpression":
		params, err := decodePatternList(m, "params", reg)
		if err != nil {
			return nil, err
		}
		var body *ast.BlockStatement
		var exprBody ast.Expression
		if raw, ok := m["body"]; ok && len(raw) > 0 && string(raw) != "null" {
			n, err := decodeNode(raw, reg)
			if err != nil {
				return nil, err
			}
			body, _ = n.(*ast.BlockStatement)
		}
		if raw, ok := m["expressionBody"]; ok {
			e, err := decodeExpr(raw, reg)
			if err != nil {
				return nil, err
			}
			exprBody = e
		}
		return &ast.ArrowFunctionExpression{Base: base, Params: params, Body: body, ExpressionBody: exprBody}, nil

	case "RestElement":
		arg, err := decodePattern(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.RestElement{Base: base, Argument: arg}, nil

	case "ArrayPattern":
		elems, err := decodePatternList(m, "elements", reg)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPattern{Base: base, Elements: elems}, nil

	case "ObjectPattern":
		raws, err := rawListField(m, "properties")
		if err != nil {
			return nil, err
		}
		props := make([]*ast.ObjectPatternProperty, len(raws))
		for i, r := range raws {
			pm, err := fields(r)
			if err != nil {
				return nil, err
			}
			var key ast.Expression
			if raw, ok := pm["key"]; ok {
				key, err = decodeExpr(raw, reg)
				if err != nil {
					return nil, err
				}
			}
			value, err := decodePattern(pm["value"], reg)
			if err != nil {
				return nil, err
			}
			props[i] = &ast.ObjectPatternProperty{
				Base:     baseOf(pm),
				Key:      key,
				Value:    value,
				Computed: boolField(pm, "computed"),
				Rest:     boolField(pm, "rest"),
			}
		}
		return &ast.ObjectPattern{Base: base, Properties: props}, nil

	case "AssignmentPattern":
		left, err := decodePattern(m["left"], reg)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(m["right"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentPattern{Base: base, Left: left, Right: right}, nil

	case "BlockStatement":
		body, err := decodeStmtList(m, "body", reg)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Base: base, Body: body}, nil

	case "ExpressionStatement":
		expr, err := decodeExpr(m["expression"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Base: base, Expression: expr}, nil

	case "EmptyStatement":
		return &ast.EmptyStatement{Base: base}, nil

	case "DebuggerStatement":
		return &ast.DebuggerStatement{Base: base}, nil

	case "VariableDeclaration":
		declRaws, err := rawListField(m, "declarations")
		if err != nil {
			return nil, err
		}
		decls := make([]*ast.VariableDeclarator, len(declRaws))
		for i, r := range declRaws {
			dm, err := fields(r)
			if err != nil {
				return nil, err
			}
			id, err := decodePattern(dm["id"], reg)
			if err != nil {
				return nil, err
			}
			var init ast.Expression
			if raw, ok := dm["init"]; ok {
				init, err = decodeExpr(raw, reg)
				if err != nil {
					return nil, err
				}
			}
			decls[i] = &ast.VariableDeclarator{Base: baseOf(dm), Id: id, Init: init}
		}
		v := &ast.VariableDeclaration{Base: base, Declarations: decls}
		switch strField(m, "kind") {
		case "let":
			v.Kind = ast.DeclLet
		case "var":
			v.Kind = ast.DeclVar
		default:
			v.Kind = ast.DeclConst
		}
		return v, nil

	case "IfStatement":
		test, err := decodeExpr(m["test"], reg)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmt(m["consequent"], reg)
		if err != nil {
			return nil, err
		}
		var alt ast.Statement
		if raw, ok := m["alternate"]; ok {
			alt, err = decodeStmt(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		return &ast.IfStatement{Base: base, Test: test, Consequent: cons, Alternate: alt}, nil

	case "ForStatement":
		var init ast.Node
		var err error
		if raw, ok := m["init"]; ok {
			init, err = decodeNode(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		var test, update ast.Expression
		if raw, ok := m["test"]; ok {
			if test, err = decodeExpr(raw, reg); err != nil {
				return nil, err
			}
		}
		if raw, ok := m["update"]; ok {
			if update, err = decodeExpr(raw, reg); err != nil {
				return nil, err
			}
		}
		body, err := decodeStmt(m["body"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Base: base, Init: init, Test: test, Update: update, Body: body}, nil

	case "ForInStatement", "ForOfStatement":
		left, err := decodeNode(m["left"], reg)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(m["right"], reg)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(m["body"], reg)
		if err != nil {
			return nil, err
		}
		if kind == "ForInStatement" {
			return &ast.ForInStatement{Base: base, Left: left, Right: right, Body: body}, nil
		}
		return &ast.ForOfStatement{Base: base, Left: left, Right: right, Body: body, Await: boolField(m, "await")}, nil

	case "WhileStatement":
		test, err := decodeExpr(m["test"], reg)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(m["body"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Base: base, Test: test, Body: body}, nil

	case "DoWhileStatement":
		body, err := decodeStmt(m["body"], reg)
		if err != nil {
			return nil, err
		}
		test, err := decodeExpr(m["test"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.DoWhileStatement{Base: base, Body: body, Test: test}, nil

	case "SwitchStatement":
		disc, err := decodeExpr(m["discriminant"], reg)
		if err != nil {
			return nil, err
		}
		caseRaws, err := rawListField(m, "cases")
		if err != nil {
			return nil, err
		}
		cases := make([]*ast.SwitchCase, len(caseRaws))
		for i, r := range caseRaws {
			cm, err := fields(r)
			if err != nil {
				return nil, err
			}
			var test ast.Expression
			if raw, ok := cm["test"]; ok {
				test, err = decodeExpr(raw, reg)
				if err != nil {
					return nil, err
				}
			}
			cons, err := decodeStmtList(cm, "consequent", reg)
			if err != nil {
				return nil, err
			}
			cases[i] = &ast.SwitchCase{Base: baseOf(cm), Test: test, Consequent: cons}
		}
		return &ast.SwitchStatement{Base: base, Discriminant: disc, Cases: cases}, nil

	case "TryStatement":
		blockNode, err := decodeNode(m["block"], reg)
		if err != nil {
			return nil, err
		}
		block, _ := blockNode.(*ast.BlockStatement)
		var handler *ast.CatchClause
		if raw, ok := m["handler"]; ok && len(raw) > 0 && string(raw) != "null" {
			hm, err := fields(raw)
			if err != nil {
				return nil, err
			}
			var param ast.Pattern
			if praw, ok := hm["param"]; ok && len(praw) > 0 && string(praw) != "null" {
				param, err = decodePattern(praw, reg)
				if err != nil {
					return nil, err
				}
			}
			hbodyNode, err := decodeNode(hm["body"], reg)
			if err != nil {
				return nil, err
			}
			hbody, _ := hbodyNode.(*ast.BlockStatement)
			handler = &ast.CatchClause{Base: baseOf(hm), Param: param, Body: hbody}
			reg.record(intField(hm, "ref"), handler)
		}
		var finalizer *ast.BlockStatement
		if raw, ok := m["finalizer"]; ok && len(raw) > 0 && string(raw) != "null" {
			fn, err := decodeNode(raw, reg)
			if err != nil {
				return nil, err
			}
			finalizer, _ = fn.(*ast.BlockStatement)
		}
		return &ast.TryStatement{Base: base, Block: block, Handler: handler, Finalizer: finalizer}, nil

	case "ThrowStatement":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{Base: base, Argument: arg}, nil

	case "ReturnStatement":
		var arg ast.Expression
		var err error
		if raw, ok := m["argument"]; ok {
			arg, err = decodeExpr(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ReturnStatement{Base: base, Argument: arg}, nil

	case "BreakStatement", "ContinueStatement":
		var label *ast.Identifier
		var err error
		if raw, ok := m["label"]; ok {
			label, err = decodeIdentifier(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		if kind == "BreakStatement" {
			return &ast.BreakStatement{Base: base, Label: label}, nil
		}
		return &ast.ContinueStatement{Base: base, Label: label}, nil

	case "LabeledStatement":
		label, err := decodeIdentifier(m["label"], reg)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(m["body"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStatement{Base: base, Label: label, Body: body}, nil

	case "ClassDeclaration", "ClassExpression":
		id, err := decodeIdentifier(m["id"], reg)
		if err != nil {
			return nil, err
		}
		var super ast.Expression
		if raw, ok := m["superClass"]; ok {
			super, err = decodeExpr(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		bodyNode, err := decodeNode(m["body"], reg)
		if err != nil {
			return nil, err
		}
		body, _ := bodyNode.(*ast.ClassBody)
		if kind == "ClassDeclaration" {
			return &ast.ClassDeclaration{Base: base, Id: id, SuperClass: super, Body: body}, nil
		}
		return &ast.ClassExpression{Base: base, Id: id, SuperClass: super, Body: body}, nil

	case "ClassBody":
		members, err := decodeNodeList(m, "body", reg)
		if err != nil {
			return nil, err
		}
		return &ast.ClassBody{Base: base, Body: members}, nil

	case "MethodDefinition":
		key, err := decodeExpr(m["key"], reg)
		if err != nil {
			return nil, err
		}
		valueNode, err := decodeNode(m["value"], reg)
		if err != nil {
			return nil, err
		}
		value, _ := valueNode.(*ast.FunctionExpression)
		k := strField(m, "kind")
		if k == "" {
			k = "method"
		}
		return &ast.MethodDefinition{Base: base, Key: key, Value: value, Kind: k, Static: boolField(m, "static"), Computed: boolField(m, "computed")}, nil

	case "PropertyDefinition":
		key, err := decodeExpr(m["key"], reg)
		if err != nil {
			return nil, err
		}
		var value ast.Expression
		if raw, ok := m["value"]; ok {
			value, err = decodeExpr(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		return &ast.PropertyDefinition{Base: base, Key: key, Value: value, Static: boolField(m, "static"), Computed: boolField(m, "computed")}, nil

	case "StaticBlock":
		body, err := decodeStmtList(m, "body", reg)
		if err != nil {
			return nil, err
		}
		return &ast.StaticBlock{Base: base, Body: body}, nil

	case "ImportDeclaration":
		var source *ast.Literal
		var err error
		if raw, ok := m["source"]; ok {
			source, err = decodeLiteral(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		decl := &ast.ImportDeclaration{Base: base, Source: source}
		specRaws, err := rawListField(m, "specifiers")
		if err != nil {
			return nil, err
		}
		specs := make([]*ast.ImportSpecifier, len(specRaws))
		for i, r := range specRaws {
			sm, err := fields(r)
			if err != nil {
				return nil, err
			}
			local, err := decodeIdentifier(sm["local"], reg)
			if err != nil {
				return nil, err
			}
			var imported *ast.Identifier
			if raw, ok := sm["imported"]; ok {
				imported, err = decodeIdentifier(raw, reg)
				if err != nil {
					return nil, err
				}
			}
			spec := &ast.ImportSpecifier{Base: baseOf(sm), Local: local, Imported: imported, DeclarationOwner: decl}
			switch strField(sm, "kind") {
			case "default":
				spec.Kind = ast.ImportDefault
			case "namespace":
				spec.Kind = ast.ImportNamespace
			default:
				spec.Kind = ast.ImportNamed
			}
			reg.record(intField(sm, "ref"), spec)
			specs[i] = spec
		}
		decl.Specifiers = specs
		return decl, nil

	case "ExportNamedDeclaration":
		var declStmt ast.Statement
		var err error
		if raw, ok := m["declaration"]; ok && len(raw) > 0 && string(raw) != "null" {
			declStmt, err = decodeStmt(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		var source *ast.Literal
		if raw, ok := m["source"]; ok {
			source, err = decodeLiteral(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		specRaws, err := rawListField(m, "specifiers")
		if err != nil {
			return nil, err
		}
		specs := make([]*ast.ExportSpecifier, len(specRaws))
		for i, r := range specRaws {
			sm, err := fields(r)
			if err != nil {
				return nil, err
			}
			local, err := decodeIdentifier(sm["local"], reg)
			if err != nil {
				return nil, err
			}
			exported, err := decodeIdentifier(sm["exported"], reg)
			if err != nil {
				return nil, err
			}
			specs[i] = &ast.ExportSpecifier{Base: baseOf(sm), Local: local, Exported: exported}
		}
		return &ast.ExportNamedDeclaration{Base: base, Declaration: declStmt, Specifiers: specs, Source: source}, nil

	case "ExportDefaultDeclaration":
		decl, err := decodeNode(m["declaration"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ExportDefaultDeclaration{Base: base, Declaration: decl}, nil

	case "ExportAllDeclaration":
		var exported *ast.Identifier
		var err error
		if raw, ok := m["exported"]; ok {
			exported, err = decodeIdentifier(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		source, err := decodeLiteral(m["source"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.ExportAllDeclaration{Base: base, Exported: exported, Source: source}, nil

	case "JSXIdentifier":
		return &ast.JSXIdentifier{Base: base, Name: strField(m, "name")}, nil

	case "JSXElement":
		name, err := decodeExpr(m["name"], reg)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeNodeList(m, "attributes", reg)
		if err != nil {
			return nil, err
		}
		children, err := decodeNodeList(m, "children", reg)
		if err != nil {
			return nil, err
		}
		return &ast.JSXElement{Base: base, Name: name, Attributes: attrs, Children: children, SelfClosing: boolField(m, "selfClosing")}, nil

	case "JSXFragment":
		children, err := decodeNodeList(m, "children", reg)
		if err != nil {
			return nil, err
		}
		return &ast.JSXFragment{Base: base, Children: children}, nil

	case "JSXAttribute":
		nameNode, err := decodeNode(m["name"], reg)
		if err != nil {
			return nil, err
		}
		name, _ := nameNode.(*ast.JSXIdentifier)
		var value ast.Expression
		if raw, ok := m["value"]; ok {
			value, err = decodeExpr(raw, reg)
			if err != nil {
				return nil, err
			}
		}
		return &ast.JSXAttribute{Base: base, Name: name, Value: value}, nil

	case "JSXSpreadAttribute":
		arg, err := decodeExpr(m["argument"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.JSXSpreadAttribute{Base: base, Argument: arg}, nil

	case "JSXExpressionContainer":
		expr, err := decodeExpr(m["expression"], reg)
		if err != nil {
			return nil, err
		}
		return &ast.JSXExpressionContainer{Base: base, Expression: expr}, nil

	case "JSXText":
		return &ast.JSXText{Base: base, Value: strField(m, "value")}, nil

	case "JSXEmptyExpression":
		return &ast.JSXEmptyExpression{Base: base}, nil

	default:
		return &ast.Unknown{Base: base, OriginalKind: kind}, nil
	}
}
