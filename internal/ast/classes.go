package ast

// ClassDeclaration is `class Name extends Super { ... }` at statement
// position. Id is nil for `export default class { ... }`.
type ClassDeclaration struct {
	Base
	Id         *Identifier
	SuperClass Expression // nil when there is no `extends` clause
	Body       *ClassBody
}

func (c *ClassDeclaration) statementNode() {}

// ClassExpression is a class value, named or anonymous.
type ClassExpression struct {
	Base
	Id         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (c *ClassExpression) expressionNode() {}

// ClassBody holds the member list of a class.
type ClassBody struct {
	Base
	Body []Node // *MethodDefinition, *PropertyDefinition, or *StaticBlock
}

// MethodDefinition is a method, getter, setter, or constructor.
type MethodDefinition struct {
	Base
	Key      Expression
	Value    *FunctionExpression
	Kind     string // "method", "get", "set", "constructor"
	Static   bool
	Computed bool
}

// PropertyDefinition is a class field: `key = value;` or a static block
// target, with or without an initializer.
type PropertyDefinition struct {
	Base
	Key      Expression
	Value    Expression // nil when the field has no initializer
	Static   bool
	Computed bool
}

// StaticBlock is a `static { ... }` class initialization block; its body
// runs at class-declaration time like computed keys, not at instance
// construction time.
type StaticBlock struct {
	Base
	Body []Statement
}
