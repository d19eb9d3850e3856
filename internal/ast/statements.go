package ast

// BlockStatement is a `{ ... }` statement list introducing a block scope.
type BlockStatement struct {
	Base
	Body []Statement
}

func (b *BlockStatement) statementNode() {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Base
	Expression Expression
}

func (e *ExpressionStatement) statementNode() {}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ Base }

func (e *EmptyStatement) statementNode() {}

// DebuggerStatement is the `debugger;` statement — an unconditional effect.
type DebuggerStatement struct{ Base }

func (d *DebuggerStatement) statementNode() {}

// VariableDeclarationKind distinguishes const/let/var.
type VariableDeclarationKind int

const (
	DeclConst VariableDeclarationKind = iota
	DeclLet
	DeclVar
)

// VariableDeclaration is `const|let|var a = 1, b;`.
type VariableDeclaration struct {
	Base
	Kind         VariableDeclarationKind
	Declarations []*VariableDeclarator
}

func (v *VariableDeclaration) statementNode() {}

// VariableDeclarator is one `id = init` binding within a VariableDeclaration.
type VariableDeclarator struct {
	Base
	Id   Pattern
	Init Expression // nil when there is no initializer
}

// IfStatement is `if (test) consequent else alternate`. Alternate may be nil.
type IfStatement struct {
	Base
	Test                  Expression
	Consequent, Alternate Statement
}

func (i *IfStatement) statementNode() {}

// ForStatement is the classic three-clause `for`.
type ForStatement struct {
	Base
	Init   Node // *VariableDeclaration, Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode() {}

// ForInStatement is `for (left in right) body`.
type ForInStatement struct {
	Base
	Left  Node // *VariableDeclaration or Pattern
	Right Expression
	Body  Statement
}

func (f *ForInStatement) statementNode() {}

// ForOfStatement is `for (left of right) body`.
type ForOfStatement struct {
	Base
	Left  Node // *VariableDeclaration or Pattern
	Right Expression
	Body  Statement
	Await bool
}

func (f *ForOfStatement) statementNode() {}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Base
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	Base
	Body Statement
	Test Expression
}

func (d *DoWhileStatement) statementNode() {}

// SwitchStatement is `switch (discriminant) { cases... }`.
type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStatement) statementNode() {}

// SwitchCase is one `case test:` or `default:` arm. Test is nil for default.
type SwitchCase struct {
	Base
	Test       Expression
	Consequent []Statement
}

// TryStatement is `try block catch(param) handler finally finalizer`.
// Handler and Finalizer may be nil (but not both).
type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (t *TryStatement) statementNode() {}

// CatchClause is the `catch (param) { body }` clause. Param may be nil
// (`catch { ... }`).
type CatchClause struct {
	Base
	Param Pattern
	Body  *BlockStatement
}

// ThrowStatement is `throw expr;` — an unconditional effect.
type ThrowStatement struct {
	Base
	Argument Expression
}

func (t *ThrowStatement) statementNode() {}

// ReturnStatement is `return expr;`. Argument may be nil.
type ReturnStatement struct {
	Base
	Argument Expression
}

func (r *ReturnStatement) statementNode() {}

// BreakStatement and ContinueStatement optionally carry a label.
type BreakStatement struct {
	Base
	Label *Identifier
}

func (b *BreakStatement) statementNode() {}

type ContinueStatement struct {
	Base
	Label *Identifier
}

func (c *ContinueStatement) statementNode() {}

// LabeledStatement is `label: statement`.
type LabeledStatement struct {
	Base
	Label *Identifier
	Body  Statement
}

func (l *LabeledStatement) statementNode() {}
