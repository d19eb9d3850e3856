// Package scope models the lexical scope tree and variable bindings that a
// parser's scope-resolution pass attaches to an AST. The engine treats
// this tree as immutable input alongside the AST; nothing in
// internal/analyzer mutates it.
package scope

import "github.com/sidefxlint/sidefxlint/internal/ast"

// Kind is the kind of a lexical scope.
type Kind int

const (
	Global Kind = iota
	Module
	Function
	Block
	Class
	Catch
)

// DeclKind is how a binding was introduced.
type DeclKind int

const (
	Const DeclKind = iota
	Let
	Var
	FunctionDecl
	ClassDecl
	Parameter
	Import
)

// Scope is one node of the lexical scope tree.
type Scope struct {
	Kind      Kind
	Parent    *Scope
	Variables map[string]*Variable
	Children  map[ast.Node]*Scope
}

// NewScope creates an empty scope linked to parent (nil for the global
// scope).
func NewScope(kind Kind, parent *Scope) *Scope {
	return &Scope{
		Kind:      kind,
		Parent:    parent,
		Variables: make(map[string]*Variable),
		Children:  make(map[ast.Node]*Scope),
	}
}

// ChildFor returns the scope introduced by the given syntactic block (e.g. a
// *ast.BlockStatement, *ast.FunctionDeclaration), or nil if that block
// introduces no scope of its own.
func (s *Scope) ChildFor(n ast.Node) *Scope {
	if s == nil {
		return nil
	}
	return s.Children[n]
}

// Lookup finds name by walking from s outward, stopping before crossing the
// global scope boundary: a binding found only at Global is reported as a
// global, never as a resolved Variable.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for cur := s; cur != nil && cur.Kind != Global; cur = cur.Parent {
		if v, ok := cur.Variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Variable is a single declared name within a Scope.
type Variable struct {
	Name        string
	Kind        DeclKind
	Scope       *Scope
	Definitions []*Definition
	References  []*Reference
	// FromDestructuring marks a binding introduced through an ArrayPattern
	// or ObjectPattern element (`const {a} = ext;`) rather than a plain
	// `const a = ...;` declarator. The engine cannot follow the projection
	// through the pattern back to a single initializer expression, so such
	// bindings are reported as calling/mutating a destructured variable
	// rather than recursing into a (nonexistent) single writeExpr.
	FromDestructuring bool
}

// Definition points at the declaration site of a binding, and its
// initializer expression when the declaration form has one.
type Definition struct {
	Node        ast.Node
	Initializer ast.Expression // nil for e.g. `let x;` or a bare parameter
}

// Reference is one use site of a Variable.
type Reference struct {
	Node      ast.Node // the Identifier at the use site
	WriteExpr ast.Expression // non-nil when this reference is a write (the RHS)
}

// BindingID is a stable, pointer-free identity for a Variable, used as a
// memoization key. Two lookups of the same declared name in the same scope
// always produce the same BindingID even across separate Scope walks.
type BindingID struct {
	ScopeID uintptr
	Name    string
}

// ID returns v's BindingID, keyed on the defining scope's address and name.
func (v *Variable) ID() BindingID {
	return BindingID{ScopeID: scopeAddr(v.Scope), Name: v.Name}
}
