package ast

// ImportDeclaration is `import spec, {spec2} from "source";`. A bare import
// (`import "source";`) has an empty Specifiers list.
type ImportDeclaration struct {
	Base
	Specifiers []*ImportSpecifier
	Source     *Literal
}

func (i *ImportDeclaration) statementNode() {}

// ImportSpecifier is the common shape of the three import-binding forms;
// Kind distinguishes them since they resolve/print differently.
type ImportSpecifier struct {
	Base
	Kind  ImportSpecifierKind
	Local *Identifier
	// Imported is the exported name being bound; nil for Default/Namespace.
	Imported *Identifier
	// DeclarationOwner is the *ImportDeclaration this specifier belongs to,
	// set by the ingestion layer. The resolver uses it to recover the
	// module specifier a binding came from.
	DeclarationOwner Node
}

type ImportSpecifierKind int

const (
	ImportNamed ImportSpecifierKind = iota
	ImportDefault
	ImportNamespace
)

// ExportNamedDeclaration covers `export const x = ...;`,
// `export function f() {}`, and `export {a, b as c};` (Declaration nil,
// Specifiers populated instead).
type ExportNamedDeclaration struct {
	Base
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *Literal // non-nil for re-exports: `export {a} from "x"`
}

func (e *ExportNamedDeclaration) statementNode() {}

// ExportSpecifier is one `local as exported` entry of an
// ExportNamedDeclaration's specifier list.
type ExportSpecifier struct {
	Base
	Local    *Identifier
	Exported *Identifier
}

// ExportDefaultDeclaration is `export default <expr-or-decl>;`.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node // Expression, *FunctionDeclaration, or *ClassDeclaration
}

func (e *ExportDefaultDeclaration) statementNode() {}

// ExportAllDeclaration is `export * from "source";` or
// `export * as ns from "source";`.
type ExportAllDeclaration struct {
	Base
	Exported *Identifier // nil for the bare `export * from` form
	Source   *Literal
}

func (e *ExportAllDeclaration) statementNode() {}
