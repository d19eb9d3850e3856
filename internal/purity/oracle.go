package purity

import "github.com/sidefxlint/sidefxlint/internal/ast"

// Oracle answers "is this callee known pure?". It is stateless
// beyond the user-supplied configuration, so one Oracle can be shared
// across concurrent analyses.
type Oracle struct {
	entries []Entry
}

// NewOracle builds an Oracle from user configuration. A nil or empty slice
// is valid: the Oracle still answers from the static allow-list and inline
// comment markers alone.
func NewOracle(entries []Entry) *Oracle {
	return &Oracle{entries: entries}
}

// IsGlobalPure answers step 1 of the decision order for a bare dotted
// global path (e.g. "Math.floor", "ext"). It also consults the user's
// Function-keyed config entries, since those are globals too.
func (o *Oracle) IsGlobalPure(dottedPath string) bool {
	if isAllowListedPath(dottedPath) {
		return true
	}
	for _, e := range o.entries {
		if e.Function != "" && e.Function == dottedPath {
			return true
		}
	}
	return false
}

// IsModuleExportPure answers step 4 of the decision order for a resolved
// import: (module specifier, exported name). isRelative tells the oracle
// whether module looks like a relative specifier, for "#local" matching.
func (o *Oracle) IsModuleExportPure(module, name string, isRelative bool) bool {
	for _, e := range o.entries {
		if e.matchesModuleExport(module, name, isRelative) {
			return true
		}
	}
	return false
}

// IsDeclaredPure answers step 2: does the callee's own declaration site (or,
// for an import, the ImportSpecifier/exporting declaration) carry the
// inline "tree-shaking no-side-effects-when-called" marker?
func (o *Oracle) IsDeclaredPure(declSite ast.Node) bool {
	return HasDeclarationPureMarker(declSite)
}

// IsCallSitePure answers step 3: does the call/new expression itself carry
// a `@__PURE__`/`#__PURE__` marker? When true the call is pure regardless
// of what the callee resolves to.
func (o *Oracle) IsCallSitePure(callOrNew ast.Node) bool {
	return HasCallSitePureMarker(callOrNew)
}
