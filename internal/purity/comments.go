package purity

import (
	"regexp"
	"strings"

	"github.com/sidefxlint/sidefxlint/internal/ast"
)

// domainTag is the leading token of a "declaration is side-effect-free"
// comment: a comment whose tokens begin with the domain id.
const domainTag = "tree-shaking"

const noSideEffectsDirective = "no-side-effects-when-called"

// HasDeclarationPureMarker reports whether any of n's leading comments is a
// domain comment carrying the no-side-effects-when-called directive.
func HasDeclarationPureMarker(n ast.Node) bool {
	if n == nil {
		return false
	}
	for _, c := range n.LeadingComments() {
		tokens := strings.Fields(c.Text)
		if len(tokens) >= 2 && tokens[0] == domainTag {
			for _, t := range tokens[1:] {
				if t == noSideEffectsDirective {
					return true
				}
			}
		}
	}
	return false
}

var pureCallMarker = regexp.MustCompile(`^(@__PURE__|#__PURE__)$`)

// HasCallSitePureMarker reports whether call/new expression n carries the
// bundler-standard `@__PURE__`/`#__PURE__` annotation immediately before it.
func HasCallSitePureMarker(n ast.Node) bool {
	if n == nil {
		return false
	}
	for _, c := range n.LeadingComments() {
		if pureCallMarker.MatchString(strings.TrimSpace(c.Text)) {
			return true
		}
	}
	return false
}
