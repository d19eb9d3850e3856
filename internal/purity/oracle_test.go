package purity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidefxlint/sidefxlint/internal/ast"
	"github.com/sidefxlint/sidefxlint/internal/purity"
)

func TestOracleGlobalAllowList(t *testing.T) {
	o := purity.NewOracle(nil)

	assert.True(t, o.IsGlobalPure("Math.floor"))
	assert.True(t, o.IsGlobalPure("Object.keys"))
	assert.False(t, o.IsGlobalPure("Math.random.call"))
	assert.False(t, o.IsGlobalPure("ext"))
}

func TestOracleConfiguredFunction(t *testing.T) {
	o := purity.NewOracle([]purity.Entry{{Function: "lodash.noop"}})
	assert.True(t, o.IsGlobalPure("lodash.noop"))
	assert.False(t, o.IsGlobalPure("lodash.other"))
}

func TestOracleModuleExportWildcard(t *testing.T) {
	o := purity.NewOracle([]purity.Entry{
		{Module: "my-lib", Functions: purity.StringOrList{Wildcard: true}},
	})
	assert.True(t, o.IsModuleExportPure("my-lib", "anything", false))
	assert.False(t, o.IsModuleExportPure("other-lib", "anything", false))
}

func TestOracleModuleExportNamedList(t *testing.T) {
	o := purity.NewOracle([]purity.Entry{
		{Module: "my-lib", Functions: purity.StringOrList{Names: []string{"pick"}}},
	})
	assert.True(t, o.IsModuleExportPure("my-lib", "pick", false))
	assert.False(t, o.IsModuleExportPure("my-lib", "omit", false))
}

func TestOracleLocalSentinelMatchesOnlyRelativeSpecifiers(t *testing.T) {
	o := purity.NewOracle([]purity.Entry{
		{Module: purity.LocalSentinel, Functions: purity.StringOrList{Wildcard: true}},
	})
	assert.True(t, o.IsModuleExportPure("./sibling", "helper", true))
	assert.False(t, o.IsModuleExportPure("some-package", "helper", false))
}

func TestHasDeclarationPureMarker(t *testing.T) {
	node := &ast.Identifier{Base: ast.Base{Comments: []ast.Comment{
		{Text: "tree-shaking no-side-effects-when-called"},
	}}}
	assert.True(t, purity.HasDeclarationPureMarker(node))

	unrelated := &ast.Identifier{Base: ast.Base{Comments: []ast.Comment{{Text: "eslint-disable"}}}}
	assert.False(t, purity.HasDeclarationPureMarker(unrelated))
}

func TestHasCallSitePureMarker(t *testing.T) {
	pure := &ast.CallExpression{Base: ast.Base{Comments: []ast.Comment{{Text: "@__PURE__"}}}}
	assert.True(t, purity.HasCallSitePureMarker(pure))

	plain := &ast.CallExpression{}
	assert.False(t, purity.HasCallSitePureMarker(plain))
}
