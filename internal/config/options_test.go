package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidefxlint/sidefxlint/internal/config"
)

func TestParseYAML(t *testing.T) {
	doc := []byte(`
noSideEffectsWhenCalled:
  - function: lodash.noop
  - module: my-lib
    functions: "*"
  - module: "#local"
    functions: [helper, other]
`)
	opts, err := config.Parse(doc)
	require.NoError(t, err)
	require.Len(t, opts.NoSideEffectsWhenCalled, 3)

	assert.Equal(t, "lodash.noop", opts.NoSideEffectsWhenCalled[0].Function)
	assert.Equal(t, "my-lib", opts.NoSideEffectsWhenCalled[1].Module)
	assert.True(t, opts.NoSideEffectsWhenCalled[1].Functions.Wildcard)
	assert.Equal(t, []string{"helper", "other"}, opts.NoSideEffectsWhenCalled[2].Functions.Names)
}

func TestParseJSON(t *testing.T) {
	doc := []byte(`{"noSideEffectsWhenCalled": [{"function": "ext.noop"}]}`)
	opts, err := config.Parse(doc)
	require.NoError(t, err)
	require.Len(t, opts.NoSideEffectsWhenCalled, 1)
	assert.Equal(t, "ext.noop", opts.NoSideEffectsWhenCalled[0].Function)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	opts, err := config.Load("/nonexistent/sidefx.yaml")
	require.NoError(t, err)
	assert.Empty(t, opts.NoSideEffectsWhenCalled)
}

func TestOptionsOracle(t *testing.T) {
	opts, err := config.Parse([]byte(`noSideEffectsWhenCalled: [{function: lodash.noop}]`))
	require.NoError(t, err)
	oracle := opts.Oracle()
	assert.True(t, oracle.IsGlobalPure("lodash.noop"))
}
