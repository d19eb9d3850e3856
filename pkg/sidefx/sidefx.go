// Package sidefx is the public facade: given a host-supplied, already
// parsed-and-scope-resolved module document plus optional configuration,
// it runs the engine once and returns every side-effect diagnostic found.
// Everything under internal/ is reachable only through here.
package sidefx

import (
	"fmt"

	"github.com/sidefxlint/sidefxlint/internal/analyzer"
	"github.com/sidefxlint/sidefxlint/internal/config"
	"github.com/sidefxlint/sidefxlint/internal/diagnostics"
	"github.com/sidefxlint/sidefxlint/internal/ingest"
	"github.com/sidefxlint/sidefxlint/internal/purity"
)

// Diagnostic is a single finding, re-exported so callers never need to
// import internal/diagnostics directly.
type Diagnostic = diagnostics.Diagnostic

// Options configures a run. A zero Options is valid: no config entries,
// relying only on the static allow-list and inline markers.
type Options struct {
	// ConfigPath, if set, is loaded with config.Load before analysis.
	ConfigPath string
	// Entries are additional purity entries layered on top of whatever
	// ConfigPath loads, for embedding callers that build configuration
	// programmatically instead of from a file.
	Entries []purity.Entry
}

// Analyze decodes document (a parsed program plus its scope-resolution
// pass, never raw source text) and runs the engine over it, returning
// diagnostics in source order.
func Analyze(document []byte, opts Options) ([]Diagnostic, error) {
	ctx := ingest.Decode(document)
	if len(ctx.Errors) > 0 {
		return nil, fmt.Errorf("sidefx: %w", ctx.Errors[0])
	}

	oracle, err := buildOracle(opts)
	if err != nil {
		return nil, err
	}

	return analyzer.Analyze(ctx.Program, ctx.ModuleScope, oracle), nil
}

func buildOracle(opts Options) (*purity.Oracle, error) {
	entries := opts.Entries
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("sidefx: loading config: %w", err)
		}
		entries = append(append([]purity.Entry{}, loaded.NoSideEffectsWhenCalled...), entries...)
	}
	return purity.NewOracle(entries), nil
}
