package analyzer_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/sidefxlint/sidefxlint/internal/analyzer"
	"github.com/sidefxlint/sidefxlint/internal/ingest"
	"github.com/sidefxlint/sidefxlint/internal/purity"
)

// TestGoldenFixtures runs every testdata/*.txtar archive end to end: decode
// its ast.json wire document, analyze it with a purity oracle that has no
// configured entries (only the static allow-list and inline markers), and
// compare the emitted messages (in source order) against want.txt.
func TestGoldenFixtures(t *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archives, "expected at least one golden fixture")
	sort.Strings(archives)

	for _, path := range archives {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			archive := txtar.Parse(data)

			var astJSON, want []byte
			for _, f := range archive.Files {
				switch f.Name {
				case "ast.json":
					astJSON = f.Data
				case "want.txt":
					want = f.Data
				}
			}
			require.NotNil(t, astJSON, "missing ast.json section")

			ctx := ingest.Decode(astJSON)
			require.Empty(t, ctx.Errors)

			diags := analyzer.Analyze(ctx.Program, ctx.ModuleScope, purity.NewOracle(nil))

			var got []string
			for _, d := range diags {
				got = append(got, d.Message)
			}

			wantLines := strings.Split(strings.TrimRight(string(want), "\n"), "\n")
			if len(wantLines) == 1 && wantLines[0] == "" {
				wantLines = nil
			}
			require.Equal(t, wantLines, got)
		})
	}
}
