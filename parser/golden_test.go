package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpcore/ast"
)

// TestGoldenFixtures parses every testdata/*.php fixture and compares its
// s-expression dump against the checked-in testdata/*.sexpr expectation. A
// mismatch is reported as a unified diff rather than a raw string-equality
// failure, so a future grammar change shows exactly which subtree moved.
func TestGoldenFixtures(t *testing.T) {
	fixtures, err := filepath.Glob("testdata/*.php")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures, "expected at least one golden fixture")

	for _, fixturePath := range fixtures {
		fixturePath := fixturePath
		name := strings.TrimSuffix(filepath.Base(fixturePath), ".php")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(fixturePath)
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Join("testdata", name+".sexpr"))
			require.NoError(t, err, "missing expected dump for %s", name)

			res, err := ParseString(src, ParseOptions{Filename: fixturePath})
			require.NoError(t, err)

			nodes := make([]ast.Node, len(res.Statements))
			for i, s := range res.Statements {
				nodes[i] = s
			}
			var b strings.Builder
			ast.Dump(&b, nodes)
			got := b.String()

			if got != string(want) {
				diff := difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(got),
					FromFile: name + ".sexpr (expected)",
					ToFile:   name + " (actual)",
					Context:  3,
				}
				text, _ := difflib.GetUnifiedDiffString(diff)
				t.Fatalf("golden mismatch for %s:\n%s", name, text)
			}
		})
	}
}
