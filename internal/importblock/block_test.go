package importblock

import (
	"strings"
	"testing"

	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/importstmt"
	"github.com/stretchr/testify/require"
)

func TestParse_MergesDuplicatePaths(t *testing.T) {
	ed := editor.NewMemory("import { foo } from 'p';\nimport { bar } from 'p';\n\nconsole.log(foo, bar);")
	b := Parse(ed)

	require.Len(t, b.Imports, 1, "duplicate paths must merge into a single statement")
	require.Equal(t, []string{"bar", "foo"}, b.Imports[0].NamedImports)
	require.Equal(t, 0, b.ImportsStartAt)
	require.Equal(t, 2, b.NewlineCount)
}

func TestParse_StopsAtFirstUnparseableLine(t *testing.T) {
	ed := editor.NewMemory("import a from 'a';\nsomeRandomCode();\nimport b from 'b';\n")
	b := Parse(ed)

	require.Len(t, b.Imports, 1)
	require.Equal(t, "a", b.Imports[0].Path)
}

func TestPrologueStart_S6(t *testing.T) {
	content := "'use strict';\n// c\n/* multi\n   line */\n\nimport a from 'a';\n\nrest"
	ed := editor.NewMemory(content)
	b := Parse(ed)
	require.Equal(t, 5, b.ImportsStartAt)
}

func TestRewrite_S1_InjectIntoExistingNamedImport(t *testing.T) {
	ed := editor.NewMemory("import { foo } from 'foo';\n\nconsole.log(bar);")
	b := Parse(ed)

	b.Imports[0].InjectNamedImport("bar")
	b.Rewrite(ed, b.Imports)

	want := "import { bar, foo } from 'foo';\n\nconsole.log(bar);"
	require.Equal(t, want, ed.CurrentFileContent())
}

func TestRewrite_NoopWhenUnchanged(t *testing.T) {
	content := "import { foo } from 'foo';\n\nconsole.log(foo);"
	ed := editor.NewMemory(content)
	b := Parse(ed)

	before := append([]string{}, ed.Lines...)
	b.Rewrite(ed, b.Imports)

	require.Equal(t, before, ed.Lines, "rewriting with unchanged statements must not mutate the buffer")
}

func TestRewrite_UniquePathsAcrossBlock(t *testing.T) {
	ed := editor.NewMemory("import a from 'a';\nimport b from 'b';\n\ncode();")
	b := Parse(ed)
	b.Rewrite(ed, b.Imports)

	seen := map[string]bool{}
	for _, s := range b.Imports {
		require.False(t, seen[s.Path], "path %s appeared twice", s.Path)
		seen[s.Path] = true
	}
}

func TestRewrite_S5_FixImportsRemovesUnusedAddsUndefined(t *testing.T) {
	ed := editor.NewMemory("import { foo, bar } from 'p';\n\ncode();")
	b := Parse(ed)

	stmts := b.Imports
	stmts[0].DeleteVariable("foo")

	baz := importstmt.New("p", "", []string{"baz"}, importstmt.Import, "import")
	stmts = append(stmts, baz)
	stmts = importstmt.DedupeStatements(stmts)

	// Merge into the existing 'p' statement the way fix_imports's injection
	// step would, rather than leaving two separate statements for one path.
	merged := []*importstmt.Statement{}
	byPath := map[string]*importstmt.Statement{}
	for _, s := range stmts {
		if existing, ok := byPath[s.Path]; ok {
			existing.Merge(s)
			continue
		}
		byPath[s.Path] = s
		merged = append(merged, s)
	}

	b.Rewrite(ed, merged)

	want := "import { bar, baz } from 'p';\n\ncode();"
	require.Equal(t, want, ed.CurrentFileContent())
}

func TestRewrite_InsertsTrailingBlankLineWhenMissing(t *testing.T) {
	ed := editor.NewMemory("import a from 'a';\ncode();")
	b := Parse(ed)
	b.Imports[0].InjectNamedImport("x")
	b.Rewrite(ed, b.Imports)

	require.True(t, strings.Contains(ed.CurrentFileContent(), "\n\ncode();"))
}
