package resolver

import (
	"testing"

	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/importstmt"
	"github.com/lencioni/import-js/internal/jsmodule"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	strings map[string][]string
	strs    map[string]string
	bools   map[string]bool
	alias   map[string]string
	named   map[string]string
	deps    []string
}

func (s *stubConfig) GetString(key, fromFile string) string    { return s.strs[key] }
func (s *stubConfig) GetStrings(key, fromFile string) []string { return s.strings[key] }
func (s *stubConfig) GetBool(key, fromFile string) bool        { return s.bools[key] }
func (s *stubConfig) ResolveAlias(name, currentFile string) (string, bool, bool) {
	p, ok := s.alias[name]
	return p, false, ok
}
func (s *stubConfig) ResolveNamedExports(name string) (string, bool) {
	p, ok := s.named[name]
	return p, ok
}
func (s *stubConfig) PackageDependencies() []string { return s.deps }

func TestFindJSModules_AliasShortCircuit(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &stubConfig{alias: map[string]string{"$": "jquery"}}
	r := New(fs, nil)

	mods, err := r.FindJSModules(cfg, "$", "/project/app.js")
	require.NoError(t, err)
	require.Len(t, mods, 1)
	require.Equal(t, "jquery", mods[0].ImportPath)
}

func TestFindJSModules_FilesystemSearch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/src/components/mockUser.js", []byte("export default {};"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/project/src/node_modules/mockUser.js", []byte(""), 0o644))

	cfg := &stubConfig{
		strings: map[string][]string{
			"lookup_paths":          {"/project/src"},
			"strip_file_extensions": {".js"},
		},
	}
	r := New(fs, nil)

	mods, err := r.FindJSModules(cfg, "mockUser", "/project/src/app.js")
	require.NoError(t, err)
	require.Len(t, mods, 1, "node_modules paths must be excluded from filesystem search")
	require.Equal(t, "components/mockUser", mods[0].ImportPath)
}

func TestFindJSModules_EmptyLookupPathIsFindError(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &stubConfig{strings: map[string][]string{"lookup_paths": {""}}}
	r := New(fs, nil)

	_, err := r.FindJSModules(cfg, "foo", "/project/app.js")
	require.Error(t, err)
}

func TestFindJSModules_PackageDependencyMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &stubConfig{deps: []string{"lodash", "react-dom"}}
	r := New(fs, nil)

	mods, err := r.FindJSModules(cfg, "lodash", "/project/app.js")
	require.NoError(t, err)
	require.Len(t, mods, 1)
	require.Equal(t, "lodash", mods[0].ImportPath)
	require.Equal(t, "node_modules", mods[0].LookupPath)
}

func TestResolveOne_SingleCandidateReturnedDirectly(t *testing.T) {
	ed := editor.NewMemory("")
	candidates := []*jsmodule.Module{jsmodule.FromImportPath("only")}

	m := ResolveOne(ed, candidates, "x")
	require.Equal(t, candidates[0], m)
}

func TestResolveOne_MultipleCandidatesAsksEditor(t *testing.T) {
	ed := editor.NewMemory("")
	ed.SelectionIdx = 1
	ed.SelectionOK = true
	candidates := []*jsmodule.Module{
		jsmodule.FromImportPath("a"),
		jsmodule.FromImportPath("b"),
	}

	m := ResolveOne(ed, candidates, "x")
	require.Equal(t, "b", m.ImportPath)
	require.Equal(t, []string{"a", "b"}, ed.AskedChoices)
}

func TestResolveGoto_FallsBackToExistingStatementPath(t *testing.T) {
	ed := editor.NewMemory("")
	existing := []*importstmt.Statement{
		importstmt.New("lib/widget", "Widget", nil, importstmt.Import, "import"),
	}

	m := ResolveGoto(ed, nil, "Widget", existing)
	require.NotNil(t, m)
	require.Equal(t, "lib/widget", m.ImportPath)
}
