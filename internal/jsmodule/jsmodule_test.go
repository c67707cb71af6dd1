package jsmodule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	strings map[string][]string
	strs    map[string]string
	bools   map[string]bool
}

func (s *stubConfig) GetString(key, fromFile string) string    { return s.strs[key] }
func (s *stubConfig) GetStrings(key, fromFile string) []string { return s.strings[key] }
func (s *stubConfig) GetBool(key, fromFile string) bool        { return s.bools[key] }
func (s *stubConfig) ResolveAlias(name, currentFile string) (string, bool, bool) {
	return "", false, false
}
func (s *stubConfig) ResolveNamedExports(name string) (string, bool) { return "", false }
func (s *stubConfig) PackageDependencies() []string                 { return nil }

func TestFromFilePath_StripsExtensionAndCollapsesIndex(t *testing.T) {
	cfg := &stubConfig{strings: map[string][]string{"strip_file_extensions": {".js"}}}
	m := FromFilePath(cfg, "/project/src/components/Button/index.js", "/project/src", "")

	require.Equal(t, "components/Button", m.ImportPath)
	require.Equal(t, "/project/src", m.LookupPath)
}

func TestFromFilePath_UsesRelativePathWhenConfigured(t *testing.T) {
	cfg := &stubConfig{
		strings: map[string][]string{"strip_file_extensions": {".js"}},
		bools:   map[string]bool{"use_relative_paths": true},
	}
	m := FromFilePath(cfg, "/project/src/util/format.js", "/project/src", "/project/src/components/Button.js")

	require.Equal(t, "../util/format", m.ImportPath)
}

func TestFromPackageDependency(t *testing.T) {
	m := FromPackageDependency("react")
	require.Equal(t, "react", m.ImportPath)
	require.Equal(t, "node_modules", m.LookupPath)
}

func TestToImportStatement_NamedExport(t *testing.T) {
	cfg := &stubConfig{strs: map[string]string{"declaration_keyword": "import", "import_function": "require"}}
	m := &Module{ImportPath: "p", HasNamedExports: true}

	stmt := m.ToImportStatement("foo", cfg)
	require.Equal(t, []string{"foo"}, stmt.NamedImports)
	require.Empty(t, stmt.DefaultImport)
}

func TestToImportStatement_DefaultExport(t *testing.T) {
	cfg := &stubConfig{strs: map[string]string{"declaration_keyword": "const", "import_function": "require"}}
	m := &Module{ImportPath: "p"}

	stmt := m.ToImportStatement("foo", cfg)
	require.Equal(t, "foo", stmt.DefaultImport)
	require.Empty(t, stmt.NamedImports)
}
