// Package jsmodule implements the JSModule contract (spec §3.3): turning an
// absolute filesystem path, or a bare package-manifest dependency name, into
// the attributes the resolver and importer core consume.
package jsmodule

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/lencioni/import-js/internal/config"
	"github.com/lencioni/import-js/internal/importstmt"
)

// Module is the concrete JSModule the resolver produces.
type Module struct {
	ImportPath      string
	DisplayName     string
	FilePath        string
	HasNamedExports bool
	LookupPath      string
}

// FromFilePath builds a Module for a file discovered during the filesystem
// search phase (spec §4.4 step 4). absPath is the absolute path on disk;
// lookupPath is the root it was found under; cfg supplies the per-file
// strip_file_extensions / use_relative_paths / strip_from_path options.
func FromFilePath(cfg config.Configuration, absPath, lookupPath, currentFile string) *Module {
	rel, err := filepath.Rel(lookupPath, absPath)
	if err != nil {
		rel = absPath
	}
	rel = filepath.ToSlash(rel)

	for _, ext := range cfg.GetStrings("strip_file_extensions", absPath) {
		if strings.HasSuffix(rel, ext) {
			rel = strings.TrimSuffix(rel, ext)
			break
		}
	}
	rel = collapseIndex(rel)

	importPath := rel
	if prefix := cfg.GetString("strip_from_path", absPath); prefix != "" {
		importPath = strings.TrimPrefix(importPath, strings.Trim(prefix, "/")+"/")
	}

	if cfg.GetBool("use_relative_paths", absPath) && currentFile != "" {
		importPath = toRelativeSpecifier(currentFile, absPath, cfg)
	}

	return &Module{
		ImportPath:  importPath,
		DisplayName: rel,
		FilePath:    absPath,
		LookupPath:  lookupPath,
	}
}

// FromPackageDependency builds a Module representing a node_modules package
// found via the package-manifest search phase (spec §4.4 step 5).
func FromPackageDependency(dep string) *Module {
	return &Module{
		ImportPath:  dep,
		DisplayName: dep,
		FilePath:    path.Join("node_modules", dep, "package.json"),
		LookupPath:  "node_modules",
	}
}

// FromImportPath synthesizes a bare module carrying only an import_path,
// used by resolve_goto (spec §4.4) when no filesystem candidate exists but
// an existing import statement already references the path.
func FromImportPath(importPath string) *Module {
	return &Module{ImportPath: importPath, DisplayName: importPath}
}

func collapseIndex(rel string) string {
	if base := path.Base(rel); base == "index" {
		return path.Dir(rel)
	}
	return rel
}

func toRelativeSpecifier(currentFile, absTarget string, cfg config.Configuration) string {
	currentDir := filepath.Dir(currentFile)
	rel, err := filepath.Rel(currentDir, absTarget)
	if err != nil {
		return absTarget
	}
	rel = filepath.ToSlash(rel)
	for _, ext := range cfg.GetStrings("strip_file_extensions", currentFile) {
		if strings.HasSuffix(rel, ext) {
			rel = strings.TrimSuffix(rel, ext)
			break
		}
	}
	rel = collapseIndex(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

// ToImportStatement synthesizes a fresh ImportStatement binding variableName
// to this module, per spec §4.6.1's "else" branch.
func (m *Module) ToImportStatement(variableName string, cfg config.Configuration) *importstmt.Statement {
	keyword := importstmt.Keyword(cfg.GetString("declaration_keyword", m.FilePath))
	if keyword == "" {
		keyword = importstmt.Import
	}
	fn := cfg.GetString("import_function", m.FilePath)

	if m.HasNamedExports {
		return importstmt.New(m.ImportPath, "", []string{variableName}, keyword, fn)
	}
	return importstmt.New(m.ImportPath, variableName, nil, keyword, fn)
}

// OpenFilePath returns the path the editor should open for `goto`: the
// module's FilePath unchanged (absolute for a filesystem module, the relative
// node_modules/<dep>/package.json for a package-manifest module), or
// ImportPath when FilePath is empty. currentFile is not used; a relative
// FilePath is not resolved against it.
func (m *Module) OpenFilePath(currentFile string) string {
	if m.FilePath == "" {
		return m.ImportPath
	}
	return m.FilePath
}
