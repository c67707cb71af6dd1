// Package importer implements the Importer orchestrator (spec §4.6): the
// three user-facing operations import, goto and fix_imports, composing
// ImportStatement, ImportBlock, ModuleResolver and LintDiagnosticsReader.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/lencioni/import-js/internal/config"
	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/importblock"
	"github.com/lencioni/import-js/internal/importstmt"
	"github.com/lencioni/import-js/internal/jsmodule"
	"github.com/lencioni/import-js/internal/lint"
	"github.com/lencioni/import-js/internal/resolver"
	"github.com/sirupsen/logrus"
)

// Importer composes the resolver and lint reader against one editor
// session. A fresh Configuration is loaded at the start of every operation
// (spec §9) rather than cached across calls.
type Importer struct {
	Editor      editor.Editor
	Resolver    *resolver.Resolver
	Lint        *lint.Reader
	LoadConfig  func(currentFile string) (config.Configuration, error)
	ProjectRoot string
	Log         *logrus.Logger
}

func (imp *Importer) logger() *logrus.Logger {
	if imp.Log == nil {
		return logrus.New()
	}
	return imp.Log
}

// Import implements spec §4.6 "import": bind the word under the cursor.
func (imp *Importer) Import() string {
	cfg, err := imp.LoadConfig(imp.Editor.PathToCurrentFile())
	if err != nil {
		return fmt.Sprintf("ImportJS: could not load configuration (%v)", err)
	}

	name := imp.Editor.CurrentWord()
	if name == "" {
		msg := "ImportJS: No variable to import. Place your cursor on a variable, then try again."
		imp.Editor.Message(msg)
		return msg
	}

	start := time.Now()
	candidates, err := imp.Resolver.FindJSModules(cfg, name, imp.Editor.PathToCurrentFile())
	elapsed := time.Since(start).Seconds()
	if err != nil {
		msg := fmt.Sprintf("ImportJS: %v", err)
		imp.Editor.Message(msg)
		return msg
	}

	module := resolver.ResolveOne(imp.Editor, candidates, name)
	if module == nil {
		msg := fmt.Sprintf("ImportJS: No JS module to import for variable `%s` (%.2fs)", name, elapsed)
		imp.Editor.Message(msg)
		return msg
	}

	withCursorMaintained(imp.Editor, func() {
		block := importblock.Parse(imp.Editor)
		statements := inject(name, module, block.Imports, cfg)
		block.Rewrite(imp.Editor, statements)
	})

	var msg string
	if module.HasNamedExports {
		msg = fmt.Sprintf("ImportJS: Imported `%s` from `%s` (%.2fs)", name, module.ImportPath, elapsed)
	} else {
		msg = fmt.Sprintf("ImportJS: Imported `%s` (%.2fs)", module.ImportPath, elapsed)
	}
	imp.Editor.Message(msg)
	return msg
}

// Goto implements spec §4.6 "goto".
func (imp *Importer) Goto() string {
	cfg, err := imp.LoadConfig(imp.Editor.PathToCurrentFile())
	if err != nil {
		return fmt.Sprintf("ImportJS: could not load configuration (%v)", err)
	}

	name := imp.Editor.CurrentWord()
	if name == "" {
		msg := "ImportJS: No variable to import. Place your cursor on a variable, then try again."
		imp.Editor.Message(msg)
		return msg
	}

	candidates, err := imp.Resolver.FindJSModules(cfg, name, imp.Editor.PathToCurrentFile())
	if err != nil {
		msg := fmt.Sprintf("ImportJS: %v", err)
		imp.Editor.Message(msg)
		return msg
	}

	block := importblock.Parse(imp.Editor)
	module := resolver.ResolveGoto(imp.Editor, candidates, name, block.Imports)
	if module == nil {
		msg := fmt.Sprintf("ImportJS: Could not resolve a module for `%s`", name)
		imp.Editor.Message(msg)
		return msg
	}

	if err := imp.Editor.OpenFile(module.OpenFilePath(imp.Editor.PathToCurrentFile())); err != nil {
		msg := fmt.Sprintf("ImportJS: %v", err)
		imp.Editor.Message(msg)
		return msg
	}
	return ""
}

// FixImports implements spec §4.6 "fix_imports".
func (imp *Importer) FixImports(ctx context.Context) string {
	cfg, err := imp.LoadConfig(imp.Editor.PathToCurrentFile())
	if err != nil {
		return fmt.Sprintf("ImportJS: could not load configuration (%v)", err)
	}

	eslintExecutable := cfg.GetString("eslint_executable", imp.Editor.PathToCurrentFile())
	diagnostics, err := imp.Lint.Run(ctx, eslintExecutable, imp.Editor.PathToCurrentFile(), imp.Editor.CurrentFileContent())
	if err != nil {
		msg := fmt.Sprintf("ImportJS: %v", err)
		imp.Editor.Message(msg)
		return msg
	}

	withCursorMaintained(imp.Editor, func() {
		block := importblock.Parse(imp.Editor)
		statements := block.Imports

		statements = removeUnused(statements, diagnostics.Unused)

		for _, name := range diagnostics.Undefined {
			candidates, err := imp.Resolver.FindJSModules(cfg, name, imp.Editor.PathToCurrentFile())
			if err != nil {
				imp.logger().WithError(err).WithField("name", name).Warn("failed resolving undefined variable during fix_imports")
				continue
			}
			module := resolver.ResolveOne(imp.Editor, candidates, name)
			if module == nil {
				continue
			}
			statements = inject(name, module, statements, cfg)
		}

		block.Rewrite(imp.Editor, statements)
	})

	return "ImportJS: Fixed imports"
}

func removeUnused(statements []*importstmt.Statement, unused []string) []*importstmt.Statement {
	out := make([]*importstmt.Statement, 0, len(statements))
	for _, s := range statements {
		for _, u := range unused {
			s.DeleteVariable(u)
		}
		if !s.Empty() {
			out = append(out, s)
		}
	}
	return out
}

// inject implements spec §4.6.1.
func inject(variableName string, module *jsmodule.Module, statements []*importstmt.Statement, cfg config.Configuration) []*importstmt.Statement {
	for _, s := range statements {
		if s.Path == module.ImportPath {
			s.Keyword = importstmt.Keyword(cfg.GetString("declaration_keyword", module.FilePath))
			s.ImportFunction = cfg.GetString("import_function", module.FilePath)
			if module.HasNamedExports {
				s.InjectNamedImport(variableName)
			} else {
				s.SetDefaultImport(variableName)
			}
			return importstmt.DedupeStatements(statements)
		}
	}

	newStmt := module.ToImportStatement(variableName, cfg)
	statements = append([]*importstmt.Statement{newStmt}, statements...)
	return importstmt.DedupeStatements(statements)
}

// withCursorMaintained implements the cursor-maintaining scope of §4.6.2.
func withCursorMaintained(ed editor.Editor, body func()) {
	row, col := ed.Cursor()
	before := ed.CountLines()

	body()

	after := ed.CountLines()
	delta := after - before
	if delta != 0 {
		ed.SetCursor(row+delta, col)
	}
}
