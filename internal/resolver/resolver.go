// Package resolver implements ModuleResolver (spec §4.4): mapping a
// variable name to ranked JSModule candidates via aliases, named-export
// registries, filesystem search, and package-manifest dependencies.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lencioni/import-js/internal/config"
	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/ijerror"
	"github.com/lencioni/import-js/internal/importstmt"
	"github.com/lencioni/import-js/internal/jsmodule"
	"github.com/lencioni/import-js/internal/nameformat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Resolver is the ModuleResolver: it consults a Configuration and an afero
// filesystem (a real OS filesystem in production, an in-memory one in
// tests) to produce ranked JSModule candidates.
type Resolver struct {
	FS  afero.Fs
	Log *logrus.Logger
}

// New constructs a Resolver. A nil logger gets a default one.
func New(fs afero.Fs, log *logrus.Logger) *Resolver {
	if log == nil {
		log = logrus.New()
	}
	return &Resolver{FS: fs, Log: log}
}

// FindJSModules implements spec §4.4 end to end.
func (r *Resolver) FindJSModules(cfg config.Configuration, variableName, currentFile string) ([]*jsmodule.Module, error) {
	if path, hasNamed, ok := cfg.ResolveAlias(variableName, currentFile); ok {
		m := jsmodule.FromImportPath(path)
		m.HasNamedExports = hasNamed
		return []*jsmodule.Module{m}, nil
	}
	if path, ok := cfg.ResolveNamedExports(variableName); ok {
		m := jsmodule.FromImportPath(path)
		m.HasNamedExports = true
		return []*jsmodule.Module{m}, nil
	}

	pattern := nameformat.FormattedToRegex(variableName)
	matchRe, err := regexp.Compile(`(?i)(/|^)` + pattern + `(/index)?(/package)?\.js.*$`)
	if err != nil {
		return nil, &ijerror.FindError{Message: fmt.Sprintf("invalid name pattern for %q: %v", variableName, err)}
	}

	var fsModules []*jsmodule.Module
	var pkgModules []*jsmodule.Module

	g := new(errgroup.Group)
	g.Go(func() error {
		mods, err := r.searchFilesystem(cfg, matchRe, currentFile)
		if err != nil {
			return err
		}
		fsModules = mods
		return nil
	})
	g.Go(func() error {
		pkgModules = r.searchPackageDependencies(cfg, pattern)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := append(fsModules, pkgModules...)
	deduped := dedupeAndSort(candidates)

	r.Log.WithFields(logrus.Fields{
		"variable":              variableName,
		"filesystem_candidates": len(fsModules),
		"package_candidates":    len(pkgModules),
		"total_candidates":      len(deduped),
	}).Debug("module resolution candidates found")

	return deduped, nil
}

func (r *Resolver) searchFilesystem(cfg config.Configuration, matchRe *regexp.Regexp, currentFile string) ([]*jsmodule.Module, error) {
	lookupPaths := cfg.GetStrings("lookup_paths", currentFile)
	excludes := cfg.GetStrings("excludes", currentFile)

	var out []*jsmodule.Module
	for _, lp := range lookupPaths {
		if strings.TrimSpace(lp) == "" {
			return nil, &ijerror.FindError{Message: "empty lookup_path entry in configuration"}
		}

		before := len(out)
		err := afero.Walk(r.FS, lp, func(p string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				r.Log.WithError(walkErr).WithField("path", p).Warn("skipping path during filesystem search")
				return nil
			}
			if info.IsDir() {
				return nil
			}
			if strings.Contains(filepath.ToSlash(p), "/node_modules/") {
				return nil
			}
			base := filepath.Base(p)
			if !strings.Contains(base, ".js") {
				return nil
			}
			slashPath := filepath.ToSlash(p)
			if !matchRe.MatchString(slashPath) {
				return nil
			}
			for _, pat := range excludes {
				if ok, _ := doublestar.Match(pat, slashPath); ok {
					return nil
				}
			}
			m := jsmodule.FromFilePath(cfg, p, lp, currentFile)
			if m != nil {
				m.LookupPath = lp
				out = append(out, m)
			}
			return nil
		})
		if err != nil {
			return nil, &ijerror.FindError{Message: err.Error()}
		}
		r.Log.WithFields(logrus.Fields{
			"lookup_path": lp,
			"matches":     len(out) - before,
		}).Debug("filesystem search phase complete")
	}
	return out, nil
}

func (r *Resolver) searchPackageDependencies(cfg config.Configuration, pattern string) []*jsmodule.Module {
	ignorePrefixes := cfg.GetStrings("ignore_package_prefixes", "")
	var prefixAlt string
	if len(ignorePrefixes) > 0 {
		escaped := make([]string, len(ignorePrefixes))
		for i, p := range ignorePrefixes {
			escaped[i] = regexp.QuoteMeta(p)
		}
		prefixAlt = "(?:" + strings.Join(escaped, "|") + ")?"
	}
	depRe, err := regexp.Compile(`(?i)^` + prefixAlt + pattern + `$`)
	if err != nil {
		return nil
	}

	var out []*jsmodule.Module
	for _, dep := range cfg.PackageDependencies() {
		if depRe.MatchString(dep) {
			out = append(out, jsmodule.FromPackageDependency(dep))
		}
	}
	r.Log.WithField("matches", len(out)).Debug("package dependency search phase complete")
	return out
}

// dedupeAndSort implements spec §4.4 steps 6-8: sort by import_path length,
// dedupe by lookup_path+"/"+import_path keeping the first (shortest), then
// re-sort by display_name.
func dedupeAndSort(candidates []*jsmodule.Module) []*jsmodule.Module {
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].ImportPath) < len(candidates[j].ImportPath)
	})

	seen := make(map[string]bool, len(candidates))
	deduped := make([]*jsmodule.Module, 0, len(candidates))
	for _, c := range candidates {
		key := c.LookupPath + "/" + c.ImportPath
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].DisplayName < deduped[j].DisplayName
	})
	return deduped
}

// ResolveOne implements resolve_one (spec §4.4): exactly one candidate is
// returned as-is; zero yields nil; more than one asks the editor to
// disambiguate.
func ResolveOne(ed editor.Editor, candidates []*jsmodule.Module, name string) *jsmodule.Module {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	choices := make([]string, len(candidates))
	for i, c := range candidates {
		choices[i] = c.DisplayName
	}
	idx, ok := ed.AskForSelection(name, choices)
	if !ok {
		return nil
	}
	return candidates[idx]
}

// ResolveGoto implements resolve_goto (spec §4.4).
func ResolveGoto(ed editor.Editor, candidates []*jsmodule.Module, name string, existing []*importstmt.Statement) *jsmodule.Module {
	if len(candidates) == 1 {
		return candidates[0]
	}

	var matchingStmt *importstmt.Statement
	for _, s := range existing {
		if s.DefaultImport == name {
			matchingStmt = s
			break
		}
		for _, n := range s.NamedImports {
			if n == name {
				matchingStmt = s
				break
			}
		}
		if matchingStmt != nil {
			break
		}
	}

	if matchingStmt != nil {
		if len(candidates) == 0 {
			return jsmodule.FromImportPath(matchingStmt.Path)
		}
		for _, c := range candidates {
			if c.ImportPath == matchingStmt.Path {
				return c
			}
		}
	}

	return ResolveOne(ed, candidates, name)
}
