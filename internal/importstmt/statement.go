// Package importstmt models a single JavaScript import declaration — the
// two syntactic families (`import ... from '...'` and
// `const ... = require('...')`), how they merge, how bindings are removed
// from them, and how they are re-rendered in canonical, line-wrapped form.
package importstmt

import (
	"fmt"
	"sort"
	"strings"
)

// Keyword is the declaration keyword a statement was (or will be) written
// with.
type Keyword string

const (
	Import Keyword = "import"
	Const  Keyword = "const"
	Var    Keyword = "var"
	Let    Keyword = "let"
)

// Statement is the structured form of one import declaration.
type Statement struct {
	Path           string
	DefaultImport  string
	NamedImports   []string
	Keyword        Keyword
	ImportFunction string

	// OriginalSource holds the exact text this statement was parsed from.
	// It is cleared by any mutation that changes observable content, so a
	// re-render always reflects the statement's current state rather than
	// stale source text.
	OriginalSource *string
}

// New constructs a synthesized statement (no OriginalSource). NamedImports
// is normalized — sorted ascending and deduplicated — immediately.
func New(path string, defaultImport string, namedImports []string, keyword Keyword, importFunction string) *Statement {
	if importFunction == "" {
		importFunction = "require"
	}
	s := &Statement{
		Path:           path,
		DefaultImport:  defaultImport,
		Keyword:        keyword,
		ImportFunction: importFunction,
	}
	s.NamedImports = normalizeNamed(namedImports)
	return s
}

func normalizeNamed(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// HasNamedImports reports whether the statement destructures at least one
// identifier from its module.
func (s *Statement) HasNamedImports() bool {
	return len(s.NamedImports) > 0
}

// Empty reports whether the statement would render no binding at all. Such
// statements must be dropped by whatever assembled them into a block.
func (s *Statement) Empty() bool {
	return s.DefaultImport == "" && !s.HasNamedImports()
}

// InjectNamedImport adds name to the named-import set, re-sorting it. A
// no-op if name is already present.
func (s *Statement) InjectNamedImport(name string) {
	for _, n := range s.NamedImports {
		if n == name {
			return
		}
	}
	s.NamedImports = append(s.NamedImports, name)
	sort.Strings(s.NamedImports)
	s.OriginalSource = nil
}

// SetDefaultImport replaces the default import binding. A no-op if name is
// already the current default.
func (s *Statement) SetDefaultImport(name string) {
	if s.DefaultImport == name {
		return
	}
	s.DefaultImport = name
	s.OriginalSource = nil
}

// DeleteVariable removes name from the default import if it matches, else
// from the named-import set. Returns whether anything was removed.
func (s *Statement) DeleteVariable(name string) bool {
	if s.DefaultImport == name {
		s.DefaultImport = ""
		s.OriginalSource = nil
		return true
	}
	for i, n := range s.NamedImports {
		if n == name {
			s.NamedImports = append(s.NamedImports[:i], s.NamedImports[i+1:]...)
			if len(s.NamedImports) == 0 {
				s.NamedImports = nil
			}
			s.OriginalSource = nil
			return true
		}
	}
	return false
}

// Merge overwrites this statement's default import with other's (if other
// has one), and unions the named-import sets, re-sorting the result.
func (s *Statement) Merge(other *Statement) {
	if other == nil {
		return
	}
	if other.DefaultImport != "" {
		s.DefaultImport = other.DefaultImport
	}
	combined := append(append([]string{}, s.NamedImports...), other.NamedImports...)
	s.NamedImports = normalizeNamed(combined)
	s.OriginalSource = nil
}

// NormalizedKey returns a key identifying the statement's observable
// content — same path, default import, sorted named imports, declaration
// keyword and import function. Used to deduplicate after injection.
func (s *Statement) NormalizedKey() string {
	return fmt.Sprintf("%s\x1f%s\x1f%s\x1f%s\x1f%s",
		s.Path, s.DefaultImport, strings.Join(s.NamedImports, ","), s.Keyword, s.ImportFunction)
}
