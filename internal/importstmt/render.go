package importstmt

import (
	"fmt"
	"strings"
)

// ToImportStrings renders the statement as one or two lines of source text
// (each of which may itself contain embedded newlines if it needed to
// wrap). Call-family statements with both a default and named imports are
// split into two separate require() statements; everything else renders as
// a single statement, wrapped if it would exceed maxLineLength.
func (s *Statement) ToImportStrings(maxLineLength int, tab string) []string {
	isImport := s.Keyword == Import

	if !isImport && s.DefaultImport != "" && s.HasNamedImports() {
		return []string{
			renderOne(false, s.DefaultImport, nil, s.Keyword, s.ImportFunction, s.Path, maxLineLength, tab),
			renderOne(false, "", s.NamedImports, s.Keyword, s.ImportFunction, s.Path, maxLineLength, tab),
		}
	}

	return []string{renderOne(isImport, s.DefaultImport, s.NamedImports, s.Keyword, s.ImportFunction, s.Path, maxLineLength, tab)}
}

// renderOne renders a single conceptual statement — at most one of
// (default-only, named-only, default+named for the import family) — and
// wraps it if the unwrapped form exceeds maxLineLength.
func renderOne(isImport bool, def string, named []string, keyword Keyword, importFunction, path string, maxLineLength int, tab string) string {
	switch {
	case def != "" && len(named) == 0:
		unwrapped := defaultOnlyLine(isImport, def, keyword, importFunction, path)
		if len(unwrapped) <= maxLineLength {
			return unwrapped
		}
		return wrapDefaultOnly(isImport, def, keyword, importFunction, path, tab)

	case def == "" && len(named) > 0:
		unwrapped := namedOnlyLine(isImport, named, keyword, importFunction, path)
		if len(unwrapped) <= maxLineLength {
			return unwrapped
		}
		return wrapNamed(isImport, "", named, keyword, importFunction, path, tab)

	case def != "" && len(named) > 0:
		// Only reachable for the import family — call-family both-present
		// statements are split into two single-binding renders by the
		// caller before reaching here.
		unwrapped := fmt.Sprintf("import %s, { %s } from '%s';", def, strings.Join(named, ", "), path)
		if len(unwrapped) <= maxLineLength {
			return unwrapped
		}
		return wrapNamed(true, def, named, keyword, importFunction, path, tab)

	default:
		if isImport {
			return fmt.Sprintf("import '%s';", path)
		}
		return fmt.Sprintf("%s('%s');", importFunction, path)
	}
}

func defaultOnlyLine(isImport bool, def string, keyword Keyword, importFunction, path string) string {
	if isImport {
		return fmt.Sprintf("import %s from '%s';", def, path)
	}
	return fmt.Sprintf("%s %s = %s('%s');", keyword, def, importFunction, path)
}

func wrapDefaultOnly(isImport bool, def string, keyword Keyword, importFunction, path, tab string) string {
	if isImport {
		return fmt.Sprintf("import %s from\n%s'%s';", def, tab, path)
	}
	return fmt.Sprintf("%s %s =\n%s%s('%s');", keyword, def, tab, importFunction, path)
}

func namedOnlyLine(isImport bool, named []string, keyword Keyword, importFunction, path string) string {
	joined := strings.Join(named, ", ")
	if isImport {
		return fmt.Sprintf("import { %s } from '%s';", joined, path)
	}
	return fmt.Sprintf("%s { %s } = %s('%s');", keyword, joined, importFunction, path)
}

// wrapNamed expands the brace block one identifier per line. def is only
// ever non-empty for the import family.
func wrapNamed(isImport bool, def string, named []string, keyword Keyword, importFunction, path, tab string) string {
	var b strings.Builder
	if isImport {
		if def != "" {
			fmt.Fprintf(&b, "import %s, {\n", def)
		} else {
			b.WriteString("import {\n")
		}
	} else {
		fmt.Fprintf(&b, "%s {\n", keyword)
	}
	for _, n := range named {
		fmt.Fprintf(&b, "%s%s,\n", tab, n)
	}
	if isImport {
		fmt.Fprintf(&b, "} from '%s';", path)
	} else {
		fmt.Fprintf(&b, "} = %s('%s');", importFunction, path)
	}
	return b.String()
}
