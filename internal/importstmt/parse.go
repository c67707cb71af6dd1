package importstmt

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// esStatementRe matches `import <assignment> from '<path>';`. Go's
// standard regexp package (RE2) cannot express the quote backreference
// ("single or double, both must match") used here, so parsing leans on
// dlclark/regexp2 instead, the same library the example pool reaches for
// whenever it needs backreferences or lookaround.
var esStatementRe = regexp2.MustCompile(
	`^\s*import\s+(?:(?<default>[A-Za-z_$][\w$]*)\s*(?:,\s*)?)?(?:\{(?<named>[^}]*)\})?\s*from\s+(?<q>['"])(?<path>[^'"]*)\k<q>\s*;?\s*$`,
	regexp2.None,
)

// callStatementRe matches `<keyword> <assignment> = <callee>('<path>');`.
var callStatementRe = regexp2.MustCompile(
	`^\s*(?<keyword>const|var|let)\s+(?:(?<default>[A-Za-z_$][\w$]*)|\{(?<named>[^}]*)\})\s*=\s*(?<callee>[A-Za-z_$][\w$.]*)\s*\(\s*(?<q>['"])(?<path>[^'"]*)\k<q>\s*\)\s*;?\s*$`,
	regexp2.None,
)

func groupString(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func splitNamed(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse accepts the literal text of one candidate statement — up to and
// including its terminating ';', possibly containing embedded newlines —
// and returns the Statement it represents, or nil if text matches neither
// syntactic family. OriginalSource is set to text verbatim.
func Parse(text string) *Statement {
	if m, err := esStatementRe.FindStringMatch(text); err == nil && m != nil {
		s := New(
			groupString(m, "path"),
			groupString(m, "default"),
			splitNamed(groupString(m, "named")),
			Import,
			"import",
		)
		src := text
		s.OriginalSource = &src
		return s
	}

	if m, err := callStatementRe.FindStringMatch(text); err == nil && m != nil {
		s := New(
			groupString(m, "path"),
			groupString(m, "default"),
			splitNamed(groupString(m, "named")),
			Keyword(groupString(m, "keyword")),
			groupString(m, "callee"),
		)
		src := text
		s.OriginalSource = &src
		return s
	}

	return nil
}
