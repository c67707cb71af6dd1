// Package importblock locates and parses the import prologue of a JS
// buffer into a structured Block of ImportStatements, and rewrites that
// prologue back into canonical, sorted, blank-line-terminated text.
package importblock

import (
	"sort"
	"strings"

	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/importstmt"
)

// Block is a transient value describing the import prologue of a buffer.
type Block struct {
	Imports        []*importstmt.Statement
	ImportsStartAt int // zero-based
	NewlineCount   int
}

// Parse reads ed's buffer and returns its import Block.
func Parse(ed editor.Editor) *Block {
	lines := readLines(ed)
	startAt := findPrologueStart(lines)

	b := &Block{ImportsStartAt: startAt}
	byPath := make(map[string]*importstmt.Statement)

	// Gather consecutive non-blank lines starting at startAt, stopping at
	// the first blank line.
	end := startAt
	for end < len(lines) && !isBlank(lines[end]) {
		end++
	}
	joined := strings.Join(lines[startAt:end], "\n")

	cursor := 0
	for cursor < len(joined) {
		semi := strings.IndexByte(joined[cursor:], ';')
		if semi < 0 {
			break
		}
		// Each candidate starts at the next non-whitespace character, so the
		// newline that ended the previous statement is not counted again.
		candidate := strings.TrimLeft(joined[cursor:cursor+semi+1], " \t\r\n")
		stmt := importstmt.Parse(candidate)
		if stmt == nil {
			break // first unparseable candidate: stop, don't consume more
		}
		cursor += semi + 1

		if existing, ok := byPath[stmt.Path]; ok {
			existing.Merge(stmt)
		} else {
			byPath[stmt.Path] = stmt
			b.Imports = append(b.Imports, stmt)
		}
		b.NewlineCount += 1 + strings.Count(candidate, "\n")
	}

	return b
}

func readLines(ed editor.Editor) []string {
	n := ed.CountLines()
	lines := make([]string, n)
	for i := 1; i <= n; i++ {
		lines[i-1] = ed.ReadLine(i)
	}
	return lines
}

// Rewrite replaces the block's prologue in ed's buffer with the canonical
// rendering of stmts: flatten every statement's rendered lines, sort them
// ascending, and splice them in place of the old imports_start_at..
// +newline_count span. If the rendered lines equal the existing import lines,
// those lines are not touched; a missing blank line after the block is still
// inserted first.
func (b *Block) Rewrite(ed editor.Editor, stmts []*importstmt.Statement) {
	maxLineLength := ed.MaxLineLength()
	tab := ed.Tab()

	// 1. Ensure the line following the block is blank.
	afterBlock1Based := b.ImportsStartAt + b.NewlineCount + 1
	if !isBlank(ed.ReadLine(afterBlock1Based)) {
		ed.AppendLine(b.ImportsStartAt+b.NewlineCount, "")
	}

	// 2. Compute the canonical, sorted rendering.
	var rendered []string
	for _, s := range stmts {
		rendered = append(rendered, s.ToImportStrings(maxLineLength, tab)...)
	}
	sort.Strings(rendered)

	var newLines []string
	for _, r := range rendered {
		newLines = append(newLines, strings.Split(r, "\n")...)
	}

	// 3. Compare against the existing prologue; exit untouched if equal.
	existing := make([]string, b.NewlineCount)
	for i := 0; i < b.NewlineCount; i++ {
		existing[i] = ed.ReadLine(b.ImportsStartAt + 1 + i)
	}
	if stringsEqual(existing, newLines) {
		return
	}

	// 4. Delete the old span, then insert the new lines bottom-up so
	// already-computed indices stay valid as lines are inserted (§5).
	for i := 0; i < b.NewlineCount; i++ {
		ed.DeleteLine(b.ImportsStartAt + 1)
	}
	anchor := b.ImportsStartAt
	for i := len(newLines) - 1; i >= 0; i-- {
		ed.AppendLine(anchor, newLines[i])
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
