package importblock

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	blankLineRe     = regexp.MustCompile(`^\s*$`)
	lineCommentRe   = regexp.MustCompile(`^\s*//.*$`)
	multiCommentOpn = regexp.MustCompile(`^\s*/\*`)
	multiCommentEnd = regexp.MustCompile(`\*/`)

	// useStrictRe needs the opening and closing quote to match, which RE2
	// (Go's stdlib regexp) cannot express without a backreference — the
	// same reason importstmt's statement parser reaches for regexp2.
	useStrictRe = regexp2.MustCompile(`^\s*(?<q>['"])use strict\k<q>;?\s*$`, regexp2.None)
)

func isBlank(line string) bool {
	return blankLineRe.MatchString(line)
}

func isUseStrict(line string) bool {
	m, err := useStrictRe.MatchString(line)
	return err == nil && m
}

// findPrologueStart scans lines from 0 upward and returns the zero-based
// index at which the import block begins, per spec §4.3.
//
// A line is skippable prologue if it is a use-strict directive, a
// single-line comment, the opening (and, transitively, every line through
// the closing) of a multi-line comment, or a whitespace-only line. Once a
// directive or comment has been matched, the block starts immediately after
// the last skippable line (blank lines included) of the uninterrupted
// skippable run starting at line 0. A
// buffer whose prefix is blank lines only (no directive or comment was
// ever matched) is not offset at all — it starts at line 0, even though
// that line may itself be blank.
func findPrologueStart(lines []string) int {
	seenNonBlank := false
	start := 0
	i := 0
	for i < len(lines) {
		line := lines[i]
		switch {
		case isUseStrict(line), lineCommentRe.MatchString(line):
			seenNonBlank = true
			i++
			start = i
		case multiCommentOpn.MatchString(line):
			j := i
			for j < len(lines) && !multiCommentEnd.MatchString(lines[j]) {
				j++
			}
			if j < len(lines) {
				j++ // consume the closing line too
			}
			seenNonBlank = true
			i = j
			start = i
		case isBlank(line):
			if seenNonBlank {
				start = i + 1
			}
			i++
		default:
			return start
		}
	}
	return start
}
