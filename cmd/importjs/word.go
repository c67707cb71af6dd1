package main

import (
	"os"
	"regexp"
	"strings"
)

var identifierPartRe = regexp.MustCompile(`[A-Za-z0-9_$]`)

// wordAt reads path and extracts the identifier touching the 0-based column
// col on the 1-based line row — the CLI's substitute for a real editor's
// "word under cursor" primitive.
func wordAt(path string, row, col int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	lines := strings.Split(string(data), "\n")
	if row < 1 || row > len(lines) {
		return "", nil
	}
	line := lines[row-1]
	if col < 0 || col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 && identifierPartRe.MatchString(string(line[start-1])) {
		start--
	}
	end := col
	for end < len(line) && identifierPartRe.MatchString(string(line[end])) {
		end++
	}
	return line[start:end], nil
}
