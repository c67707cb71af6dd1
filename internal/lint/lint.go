// Package lint implements LintDiagnosticsReader (spec §4.5): invoking the
// configured linter against the current buffer and classifying its
// diagnostics into "unused" and "undefined" name sets.
package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"regexp"
	"strings"

	"github.com/lencioni/import-js/internal/ijerror"
	"github.com/sirupsen/logrus"
)

var (
	stdoutFatalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Parsing error:`),
		regexp.MustCompile(`Unrecoverable syntax error`),
		regexp.MustCompile(`:0:0: Cannot find module '[^']*'`),
	}
	stderrFatalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`SyntaxError:`),
		regexp.MustCompile(`eslint: command not found`),
		regexp.MustCompile(`Cannot read config package:`),
		regexp.MustCompile(`Cannot find module '[^']*'`),
		regexp.MustCompile(`No such file or directory`),
	}

	diagnosticRe = regexp.MustCompile(`"([^"]+)"\s+(is defined but never used|is not defined|must be in scope when using JSX)`)
)

// Reader invokes the linter as a child process.
type Reader struct {
	Log *logrus.Logger
}

// New constructs a Reader. A nil logger gets a default one.
func New(log *logrus.Logger) *Reader {
	if log == nil {
		log = logrus.New()
	}
	return &Reader{Log: log}
}

// Diagnostics is the deduplicated, first-seen-order result of a lint run.
type Diagnostics struct {
	Unused    []string
	Undefined []string
}

// Run invokes executable against buffer, attributed to path for the
// linter's own diagnostics, and classifies its output per spec §4.5.
func (r *Reader) Run(ctx context.Context, executable, path, buffer string) (*Diagnostics, error) {
	cmd := exec.CommandContext(ctx, executable,
		"--stdin",
		"--stdin-filename", path,
		"--format", "unix",
		"--rule", "no-undef: 2",
		"--rule", `no-unused-vars: [2, { "vars": "all", "args": "none" }]`,
	)
	cmd.Stdin = strings.NewReader(buffer)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// exec never shells out to the executable, so a missing or misconfigured
	// eslint_executable fails at lookup/start time — runErr is an
	// *exec.Error (PATH lookup failed) or an *fs.PathError (fork/exec of an
	// explicit path failed), not a nonzero exit, and both buffers stay empty.
	// That's the same fatal condition spec §4.5's "eslint: command not found"
	// stderr pattern names; synthesize that text so it's classified the same
	// way a real shell failure would be, instead of being reported as a
	// clean, zero-diagnostic run.
	var execErr *exec.Error
	var pathErr *fs.PathError
	if errors.As(runErr, &execErr) || errors.As(runErr, &pathErr) {
		msg := fmt.Sprintf("eslint: command not found: %v", runErr)
		return nil, &ijerror.ParseError{Message: msg}
	}

	out := stdout.String()
	errOut := stderr.String()

	for _, re := range stdoutFatalPatterns {
		if re.MatchString(out) {
			return nil, &ijerror.ParseError{Message: out}
		}
	}
	for _, re := range stderrFatalPatterns {
		if re.MatchString(errOut) {
			return nil, &ijerror.ParseError{Message: errOut}
		}
	}

	if runErr != nil {
		r.Log.WithError(runErr).WithField("executable", executable).Debug("linter exited non-zero; treating as diagnostics-only")
	}

	return classify(out), nil
}

func classify(stdout string) *Diagnostics {
	d := &Diagnostics{}
	seenUnused := map[string]bool{}
	seenUndefined := map[string]bool{}

	for _, line := range strings.Split(stdout, "\n") {
		m := diagnosticRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, msg := m[1], m[2]
		if msg == "is defined but never used" {
			if !seenUnused[name] {
				seenUnused[name] = true
				d.Unused = append(d.Unused, name)
			}
			continue
		}
		if !seenUndefined[name] {
			seenUndefined[name] = true
			d.Undefined = append(d.Undefined, name)
		}
	}
	return d
}
