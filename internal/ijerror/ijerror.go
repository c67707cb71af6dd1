// Package ijerror defines the two error kinds the core distinguishes
// (spec §7): failures that must be surfaced to the caller rather than
// handled as an ordinary non-error outcome.
package ijerror

// ParseError is a linter invocation whose output or stderr matched one of
// the fatal patterns in spec §4.5.
type ParseError struct{ Message string }

func (e *ParseError) Error() string { return e.Message }

// FindError is an empty lookup_path configuration entry, or a non-empty
// stderr from the filesystem-search phase.
type FindError struct{ Message string }

func (e *FindError) Error() string { return e.Message }
