// Package config implements the Configuration contract (spec §3.4): a
// per-operation, per-file-overridable accessor for every option the core
// reads, plus alias and named-export resolution and package-manifest
// dependency listing.
//
// A Configuration is never cached for the lifetime of a process — spec §9's
// design note requires it be re-derived per operation from the file that
// operation concerns, because a project may nest an override file closer to
// one directory than another (the same cascading-override shape as an
// .eslintrc walk).
package config

// Configuration is the read-only, per-operation accessor the core consumes.
// It never mutates the project; a new Configuration is built per operation
// by Load.
type Configuration interface {
	// GetString/GetStrings/GetBool read a single option, honoring any
	// override scoped to the directory containing fromFile (empty fromFile
	// means "use the project-root value only").
	GetString(key, fromFile string) string
	GetStrings(key, fromFile string) []string
	GetBool(key, fromFile string) bool

	// ResolveAlias looks up name in the project's alias table (spec §4.4
	// step 1). ok is false if no alias matches.
	ResolveAlias(name, currentFile string) (importPath string, hasNamedExports bool, ok bool)

	// ResolveNamedExports looks up name in the project's named-export
	// registry (spec §4.4 step 2).
	ResolveNamedExports(name string) (importPath string, ok bool)

	// PackageDependencies lists every dependency name import-js should be
	// willing to resolve via the package-manifest search phase.
	PackageDependencies() []string
}
