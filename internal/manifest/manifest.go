// Package manifest extracts the package-manifest dependency list the
// resolver's package-manifest search phase consumes: every dependency name
// import-js should be willing to resolve via node_modules.
package manifest

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Dependencies reads root/package.json and returns every dependency name
// import-js should be willing to resolve via node_modules: regular
// dependencies, devDependencies, and peerDependencies — except a peer
// dependency marked optional in peerDependenciesMeta, which is skipped.
func Dependencies(fs afero.Fs, root string) []string {
	raw, err := afero.ReadFile(fs, filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	parsed := gjson.ParseBytes(raw)

	seen := make(map[string]bool)
	var deps []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}

	for _, field := range []string{"dependencies", "devDependencies"} {
		parsed.Get(field).ForEach(func(name, _ gjson.Result) bool {
			add(name.String())
			return true
		})
	}

	parsed.Get("peerDependencies").ForEach(func(name, _ gjson.Result) bool {
		meta := parsed.Get("peerDependenciesMeta." + gjsonEscape(name.String()) + ".optional")
		if meta.Exists() && meta.Bool() {
			return true
		}
		add(name.String())
		return true
	})

	return deps
}

// gjsonEscape escapes path-sensitive characters (".", "*", "?", "|") in a
// dependency name before it is spliced into a gjson dotted path, since
// scoped package names such as "@scope/name" are otherwise safe but some
// registries publish names containing dots.
func gjsonEscape(name string) string {
	out := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '.', '*', '?', '|':
			out = append(out, '\\')
		}
		out = append(out, name[i])
	}
	return string(out)
}
