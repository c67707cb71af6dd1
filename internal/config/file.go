package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/lencioni/import-js/internal/manifest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

var errNoConfigFile = errors.New("no project config file found in directory")

// candidateNames are the project config files searched for, in order, at
// every directory from the current file up to the project root — the same
// cascading shape an .eslintrc walk uses.
var candidateNames = []string{".importjsrc.json", ".importjsrc.yaml", ".importjsrc.toml", ".importjsrc"}

var defaults = map[string]interface{}{
	"declaration_keyword":     "import",
	"import_function":         "require",
	"lookup_paths":            []string{},
	"excludes":                []string{},
	"strip_file_extensions":   []string{".js", ".jsx"},
	"use_relative_paths":      false,
	"strip_from_path":         "",
	"ignore_package_prefixes": []string{},
	"eslint_executable":       "eslint",
}

// FileConfiguration is the concrete Configuration backed by project files on
// an afero filesystem: layered config via viper, comment-tolerant alias and
// named-export registries via jsonc+gjson.
type FileConfiguration struct {
	fs      afero.Fs
	root    string
	log     *logrus.Logger
	base    *viper.Viper
	aliases map[string]aliasEntry

	namedExports        map[string]string
	packageDependencies []string
}

type aliasEntry struct {
	path            string
	hasNamedExports bool
}

// Load builds a Configuration rooted at root, reading its project config
// file, alias table, named-export registry, and package.json dependency
// list. A fresh FileConfiguration should be built once per operation — see
// the package doc — not cached across operations.
func Load(fs afero.Fs, root string, log *logrus.Logger) (*FileConfiguration, error) {
	if log == nil {
		log = logrus.New()
	}
	c := &FileConfiguration{fs: fs, root: root, log: log}

	c.base = viper.New()
	for k, v := range defaults {
		c.base.SetDefault(k, v)
	}
	if err := c.readInto(c.base, root); err != nil {
		log.WithError(err).Debug("no project config file found at root, using defaults")
	}

	c.aliases = c.loadAliases(root)
	c.namedExports = c.loadNamedExports(root)
	c.packageDependencies = c.loadPackageDependencies(root)

	return c, nil
}

func (c *FileConfiguration) readInto(v *viper.Viper, dir string) error {
	for _, name := range candidateNames {
		p := filepath.Join(dir, name)
		data, err := afero.ReadFile(c.fs, p)
		if err != nil {
			continue
		}
		v.SetConfigType(configTypeFor(name))
		if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
			c.log.WithError(err).WithField("file", p).Warn("failed to parse project config")
			continue
		}
		return nil
	}
	return errNoConfigFile
}

func configTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".yaml"):
		return "yaml"
	case strings.HasSuffix(name, ".toml"):
		return "toml"
	default:
		return "json"
	}
}

// dirsFromTo walks from fromFile's directory up to (and including) root,
// closest directory first, for per-file override resolution.
func (c *FileConfiguration) dirsFromTo(fromFile string) []string {
	if fromFile == "" {
		return nil
	}
	dir := filepath.Dir(fromFile)
	var dirs []string
	for {
		dirs = append(dirs, dir)
		if dir == c.root || dir == "." || dir == string(filepath.Separator) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dirs
}

func (c *FileConfiguration) GetString(key, fromFile string) string {
	for _, dir := range c.dirsFromTo(fromFile) {
		if dir == c.root {
			continue
		}
		v := viper.New()
		if err := c.readInto(v, dir); err == nil && v.IsSet(key) {
			return v.GetString(key)
		}
	}
	return c.base.GetString(key)
}

func (c *FileConfiguration) GetStrings(key, fromFile string) []string {
	for _, dir := range c.dirsFromTo(fromFile) {
		if dir == c.root {
			continue
		}
		v := viper.New()
		if err := c.readInto(v, dir); err == nil && v.IsSet(key) {
			return v.GetStringSlice(key)
		}
	}
	return c.base.GetStringSlice(key)
}

func (c *FileConfiguration) GetBool(key, fromFile string) bool {
	for _, dir := range c.dirsFromTo(fromFile) {
		if dir == c.root {
			continue
		}
		v := viper.New()
		if err := c.readInto(v, dir); err == nil && v.IsSet(key) {
			return v.GetBool(key)
		}
	}
	return c.base.GetBool(key)
}

func (c *FileConfiguration) ResolveAlias(name, currentFile string) (string, bool, bool) {
	entry, ok := c.aliases[name]
	if !ok {
		return "", false, false
	}
	return entry.path, entry.hasNamedExports, true
}

func (c *FileConfiguration) ResolveNamedExports(name string) (string, bool) {
	p, ok := c.namedExports[name]
	return p, ok
}

func (c *FileConfiguration) PackageDependencies() []string {
	return c.packageDependencies
}

// loadAliases reads .importjs-aliases.json (JSONC permitted — comments are
// stripped before gjson parses it, the same jsonc+gjson pairing used for
// named-export registries below).
func (c *FileConfiguration) loadAliases(root string) map[string]aliasEntry {
	out := map[string]aliasEntry{}
	raw, err := afero.ReadFile(c.fs, filepath.Join(root, ".importjs-aliases.json"))
	if err != nil {
		return out
	}
	clean := jsonc.ToJSON(raw)
	gjson.ParseBytes(clean).ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			out[key.String()] = aliasEntry{
				path:            value.Get("path").String(),
				hasNamedExports: value.Get("hasNamedExports").Bool(),
			}
		} else {
			out[key.String()] = aliasEntry{path: value.String()}
		}
		return true
	})
	return out
}

func (c *FileConfiguration) loadNamedExports(root string) map[string]string {
	out := map[string]string{}
	raw, err := afero.ReadFile(c.fs, filepath.Join(root, ".importjs-named-exports.json"))
	if err != nil {
		return out
	}
	clean := jsonc.ToJSON(raw)
	// Registry shape: { "<module path>": ["exportedName", ...], ... }. Invert
	// into name -> path, first writer wins.
	gjson.ParseBytes(clean).ForEach(func(path, names gjson.Result) bool {
		names.ForEach(func(_, name gjson.Result) bool {
			if _, exists := out[name.String()]; !exists {
				out[name.String()] = path.String()
			}
			return true
		})
		return true
	})
	return out
}

func (c *FileConfiguration) loadPackageDependencies(root string) []string {
	return manifest.Dependencies(c.fs, root)
}
