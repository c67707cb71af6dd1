package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thought-machine/go-flags"

	"github.com/lencioni/import-js/internal/config"
	"github.com/lencioni/import-js/internal/editor"
	"github.com/lencioni/import-js/internal/importer"
	"github.com/lencioni/import-js/internal/lint"
	"github.com/lencioni/import-js/internal/resolver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var opts = struct {
	Usage string

	Import struct {
		File string `short:"f" long:"file" required:"true" description:"Path to the JS file"`
		Row  int    `short:"r" long:"row" required:"true" description:"1-based cursor row"`
		Col  int    `short:"c" long:"col" description:"0-based cursor column"`
	} `command:"import" alias:"i" description:"Import the variable under the cursor"`

	Goto struct {
		File string `short:"f" long:"file" required:"true" description:"Path to the JS file"`
		Row  int    `short:"r" long:"row" required:"true" description:"1-based cursor row"`
		Col  int    `short:"c" long:"col" description:"0-based cursor column"`
	} `command:"goto" alias:"g" description:"Open the module that defines the variable under the cursor"`

	Fix struct {
		File string `short:"f" long:"file" required:"true" description:"Path to the JS file"`
	} `command:"fix" description:"Fix imports using linter diagnostics"`

	Word struct {
		File string `short:"f" long:"file" required:"true" description:"Path to the JS file"`
		Row  int    `short:"r" long:"row" required:"true" description:"1-based cursor row"`
		Col  int    `short:"c" long:"col" description:"0-based cursor column"`
	} `command:"word" description:"Print the word under the cursor"`
}{
	Usage: `
importjs locates the JavaScript module that defines an identifier and
rewrites the current file's import block to bind it.

It provides these operations:
  - import: bind the variable under the cursor to its module
  - goto:   open the file that defines the variable under the cursor
  - fix:    reconcile imports against linter diagnostics
  - word:   print the identifier under the cursor (scripting helper)
`,
}

func newTerminal(path string, row, col int) (*editor.Terminal, error) {
	word, err := wordAt(path, row, col)
	if err != nil {
		return nil, err
	}
	return editor.NewTerminal(path, word, row, col, 80, "  ")
}

func newImporter(path string) *importer.Importer {
	log := logrus.New()
	root := filepath.Dir(path)
	fs := afero.NewOsFs()

	return &importer.Importer{
		Resolver: resolver.New(fs, log),
		Lint:     lint.New(log),
		LoadConfig: func(currentFile string) (config.Configuration, error) {
			return config.Load(fs, root, log)
		},
		ProjectRoot: root,
		Log:         log,
	}
}

var subCommands = map[string]func() int{
	"import": func() int {
		term, err := newTerminal(opts.Import.File, opts.Import.Row, opts.Import.Col)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		imp := newImporter(opts.Import.File)
		imp.Editor = term
		msg := imp.Import()
		fmt.Println(msg)
		if err := term.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	},
	"goto": func() int {
		term, err := newTerminal(opts.Goto.File, opts.Goto.Row, opts.Goto.Col)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		imp := newImporter(opts.Goto.File)
		imp.Editor = term
		fmt.Println(imp.Goto())
		return 0
	},
	"fix": func() int {
		term, err := newTerminal(opts.Fix.File, 1, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		imp := newImporter(opts.Fix.File)
		imp.Editor = term
		msg := imp.FixImports(context.Background())
		fmt.Println(msg)
		if err := term.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	},
	"word": func() int {
		word, err := wordAt(opts.Word.File, opts.Word.Row, opts.Word.Col)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(word)
		return 0
	},
}

func main() {
	p := flags.NewParser(&opts, flags.Default)
	_, err := p.Parse()
	if err != nil {
		os.Exit(1)
	}
	if p.Active == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	os.Exit(subCommands[p.Active.Name]())
}
