package editor

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Terminal is the CLI adapter: it loads one file into memory, tracks a
// synthetic cursor set from the command line (a real text editor's cursor
// is out of scope here — spec §1 treats the editor integration surface as
// an external collaborator), and writes the file back to disk on Flush.
// Disambiguation prompts are rendered with pterm's interactive select.
type Terminal struct {
	path       string
	lines      []string
	row, col   int
	word       string
	maxLineLen int
	tab        string
	dirty      bool
}

// NewTerminal reads path into memory. word is the identifier under the
// synthetic cursor (row, col); maxLineLen and tab mirror spec §6.1's
// MaxLineLength/Tab accessors.
func NewTerminal(path, word string, row, col, maxLineLen int, tab string) (*Terminal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)
	lines := strings.Split(content, "\n")
	// A trailing newline produces one spurious empty final element; keep it
	// only if the file genuinely ends with a non-empty blank line count, by
	// simply leaving it — CountLines/ReadLine treat it like any other line
	// and Flush re-joins with "\n" so round-tripping is exact either way.
	return &Terminal{
		path:       path,
		lines:      lines,
		row:        row,
		col:        col,
		word:       word,
		maxLineLen: maxLineLen,
		tab:        tab,
	}, nil
}

func (t *Terminal) CurrentWord() string        { return t.word }
func (t *Terminal) PathToCurrentFile() string  { return t.path }
func (t *Terminal) CurrentFileContent() string { return strings.Join(t.lines, "\n") }
func (t *Terminal) CountLines() int            { return len(t.lines) }

func (t *Terminal) ReadLine(i int) string {
	if i < 1 || i > len(t.lines) {
		return ""
	}
	return t.lines[i-1]
}

func (t *Terminal) AppendLine(after int, text string) {
	idx := after // insertion point in a 0-based slice sense: after line `after` (1-based)
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.lines) {
		idx = len(t.lines)
	}
	t.lines = append(t.lines[:idx], append([]string{text}, t.lines[idx:]...)...)
	t.dirty = true
}

func (t *Terminal) DeleteLine(i int) {
	if i < 1 || i > len(t.lines) {
		return
	}
	idx := i - 1
	t.lines = append(t.lines[:idx], t.lines[idx+1:]...)
	t.dirty = true
}

func (t *Terminal) Cursor() (int, int)    { return t.row, t.col }
func (t *Terminal) SetCursor(r, c int)    { t.row, t.col = r, c }
func (t *Terminal) MaxLineLength() int    { return t.maxLineLen }
func (t *Terminal) Tab() string           { return t.tab }
func (t *Terminal) Message(text string)   { pterm.Info.Println(text) }

func (t *Terminal) OpenFile(path string) error {
	pterm.Info.Printfln("open %s", path)
	return nil
}

func (t *Terminal) AskForSelection(name string, choices []string) (int, bool) {
	if len(choices) == 0 {
		return -1, false
	}
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(choices).
		WithDefaultText(name).
		Show()
	if err != nil {
		return -1, false
	}
	for i, c := range choices {
		if c == selected {
			return i, true
		}
	}
	return -1, false
}

// Flush writes the buffer back to disk if it was mutated.
func (t *Terminal) Flush() error {
	if !t.dirty {
		return nil
	}
	return os.WriteFile(t.path, []byte(strings.Join(t.lines, "\n")), 0o644)
}
