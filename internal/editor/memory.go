package editor

import "strings"

// Memory is an in-memory Editor used by tests throughout the repo instead
// of a real file on disk.
type Memory struct {
	Lines         []string
	Word          string
	Path          string
	Row, Col      int
	MaxLineLen    int
	TabStr        string
	Opened        []string
	Messages      []string
	SelectionIdx  int
	SelectionOK   bool
	AskedName     string
	AskedChoices  []string
}

// NewMemory builds a Memory editor from a literal buffer.
func NewMemory(content string) *Memory {
	return &Memory{
		Lines:      strings.Split(content, "\n"),
		MaxLineLen: 80,
		TabStr:     "  ",
	}
}

func (m *Memory) CurrentWord() string        { return m.Word }
func (m *Memory) PathToCurrentFile() string  { return m.Path }
func (m *Memory) CurrentFileContent() string { return strings.Join(m.Lines, "\n") }
func (m *Memory) CountLines() int            { return len(m.Lines) }

func (m *Memory) ReadLine(i int) string {
	if i < 1 || i > len(m.Lines) {
		return ""
	}
	return m.Lines[i-1]
}

func (m *Memory) AppendLine(after int, text string) {
	idx := after
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.Lines) {
		idx = len(m.Lines)
	}
	m.Lines = append(m.Lines[:idx], append([]string{text}, m.Lines[idx:]...)...)
}

func (m *Memory) DeleteLine(i int) {
	if i < 1 || i > len(m.Lines) {
		return
	}
	idx := i - 1
	m.Lines = append(m.Lines[:idx], m.Lines[idx+1:]...)
}

func (m *Memory) Cursor() (int, int) { return m.Row, m.Col }
func (m *Memory) SetCursor(r, c int) { m.Row, m.Col = r, c }
func (m *Memory) MaxLineLength() int { return m.MaxLineLen }
func (m *Memory) Tab() string        { return m.TabStr }
func (m *Memory) Message(text string) {
	m.Messages = append(m.Messages, text)
}
func (m *Memory) OpenFile(path string) error {
	m.Opened = append(m.Opened, path)
	return nil
}

func (m *Memory) AskForSelection(name string, choices []string) (int, bool) {
	m.AskedName = name
	m.AskedChoices = choices
	return m.SelectionIdx, m.SelectionOK
}
