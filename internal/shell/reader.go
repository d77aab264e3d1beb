package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const maxHistory = 200

// LineReader yields one command line at a time. It returns io.EOF when the
// input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// NewLineReader returns an editing reader with history when in is a
// terminal, and a plain line reader otherwise so commands can be piped in.
func NewLineReader(in *os.File, out io.Writer, prompt string, style lipgloss.Style) LineReader {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return NewScanReader(in)
	}
	return &terminalReader{
		in:     in,
		out:    out,
		prompt: prompt,
		style:  style,
	}
}

// ScanReader reads newline-separated commands from any reader.
type ScanReader struct {
	scanner *bufio.Scanner
}

// NewScanReader returns a ScanReader over r.
func NewScanReader(r io.Reader) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next trimmed line.
func (r *ScanReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

type terminalReader struct {
	in      *os.File
	out     io.Writer
	prompt  string
	style   lipgloss.Style
	history []string
}

func (r *terminalReader) ReadLine() (string, error) {
	ti := textinput.New()
	ti.Prompt = r.prompt
	ti.PromptStyle = r.style
	ti.CharLimit = 256
	ti.Focus()

	m := inputModel{input: ti, history: r.history, historyIndex: -1}
	p := tea.NewProgram(m, tea.WithInput(r.in), tea.WithOutput(r.out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	result, ok := final.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected input model %T", final)
	}
	if result.eof {
		return "", io.EOF
	}

	line := strings.TrimSpace(result.input.Value())
	if line != "" {
		r.remember(line)
	}
	return line, nil
}

func (r *terminalReader) remember(line string) {
	if n := len(r.history); n > 0 && r.history[n-1] == line {
		return
	}
	r.history = append(r.history, line)
	if len(r.history) > maxHistory {
		r.history = r.history[1:]
	}
}

type inputModel struct {
	input        textinput.Model
	history      []string
	historyIndex int
	draft        string
	done         bool
	eof          bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC:
		m.input.SetValue("")
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlD:
		// Ctrl+D on an empty line ends the session.
		if m.input.Value() == "" {
			m.eof = true
			m.done = true
			return m, tea.Quit
		}
	case tea.KeyUp:
		if len(m.history) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.draft = m.input.Value()
			m.historyIndex = len(m.history) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
		return m, nil
	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
			m.input.SetValue(m.history[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.input.SetValue(m.draft)
		}
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		// Leave the submitted line on screen without the cursor.
		if m.eof {
			return ""
		}
		return m.input.PromptStyle.Render(m.input.Prompt) + m.input.Value() + "\n"
	}
	return m.input.View()
}
