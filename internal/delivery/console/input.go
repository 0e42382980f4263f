package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// InputReader hands the console one line per call. io.EOF means the
// player has nothing more to say.
type InputReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// NewInputReader picks the bubbletea reader when in is a terminal and the
// plain line reader otherwise (pipes, files, CI).
func NewInputReader(in io.Reader, out io.Writer) InputReader {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &InteractiveReader{in: in, out: out}
	}
	return NewLineReader(in, out)
}

type LineReader struct {
	r   *bufio.Reader
	out io.Writer
}

func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{r: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and returns the next line without its line
// terminator. Everything else, blanks included, is kept as typed.
func (l *LineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(l.out, prompt)
	}

	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type InteractiveReader struct {
	in  io.Reader
	out io.Writer
}

func (r *InteractiveReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	p := tea.NewProgram(promptModel{input: ti},
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	result, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	if result.eof {
		fmt.Fprintln(r.out)
		return "", io.EOF
	}

	value := result.input.Value()
	fmt.Fprintln(r.out, prompt+value)
	return value, nil
}

type promptModel struct {
	input textinput.Model
	done  bool
	eof   bool
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD:
			// ctrl+c abandona a linha como fim de entrada
			m.done = true
			m.eof = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View()
}
