// Package prompt reads single lines of interactive input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

var (
	// ErrInterrupted is returned when the user presses ^C at the prompt.
	ErrInterrupted = errors.New("input interrupted")

	// ErrClosed is returned by reads after Close.
	ErrClosed = errors.New("line reader closed")
)

// LineReader shows a prompt and returns the next line of input without its
// trailing newline. It returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Open returns a readline-backed reader when in is a terminal and a plain
// line reader otherwise, so piped input and tests behave the same way.
func Open(in io.Reader, out io.Writer) (LineReader, error) {
	if f, ok := in.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
		return NewTerminal(f, out)
	}
	return NewReader(in, out), nil
}

// Terminal reads lines with line editing.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal creates a terminal reader. History is disabled so nothing is
// written to disk.
func NewTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           io.NopCloser(in),
		Stdout:          out,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("opening terminal input: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return line, nil
}

func (t *Terminal) Close() error {
	return t.rl.Close()
}

// Reader reads lines from any io.Reader, echoing the prompt to out. Lines
// of any length are accepted.
type Reader struct {
	r      *bufio.Reader
	out    io.Writer
	closed bool
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{r: bufio.NewReader(in), out: out}
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	if r.closed {
		return "", ErrClosed
	}
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", err
		}
	}

	line, err := r.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Close stops further reads. The underlying reader is left open since it is
// usually the process's stdin.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}
