package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// LineReader supplies lines of input to a Shell. ReadLine returns io.EOF when
// there is no more input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Lines reads newline-separated input without prompting.
type Lines struct {
	sc *bufio.Scanner
}

// NewLines creates a LineReader over r.
func NewLines(r io.Reader) *Lines {
	return &Lines{sc: bufio.NewScanner(r)}
}

func (l *Lines) ReadLine(prompt string) (string, error) {
	if l.sc.Scan() {
		return l.sc.Text(), nil
	}
	if err := l.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Terminal reads lines from an interactive terminal with line editing and
// history.
type Terminal struct {
	state   *liner.State
	history string
}

// NewTerminal takes control of the terminal. If history is not empty, it
// names a file from which to load history now and to which Close saves it.
func NewTerminal(history string) (*Terminal, error) {
	t := &Terminal{state: liner.NewLiner(), history: history}
	t.state.SetCtrlCAborts(true)
	if history == "" {
		return t, nil
	}
	f, err := os.Open(history)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return t, nil
	case err != nil:
		t.state.Close()
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()
	if _, err := t.state.ReadHistory(f); err != nil {
		t.state.Close()
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return t, nil
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	s, err := t.state.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	if strings.TrimSpace(s) != "" {
		t.state.AppendHistory(s)
	}
	return s, nil
}

// Close restores the terminal and saves history.
func (t *Terminal) Close() error {
	var err error
	if t.history != "" {
		var f *os.File
		f, err = os.Create(t.history)
		if err == nil {
			_, err = t.state.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := t.state.Close(); err == nil {
		err = cerr
	}
	return err
}
