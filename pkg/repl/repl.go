// Package repl is the interactive front end: every line entered is
// tokenized on its own and rendered immediately.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/agenthands/ctok/pkg/compiler/lexer"
	"github.com/agenthands/ctok/pkg/report"
)

const (
	Prompt      = "ctok> "
	HistoryFile = ".ctok_history"

	banner   = "ctok interactive tokenizer\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands."
	helpText = `Commands:
  :help    Show this help
  :quit    Exit
Anything else is tokenized.
`
)

// Session renders the tokens of each evaluated line to Out.
type Session struct {
	Out    io.Writer
	Format report.Format
}

// Eval handles one line of input. It reports quit when the user asked to
// leave.
func (s *Session) Eval(line string) (quit bool, err error) {
	cmd := strings.TrimSpace(line)
	switch {
	case cmd == "":
		return false, nil
	case strings.HasPrefix(cmd, ":"):
		switch strings.ToLower(cmd) {
		case ":quit", ":q":
			return true, nil
		case ":help":
			_, err := io.WriteString(s.Out, helpText)
			return false, err
		}
		_, err := fmt.Fprintf(s.Out, "unknown command %s. Type :help for commands.\n", cmd)
		return false, err
	}
	return false, report.Write(s.Out, s.Format, lexer.Tokenize(line))
}

// Run reads lines from the terminal until EOF or :quit. History is loaded
// from and saved to historyPath when it is not empty.
func Run(s *Session, historyPath string) error {
	fmt.Fprintln(s.Out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		quit, err := s.Eval(line)
		if err != nil {
			return fmt.Errorf("rendering tokens: %w", err)
		}
		if quit {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
