package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agenthands/ctok/pkg/compiler/lexer"
	"github.com/agenthands/ctok/pkg/repl"
	"github.com/agenthands/ctok/pkg/report"
	"github.com/agenthands/ctok/pkg/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ctok", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", string(report.FormatTable), "Output format: table or json")
	interactive := fs.Bool("i", false, "Interactive mode: tokenize each line typed")
	debug := fs.Bool("debug", false, "Enable debug output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ctok [-format table|json] [-debug] [file|-]\n       ctok -i [-format table|json]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if *interactive {
		history := ""
		if home, err := os.UserHomeDir(); err == nil {
			history = filepath.Join(home, repl.HistoryFile)
		}
		if err := repl.Run(&repl.Session{Out: stdout, Format: format}, history); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	// 1. Load Source
	src, err := source.Read(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *debug {
		fmt.Fprintf(stderr, "[ctok] read %d bytes from %s\n", len(src), describe(fs.Arg(0)))
	}

	// 2. Tokenize
	toks := lexer.Tokenize(string(src))
	if *debug {
		debugSummary(stderr, toks)
	}

	// 3. Render
	if err := report.Write(stdout, format, toks); err != nil {
		fmt.Fprintf(stderr, "Error: writing tokens: %v\n", err)
		return 1
	}
	return 0
}

func describe(path string) string {
	if path == "" || path == source.Stdin {
		return "standard input"
	}
	return path
}

func debugSummary(w io.Writer, toks []lexer.Token) {
	var counts [lexer.KindUnknown + 1]int
	for _, tok := range toks {
		counts[tok.Kind]++
	}
	fmt.Fprintf(w, "[ctok] %d tokens\n", len(toks))
	for k := lexer.KindKeyword; k <= lexer.KindUnknown; k++ {
		if counts[k] > 0 {
			fmt.Fprintf(w, "[ctok]   %-10s %d\n", k, counts[k])
		}
	}
}
