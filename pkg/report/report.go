// Package report renders token lists for people and for tools.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/ctok/pkg/compiler/lexer"
)

// Column widths of the token table.
const (
	TokenWidth = 30
	TypeWidth  = 15
	LineWidth  = 6
)

// Format selects how tokens are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want %q or %q)", name, FormatTable, FormatJSON)
}

// Write renders toks to w in the given format.
func Write(w io.Writer, format Format, toks []lexer.Token) error {
	switch format {
	case FormatJSON:
		return JSON(w, toks)
	case FormatTable:
		return Table(w, toks)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Table prints the check marks, a header and one left-aligned row per token.
// Lexemes wider than the column are not truncated.
func Table(w io.Writer, toks []lexer.Token) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "✔ Tokens found\n")
	fmt.Fprint(bw, "✔ Type of token\n\n")

	fmt.Fprintf(bw, "%-*s | %-*s | %-*s\n", TokenWidth, "Token", TypeWidth, "Type", LineWidth, "Line")
	fmt.Fprintf(bw, "%s-|%s-|%s\n",
		strings.Repeat("-", TokenWidth), strings.Repeat("-", TypeWidth), strings.Repeat("-", LineWidth))

	for _, tok := range toks {
		fmt.Fprintf(bw, "%-*s | %-*s | %-*d\n", TokenWidth, tok.Lexeme, TypeWidth, tok.Kind, LineWidth, tok.Line)
	}
	return bw.Flush()
}

type tokenOut struct {
	Lexeme string `json:"lexeme"`
	Type   string `json:"type"`
	Line   int    `json:"line"`
}

// JSON writes one compact object per token, one per line.
func JSON(w io.Writer, toks []lexer.Token) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, tok := range toks {
		if err := enc.Encode(tokenOut{Lexeme: tok.Lexeme, Type: tok.Kind.String(), Line: tok.Line}); err != nil {
			return err
		}
	}
	return bw.Flush()
}
