package lexer

import (
	"fmt"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// symbols maps participle symbol names to token types. The type of every
// non-EOF kind is its Kind value, so grammars can refer to them by name.
var symbols = func() map[string]plexer.TokenType {
	m := map[string]plexer.TokenType{"EOF": plexer.EOF}
	for k := KindKeyword; k <= KindUnknown; k++ {
		m[k.String()] = plexer.TokenType(k)
	}
	return m
}()

type definition struct{}

// Definition returns a participle lexer definition backed by Scanner, for
// parsers built with github.com/alecthomas/participle/v2.
func Definition() plexer.Definition {
	return definition{}
}

func (definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

func (definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return &participleLexer{filename: filename, scanner: NewScanner(input), source: input}, nil
}

func (d definition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

type participleLexer struct {
	filename string
	scanner  *Scanner
	source   string

	// lineStart is the offset just past the last line feed seen before
	// scanned, which is how far Column has been computed.
	lineStart int
	scanned   int
}

func (l *participleLexer) Next() (plexer.Token, error) {
	tok := l.scanner.Next()
	pos := plexer.Position{
		Filename: l.filename,
		Offset:   tok.Offset,
		Line:     tok.Line,
		Column:   l.column(tok.Offset),
	}
	if tok.Kind == KindEOF {
		return plexer.Token{Type: plexer.EOF, Pos: pos}, nil
	}
	return plexer.Token{Type: plexer.TokenType(tok.Kind), Value: tok.Lexeme, Pos: pos}, nil
}

// column returns the 1-based byte column of offset. Offsets must not
// decrease between calls.
func (l *participleLexer) column(offset int) int {
	for ; l.scanned < offset; l.scanned++ {
		if l.source[l.scanned] == '\n' {
			l.lineStart = l.scanned + 1
		}
	}
	return offset - l.lineStart + 1
}
