package lexer

// Scanner performs lexical analysis on C-like source.
type Scanner struct {
	source string
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Tokenize scans src to the end and returns every token in source order.
// It never fails: bytes it cannot classify come back as KindUnknown.
func Tokenize(src string) []Token {
	var toks []Token
	s := NewScanner(src)
	for {
		tok := s.Next()
		if tok.Kind == KindEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token from the source, or a KindEOF token once the
// input is exhausted.
func (s *Scanner) Next() Token {
	for s.cursor < len(s.source) {
		start := s.cursor
		ch := s.source[start]

		// 1. Whitespace and comments
		switch {
		case isSpace(ch):
			if ch == '\n' {
				s.line++
			}
			s.cursor++
			continue
		case ch == '/' && s.peek() == '/':
			s.skipLineComment()
			continue
		case ch == '/' && s.peek() == '*':
			s.skipBlockComment()
			continue
		}

		// 2. Literals and words
		switch {
		case ch == '\'':
			return s.scanChar()
		case ch == '"':
			return s.scanString()
		case isAlpha(ch) || ch == '_':
			return s.scanIdentifier()
		}

		if isDigit(ch) || (ch == '.' && isDigit(s.peek())) {
			if tok, ok := s.scanNumber(); ok {
				return tok
			}
		}

		// 3. Operators, then punctuation
		if tok, ok := s.scanOperator(); ok {
			return tok
		}

		s.cursor++
		kind := KindUnknown
		if IsDelimiter(ch) {
			kind = KindDelimiter
		}
		return s.token(kind, start)
	}

	return Token{Kind: KindEOF, Offset: s.cursor, Line: s.line}
}

func (s *Scanner) token(kind Kind, start int) Token {
	return Token{Kind: kind, Lexeme: s.source[start:s.cursor], Offset: start, Line: s.line}
}

// skipLineComment stops on the line feed so the whitespace branch counts it.
func (s *Scanner) skipLineComment() {
	s.cursor += 2
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
}

func (s *Scanner) skipBlockComment() {
	s.cursor += 2
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == '*' && s.peek() == '/' {
			s.cursor += 2
			return
		}
		if ch == '\n' {
			s.line++
		}
		s.cursor++
	}
}

func (s *Scanner) scanChar() Token {
	start := s.cursor
	s.cursor++ // Skip opening '\''

	if s.cursor < len(s.source) {
		if s.source[s.cursor] == '\\' {
			s.cursor++
			if s.cursor < len(s.source) {
				s.cursor++
			}
		} else {
			if s.source[s.cursor] == '\n' {
				s.line++
			}
			s.cursor++
		}
	}

	if s.cursor < len(s.source) && s.source[s.cursor] == '\'' {
		s.cursor++
	}
	return s.token(KindChar, start)
}

func (s *Scanner) scanString() Token {
	start := s.cursor
	s.cursor++ // Skip opening '"'
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		s.cursor++
		if ch == '\\' {
			if s.cursor < len(s.source) {
				s.cursor++
			}
			continue
		}
		if ch == '"' {
			break
		}
		if ch == '\n' {
			s.line++
		}
	}
	return s.token(KindString, start)
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor]) || s.source[s.cursor] == '_') {
		s.cursor++
	}

	kind := KindIdentifier
	if IsKeyword(s.source[start:s.cursor]) {
		kind = KindKeyword
	}
	return s.token(kind, start)
}

// scanNumber matches digits? ('.' digits?)? ([eE] [+-]? digits)?. An exponent
// without digits is given back. When nothing but a '.' was consumed the
// cursor is restored and ok is false.
func (s *Scanner) scanNumber() (tok Token, ok bool) {
	start := s.cursor
	sawDigit := false

	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
		sawDigit = true
	}

	if s.cursor < len(s.source) && s.source[s.cursor] == '.' {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
			sawDigit = true
		}
	}

	if s.cursor < len(s.source) && (s.source[s.cursor] == 'e' || s.source[s.cursor] == 'E') {
		mark := s.cursor
		s.cursor++
		if s.cursor < len(s.source) && (s.source[s.cursor] == '+' || s.source[s.cursor] == '-') {
			s.cursor++
		}
		digits := s.cursor
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
		if s.cursor == digits {
			s.cursor = mark
		}
	}

	if !sawDigit {
		s.cursor = start
		return Token{}, false
	}
	return s.token(KindNumber, start), true
}

// scanOperator tries the 3-, 2- and 1-byte windows in that order.
func (s *Scanner) scanOperator() (tok Token, ok bool) {
	start := s.cursor
	for n := maxOperatorLen; n >= 1; n-- {
		if start+n > len(s.source) {
			continue
		}
		if IsOperator(s.source[start : start+n]) {
			s.cursor += n
			return s.token(KindOperator, start), true
		}
	}
	return Token{}, false
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
