package dsl

import "fmt"

// isIdentChar reports whether c may appear in a bare identifier. Identifiers
// double as glob patterns and relative paths, so glob metacharacters, dots,
// dashes, and slashes are all legal.
func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '+' || c == '*' || c == '.' || c == '-' || c == '/':
		return true
	}
	return false
}

func isFlagChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// Scan tokenizes src, discarding whitespace and # line comments. The
// returned slice always ends with a TokenEOF token. The first invalid
// character sequence aborts the scan with a *LexError.
func Scan(src string) ([]Token, error) {
	l := &lexer{src: src, line: 1, col: 1}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

func (l *lexer) errorf(off, line, col int, format string, args ...any) *LexError {
	return &LexError{Msg: fmt.Sprintf(format, args...), Offset: off, Line: line, Col: col}
}

// advance consumes one byte, tracking line and column.
func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *lexer) skipBlanks() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipBlanks()

	start, line, col := l.pos, l.line, l.col
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Offset: start, Line: line, Col: col}, nil
	}

	tok := func(k TokenKind) Token {
		return Token{Kind: k, Lexeme: l.src[start:l.pos], Offset: start, Line: line, Col: col}
	}

	switch c := l.src[l.pos]; c {
	case '{':
		l.advance()
		return tok(TokenLBrace), nil
	case '}':
		l.advance()
		return tok(TokenRBrace), nil
	case '[':
		l.advance()
		return tok(TokenLBracket), nil
	case ']':
		l.advance()
		return tok(TokenRBracket), nil
	case '(':
		l.advance()
		return tok(TokenLParen), nil
	case ')':
		l.advance()
		return tok(TokenRParen), nil
	case '@':
		l.advance()
		return tok(TokenAt), nil
	case ',':
		l.advance()
		return tok(TokenComma), nil
	case '"':
		return l.scanString(tok)
	case '$':
		return l.scanCapture(tok)
	case '/':
		// A regex literal takes precedence over a slash-bearing identifier.
		if l.regexCloses() {
			return l.scanRegex(tok)
		}
		return l.scanIdent(tok)
	default:
		if isIdentChar(c) {
			return l.scanIdent(tok)
		}
		err := l.errorf(start, line, col, "unexpected character %q", c)
		return Token{}, err
	}
}

func (l *lexer) scanIdent(tok func(TokenKind) Token) (Token, error) {
	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.advance()
	}
	return tok(TokenIdent), nil
}

func (l *lexer) scanString(tok func(TokenKind) Token) (Token, error) {
	start, line, col := l.pos, l.line, l.col
	l.advance() // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.advance()
			if l.pos >= len(l.src) {
				return Token{}, l.errorf(start, line, col, "unterminated string literal")
			}
			l.advance()
		case '"':
			l.advance()
			return tok(TokenString), nil
		case '\n':
			return Token{}, l.errorf(start, line, col, "unterminated string literal")
		default:
			l.advance()
		}
	}
	return Token{}, l.errorf(start, line, col, "unterminated string literal")
}

func (l *lexer) scanCapture(tok func(TokenKind) Token) (Token, error) {
	start, line, col := l.pos, l.line, l.col
	l.advance() // '$'
	n := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			l.advance()
			n++
			continue
		}
		break
	}
	if n == 0 {
		return Token{}, l.errorf(start, line, col, "expected capture group name after '$'")
	}
	return tok(TokenCapture), nil
}

// regexCloses reports whether the '/' at the current position begins a regex
// literal, i.e. an unescaped closing '/' appears before the end of the line.
func (l *lexer) regexCloses() bool {
	for i := l.pos + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case '\\':
			i++
		case '\n':
			return false
		case '/':
			return true
		}
	}
	return false
}

func (l *lexer) scanRegex(tok func(TokenKind) Token) (Token, error) {
	l.advance() // opening '/'
	for l.src[l.pos] != '/' {
		if l.src[l.pos] == '\\' {
			l.advance()
		}
		l.advance()
	}
	l.advance() // closing '/'
	for l.pos < len(l.src) && isFlagChar(l.src[l.pos]) {
		l.advance()
	}
	return tok(TokenRegex), nil
}
