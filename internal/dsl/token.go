// Package dsl implements the ordering-file language: a hand-written lexer,
// a recursive-descent parser, and the statement/directive AST the rule
// compiler consumes. Parsing is all-or-nothing; a lexical or grammar
// violation aborts the whole parse and no partial AST is ever produced.
package dsl

// TokenKind identifies a token class produced by the lexer.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenString
	TokenRegex
	TokenCapture
	TokenAt
	TokenComma
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenRegex:
		return "regex"
	case TokenCapture:
		return "capture reference"
	case TokenAt:
		return "'@'"
	case TokenComma:
		return "','"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	}
	return "unknown"
}

// Token is one lexeme with its source position. Offset is a byte offset;
// Line and Col are 1-based. String lexemes keep their surrounding quotes and
// regex lexemes keep their delimiters; the parser unwraps both.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Offset int
	Line   int
	Col    int
}
