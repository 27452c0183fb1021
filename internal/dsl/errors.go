package dsl

import "fmt"

// LexError reports an invalid character sequence at a source position.
type LexError struct {
	Msg    string
	Offset int
	Line   int
	Col    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError reports a grammar violation at a token.
type ParseError struct {
	Msg string
	Tok Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Tok.Line, e.Tok.Col, e.Msg)
}
