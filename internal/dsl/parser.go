package dsl

import "fmt"

// Parse tokenizes and parses src into an OrderFile. Any lexical or grammar
// violation aborts the whole parse; callers fall back to default ordering
// rather than working from a partial AST.
func Parse(src string) (*OrderFile, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmts, err := p.statements(false)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.errorf(tok, "unexpected %s", tok.Kind)
	}
	return &OrderFile{Statements: stmts}, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok Token, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Tok: tok}
}

func (p *parser) expect(k TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return Token{}, p.errorf(tok, "expected %s, found %s", k, tok.Kind)
	}
	return p.next(), nil
}

// statements parses until end of input, or until the closing brace when
// inBlock is set. The brace itself is left for the caller.
func (p *parser) statements(inBlock bool) ([]Statement, error) {
	var stmts []Statement
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF || (inBlock && tok.Kind == TokenRBrace) {
			return stmts, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *parser) statement() (Statement, error) {
	switch tok := p.peek(); tok.Kind {
	case TokenAt:
		return p.directiveStatement()
	case TokenIdent, TokenRegex, TokenString:
		return p.patternStatement()
	default:
		return nil, p.errorf(tok, "expected pattern or directive, found %s", tok.Kind)
	}
}

// directiveStatement parses a statement introduced by '@'. A following '{'
// turns the two reserved headers into their block forms: @root merges its
// body into the enclosing scope, @group("name") declares a group block.
func (p *parser) directiveStatement() (Statement, error) {
	at := p.peek()
	d, err := p.directive()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenLBrace {
		return d, nil
	}

	switch d.Name {
	case "root":
		if len(d.Args) != 0 {
			return nil, p.errorf(at, "@root takes no arguments")
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &PathBlock{Body: body}, nil
	case "group":
		name, ok := groupBlockName(d)
		if !ok {
			return nil, p.errorf(at, "@group block requires a single string argument")
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &GroupBlock{Name: name, Body: body}, nil
	default:
		return nil, p.errorf(at, "directive @%s cannot introduce a block", d.Name)
	}
}

func groupBlockName(d *Directive) (string, bool) {
	if len(d.Args) != 1 {
		return "", false
	}
	s, ok := d.Args[0].(*StringArg)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// patternStatement parses `pattern directive* ...`, resolving the shared
// prefix of pathBlock and filePattern: a following '{' makes it a path
// block, anything else a file pattern.
func (p *parser) patternStatement() (Statement, error) {
	pat, err := p.pattern()
	if err != nil {
		return nil, err
	}
	var dirs []*Directive
	for p.peek().Kind == TokenAt {
		d, err := p.directive()
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	if p.peek().Kind != TokenLBrace {
		return &FilePattern{Pattern: pat, Directives: dirs}, nil
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &PathBlock{Pattern: pat, Directives: dirs, Body: body}, nil
}

func (p *parser) block() ([]Statement, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	body, err := p.statements(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *parser) pattern() (Pattern, error) {
	switch tok := p.next(); tok.Kind {
	case TokenIdent:
		return Pattern{Raw: tok.Lexeme}, nil
	case TokenString:
		// Quoted patterns carry names with reserved characters, e.g. "@types/".
		return Pattern{Raw: unquote(tok.Lexeme)}, nil
	case TokenRegex:
		body, flags := splitRegex(tok.Lexeme)
		return Pattern{Raw: body, IsRegex: true, Flags: flags}, nil
	default:
		return Pattern{}, p.errorf(tok, "expected pattern, found %s", tok.Kind)
	}
}

// directive parses `'@' identifier ( '(' args? ')' )?`.
func (p *parser) directive() (*Directive, error) {
	if _, err := p.expect(TokenAt); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	d := &Directive{Name: name.Lexeme}
	if p.peek().Kind != TokenLParen {
		return d, nil
	}
	p.next() // '('
	if p.peek().Kind == TokenRParen {
		p.next()
		return d, nil
	}
	for {
		arg, err := p.directiveArg()
		if err != nil {
			return nil, err
		}
		d.Args = append(d.Args, arg)
		tok := p.next()
		switch tok.Kind {
		case TokenComma:
			continue
		case TokenRParen:
			return d, nil
		default:
			return nil, p.errorf(tok, "expected ',' or ')', found %s", tok.Kind)
		}
	}
}

func (p *parser) directiveArg() (Arg, error) {
	switch tok := p.peek(); tok.Kind {
	case TokenString:
		p.next()
		return &StringArg{Value: unquote(tok.Lexeme)}, nil
	case TokenRegex:
		p.next()
		body, flags := splitRegex(tok.Lexeme)
		return &RegexArg{Source: body, Flags: flags}, nil
	case TokenCapture:
		p.next()
		return &CaptureArg{Name: tok.Lexeme[1:]}, nil
	case TokenIdent:
		p.next()
		return &IdentArg{Value: tok.Lexeme}, nil
	case TokenAt:
		return p.directive()
	default:
		return nil, p.errorf(tok, "expected directive argument, found %s", tok.Kind)
	}
}

// unquote strips the surrounding quotes from a string lexeme and resolves
// backslash escapes to the escaped character.
func unquote(lexeme string) string {
	body := lexeme[1 : len(lexeme)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		out = append(out, body[i])
	}
	return string(out)
}

// splitRegex separates a regex lexeme into its body and trailing flags.
func splitRegex(lexeme string) (body, flags string) {
	end := len(lexeme) - 1
	for end > 0 && lexeme[end] != '/' {
		end--
	}
	return lexeme[1:end], lexeme[end+1:]
}
