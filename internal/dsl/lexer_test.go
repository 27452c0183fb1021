package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanKinds(t *testing.T, src string) []TokenKind {
	t.Helper()
	toks, err := Scan(src)
	require.NoError(t, err)
	kinds := make([]TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestScan_Punctuation(t *testing.T) {
	kinds := scanKinds(t, "{ } [ ] ( ) @ ,")
	assert.Equal(t, []TokenKind{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenLParen, TokenRParen, TokenAt, TokenComma, TokenEOF,
	}, kinds)
}

func TestScan_IdentifierCharset(t *testing.T) {
	toks, err := Scan("src/sub-dir_2 *.test.js file+name")
	require.NoError(t, err)
	require.Len(t, toks, 4) // three idents plus EOF
	assert.Equal(t, "src/sub-dir_2", toks[0].Lexeme)
	assert.Equal(t, "*.test.js", toks[1].Lexeme)
	assert.Equal(t, "file+name", toks[2].Lexeme)
}

func TestScan_CommentsAndWhitespace(t *testing.T) {
	src := "# header comment\na.txt   # trailing\n\n\tb.txt\n"
	toks, err := Scan(src)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a.txt", toks[0].Lexeme)
	assert.Equal(t, "b.txt", toks[1].Lexeme)
	assert.Equal(t, 2, toks[0].Line)
	assert.Equal(t, 4, toks[1].Line)
}

func TestScan_RegexLiteral(t *testing.T) {
	toks, err := Scan(`/^comp.*\.js$/i`)
	require.NoError(t, err)
	require.Equal(t, TokenRegex, toks[0].Kind)
	assert.Equal(t, `/^comp.*\.js$/i`, toks[0].Lexeme)
}

func TestScan_RegexBeforeIdentifier(t *testing.T) {
	// A slash with a closing slash on the same line lexes as a regex.
	toks, err := Scan("/docs/")
	require.NoError(t, err)
	assert.Equal(t, TokenRegex, toks[0].Kind)

	// Without a closing slash it falls back to a path identifier.
	toks, err = Scan("/docs")
	require.NoError(t, err)
	assert.Equal(t, TokenIdent, toks[0].Kind)
	assert.Equal(t, "/docs", toks[0].Lexeme)
}

func TestScan_EscapedSlashInRegex(t *testing.T) {
	toks, err := Scan(`/a\/b/`)
	require.NoError(t, err)
	require.Equal(t, TokenRegex, toks[0].Kind)
	assert.Equal(t, `/a\/b/`, toks[0].Lexeme)
}

func TestScan_StringLiteral(t *testing.T) {
	toks, err := Scan(`"@types/" "with \"quote\""`)
	require.NoError(t, err)
	require.Equal(t, TokenString, toks[0].Kind)
	assert.Equal(t, `"@types/"`, toks[0].Lexeme)
	assert.Equal(t, `"with \"quote\""`, toks[1].Lexeme)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, err := Scan("\"no close\nnext")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 1, lexErr.Col)
}

func TestScan_CaptureReference(t *testing.T) {
	toks, err := Scan("$1 $name")
	require.NoError(t, err)
	assert.Equal(t, TokenCapture, toks[0].Kind)
	assert.Equal(t, "$1", toks[0].Lexeme)
	assert.Equal(t, "$name", toks[1].Lexeme)
}

func TestScan_BareDollarFails(t *testing.T) {
	_, err := Scan("$ ")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestScan_UnexpectedCharacter(t *testing.T) {
	_, err := Scan("a.txt\n  %")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
	assert.Equal(t, 3, lexErr.Col)
	assert.Contains(t, lexErr.Error(), "%")
}

func TestScan_EmptySource(t *testing.T) {
	kinds := scanKinds(t, "")
	assert.Equal(t, []TokenKind{TokenEOF}, kinds)
}
