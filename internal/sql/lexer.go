package sql

import "fmt"

// TokenType is the lexical class of a Token.
type TokenType int

const (
	EOF TokenType = iota
	INVALID
	IDENT
	INT
	STRING
	COMMA
	LPAREN
	RPAREN
	STAR
	SEMICOLON
	OPERATOR
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case INVALID:
		return "invalid character"
	case IDENT:
		return "identifier"
	case INT:
		return "integer"
	case STRING:
		return "string"
	case COMMA:
		return "','"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case STAR:
		return "'*'"
	case SEMICOLON:
		return "';'"
	case OPERATOR:
		return "operator"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one lexeme. Value holds the source text, except for STRING where
// it is the text between the quotes. Position is the byte offset of the
// token's first character.
type Token struct {
	Type     TokenType
	Value    string
	Position int

	// Unterminated is set on a STRING token that ran to end of input.
	Unterminated bool
}

// Lexer splits SQL text into tokens. Keywords come out as IDENT; the parser
// matches them case-insensitively. Identifier and literal case is preserved.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken skips whitespace and returns the next token. At end of input it
// returns EOF, and keeps returning it.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Position: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == ',':
		l.pos++
		return createToken(COMMA, ",", start)
	case ch == '(':
		l.pos++
		return createToken(LPAREN, "(", start)
	case ch == ')':
		l.pos++
		return createToken(RPAREN, ")", start)
	case ch == '*':
		l.pos++
		return createToken(STAR, "*", start)
	case ch == ';':
		l.pos++
		return createToken(SEMICOLON, ";", start)
	case ch == '=' || ch == '<' || ch == '>' || ch == '!':
		return l.readOperator(start)
	case ch == '\'':
		return l.readString(start)
	case isDigit(ch):
		return l.readNumber(start)
	case isIdentStart(ch):
		return l.readIdentifier(start)
	default:
		l.pos++
		return createToken(INVALID, string(ch), start)
	}
}

// Rest returns the unread input starting at pos.
func (l *Lexer) Rest(pos int) string {
	if pos >= len(l.input) {
		return ""
	}
	return l.input[pos:]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

// readOperator reads the longest of the two-character operators, falling
// back to a single character.
func (l *Lexer) readOperator(start int) Token {
	if l.pos+1 < len(l.input) {
		switch two := l.input[l.pos : l.pos+2]; two {
		case "<>", "!=", ">=", "<=":
			l.pos += 2
			return createToken(OPERATOR, two, start)
		}
	}

	ch := l.input[l.pos]
	l.pos++
	if ch == '!' {
		return createToken(INVALID, "!", start)
	}
	return createToken(OPERATOR, string(ch), start)
}

// readString reads up to the next single quote. There are no escapes.
func (l *Lexer) readString(start int) Token {
	l.pos++ // opening quote
	begin := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '\'' {
		l.pos++
	}

	tok := createToken(STRING, l.input[begin:l.pos], start)
	if l.pos >= len(l.input) {
		tok.Unterminated = true
		return tok
	}
	l.pos++ // closing quote
	return tok
}

func (l *Lexer) readNumber(start int) Token {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return createToken(INT, l.input[start:l.pos], start)
}

func (l *Lexer) readIdentifier(start int) Token {
	for l.pos < len(l.input) && (isIdentStart(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	return createToken(IDENT, l.input[start:l.pos], start)
}

func createToken(t TokenType, value string, start int) Token {
	return Token{
		Type:     t,
		Value:    value,
		Position: start,
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
