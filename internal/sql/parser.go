package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single SQL statement string into an AST Statement.
// Supported: CREATE TABLE, INSERT, SELECT. The whole input must be consumed;
// one trailing ';' is tolerated.
func Parse(query string) (Statement, error) {
	// Trim leading & trailing whitespace
	q := strings.TrimSpace(query)

	// Remove trailing semicolon if present
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}
	if q == "" {
		return nil, syntaxError(0, "empty query")
	}

	p := newParser(q)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if p.tok.Type != EOF {
		return nil, syntaxError(p.tok.Position,
			fmt.Sprintf("unexpected trailing input: '%s'", p.lex.Rest(p.tok.Position)))
	}
	return stmt, nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lex *Lexer
	tok Token
}

func newParser(q string) *parser {
	p := &parser{lex: NewLexer(q)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.NextToken()
}

func (p *parser) parseStatement() (Statement, error) {
	switch {
	case p.isKeyword("CREATE"):
		return p.parseCreateTable()
	case p.isKeyword("INSERT"):
		return p.parseInsert()
	case p.isKeyword("SELECT"):
		return p.parseSelect()
	default:
		return nil, p.unexpected("CREATE TABLE, INSERT or SELECT")
	}
}
