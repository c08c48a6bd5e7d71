package sql

import (
	"fmt"
	"strconv"
	"strings"
)

func syntaxError(pos int, msg string) *ParseError {
	return &ParseError{Kind: ErrSyntax, Msg: msg, Pos: pos}
}

// unexpected builds the error for the current token when want was expected.
func (p *parser) unexpected(want string) error {
	switch p.tok.Type {
	case INVALID:
		return &ParseError{
			Kind: ErrInvalidToken,
			Msg:  fmt.Sprintf("%q at position %d (expected %s)", p.tok.Value, p.tok.Position, want),
			Pos:  p.tok.Position,
		}
	case EOF:
		return syntaxError(p.tok.Position, fmt.Sprintf("expected %s, found end of input", want))
	default:
		return syntaxError(p.tok.Position,
			fmt.Sprintf("expected %s, found '%s' at position %d", want, p.tok.Value, p.tok.Position))
	}
}

// isKeyword reports whether the current token is the keyword kw, ignoring case.
func (p *parser) isKeyword(kw string) bool {
	return p.tok.Type == IDENT && strings.EqualFold(p.tok.Value, kw)
}

func (p *parser) expectKeyword(kw string) error {
	if !p.isKeyword(kw) {
		return p.unexpected(kw)
	}
	p.advance()
	return nil
}

func (p *parser) expect(t TokenType) error {
	if p.tok.Type != t {
		return p.unexpected(t.String())
	}
	p.advance()
	return nil
}

// parseIdentifier consumes an identifier. what names it in error messages.
func (p *parser) parseIdentifier(what string) (string, error) {
	if p.tok.Type != IDENT {
		return "", p.unexpected(what)
	}
	name := p.tok.Value
	p.advance()
	return name, nil
}

// parseIdentList parses ident ("," ident)*.
func (p *parser) parseIdentList(what string) ([]string, error) {
	var names []string
	for {
		name, err := p.parseIdentifier(what)
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		if p.tok.Type != COMMA {
			return names, nil
		}
		p.advance()
	}
}

// parseParenIdentList parses "(" ident ("," ident)* ")".
func (p *parser) parseParenIdentList(what string) ([]string, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	names, err := p.parseIdentList(what)
	if err != nil {
		return nil, err
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return names, nil
}

// parseLiteral parses a single literal token into a Value.
// Supports:
//   - integers:  1, 42 (no sign)
//   - strings:   'Alice' (single quotes, no escapes)
//   - NULL (case-insensitive)
func (p *parser) parseLiteral() (Value, error) {
	tok := p.tok
	switch tok.Type {
	case STRING:
		if tok.Unterminated {
			return Value{}, syntaxError(tok.Position,
				fmt.Sprintf("unterminated string literal starting at position %d", tok.Position))
		}
		p.advance()
		return TextValue(tok.Value), nil

	case INT:
		i, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return Value{}, syntaxError(tok.Position,
				fmt.Sprintf("integer literal %s out of range", tok.Value))
		}
		p.advance()
		return IntValue(i), nil

	case IDENT:
		if strings.EqualFold(tok.Value, "NULL") {
			p.advance()
			return NullValue(), nil
		}
	}
	return Value{}, p.unexpected("value")
}

// parseValueList parses "(" value ("," value)* ")".
func (p *parser) parseValueList() (Row, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var vals Row
	for {
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)

		if p.tok.Type != COMMA {
			break
		}
		p.advance()
	}

	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return vals, nil
}
