package sql

import "testing"

func TestLexer_Tokens(t *testing.T) {
	lex := NewLexer("select Id,name FROM t_1 where x<>'a b' ;")

	want := []Token{
		{Type: IDENT, Value: "select", Position: 0},
		{Type: IDENT, Value: "Id", Position: 7},
		{Type: COMMA, Value: ",", Position: 9},
		{Type: IDENT, Value: "name", Position: 10},
		{Type: IDENT, Value: "FROM", Position: 15},
		{Type: IDENT, Value: "t_1", Position: 20},
		{Type: IDENT, Value: "where", Position: 24},
		{Type: IDENT, Value: "x", Position: 30},
		{Type: OPERATOR, Value: "<>", Position: 31},
		{Type: STRING, Value: "a b", Position: 33},
		{Type: SEMICOLON, Value: ";", Position: 39},
		{Type: EOF, Position: 40},
	}

	for i, w := range want {
		got := lex.NextToken()
		if got != w {
			t.Fatalf("token %d: expected %+v, got %+v", i, w, got)
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	for _, op := range []string{"=", "<>", "!=", ">=", "<=", ">", "<"} {
		tok := NewLexer(op).NextToken()
		if tok.Type != OPERATOR || tok.Value != op {
			t.Fatalf("%s: unexpected token %+v", op, tok)
		}
	}
}

func TestLexer_Literals(t *testing.T) {
	lex := NewLexer("(0042, 'it', NULL, *)")
	types := []TokenType{LPAREN, INT, COMMA, STRING, COMMA, IDENT, COMMA, STAR, RPAREN, EOF}
	for i, tt := range types {
		tok := lex.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: expected %v, got %+v", i, tt, tok)
		}
		if tt == INT && tok.Value != "0042" {
			t.Fatalf("expected digits to be kept verbatim, got %q", tok.Value)
		}
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	tok := NewLexer("'abc").NextToken()
	if tok.Type != STRING || !tok.Unterminated || tok.Value != "abc" {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestLexer_Invalid(t *testing.T) {
	for _, in := range []string{"-", "@", "\"", "!", "."} {
		tok := NewLexer(in).NextToken()
		if tok.Type != INVALID {
			t.Fatalf("%q: expected INVALID, got %+v", in, tok)
		}
	}
}
