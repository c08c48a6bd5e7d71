package sql

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCreateTable_Basic(t *testing.T) {
	query := "CREATE TABLE users (id INTEGER, name TEXT NULL);"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ct.TableName)
	}

	if len(ct.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ct.Columns))
	}

	assertCol := func(idx int, name string, dt DataType, nullable bool) {
		c := ct.Columns[idx]
		if c.Name != name {
			t.Fatalf("column %d: expected name %q, got %q", idx, name, c.Name)
		}
		if c.Type != dt {
			t.Fatalf("column %d: expected type %v, got %v", idx, dt, c.Type)
		}
		if c.Nullable != nullable {
			t.Fatalf("column %d: expected nullable=%v, got %v", idx, nullable, c.Nullable)
		}
	}

	assertCol(0, "id", TypeInteger, false)
	assertCol(1, "name", TypeText, true)
}

func TestParseCreateTable_CaseAndSpaces(t *testing.T) {
	query := "  create   table   Accounts  (  balance   int ,  owner  varchar null, memo string );  "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.TableName != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", ct.TableName)
	}

	if len(ct.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(ct.Columns))
	}

	if ct.Columns[0].Name != "balance" || ct.Columns[0].Type != TypeInteger {
		t.Fatalf("unexpected first column: %+v", ct.Columns[0])
	}
	if ct.Columns[1].Name != "owner" || ct.Columns[1].Type != TypeText || !ct.Columns[1].Nullable {
		t.Fatalf("unexpected second column: %+v", ct.Columns[1])
	}
	if ct.Columns[2].Name != "memo" || ct.Columns[2].Type != TypeText || ct.Columns[2].Nullable {
		t.Fatalf("unexpected third column: %+v", ct.Columns[2])
	}
}

func TestParseCreateTable_NoSpaceBeforeParen(t *testing.T) {
	stmt, err := Parse("CREATE TABLE t(a INT,b TEXT)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ct := stmt.(*CreateTableStmt)
	if len(ct.Columns) != 2 || ct.Columns[1].Name != "b" {
		t.Fatalf("unexpected columns: %+v", ct.Columns)
	}
}

func TestParseCreateTable_UnknownType(t *testing.T) {
	_, err := Parse("CREATE TABLE t (a FLOAT)")
	if err == nil {
		t.Fatalf("expected error for unknown type, got nil")
	}
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), "FLOAT") {
		t.Fatalf("expected error to name the type, got %q", err.Error())
	}
}

func TestParseInsert_Basic(t *testing.T) {
	query := "INSERT INTO users VALUES (1, 'Alice');"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}

	if ins.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ins.TableName)
	}
	if ins.Columns != nil {
		t.Fatalf("expected no column list, got %#v", ins.Columns)
	}
	if len(ins.Rows) != 1 || len(ins.Rows[0]) != 2 {
		t.Fatalf("expected 1 tuple of 2 values, got %+v", ins.Rows)
	}

	if !ins.Rows[0][0].Equal(IntValue(1)) {
		t.Fatalf("unexpected first value: %+v", ins.Rows[0][0])
	}
	if !ins.Rows[0][1].Equal(TextValue("Alice")) {
		t.Fatalf("unexpected second value: %+v", ins.Rows[0][1])
	}
}

func TestParseInsert_ColumnListAndMultipleTuples(t *testing.T) {
	query := "  insert  into   Accounts (owner, balance)  values  ( 'John Doe' , 100 ),('Jane',NULL) "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}

	if ins.TableName != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", ins.TableName)
	}
	if len(ins.Columns) != 2 || ins.Columns[0] != "owner" || ins.Columns[1] != "balance" {
		t.Fatalf("unexpected Columns: %#v", ins.Columns)
	}
	if len(ins.Rows) != 2 {
		t.Fatalf("expected 2 tuples, got %d", len(ins.Rows))
	}
	if !ins.Rows[0][0].Equal(TextValue("John Doe")) || !ins.Rows[0][1].Equal(IntValue(100)) {
		t.Fatalf("unexpected first tuple: %+v", ins.Rows[0])
	}
	if !ins.Rows[1][1].IsNull() {
		t.Fatalf("expected NULL in second tuple, got %+v", ins.Rows[1][1])
	}
}

func TestParseInsert_StringKeepsSpacesAndCommas(t *testing.T) {
	stmt, err := Parse("INSERT INTO t VALUES ('a, b ( c )')")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins := stmt.(*InsertStmt)
	if len(ins.Rows[0]) != 1 || ins.Rows[0][0].S != "a, b ( c )" {
		t.Fatalf("unexpected tuple: %+v", ins.Rows[0])
	}
}

func TestParseSelect_Basic(t *testing.T) {
	query := "SELECT * FROM users;"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}

	if sel.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", sel.TableName)
	}
	if len(sel.Columns) != 0 {
		t.Fatalf("expected SELECT *, got columns %#v", sel.Columns)
	}
	if sel.Where != nil {
		t.Fatalf("expected no WHERE, got %+v", sel.Where)
	}
}

func TestParseSelect_CaseAndSpaces(t *testing.T) {
	query := "   select   *   from   Accounts   ; "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}

	if sel.TableName != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", sel.TableName)
	}
}

func TestParseSelect_WithWhereInt(t *testing.T) {
	query := "SELECT * FROM users WHERE id = 1;"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}

	if sel.Where == nil {
		t.Fatalf("expected WHERE clause, got nil")
	}
	if sel.Where.Column != "id" || sel.Where.Op != OpEq {
		t.Fatalf("unexpected WHERE expr: %+v", sel.Where)
	}
	if !sel.Where.Value.Equal(IntValue(1)) {
		t.Fatalf("unexpected WHERE value: %+v", sel.Where.Value)
	}
}

func TestParseSelect_WithWhereString(t *testing.T) {
	query := "  select * from  users  where  name = 'Alice Smith' ; "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel := stmt.(*SelectStmt)
	if sel.Where == nil {
		t.Fatalf("expected WHERE clause, got nil")
	}
	if sel.Where.Column != "name" || sel.Where.Op != OpEq {
		t.Fatalf("unexpected WHERE expr: %+v", sel.Where)
	}
	if !sel.Where.Value.Equal(TextValue("Alice Smith")) {
		t.Fatalf("unexpected WHERE value: %+v", sel.Where.Value)
	}
}

func TestParseSelect_Operators(t *testing.T) {
	tests := []struct {
		text string
		want Operator
	}{
		{"=", OpEq},
		{"<>", OpNotEq},
		{"!=", OpNotEq},
		{">=", OpGtEq},
		{"<=", OpLtEq},
		{">", OpGt},
		{"<", OpLt},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			stmt, err := Parse("SELECT * FROM t WHERE a " + tt.text + " 5")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			sel := stmt.(*SelectStmt)
			if sel.Where.Op != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, sel.Where.Op)
			}
		})
	}

	// no whitespace around the operator
	stmt, err := Parse("SELECT * FROM t WHERE a>=5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if w := stmt.(*SelectStmt).Where; w.Op != OpGtEq || w.Value.I64 != 5 {
		t.Fatalf("unexpected WHERE: %+v", w)
	}
}

func TestParseSelect_ColumnListWithWhere(t *testing.T) {
	query := "SELECT name, id, name FROM users WHERE id > 1;"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel := stmt.(*SelectStmt)
	if sel.Where == nil || sel.Where.Op != OpGt {
		t.Fatalf("unexpected WHERE: %+v", sel.Where)
	}
	want := []string{"name", "id", "name"}
	if len(sel.Columns) != len(want) {
		t.Fatalf("unexpected Columns: %#v", sel.Columns)
	}
	for i := range want {
		if sel.Columns[i] != want[i] {
			t.Fatalf("unexpected Columns: %#v", sel.Columns)
		}
	}
}

func TestParseSelect_WhereNull(t *testing.T) {
	stmt, err := Parse("SELECT * FROM t WHERE b = null")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !stmt.(*SelectStmt).Where.Value.IsNull() {
		t.Fatalf("expected NULL literal")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		kind    error
		contain string
	}{
		{"empty", "   ", ErrSyntax, "empty query"},
		{"only terminator", ";", ErrSyntax, "empty query"},
		{"unknown statement", "DROP TABLE users", ErrSyntax, "CREATE TABLE, INSERT or SELECT"},
		{"trailing input", "SELECT * FROM users LIMIT 5", ErrSyntax, "unexpected trailing input: 'LIMIT 5'"},
		{"second terminator", "SELECT * FROM users;;", ErrSyntax, "unexpected trailing input: ';'"},
		{"and is not supported", "SELECT * FROM t WHERE a = 1 AND b = 2", ErrSyntax, "trailing input: 'AND b = 2'"},
		{"missing from", "SELECT * users", ErrSyntax, "expected FROM"},
		{"missing table", "SELECT * FROM", ErrSyntax, "end of input"},
		{"empty column list", "CREATE TABLE t ()", ErrSyntax, "column name"},
		{"missing paren", "CREATE TABLE t a INT", ErrSyntax, "'('"},
		{"missing values", "INSERT INTO t (1, 2)", ErrSyntax, "column name"},
		{"empty values", "INSERT INTO t VALUES ()", ErrSyntax, "value"},
		{"negative literal", "INSERT INTO t VALUES (-1)", ErrInvalidToken, "\"-\""},
		{"unterminated string", "INSERT INTO t VALUES ('abc)", ErrSyntax, "unterminated string"},
		{"overflow", "INSERT INTO t VALUES (9223372036854775808)", ErrSyntax, "out of range"},
		{"bad operator", "SELECT * FROM t WHERE a LIKE 'x'", ErrSyntax, "comparison operator"},
		{"bang alone", "SELECT * FROM t WHERE a ! 1", ErrInvalidToken, "\"!\""},
		{"missing where value", "SELECT * FROM t WHERE a =", ErrSyntax, "expected value"},
		{"quoted identifier", "SELECT * FROM \"t\"", ErrInvalidToken, "table name"},
		{"dangling comma", "SELECT a, FROM t", ErrSyntax, "expected FROM, found 't'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(tt.query)
			if err == nil {
				t.Fatalf("expected error, got statement %+v", stmt)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected kind %v, got %v", tt.kind, err)
			}
			if !strings.Contains(err.Error(), tt.contain) {
				t.Fatalf("expected error containing %q, got %q", tt.contain, err.Error())
			}
		})
	}
}

func TestParse_LargestInteger(t *testing.T) {
	stmt, err := Parse("INSERT INTO t VALUES (9223372036854775807)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := stmt.(*InsertStmt).Rows[0][0].I64; got != 9223372036854775807 {
		t.Fatalf("unexpected value %d", got)
	}
}
