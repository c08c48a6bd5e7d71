package sql

import (
	"fmt"
	"strings"
)

// parseCreateTable parses:
//
//	CREATE TABLE name (col TYPE [NULL], ...)
func (p *parser) parseCreateTable() (Statement, error) {
	if err := p.expectKeyword("CREATE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}

	tableName, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}

	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var columns []ColumnDef
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		if p.tok.Type != COMMA {
			break
		}
		p.advance()
	}

	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}

func (p *parser) parseColumnDef() (ColumnDef, error) {
	name, err := p.parseIdentifier("column name")
	if err != nil {
		return ColumnDef{}, err
	}

	if p.tok.Type != IDENT {
		return ColumnDef{}, p.unexpected(fmt.Sprintf("data type for column '%s'", name))
	}

	var dt DataType
	switch strings.ToUpper(p.tok.Value) {
	case "INTEGER", "INT":
		dt = TypeInteger
	case "TEXT", "VARCHAR", "STRING":
		dt = TypeText
	default:
		return ColumnDef{}, syntaxError(p.tok.Position,
			fmt.Sprintf("unsupported data type '%s' for column '%s'", p.tok.Value, name))
	}
	p.advance()

	nullable := false
	if p.isKeyword("NULL") {
		nullable = true
		p.advance()
	}

	return ColumnDef{Name: name, Type: dt, Nullable: nullable}, nil
}
