package sql

// parseInsert parses an INSERT INTO ... VALUES (...) statement.
// Example supported syntax:
//
//	INSERT INTO users VALUES (1, 'Alice');
//	INSERT INTO users (id) VALUES (1), (2);
func (p *parser) parseInsert() (Statement, error) {
	if err := p.expectKeyword("INSERT"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}

	tableName, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}

	var columns []string
	if p.tok.Type == LPAREN {
		columns, err = p.parseParenIdentList("column name")
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}

	var rows []Row
	for {
		vals, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		rows = append(rows, vals)

		if p.tok.Type != COMMA {
			break
		}
		p.advance()
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   columns,
		Rows:      rows,
	}, nil
}
