package sql

import "fmt"

// parseSelect parses a simple SELECT statement.
// Supported forms (case-insensitive, flexible spaces):
//
//	SELECT * FROM users;
//	SELECT name, id FROM users;
//	SELECT * FROM users WHERE id >= 1;
//	SELECT * FROM users WHERE name = 'Alice';
func (p *parser) parseSelect() (Statement, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	var columns []string
	if p.tok.Type == STAR {
		p.advance()
	} else {
		cols, err := p.parseIdentList("column name or '*'")
		if err != nil {
			return nil, err
		}
		columns = cols
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}

	tableName, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}

	var where *WhereExpr
	if p.isKeyword("WHERE") {
		p.advance()
		where, err = p.parseWhereClause()
		if err != nil {
			return nil, err
		}
	}

	return &SelectStmt{
		TableName: tableName,
		Columns:   columns,
		Where:     where,
	}, nil
}

// parseWhereClause parses a single "column op literal" condition.
func (p *parser) parseWhereClause() (*WhereExpr, error) {
	col, err := p.parseIdentifier("column name in WHERE")
	if err != nil {
		return nil, err
	}

	if p.tok.Type != OPERATOR {
		return nil, p.unexpected("comparison operator")
	}
	op, ok := ParseOperator(p.tok.Value)
	if !ok {
		return nil, syntaxError(p.tok.Position, fmt.Sprintf("unknown operator '%s'", p.tok.Value))
	}
	p.advance()

	val, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &WhereExpr{
		Column: col,
		Op:     op,
		Value:  val,
	}, nil
}
