package engine

import (
	"fmt"

	"langdb/internal/sql"
)

// Execute takes a parsed SQL Statement and executes it using the engine.
// CREATE TABLE and INSERT return a result with no columns and a Message;
// SELECT returns the projected columns and matching rows.
func (e *DBEngine) Execute(stmt sql.Statement) (*sql.ResultSet, error) {
	if !e.started {
		return nil, errNotStarted
	}

	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreateTable(s)

	case *sql.InsertStmt:
		return e.executeInsert(s)

	case *sql.SelectStmt:
		return e.executeSelect(s)

	default:
		return nil, &ExecError{Kind: ErrUnsupportedOperation, Msg: fmt.Sprintf("statement type %T", stmt)}
	}
}
