package engine

import (
	"fmt"

	"langdb/internal/logging"
	"langdb/internal/sql"
)

func (e *DBEngine) executeCreateTable(stmt *sql.CreateTableStmt) (*sql.ResultSet, error) {
	logging.WithStatement("CREATE TABLE").Debug("executing", "table", stmt.TableName)

	cols := make([]sql.Column, len(stmt.Columns))
	for i, def := range stmt.Columns {
		cols[i] = sql.Column{Name: def.Name, Type: def.Type, Nullable: def.Nullable}
	}

	if err := e.CreateTable(stmt.TableName, sql.NewSchema(cols...)); err != nil {
		return nil, err
	}
	return sql.EmptyResult(fmt.Sprintf("Table '%s' created", stmt.TableName)), nil
}

// checkDuplicateColumns rejects a column list that names a column twice.
func checkDuplicateColumns(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return executionFailed(fmt.Sprintf("duplicate column '%s'", name))
		}
		seen[name] = struct{}{}
	}
	return nil
}
