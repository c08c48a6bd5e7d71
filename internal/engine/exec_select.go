package engine

import (
	"langdb/internal/logging"
	"langdb/internal/sql"
)

// executeSelect loads the schema, fetches the rows (filtered by the WHERE
// condition when there is one) and projects the requested columns.
func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (*sql.ResultSet, error) {
	logging.WithStatement("SELECT").Debug("executing", "table", stmt.TableName, "where", stmt.Where != nil)

	md, err := e.store.TableMetadata(stmt.TableName)
	if err != nil {
		return nil, storageError(err)
	}

	var rows []sql.Row
	if stmt.Where == nil {
		rows, err = e.store.Scan(stmt.TableName)
		if err != nil {
			return nil, storageError(err)
		}
	} else {
		rows, err = e.store.SelectWhere(stmt.TableName, stmt.Where.Column, stmt.Where.Op, stmt.Where.Value)
		if err != nil {
			return nil, whereError(err)
		}
	}

	// If no column list -> return all columns.
	if len(stmt.Columns) == 0 {
		return sql.NewResultSet(md.Schema, rows), nil
	}

	schema, projected, err := projectColumns(md.Schema, rows, stmt.Columns)
	if err != nil {
		return nil, err
	}
	return sql.NewResultSet(schema, projected), nil
}
