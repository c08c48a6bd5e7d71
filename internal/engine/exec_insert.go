package engine

import (
	"fmt"

	"langdb/internal/logging"
	"langdb/internal/sql"
)

// executeInsert stores the tuples one at a time. A failing tuple stops the
// statement; tuples before it stay stored.
func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (*sql.ResultSet, error) {
	log := logging.WithStatement("INSERT")
	log.Debug("executing", "table", stmt.TableName, "tuples", len(stmt.Rows))

	md, err := e.store.TableMetadata(stmt.TableName)
	if err != nil {
		return nil, storageError(err)
	}
	schema := md.Schema

	// positions[i] is where the i-th value of every tuple goes. Without a
	// column list it is the identity.
	positions, err := insertPositions(schema, stmt.Columns)
	if err != nil {
		return nil, err
	}

	for _, values := range stmt.Rows {
		if len(values) != len(positions) {
			return nil, executionFailed(fmt.Sprintf("Column count (%d) does not match value count (%d)",
				len(positions), len(values)))
		}

		// Unmentioned columns stay NULL (the zero Value).
		row := make(sql.Row, schema.Len())
		for i, pos := range positions {
			row[pos] = values[i]
		}

		if err := e.store.Insert(stmt.TableName, row); err != nil {
			return nil, storageError(err)
		}
	}

	total, err := e.store.RowCount(stmt.TableName)
	if err != nil {
		return nil, storageError(err)
	}
	logging.WithTable(stmt.TableName).Info("rows inserted", "count", len(stmt.Rows), "total", total)

	return sql.EmptyResult(fmt.Sprintf("Inserted %d row(s). Total rows: %d", len(stmt.Rows), total)), nil
}

func insertPositions(schema sql.Schema, columns []string) ([]int, error) {
	if columns == nil {
		positions := make([]int, schema.Len())
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	}

	positions := make([]int, len(columns))
	seen := make([]bool, schema.Len())
	for i, colName := range columns {
		pos := schema.ColumnIndex(colName)
		if pos < 0 {
			return nil, columnNotFound(colName)
		}
		if seen[pos] {
			return nil, executionFailed(fmt.Sprintf("duplicate column '%s' in column list", colName))
		}
		seen[pos] = true
		positions[i] = pos
	}
	return positions, nil
}
