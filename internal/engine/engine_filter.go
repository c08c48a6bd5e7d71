package engine

import (
	"errors"
	"fmt"

	"langdb/internal/sql"
	"langdb/internal/storage"
)

// whereError maps a storage failure from a filtered read to the execution
// error callers branch on: an unknown column is ColumnNotFound and a failed
// comparison is ExecutionFailed wrapping the type error.
func whereError(err error) error {
	var se *storage.Error
	if !errors.As(err, &se) {
		return storageError(err)
	}

	switch {
	case errors.Is(se, storage.ErrColumnNotFound):
		return columnNotFound(se.Name)
	case errors.Is(se, storage.ErrValidation):
		var te *sql.TypeError
		if errors.As(se, &te) {
			return &ExecError{Kind: ErrExecutionFailed, Err: te}
		}
	}
	return storageError(err)
}

// projectColumns returns only the requested columns (in that order). Names
// resolve against the full table schema; a name may be repeated.
func projectColumns(schema sql.Schema, rows []sql.Row, requestedCols []string) (sql.Schema, []sql.Row, error) {
	indexes := make([]int, len(requestedCols))
	cols := make([]sql.Column, len(requestedCols))
	for i, name := range requestedCols {
		idx := schema.ColumnIndex(name)
		if idx < 0 {
			return sql.Schema{}, nil, columnNotFound(name)
		}
		indexes[i] = idx
		cols[i] = schema.Columns[idx]
	}

	outRows := make([]sql.Row, 0, len(rows))
	for _, r := range rows {
		proj := make(sql.Row, len(indexes))
		for i, idx := range indexes {
			if idx >= len(r) {
				return sql.Schema{}, nil, executionFailed(fmt.Sprintf("internal error: column index %d out of range", idx))
			}
			proj[i] = r[idx]
		}
		outRows = append(outRows, proj)
	}

	return sql.NewSchema(cols...), outRows, nil
}
