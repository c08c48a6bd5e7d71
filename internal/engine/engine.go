package engine

import (
	"langdb/internal/logging"
	"langdb/internal/sql"
	"langdb/internal/storage"
)

// DBEngine executes parsed statements against a storage engine. It keeps no
// per-statement state, so one engine may serve many goroutines once started.
type DBEngine struct {
	started bool
	store   storage.Engine
}

// New creates a new DBEngine on top of store.
func New(store storage.Engine) *DBEngine {
	return &DBEngine{
		started: false,
		store:   store,
	}
}

// Start runs initialization steps for the engine. Call it once, before the
// engine is shared.
func (e *DBEngine) Start() error {
	if e.started {
		return executionFailed("engine already started")
	}
	e.started = true
	logging.WithComponent("engine").Debug("engine started")
	return nil
}

// CreateTable creates a new table in the underlying storage engine.
func (e *DBEngine) CreateTable(name string, schema sql.Schema) error {
	if !e.started {
		return errNotStarted
	}
	if err := checkDuplicateColumns(schema.ColumnNames()); err != nil {
		return err
	}
	if err := e.store.CreateTable(name, schema); err != nil {
		return storageError(err)
	}
	logging.WithTable(name).Info("table created", "columns", schema.Len())
	return nil
}

// InsertRows validates and appends rows in one step: either all of them are
// stored or none.
func (e *DBEngine) InsertRows(tableName string, rows []sql.Row) error {
	if !e.started {
		return errNotStarted
	}
	if err := e.store.InsertMany(tableName, rows); err != nil {
		return storageError(err)
	}
	return nil
}

// SelectAll returns every row of the given table.
func (e *DBEngine) SelectAll(tableName string) (*sql.ResultSet, error) {
	return e.Execute(&sql.SelectStmt{TableName: tableName})
}

// DropTable removes a table and its rows.
func (e *DBEngine) DropTable(name string) error {
	if !e.started {
		return errNotStarted
	}
	if err := e.store.DropTable(name); err != nil {
		return storageError(err)
	}
	logging.WithTable(name).Info("table dropped")
	return nil
}

// ListTables returns the names of all tables in the storage engine.
func (e *DBEngine) ListTables() ([]string, error) {
	if !e.started {
		return nil, errNotStarted
	}

	names, err := e.store.TableNames()
	if err != nil {
		return nil, storageError(err)
	}
	return names, nil
}

// TableSchema returns the column definitions for a table.
func (e *DBEngine) TableSchema(name string) (sql.Schema, error) {
	if !e.started {
		return sql.Schema{}, errNotStarted
	}

	md, err := e.store.TableMetadata(name)
	if err != nil {
		return sql.Schema{}, storageError(err)
	}
	return md.Schema, nil
}
