package storage

import "langdb/internal/sql"

// TableMetadata is a copy of a table's name and schema.
type TableMetadata struct {
	Name   string
	Schema sql.Schema
}

// Engine is a named collection of tables.
//
// Every method is safe for concurrent use and every read returns copies, so
// callers may keep and modify what they get back. Implementations:
//   - in-memory (memstore)
//   - a persistent backend would report IOError and SerializationError
type Engine interface {
	// CreateTable creates an empty table. It fails with TableAlreadyExists
	// if name is taken.
	CreateTable(name string, schema sql.Schema) error

	// DropTable removes a table and its rows.
	DropTable(name string) error

	TableExists(name string) (bool, error)

	// TableMetadata returns the table's name and a copy of its schema.
	TableMetadata(name string) (TableMetadata, error)

	// Insert validates row against the table schema and appends a copy.
	Insert(table string, row sql.Row) error

	// InsertMany validates every row and then appends all of them, or none.
	InsertMany(table string, rows []sql.Row) error

	// Scan returns a snapshot of all rows in insertion order.
	Scan(table string) ([]sql.Row, error)

	// SelectWhere returns a snapshot of the rows where "column op value"
	// holds.
	SelectWhere(table, column string, op sql.Operator, value sql.Value) ([]sql.Row, error)

	RowCount(table string) (int, error)

	// TableNames returns all table names, sorted.
	TableNames() ([]string, error)
}
