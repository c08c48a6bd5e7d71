package memstore

import (
	"slices"
	"sync"

	"langdb/internal/logging"
	"langdb/internal/sql"
	"langdb/internal/storage"
)

type table struct {
	name   string
	schema sql.Schema
	rows   []sql.Row // stored rows, append-only
}

// memEngine keeps every table behind one RWMutex. Writers to different
// tables still serialize.
type memEngine struct {
	mu       sync.RWMutex
	poisoned bool // set when a panic escaped while the write lock was held
	tables   map[string]*table
}

// New creates a new in-memory storage engine.
func New() storage.Engine {
	return &memEngine{
		tables: make(map[string]*table),
	}
}

// write runs fn under the write lock.
func (e *memEngine) write(fn func() error) error {
	e.mu.Lock()
	defer e.unlock()

	if e.poisoned {
		return storage.Concurrency("Failed to acquire write lock")
	}
	return fn()
}

// unlock releases the write lock, poisoning the store first if the holder
// is panicking.
func (e *memEngine) unlock() {
	if r := recover(); r != nil {
		e.poisoned = true
		e.mu.Unlock()
		logging.WithComponent("memstore").Error("panic while holding write lock, store poisoned", "panic", r)
		panic(r)
	}
	e.mu.Unlock()
}

// read runs fn under the read lock.
func (e *memEngine) read(fn func() error) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.poisoned {
		return storage.Concurrency("Failed to acquire read lock")
	}
	return fn()
}

// lookup must be called with the lock held.
func (e *memEngine) lookup(name string) (*table, error) {
	t, ok := e.tables[name]
	if !ok {
		return nil, storage.TableNotFound(name)
	}
	return t, nil
}

// CreateTable creates a new table in memory.
func (e *memEngine) CreateTable(name string, schema sql.Schema) error {
	return e.write(func() error {
		if _, exists := e.tables[name]; exists {
			return storage.TableAlreadyExists(name)
		}

		e.tables[name] = &table{
			name:   name,
			schema: schema.Clone(),
			rows:   make([]sql.Row, 0),
		}
		logging.WithTable(name).Debug("table created", "columns", schema.Len())
		return nil
	})
}

func (e *memEngine) DropTable(name string) error {
	return e.write(func() error {
		if _, err := e.lookup(name); err != nil {
			return err
		}
		delete(e.tables, name)
		logging.WithTable(name).Debug("table dropped")
		return nil
	})
}

func (e *memEngine) TableExists(name string) (bool, error) {
	var exists bool
	err := e.read(func() error {
		_, exists = e.tables[name]
		return nil
	})
	return exists, err
}

func (e *memEngine) TableMetadata(name string) (storage.TableMetadata, error) {
	var md storage.TableMetadata
	err := e.read(func() error {
		t, err := e.lookup(name)
		if err != nil {
			return err
		}
		md = storage.TableMetadata{Name: t.name, Schema: t.schema.Clone()}
		return nil
	})
	return md, err
}

// Insert adds a row into a table. The whole row is rejected if any value
// does not fit its column.
func (e *memEngine) Insert(tableName string, row sql.Row) error {
	return e.write(func() error {
		t, err := e.lookup(tableName)
		if err != nil {
			return err
		}
		if err := t.schema.ValidateRow(row); err != nil {
			return storage.Validation(err)
		}

		// store a copy to avoid external modification
		t.rows = append(t.rows, row.Clone())
		return nil
	})
}

// InsertMany validates all rows before appending any of them.
func (e *memEngine) InsertMany(tableName string, rows []sql.Row) error {
	return e.write(func() error {
		t, err := e.lookup(tableName)
		if err != nil {
			return err
		}
		for _, r := range rows {
			if err := t.schema.ValidateRow(r); err != nil {
				return storage.Validation(err)
			}
		}

		for _, r := range rows {
			t.rows = append(t.rows, r.Clone())
		}
		return nil
	})
}

func (e *memEngine) Scan(tableName string) ([]sql.Row, error) {
	var out []sql.Row
	err := e.read(func() error {
		t, err := e.lookup(tableName)
		if err != nil {
			return err
		}

		// Return a deep copy to prevent callers from mutating stored data.
		out = make([]sql.Row, len(t.rows))
		for i, r := range t.rows {
			out[i] = r.Clone()
		}
		return nil
	})
	return out, err
}

func (e *memEngine) SelectWhere(tableName, column string, op sql.Operator, value sql.Value) ([]sql.Row, error) {
	var out []sql.Row
	err := e.read(func() error {
		t, err := e.lookup(tableName)
		if err != nil {
			return err
		}
		idx := t.schema.ColumnIndex(column)
		if idx < 0 {
			return storage.ColumnNotFound(column)
		}

		out = make([]sql.Row, 0)
		for _, r := range t.rows {
			ok, err := sql.Compare(r[idx], op, value)
			if err != nil {
				return storage.Validation(err)
			}
			if ok {
				out = append(out, r.Clone())
			}
		}
		return nil
	})
	return out, err
}

func (e *memEngine) RowCount(tableName string) (int, error) {
	var n int
	err := e.read(func() error {
		t, err := e.lookup(tableName)
		if err != nil {
			return err
		}
		n = len(t.rows)
		return nil
	})
	return n, err
}

func (e *memEngine) TableNames() ([]string, error) {
	var names []string
	err := e.read(func() error {
		names = make([]string, 0, len(e.tables))
		for name := range e.tables {
			names = append(names, name)
		}
		slices.Sort(names)
		return nil
	})
	return names, err
}
