package sql

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeInteger DataType = iota
	TypeText
)

func (t DataType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeText:
		return "TEXT"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a type name (case-insensitive) to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToUpper(s) {
	case "INTEGER", "INT":
		return TypeInteger, nil
	case "TEXT", "VARCHAR", "STRING", "CHAR":
		return TypeText, nil
	default:
		return 0, newTypeError(ErrUnsupportedType, "", s)
	}
}

// Value represents a single cell in a table (one column in one row).
// Valid is false for NULL, so the zero Value is NULL. Only the field matching
// Type should be read when Valid is true.
type Value struct {
	Type  DataType
	Valid bool

	I64 int64  // for TypeInteger
	S   string // for TypeText
}

// IntValue returns a non-null INTEGER value.
func IntValue(i int64) Value {
	return Value{Type: TypeInteger, Valid: true, I64: i}
}

// TextValue returns a non-null TEXT value.
func TextValue(s string) Value {
	return Value{Type: TypeText, Valid: true, S: s}
}

// NullValue returns NULL.
func NullValue() Value {
	return Value{}
}

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool {
	return !v.Valid
}

// String renders integers in decimal, text in single quotes and NULL as NULL.
func (v Value) String() string {
	if !v.Valid {
		return "NULL"
	}
	switch v.Type {
	case TypeInteger:
		return strconv.FormatInt(v.I64, 10)
	case TypeText:
		return "'" + v.S + "'"
	default:
		return "NULL"
	}
}

// Equal reports whether v and other hold the same value. NULL equals NULL here;
// this is identity, not SQL comparison.
func (v Value) Equal(other Value) bool {
	if v.Valid != other.Valid {
		return false
	}
	if !v.Valid {
		return true
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeInteger:
		return v.I64 == other.I64
	case TypeText:
		return v.S == other.S
	default:
		return false
	}
}

// AsType converts v to t. TEXT converts to INTEGER only when it holds a
// valid signed 64-bit literal; INTEGER always converts to TEXT. NULL converts
// to anything.
func (v Value) AsType(t DataType) (Value, error) {
	if !v.Valid || v.Type == t {
		return v, nil
	}

	switch {
	case v.Type == TypeText && t == TypeInteger:
		i, err := strconv.ParseInt(v.S, 10, 64)
		if err != nil {
			return Value{}, newTypeError(ErrConversion, "", fmt.Sprintf("Cannot convert '%s' to INTEGER", v.S))
		}
		return IntValue(i), nil
	case v.Type == TypeInteger && t == TypeText:
		return TextValue(strconv.FormatInt(v.I64, 10)), nil
	default:
		return Value{}, newTypeError(ErrConversion, "", fmt.Sprintf("Cannot convert %s to %s", v.Type, t))
	}
}

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns a copy of r that shares nothing with it.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name     string
	Type     DataType
	Nullable bool
}

// ValidateValue checks that v can be stored in c.
func (c Column) ValidateValue(v Value) error {
	if !v.Valid {
		if !c.Nullable {
			return newTypeError(ErrInvalidValue, c.Name, "NULL value not allowed for non-nullable column")
		}
		return nil
	}
	if v.Type != c.Type {
		return newTypeError(ErrInvalidValue, c.Name,
			fmt.Sprintf("Value %s does not match column type %s", v, c.Type))
	}
	return nil
}

// Schema is the ordered column list of a table. Column order is the position
// of each value in a Row.
type Schema struct {
	Columns []Column
}

// NewSchema returns a schema over cols.
func NewSchema(cols ...Column) Schema {
	return Schema{Columns: cols}
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.Columns)
}

// Column returns the column called name. Names are case-sensitive.
func (s Schema) Column(name string) (Column, bool) {
	if i := s.ColumnIndex(name); i >= 0 {
		return s.Columns[i], true
	}
	return Column{}, false
}

// ColumnIndex returns the position of name, or -1.
func (s Schema) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in schema order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	if s.Columns == nil {
		return Schema{}
	}
	cols := make([]Column, len(s.Columns))
	copy(cols, s.Columns)
	return Schema{Columns: cols}
}

// ValidateRow checks arity and then every value against its column.
func (s Schema) ValidateRow(row Row) error {
	if len(row) != len(s.Columns) {
		return newTypeError(ErrInvalidValue, "row",
			fmt.Sprintf("Expected %d values, got %d", len(s.Columns), len(row)))
	}
	for i, col := range s.Columns {
		if err := col.ValidateValue(row[i]); err != nil {
			return err
		}
	}
	return nil
}
