package sql

// ResultSet is the output of every statement. CREATE TABLE and INSERT return
// an empty schema with no rows and a Message describing what happened.
type ResultSet struct {
	Schema  Schema
	Rows    []Row
	Message string
}

// NewResultSet returns a result over schema and rows.
func NewResultSet(schema Schema, rows []Row) *ResultSet {
	return &ResultSet{Schema: schema, Rows: rows}
}

// EmptyResult returns a result with no columns or rows.
func EmptyResult(msg string) *ResultSet {
	return &ResultSet{Message: msg}
}

// RowCount returns the number of rows.
func (r *ResultSet) RowCount() int {
	return len(r.Rows)
}

// IsEmpty reports whether there are no rows.
func (r *ResultSet) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Strings returns the header followed by every row rendered with
// Value.String.
func (r *ResultSet) Strings() [][]string {
	out := make([][]string, 0, len(r.Rows)+1)
	out = append(out, r.Schema.ColumnNames())
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		out = append(out, cells)
	}
	return out
}
