package sql

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
}

// ColumnDef is one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name     string
	Type     DataType
	Nullable bool
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []ColumnDef
}

// InsertStmt represents INSERT INTO t [(cols)] VALUES (...), (...).
// Columns is nil when no column list was given.
type InsertStmt struct {
	TableName string
	Columns   []string
	Rows      []Row
}

// SelectStmt represents SELECT cols FROM t [WHERE cond].
// Columns is empty for SELECT *.
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     *WhereExpr
}

// WhereExpr is the single condition "column op literal".
type WhereExpr struct {
	Column string
	Op     Operator
	Value  Value
}

func (*CreateTableStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
