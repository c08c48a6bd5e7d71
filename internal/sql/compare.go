package sql

import (
	"cmp"
	"fmt"
	"strconv"
)

// Operator is a comparison operator usable in a WHERE clause.
type Operator int

const (
	OpEq Operator = iota
	OpNotEq
	OpGt
	OpLt
	OpGtEq
	OpLtEq
)

func (op Operator) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNotEq:
		return "<>"
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGtEq:
		return ">="
	case OpLtEq:
		return "<="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// ParseOperator maps operator text to an Operator. Both "<>" and "!=" mean
// not-equal.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "=":
		return OpEq, true
	case "<>", "!=":
		return OpNotEq, true
	case ">":
		return OpGt, true
	case "<":
		return OpLt, true
	case ">=":
		return OpGtEq, true
	case "<=":
		return OpLtEq, true
	default:
		return 0, false
	}
}

// holds reports whether an ordering result c (-1, 0, +1) satisfies op.
func (op Operator) holds(c int) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNotEq:
		return c != 0
	case OpGt:
		return c > 0
	case OpLt:
		return c < 0
	case OpGtEq:
		return c >= 0
	case OpLtEq:
		return c <= 0
	default:
		return false
	}
}

// Compare evaluates "a op b".
//
// Any comparison involving NULL is false, never an error. INTEGER/INTEGER and
// TEXT/TEXT use native ordering (TEXT is compared bytewise). For a mixed
// INTEGER/TEXT pair the TEXT side is parsed as an integer; if that fails the
// result is an ErrComparison error rather than false.
func Compare(a Value, op Operator, b Value) (bool, error) {
	if !a.Valid || !b.Valid {
		return false, nil
	}

	switch {
	case a.Type == TypeInteger && b.Type == TypeInteger:
		return op.holds(cmp.Compare(a.I64, b.I64)), nil

	case a.Type == TypeText && b.Type == TypeText:
		return op.holds(cmp.Compare(a.S, b.S)), nil

	case a.Type == TypeInteger && b.Type == TypeText:
		bi, err := strconv.ParseInt(b.S, 10, 64)
		if err != nil {
			return false, newTypeError(ErrComparison, "",
				fmt.Sprintf("Cannot compare INTEGER with TEXT: %d and '%s'", a.I64, b.S))
		}
		return op.holds(cmp.Compare(a.I64, bi)), nil

	case a.Type == TypeText && b.Type == TypeInteger:
		ai, err := strconv.ParseInt(a.S, 10, 64)
		if err != nil {
			return false, newTypeError(ErrComparison, "",
				fmt.Sprintf("Cannot compare TEXT with INTEGER: '%s' and %d", a.S, b.I64))
		}
		return op.holds(cmp.Compare(ai, b.I64)), nil

	default:
		return false, newTypeError(ErrComparison, "",
			fmt.Sprintf("Cannot compare %s with %s", a.Type, b.Type))
	}
}
