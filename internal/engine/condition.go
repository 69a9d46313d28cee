package engine

import "fmt"

// Op is a comparison operator in a WHERE condition.
type Op string

// Supported comparison operators. Ordering operators apply to int and str
// columns; bool columns support only equality.
const (
	OpEq Op = "="
	OpNe Op = "!="
	OpLt Op = "<"
	OpGt Op = ">"
	OpLe Op = "<="
	OpGe Op = ">="
)

// Condition is a single-column WHERE filter.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Match reports whether row satisfies the condition against t's schema.
func (c *Condition) Match(t *Table, row map[string]any) (bool, error) {
	col, ok := t.Column(c.Column)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrColumnNotFound, c.Column)
	}
	want, err := Coerce(col.Type, c.Value)
	if err != nil {
		return false, fmt.Errorf("condition on %q: %w", c.Column, err)
	}
	have := row[col.Name]

	switch col.Type {
	case TypeBool:
		switch c.Op {
		case OpEq:
			return have == want, nil
		case OpNe:
			return have != want, nil
		default:
			return false, fmt.Errorf("operator %q not supported for bool column %q", c.Op, c.Column)
		}
	case TypeInt:
		return compareOrdered(have.(int64), want.(int64), c.Op)
	case TypeStr:
		return compareOrdered(have.(string), want.(string), c.Op)
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidType, col.Type)
	}
}

func compareOrdered[T int64 | string](have, want T, op Op) (bool, error) {
	switch op {
	case OpEq:
		return have == want, nil
	case OpNe:
		return have != want, nil
	case OpLt:
		return have < want, nil
	case OpGt:
		return have > want, nil
	case OpLe:
		return have <= want, nil
	case OpGe:
		return have >= want, nil
	default:
		return false, fmt.Errorf("unknown operator %q", op)
	}
}
