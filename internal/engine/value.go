package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts v to the engine representation of colType: int64 for int,
// string for str, bool for bool. It accepts both user-entered values (which
// arrive as parsed literals) and values decoded from JSON (where every number
// is a float64).
func Coerce(colType string, v any) (any, error) {
	switch colType {
	case TypeInt:
		return coerceInt(v)
	case TypeStr:
		return coerceStr(v)
	case TypeBool:
		return coerceBool(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, colType)
	}
}

func coerceInt(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("cannot convert %v to int", n)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", n)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to int", v)
	}
}

func coerceStr(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case int:
		return strconv.Itoa(s), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to str", v)
	}
}

func coerceBool(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, fmt.Errorf("invalid bool value %q", b)
	case int64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
		return nil, fmt.Errorf("invalid bool value %d", b)
	default:
		return nil, fmt.Errorf("cannot convert %T to bool", v)
	}
}

// FormatValue renders an engine value for display.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
