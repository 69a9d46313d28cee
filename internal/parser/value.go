package parser

import (
	"strconv"
	"strings"

	"github.com/avolkov/primdb/internal/engine"
)

// ParseValue interprets a literal: integer, true/false, or string. Shell
// tokenization already strips most quotes; surviving matched quotes (from
// inside parentheses, say) are removed here.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// conditionOps is ordered so two-character operators win over their
// one-character prefixes at the same position.
var conditionOps = []engine.Op{engine.OpLe, engine.OpGe, engine.OpNe, engine.OpEq, engine.OpLt, engine.OpGt}

// ParseCondition parses "<col> <op> <value>" (spaces optional around the
// operator).
func ParseCondition(s string) (*engine.Condition, error) {
	s = strings.TrimSpace(s)
	opIdx := -1
	var op engine.Op
	for _, candidate := range conditionOps {
		if i := strings.Index(s, string(candidate)); i >= 0 && (opIdx == -1 || i < opIdx) {
			opIdx = i
			op = candidate
		}
	}
	if opIdx < 0 {
		return nil, parseErrorf("bad condition %q, expected <col> <op> <value> with one of = != < > <= >=", s)
	}
	col := strings.TrimSpace(s[:opIdx])
	val := strings.TrimSpace(s[opIdx+len(op):])
	if col == "" || val == "" {
		return nil, parseErrorf("bad condition %q, expected <col> <op> <value>", s)
	}
	return &engine.Condition{Column: col, Op: op, Value: ParseValue(val)}, nil
}
