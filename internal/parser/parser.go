// Package parser turns textual database commands into executable command
// values. Tokenization follows shell quoting rules, so string values may be
// quoted the same way they would be in a shell.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
)

// ErrParse wraps every syntax error produced by this package.
var ErrParse = errors.New("parse error")

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// Parse converts one input line into a command. Blank input yields
// (nil, nil). Keywords are case-insensitive; identifiers are not.
func Parse(input string) (command.Command, error) {
	tokens, err := shellquote.Split(input)
	if err != nil {
		return nil, parseErrorf("%v", err)
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	name := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch name {
	case "create_table":
		return parseCreateTable(args)
	case "drop_table":
		return parseDropTable(args)
	case "list_tables":
		return parseListTables(args)
	case "info":
		return parseInfo(args)
	case "insert":
		return parseInsert(args)
	case "select":
		return parseSelect(args)
	case "update":
		return parseUpdate(args)
	case "delete":
		return parseDelete(args)
	case "help":
		return command.Help{}, nil
	case "exit":
		return command.Exit{}, nil
	default:
		return nil, parseErrorf("unknown command %q, type 'help' for the command reference", name)
	}
}

func parseCreateTable(args []string) (command.Command, error) {
	if len(args) < 2 {
		return nil, parseErrorf("usage: %s\n  e.g. %s", command.CreateTableSyntax, command.CreateTableExample)
	}
	cols := make([]engine.Column, 0, len(args)-1)
	for _, def := range args[1:] {
		name, typ, ok := strings.Cut(def, ":")
		if !ok {
			return nil, parseErrorf("bad column definition %q, expected <name>:<type>", def)
		}
		cols = append(cols, engine.Column{
			Name: strings.TrimSpace(name),
			Type: strings.ToLower(strings.TrimSpace(typ)),
		})
	}
	return command.CreateTable{Table: args[0], Columns: cols}, nil
}

func parseDropTable(args []string) (command.Command, error) {
	if len(args) != 1 {
		return nil, parseErrorf("usage: %s", command.DropTableSyntax)
	}
	return command.DropTable{Table: args[0]}, nil
}

func parseListTables(args []string) (command.Command, error) {
	if len(args) != 0 {
		return nil, parseErrorf("usage: %s (no arguments)", command.ListTablesSyntax)
	}
	return command.ListTables{}, nil
}

func parseInfo(args []string) (command.Command, error) {
	if len(args) != 1 {
		return nil, parseErrorf("usage: %s", command.InfoSyntax)
	}
	return command.Info{Table: args[0]}, nil
}

func parseInsert(args []string) (command.Command, error) {
	if len(args) < 3 || !strings.EqualFold(args[0], "into") || !strings.EqualFold(args[2], "values") {
		return nil, parseErrorf("usage: %s\n  e.g. %s", command.InsertSyntax, command.InsertExample)
	}
	raw := strings.TrimSpace(strings.Join(args[3:], " "))
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		raw = raw[1 : len(raw)-1]
	}
	values := []any{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, ParseValue(part))
	}
	if len(values) == 0 {
		return nil, parseErrorf("usage: %s\n  e.g. %s", command.InsertSyntax, command.InsertExample)
	}
	return command.Insert{Table: args[1], Values: values}, nil
}

func parseSelect(args []string) (command.Command, error) {
	if len(args) < 2 || !strings.EqualFold(args[0], "from") {
		return nil, parseErrorf("usage: %s\n  e.g. %s", command.SelectSyntax, command.SelectExample)
	}
	where, err := parseOptionalWhere(args[2:])
	if err != nil {
		return nil, err
	}
	return command.Select{Table: args[1], Where: where}, nil
}

func parseUpdate(args []string) (command.Command, error) {
	usage := parseErrorf("usage: %s\n  e.g. %s", command.UpdateSyntax, command.UpdateExample)
	if len(args) < 4 {
		return nil, usage
	}
	setIdx, whereIdx := -1, -1
	for i, a := range args {
		switch strings.ToLower(a) {
		case "set":
			if setIdx == -1 {
				setIdx = i
			}
		case "where":
			whereIdx = i
		}
	}
	if setIdx == -1 {
		return nil, parseErrorf("missing SET in update")
	}
	if whereIdx == -1 {
		return nil, parseErrorf("missing WHERE in update")
	}
	if !(0 < setIdx && setIdx < whereIdx && whereIdx < len(args)-1) {
		return nil, usage
	}

	set, err := parseSetClause(strings.Join(args[setIdx+1:whereIdx], " "))
	if err != nil {
		return nil, err
	}
	where, err := ParseCondition(strings.Join(args[whereIdx+1:], " "))
	if err != nil {
		return nil, err
	}
	return command.Update{Table: args[0], Set: set, Where: where}, nil
}

func parseSetClause(clause string) (map[string]any, error) {
	set := map[string]any{}
	for _, assignment := range strings.Split(clause, ",") {
		assignment = strings.TrimSpace(assignment)
		if assignment == "" {
			continue
		}
		col, val, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, parseErrorf("bad assignment %q in SET, expected <col>=<val>", assignment)
		}
		col = strings.TrimSpace(col)
		if col == "" {
			return nil, parseErrorf("bad assignment %q in SET, expected <col>=<val>", assignment)
		}
		set[col] = ParseValue(strings.TrimSpace(val))
	}
	if len(set) == 0 {
		return nil, parseErrorf("empty SET clause")
	}
	return set, nil
}

func parseDelete(args []string) (command.Command, error) {
	if len(args) < 2 || !strings.EqualFold(args[0], "from") {
		return nil, parseErrorf("usage: %s\n  e.g. %s", command.DeleteSyntax, command.DeleteExample)
	}
	where, err := parseOptionalWhere(args[2:])
	if err != nil {
		return nil, err
	}
	return command.Delete{Table: args[1], Where: where}, nil
}

// parseOptionalWhere handles the trailing [where <condition>] of select and
// delete. rest is everything after the table name.
func parseOptionalWhere(rest []string) (*engine.Condition, error) {
	if len(rest) == 0 {
		return nil, nil
	}
	if !strings.EqualFold(rest[0], "where") || len(rest) == 1 {
		return nil, parseErrorf("expected 'where <condition>', got %q", strings.Join(rest, " "))
	}
	return ParseCondition(strings.Join(rest[1:], " "))
}
