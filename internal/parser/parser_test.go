package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
)

func TestParseBlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		cmd, err := Parse(in)
		require.NoError(t, err)
		assert.Nil(t, cmd)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("truncate users")
	require.ErrorIs(t, err, ErrParse)
	assert.ErrorContains(t, err, `"truncate"`)
	assert.ErrorContains(t, err, "help")
}

func TestParseCreateTable(t *testing.T) {
	cmd, err := Parse("create_table users name:str age:int active:bool")
	require.NoError(t, err)
	ct, ok := cmd.(command.CreateTable)
	require.True(t, ok)
	assert.Equal(t, "users", ct.Table)
	assert.Equal(t, []engine.Column{
		{Name: "name", Type: "str"},
		{Name: "age", Type: "int"},
		{Name: "active", Type: "bool"},
	}, ct.Columns)

	// keyword case-insensitive, type folded to lower
	cmd, err = Parse("CREATE_TABLE t v:INT")
	require.NoError(t, err)
	assert.Equal(t, "int", cmd.(command.CreateTable).Columns[0].Type)

	_, err = Parse("create_table users")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("create_table users nametype")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseDropTable(t *testing.T) {
	cmd, err := Parse("drop_table users")
	require.NoError(t, err)
	assert.Equal(t, command.DropTable{Table: "users"}, cmd)

	_, err = Parse("drop_table")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("drop_table a b")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseListTablesAndInfo(t *testing.T) {
	cmd, err := Parse("list_tables")
	require.NoError(t, err)
	assert.Equal(t, command.ListTables{}, cmd)

	_, err = Parse("list_tables extra")
	assert.ErrorIs(t, err, ErrParse)

	cmd, err = Parse("info users")
	require.NoError(t, err)
	assert.Equal(t, command.Info{Table: "users"}, cmd)
}

func TestParseInsert(t *testing.T) {
	cmd, err := Parse(`insert into users values ("John Smith", 25, true)`)
	require.NoError(t, err)
	ins, ok := cmd.(command.Insert)
	require.True(t, ok)
	assert.Equal(t, "users", ins.Table)
	assert.Equal(t, []any{"John Smith", int64(25), true}, ins.Values)

	// parentheses are optional
	cmd, err = Parse("insert into users values Ada, 36, false")
	require.NoError(t, err)
	assert.Equal(t, []any{"Ada", int64(36), false}, cmd.(command.Insert).Values)

	_, err = Parse("insert users values (1)")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("insert into users values")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseSelect(t *testing.T) {
	cmd, err := Parse("select from users")
	require.NoError(t, err)
	sel := cmd.(command.Select)
	assert.Equal(t, "users", sel.Table)
	assert.Nil(t, sel.Where)

	cmd, err = Parse("select from users where age >= 30")
	require.NoError(t, err)
	sel = cmd.(command.Select)
	require.NotNil(t, sel.Where)
	assert.Equal(t, engine.Condition{Column: "age", Op: engine.OpGe, Value: int64(30)}, *sel.Where)

	_, err = Parse("select users")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("select from users where")
	assert.ErrorIs(t, err, ErrParse)
	_, err = Parse("select from users garbage")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseUpdate(t *testing.T) {
	cmd, err := Parse(`update users set age = 29, name = "Sergei" where ID = 1`)
	require.NoError(t, err)
	up := cmd.(command.Update)
	assert.Equal(t, "users", up.Table)
	assert.Equal(t, map[string]any{"age": int64(29), "name": "Sergei"}, up.Set)
	require.NotNil(t, up.Where)
	assert.Equal(t, engine.Condition{Column: "ID", Op: engine.OpEq, Value: int64(1)}, *up.Where)

	_, err = Parse("update users age = 29 where ID = 1")
	assert.ErrorContains(t, err, "SET")
	_, err = Parse("update users set age = 29")
	assert.ErrorContains(t, err, "WHERE")
	_, err = Parse("update users set where ID = 1")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseDelete(t *testing.T) {
	cmd, err := Parse("delete from users where ID = 1")
	require.NoError(t, err)
	del := cmd.(command.Delete)
	require.NotNil(t, del.Where)
	assert.Equal(t, "ID", del.Where.Column)

	// condition is optional: this is a full-table delete
	cmd, err = Parse("delete from users")
	require.NoError(t, err)
	assert.Nil(t, cmd.(command.Delete).Where)

	_, err = Parse("delete users")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseHelpAndExit(t *testing.T) {
	cmd, err := Parse("help")
	require.NoError(t, err)
	assert.Equal(t, command.Help{}, cmd)

	cmd, err = Parse("EXIT")
	require.NoError(t, err)
	assert.Equal(t, command.Exit{}, cmd)
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"25", int64(25)},
		{"-3", int64(-3)},
		{"true", true},
		{"FALSE", false},
		{"John", "John"},
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
		{"3.5", "3.5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseValue(tc.in), "input %q", tc.in)
	}
}

func TestParseCondition(t *testing.T) {
	cases := []struct {
		in   string
		want engine.Condition
	}{
		{"age = 28", engine.Condition{Column: "age", Op: engine.OpEq, Value: int64(28)}},
		{"age=28", engine.Condition{Column: "age", Op: engine.OpEq, Value: int64(28)}},
		{"age != 28", engine.Condition{Column: "age", Op: engine.OpNe, Value: int64(28)}},
		{"age <= 28", engine.Condition{Column: "age", Op: engine.OpLe, Value: int64(28)}},
		{"age>=28", engine.Condition{Column: "age", Op: engine.OpGe, Value: int64(28)}},
		{"name < b", engine.Condition{Column: "name", Op: engine.OpLt, Value: "b"}},
		{"active = true", engine.Condition{Column: "active", Op: engine.OpEq, Value: true}},
	}
	for _, tc := range cases {
		got, err := ParseCondition(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, *got, "input %q", tc.in)
	}

	for _, in := range []string{"", "age", "= 5", "age ="} {
		_, err := ParseCondition(in)
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
}

func TestParseBadQuoting(t *testing.T) {
	_, err := Parse(`insert into users values ("unterminated`)
	assert.ErrorIs(t, err, ErrParse)
}
