package command

import "strings"

// Command syntax, shared between help output and parser error messages.
const (
	CreateTableSyntax = "create_table <table> <col:type> ..."
	DropTableSyntax   = "drop_table <table>"
	ListTablesSyntax  = "list_tables"
	InfoSyntax        = "info <table>"
	InsertSyntax      = "insert into <table> values (<val1>, <val2>, ...)"
	SelectSyntax      = "select from <table> [where <condition>]"
	UpdateSyntax      = "update <table> set <col>=<val> where <condition>"
	DeleteSyntax      = "delete from <table> [where <condition>]"
	HelpSyntax        = "help"
	ExitSyntax        = "exit"
)

// Usage examples.
const (
	CreateTableExample = "create_table users name:str age:int active:bool"
	InsertExample      = `insert into users values ("John", 25, true)`
	SelectExample      = "select from users where age = 28"
	UpdateExample      = `update users set age = 29 where name = "Sergei"`
	DeleteExample      = "delete from users where ID = 1"
)

// HelpText returns the full command reference.
func HelpText() string {
	var b strings.Builder
	b.WriteString("table management:\n")
	b.WriteString("  " + CreateTableSyntax + "\n")
	b.WriteString("      e.g. " + CreateTableExample + "\n")
	b.WriteString("  " + DropTableSyntax + "\n")
	b.WriteString("  " + ListTablesSyntax + "\n")
	b.WriteString("  " + InfoSyntax + "\n")
	b.WriteString("data operations:\n")
	b.WriteString("  " + InsertSyntax + "\n")
	b.WriteString("      e.g. " + InsertExample + "\n")
	b.WriteString("  " + SelectSyntax + "\n")
	b.WriteString("      e.g. " + SelectExample + "\n")
	b.WriteString("  " + UpdateSyntax + "\n")
	b.WriteString("      e.g. " + UpdateExample + "\n")
	b.WriteString("  " + DeleteSyntax + "\n")
	b.WriteString("      e.g. " + DeleteExample + "\n")
	b.WriteString("general:\n")
	b.WriteString("  " + HelpSyntax + "\n")
	b.WriteString("  " + ExitSyntax)
	return b.String()
}
