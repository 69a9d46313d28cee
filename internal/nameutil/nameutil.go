// Package nameutil validates table and column identifiers.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateTableName checks whether name is acceptable for a table. Table
// names become data file names, so path separators and path meta names are
// rejected in addition to the generic identifier rules.
func ValidateTableName(name string) error {
	if err := validateIdentifier("table", name); err != nil {
		return err
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid table name %q: must not contain path separators", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

// ValidateColumnName checks whether name is acceptable for a column.
// The ':' separator is reserved by the column definition syntax.
func ValidateColumnName(name string) error {
	if err := validateIdentifier("column", name); err != nil {
		return err
	}
	if strings.Contains(name, ":") {
		return fmt.Errorf("invalid column name %q: must not contain ':'", name)
	}
	return nil
}

func validateIdentifier(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid %s name: name cannot be empty", kind)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid %s name: contains invalid encoding", kind)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid %s name: contains control character U+%04X (%q)", kind, r, r)
		}
		if unicode.IsSpace(r) {
			return fmt.Errorf("invalid %s name %q: must not contain whitespace", kind, name)
		}
	}
	return nil
}
