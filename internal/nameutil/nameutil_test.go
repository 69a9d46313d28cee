package nameutil

import "testing"

func TestValidateTableName(t *testing.T) {
	valid := []string{"users", "Users", "user_accounts", "t1", "таблица"}
	for _, name := range valid {
		if err := ValidateTableName(name); err != nil {
			t.Errorf("ValidateTableName(%q): unexpected error %v", name, err)
		}
	}

	invalid := []string{"", "  ", "a/b", `a\b`, ".", "..", "has space", "ctl\x00"}
	for _, name := range invalid {
		if err := ValidateTableName(name); err == nil {
			t.Errorf("ValidateTableName(%q): expected error", name)
		}
	}
}

func TestValidateColumnName(t *testing.T) {
	if err := ValidateColumnName("age"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"", "a:b", "a b"} {
		if err := ValidateColumnName(name); err == nil {
			t.Errorf("ValidateColumnName(%q): expected error", name)
		}
	}
}
