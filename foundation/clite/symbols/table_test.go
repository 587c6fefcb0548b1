// File: table_test.go
// Title: Symbol Table Tests
// Description: Tests for declaration, lookup and the assignment rule.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test suite

package symbols

import (
	"testing"

	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

func TestDeclare(t *testing.T) {
	table := New()

	if err := table.Declare("x", value.TypeInt); err != nil {
		t.Fatalf("Declare(x) error = %v", err)
	}
	if err := table.Declare("y", value.TypeFloat); err != nil {
		t.Fatalf("Declare(y) error = %v", err)
	}

	err := table.Declare("x", value.TypeBool)
	if !mdwerror.HasCode(err, mdwerror.CodeDuplicateIdentifier) {
		t.Errorf("Declare(x) again error = %v, want DUPLICATE_IDENTIFIER", err)
	}

	entry, err := table.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x) error = %v", err)
	}
	if entry.Declared != value.TypeInt {
		t.Errorf("duplicate declaration changed the type to %v", entry.Declared)
	}
	if entry.Set {
		t.Error("declared entry should be unset")
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if names := table.Names(); names[0] != "x" || names[1] != "y" {
		t.Errorf("Names() = %v, want [x y]", names)
	}
}

func TestLookupUndeclared(t *testing.T) {
	_, err := New().Lookup("ghost")
	mdwErr, ok := mdwerror.As(err)
	if !ok || mdwErr.Code() != mdwerror.CodeUndeclaredIdentifier {
		t.Fatalf("Lookup() error = %v, want UNDECLARED_IDENTIFIER", err)
	}
	if v, _ := mdwErr.Detail("name"); v != "ghost" {
		t.Errorf("name detail = %v, want ghost", v)
	}
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name     string
		declared value.Type
		assign   value.Value
		want     Outcome
		stored   value.Value
		set      bool
	}{
		{"int into int", value.TypeInt, value.Int(5), OutcomeStored, value.Int(5), true},
		{"float into float", value.TypeFloat, value.Float(2.5), OutcomeStored, value.Float(2.5), true},
		{"int into float widens", value.TypeFloat, value.Int(3), OutcomeWidened, value.Float(3), true},
		{"float into int ignored", value.TypeInt, value.Float(2.5), OutcomeIgnored, value.Int(0), false},
		{"bool into int ignored", value.TypeInt, value.Bool(true), OutcomeIgnored, value.Int(0), false},
		{"int into char ignored", value.TypeChar, value.Int(65), OutcomeIgnored, value.Char(0), false},
		{"char into char", value.TypeChar, value.Char('a'), OutcomeStored, value.Char('a'), true},
		{"bool into bool", value.TypeBool, value.Bool(true), OutcomeStored, value.Bool(true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New()
			if err := table.Declare("v", tt.declared); err != nil {
				t.Fatalf("Declare() error = %v", err)
			}

			got, err := table.Assign("v", tt.assign)
			if err != nil {
				t.Fatalf("Assign() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Assign() = %v, want %v", got, tt.want)
			}

			entry, _ := table.Lookup("v")
			if !entry.Value.Equal(tt.stored) {
				t.Errorf("stored value = %v, want %v", entry.Value, tt.stored)
			}
			if entry.Set != tt.set {
				t.Errorf("Set = %v, want %v", entry.Set, tt.set)
			}
		})
	}
}

func TestAssignIgnoredKeepsPreviousValue(t *testing.T) {
	table := New()
	_ = table.Declare("n", value.TypeInt)
	_, _ = table.Assign("n", value.Int(9))

	if outcome, _ := table.Assign("n", value.Bool(false)); outcome != OutcomeIgnored {
		t.Fatalf("Assign() = %v, want ignored", outcome)
	}

	entry, _ := table.Lookup("n")
	if !entry.Value.Equal(value.Int(9)) || !entry.Set {
		t.Errorf("entry = %+v, want n = 9", entry)
	}
}

func TestAssignUndeclared(t *testing.T) {
	_, err := New().Assign("z", value.Int(1))
	if !mdwerror.HasCode(err, mdwerror.CodeUndeclaredIdentifier) {
		t.Errorf("Assign() error = %v, want UNDECLARED_IDENTIFIER", err)
	}
}

func TestEntriesAreCopies(t *testing.T) {
	table := New()
	_ = table.Declare("a", value.TypeInt)

	entries := table.Entries()
	entries[0].Value = value.Int(100)

	entry, _ := table.Lookup("a")
	if entry.Value.AsInt() != 0 {
		t.Error("Entries() should return copies")
	}
}
