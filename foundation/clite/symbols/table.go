// File: table.go
// Title: Symbol Table
// Description: Flat global symbol table mapping identifiers to their
//              declared type and current value. Entries are created unset
//              by declarations, changed only by assignment and never
//              removed during a run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package symbols

import (
	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Entry is the state of one declared identifier
type Entry struct {
	Name     string
	Declared value.Type
	Value    value.Value
	Set      bool
}

// Outcome describes what an assignment did
type Outcome int

const (
	// OutcomeStored means the value was stored unchanged
	OutcomeStored Outcome = iota

	// OutcomeWidened means an int was stored into a float variable
	OutcomeWidened

	// OutcomeIgnored means the types did not fit and nothing was stored
	OutcomeIgnored
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeWidened:
		return "widened"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Table holds the entries of one run. It is not safe for concurrent use.
type Table struct {
	entries map[string]*Entry
	order   []string
}

// New returns an empty table
func New() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Declare registers name with type t and no value
func (t *Table) Declare(name string, typ value.Type) error {
	if _, exists := t.entries[name]; exists {
		return mdwerror.Newf(mdwerror.CodeDuplicateIdentifier, "identifier '%s' is already declared", name).
			WithDetail("name", name)
	}
	t.entries[name] = &Entry{Name: name, Declared: typ, Value: value.Zero(typ)}
	t.order = append(t.order, name)
	return nil
}

// Lookup returns a copy of the entry for name
func (t *Table) Lookup(name string) (Entry, error) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, undeclared(name)
	}
	return *e, nil
}

// Assign stores v into name following the assignment rule: equal types
// store unchanged, an int into a float variable is widened, every other
// combination leaves the entry untouched and reports OutcomeIgnored.
func (t *Table) Assign(name string, v value.Value) (Outcome, error) {
	e, ok := t.entries[name]
	if !ok {
		return OutcomeIgnored, undeclared(name)
	}

	switch {
	case v.Type() == e.Declared:
		e.Value = v
		e.Set = true
		return OutcomeStored, nil
	case v.Type() == value.TypeInt && e.Declared == value.TypeFloat:
		e.Value, _ = v.Widen(value.TypeFloat)
		e.Set = true
		return OutcomeWidened, nil
	default:
		return OutcomeIgnored, nil
	}
}

// Names returns the declared names in declaration order
func (t *Table) Names() []string {
	result := make([]string, len(t.order))
	copy(result, t.order)
	return result
}

// Entries returns copies of all entries in declaration order
func (t *Table) Entries() []Entry {
	result := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		result = append(result, *t.entries[name])
	}
	return result
}

// Len returns the number of declared identifiers
func (t *Table) Len() int {
	return len(t.order)
}

func undeclared(name string) error {
	return mdwerror.Newf(mdwerror.CodeUndeclaredIdentifier, "identifier '%s' is not declared", name).
		WithDetail("name", name)
}
