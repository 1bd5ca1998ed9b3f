package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateName indicates a custom entry name that is already in the ledger.
	ErrDuplicateName = errors.New("ledger: item already exists")
	// ErrEmptyName indicates a custom entry with no name.
	ErrEmptyName = errors.New("ledger: name is empty")
	// ErrUnknownField indicates a field other than amount, frequency or notes.
	ErrUnknownField = errors.New("ledger: unknown field")
)

// Field names an editable Entry field.
type Field string

// Editable fields.
const (
	FieldAmount    Field = "amount"
	FieldFrequency Field = "frequency"
	FieldNotes     Field = "notes"
)

// ParseField converts s (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldAmount, FieldFrequency, FieldNotes:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Ledger maps an expense name to its entry.
type Ledger map[string]Entry

// Clone returns a shallow copy of l. A nil ledger clones to an empty one.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Names returns the keys of l sorted case-insensitively.
func (l Ledger) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a == b {
			return names[i] < names[j]
		}
		return a < b
	})
	return names
}

// Active returns the names of active entries, sorted.
func (l Ledger) Active() []string {
	var names []string
	for _, name := range l.Names() {
		if l[name].IsActive() {
			names = append(names, name)
		}
	}
	return names
}

// ReconcileSeed returns l plus a placeholder for every catalog name l lacks.
// Existing entries are never changed.
func ReconcileSeed(l Ledger, catalog []string) Ledger {
	out := l.Clone()
	for _, name := range catalog {
		if _, ok := out[name]; !ok {
			out[name] = Placeholder()
		}
	}
	return out
}

// SetField returns a copy of l with one field of name set to value. Values are
// not validated. A name not yet in l starts from the placeholder.
func SetField(l Ledger, name string, field Field, value string) (Ledger, error) {
	e, ok := l[name]
	if !ok {
		e = Placeholder()
	}

	switch field {
	case FieldAmount:
		e.Amount = value
	case FieldFrequency:
		e.Frequency = Frequency(value)
	case FieldNotes:
		e.Notes = value
	default:
		return l, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}

	out := l.Clone()
	out[name] = e
	return out, nil
}

// ClearEntry returns a copy of l with name reset to the placeholder.
func ClearEntry(l Ledger, name string) Ledger {
	out := l.Clone()
	out[name] = Placeholder()
	return out
}

// AddCustom returns a copy of l with a placeholder under name. It fails, and
// returns l unchanged, when name is empty or already present.
func AddCustom(l Ledger, name string) (Ledger, error) {
	if name == "" {
		return l, ErrEmptyName
	}
	if _, ok := l[name]; ok {
		return l, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	out := l.Clone()
	out[name] = Placeholder()
	return out, nil
}

// Fresh returns a ledger holding only placeholders for catalog.
func Fresh(catalog []string) Ledger {
	return ReconcileSeed(nil, catalog)
}
