package symbol

import "sync"

// Symbol is an interned, immutable string. Two symbols interned through
// the same Table compare equal exactly when their pointers are equal,
// which is what signature equality relies on.
type Symbol struct {
	text string
}

// String returns the symbol text.
func (s *Symbol) String() string {
	return s.text
}

// Len returns the length of the symbol text in bytes.
func (s *Symbol) Len() int {
	return len(s.text)
}

// Table interns strings to canonical Symbol pointers.
// Safe for concurrent use.
type Table struct {
	symbols sync.Map // string -> *Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

// Intern returns the canonical Symbol for text, creating it on first use.
func (t *Table) Intern(text string) *Symbol {
	if cached, ok := t.symbols.Load(text); ok {
		return cached.(*Symbol)
	}
	sym, _ := t.symbols.LoadOrStore(text, &Symbol{text: text})
	return sym.(*Symbol)
}

var defaultTable = NewTable()

// Intern interns text in the process-wide default table.
func Intern(text string) *Symbol {
	return defaultTable.Intern(text)
}
