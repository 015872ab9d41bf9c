// core/logtable/table.go
package logtable

// KeyColumn names the column whose value keys every extracted table.
const KeyColumn = "Length"

// HeaderSet is the ordered column list of one embedded table.
type HeaderSet []string

// Row maps column names to raw field values. Values keep their source
// formatting, thousands separators included; a column the source line
// did not reach is absent, not empty.
type Row map[string]string

// Get returns the named field and whether the row carries it.
func (r Row) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// Table holds one embedded table keyed by each row's Length value, kept
// verbatim as a string. Key order is insertion order.
type Table struct {
	order []string
	rows  map[string]Row
}

func NewTable() Table {
	return Table{rows: map[string]Row{}}
}

// Put inserts or overwrites the row under key and reports whether an
// earlier row was replaced.
func (t *Table) Put(key string, row Row) (replaced bool) {
	if _, ok := t.rows[key]; ok {
		t.rows[key] = row
		return true
	}
	t.order = append(t.order, key)
	t.rows[key] = row
	return false
}

func (t Table) Get(key string) (Row, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// Keys returns the table's keys in insertion order.
func (t Table) Keys() []string { return t.order }

func (t Table) Len() int { return len(t.order) }
