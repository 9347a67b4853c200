package models

import (
	"bytes"
	"encoding/json"
)

// KeyColumn identifies a unit in the state and history tables.
const KeyColumn = "ac_id"

// TimestampLayout is the wall-clock format used by every table.
const TimestampLayout = "2006-01-02 15:04:05"

// Table is a CSV-backed table. Columns is the header captured when the file
// was read; it is shared by every row and written back verbatim on save.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the header contains col.
func (t Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Find returns the index of the first row whose ac_id equals acID.
func (t Table) Find(acID string) (int, bool) {
	for i, r := range t.Rows {
		if r.Get(KeyColumn) == acID {
			return i, true
		}
	}
	return -1, false
}

// Row is a single record keyed by column name. It renders to JSON in header order.
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow builds a row over the given header.
func NewRow(columns []string, values map[string]string) Row {
	if values == nil {
		values = make(map[string]string, len(columns))
	}
	return Row{columns: columns, values: values}
}

// Get returns the value of col, or "" when the row has none.
func (r Row) Get(col string) string {
	return r.values[col]
}

// Set overwrites the value of col.
func (r *Row) Set(col, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[col] = value
}

// Values returns the row as a record ordered like columns.
func (r Row) Values(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = r.values[c]
	}
	return out
}

// Clone returns a deep copy sharing only the header.
func (r Row) Clone() Row {
	values := make(map[string]string, len(r.values))
	for k, v := range r.values {
		values[k] = v
	}
	return Row{columns: r.columns, values: values}
}

// MarshalJSON writes the row as an object whose keys follow the header order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	seen := make(map[string]struct{}, len(r.columns))
	for _, c := range r.columns {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if len(seen) > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
