// Package table holds the in-memory model for a loaded tabular dataset.
//
// A Table owns a validated, immutable header list and an ordered list of
// rows. Rows are positional: cell i of a row belongs to header i, so headers
// can never drift between rows. Row order is meaningful; detectors report
// row indices against it.
package table

import (
	"sort"
	"strings"

	"tablescrub/internal/errors"
)

// Row is one record, aligned positionally with the table headers.
type Row []string

// Table is an ordered tabular dataset with named columns.
type Table struct {
	headers   []string
	headerIdx map[string]int
	sortedIdx []int // header positions in lexicographic header order
	rows      []Row
}

// New creates an empty table with the given headers.
// Header names must be unique within the table.
func New(headers []string) (*Table, error) {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := idx[h]; dup {
			return nil, errors.FormatError("duplicate header: " + h)
		}
		idx[h] = i
	}
	sorted := make([]int, len(headers))
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(a, b int) bool {
		return headers[sorted[a]] < headers[sorted[b]]
	})
	return &Table{
		headers:   append([]string(nil), headers...),
		headerIdx: idx,
		sortedIdx: sorted,
	}, nil
}

// Headers returns a copy of the header list in table order.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// NumColumns returns the number of headers.
func (t *Table) NumColumns() int {
	return len(t.headers)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds a record. Short records are padded with empty cells so every
// row declares a value for every header; records longer than the header list
// are rejected.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) > len(t.headers) {
		return errors.FormatError("row has more fields than headers")
	}
	row := make(Row, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a copy of the row at index i.
func (t *Table) Row(i int) Row {
	return append(Row(nil), t.rows[i]...)
}

// Cell returns the value at (row, header). The second return is false when
// the header does not exist.
func (t *Table) Cell(row int, header string) (string, bool) {
	j, ok := t.headerIdx[header]
	if !ok {
		return "", false
	}
	return t.rows[row][j], true
}

// SetCell overwrites the value at (row, header). Returns false when the
// header does not exist.
func (t *Table) SetCell(row int, header, value string) bool {
	j, ok := t.headerIdx[header]
	if !ok {
		return false
	}
	t.rows[row][j] = value
	return true
}

// Column returns the values of one column in row order.
func (t *Table) Column(header string) []string {
	j, ok := t.headerIdx[header]
	if !ok {
		return nil
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}
	return out
}

// Clone returns a deep copy sharing no row storage with the receiver.
func (t *Table) Clone() *Table {
	nt := &Table{
		headers:   t.headers,
		headerIdx: t.headerIdx,
		sortedIdx: t.sortedIdx,
		rows:      make([]Row, len(t.rows)),
	}
	for i, r := range t.rows {
		nt.rows[i] = append(Row(nil), r...)
	}
	return nt
}

// canonical field and record separators; neither occurs in CSV text cells
// produced by encoding/csv, which keeps keys collision-free.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// CanonicalKey returns an order-independent, trimmed representation of row i
// used for duplicate comparison: (header, trimmed value) pairs joined in
// lexicographic header order.
func (t *Table) CanonicalKey(i int) string {
	var b strings.Builder
	row := t.rows[i]
	for _, j := range t.sortedIdx {
		b.WriteString(t.headers[j])
		b.WriteString(fieldSep)
		b.WriteString(strings.TrimSpace(row[j]))
		b.WriteString(recordSep)
	}
	return b.String()
}
