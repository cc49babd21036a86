package model1

// Fields represents a collection of cell values.
type Fields []string

// Clone returns a copy of the fields.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// Row represents a collection of columns.
type Row struct {
	ID     string
	Fields Fields
}

// NewRow returns a row with the given number of empty fields.
func NewRow(size int) Row {
	return Row{Fields: make(Fields, size)}
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	return Row{
		ID:     r.ID,
		Fields: r.Fields.Clone(),
	}
}

// Len returns the number of fields.
func (r Row) Len() int {
	return len(r.Fields)
}

// Rows represents a collection of rows.
type Rows []Row

// Clone returns a copy of the rows.
func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}
