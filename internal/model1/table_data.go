package model1

import "sync"

// TableData is the rendered product of one page: a header plus one row
// per window position. The browser assembles it from the page model and
// hands it to the table widget for a full rebuild.
type TableData struct {
	header Header
	rows   Rows
	errMsg string
	mx     sync.RWMutex
}

// NewTableData returns an empty table.
func NewTableData() *TableData {
	return &TableData{}
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// SetHeader sets the table header.
func (t *TableData) SetHeader(h Header) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.header = h
}

// Rows returns the rendered rows.
func (t *TableData) Rows() Rows {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rows
}

// SetRows replaces the rendered rows.
func (t *TableData) SetRows(rows Rows) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.rows = rows
}

// SetRow replaces a single rendered row in place.
func (t *TableData) SetRow(index int, row Row) {
	t.mx.Lock()
	defer t.mx.Unlock()
	if index >= 0 && index < len(t.rows) {
		t.rows[index] = row
	}
}

// RowCount returns the number of rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rows)
}

// Empty returns true if no data is available.
func (t *TableData) Empty() bool {
	return t.RowCount() == 0
}

// SetError sets an error message to display instead of data.
func (t *TableData) SetError(msg string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.errMsg = msg
}

// Error returns the error message, if any.
func (t *TableData) Error() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg
}

// Clone returns a copy of the table data.
func (t *TableData) Clone() *TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return &TableData{
		header: t.header.Clone(),
		rows:   t.rows.Clone(),
		errMsg: t.errMsg,
	}
}
