package model1

import "fmt"

// Attrs represents column attributes.
type Attrs struct {
	Align     int  // tview alignment
	Wide      bool // hidden in narrow view
	Hide      bool // always hidden
	Capacity  bool // numeric, right-aligned
	Sortable  bool // usable as a server-side sort field
	Decorator DecoratorFunc
}

// HeaderColumn represents a table header column. ID is the stable sort
// field id; Name is the display label.
type HeaderColumn struct {
	ID   string
	Name string
	Attrs
}

func (h HeaderColumn) String() string {
	return fmt.Sprintf("%s<%s> [%d::%t]", h.Name, h.ID, h.Align, h.Wide)
}

// Header represents a table header (slice of columns).
type Header []HeaderColumn

// Clone returns a copy of the header.
func (h Header) Clone() Header {
	he := make(Header, len(h))
	copy(he, h)
	return he
}

// IndexOf returns the position of the column with the given display name.
func (h Header) IndexOf(name string, includeWide bool) (int, bool) {
	for i, c := range h {
		if c.Wide && !includeWide {
			continue
		}
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// IndexOfID returns the position of the column with the given sort id.
func (h Header) IndexOfID(id string) (int, bool) {
	for i, c := range h {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

// ColumnNames returns the display labels, skipping wide columns unless
// requested.
func (h Header) ColumnNames(wide bool) []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		if !wide && c.Wide {
			continue
		}
		cc = append(cc, c.Name)
	}
	return cc
}

// SortableIDs returns the sort field ids, in column order.
func (h Header) SortableIDs() []string {
	var ids []string
	for _, c := range h {
		if c.Sortable {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
