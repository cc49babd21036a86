package model

import "fmt"

// SortModel describes the active sort column and direction. The zero value
// means unsorted. SortModel is an immutable value; changes replace it
// wholesale.
type SortModel struct {
	Field      string
	Descending bool
}

// IsSorted returns true if a sort field is active.
func (s SortModel) IsSorted() bool {
	return s.Field != ""
}

// Swipe returns the sort model that follows s for the given column id.
//
// A column different from the current field starts ascending on that
// column. The same column, or an empty column id, cycles
// ascending -> descending -> unsorted.
func (s SortModel) Swipe(column string) SortModel {
	if column != "" && column != s.Field {
		return SortModel{Field: column}
	}

	switch {
	case !s.IsSorted():
		return SortModel{Field: column}
	case !s.Descending:
		return SortModel{Field: s.Field, Descending: true}
	default:
		return SortModel{}
	}
}

// String returns a human-readable representation, e.g. "name desc".
func (s SortModel) String() string {
	if !s.IsSorted() {
		return "unsorted"
	}
	dir := "asc"
	if s.Descending {
		dir = "desc"
	}
	return fmt.Sprintf("%s %s", s.Field, dir)
}
