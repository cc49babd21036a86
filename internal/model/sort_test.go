package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortModelSwipe(t *testing.T) {
	tests := []struct {
		name   string
		sort   SortModel
		column string
		want   SortModel
	}{
		{
			name:   "unsorted to ascending",
			column: "name",
			want:   SortModel{Field: "name"},
		},
		{
			name:   "ascending to descending",
			sort:   SortModel{Field: "name"},
			column: "name",
			want:   SortModel{Field: "name", Descending: true},
		},
		{
			name:   "descending back to unsorted",
			sort:   SortModel{Field: "name", Descending: true},
			column: "name",
			want:   SortModel{},
		},
		{
			name:   "different column starts ascending",
			sort:   SortModel{Field: "name", Descending: true},
			column: "created",
			want:   SortModel{Field: "created"},
		},
		{
			name:   "empty column cycles current field",
			sort:   SortModel{Field: "name"},
			column: "",
			want:   SortModel{Field: "name", Descending: true},
		},
		{
			name:   "empty column on unsorted stays unsorted",
			column: "",
			want:   SortModel{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sort.Swipe(tt.column))
		})
	}
}

func TestSortModelString(t *testing.T) {
	assert.Equal(t, "unsorted", SortModel{}.String())
	assert.Equal(t, "name asc", SortModel{Field: "name"}.String())
	assert.Equal(t, "name desc", SortModel{Field: "name", Descending: true}.String())
}

func TestSortModelIsSorted(t *testing.T) {
	assert.False(t, SortModel{}.IsSorted())
	assert.False(t, SortModel{Descending: true}.IsSorted())
	assert.True(t, SortModel{Field: "id"}.IsSorted())
}
