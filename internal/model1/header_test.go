package model1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testHeader() Header {
	return Header{
		{ID: "id", Name: "INSTANCE-ID", Attrs: Attrs{Sortable: true}},
		{ID: "name", Name: "NAME", Attrs: Attrs{Sortable: true}},
		{ID: "", Name: "STATE"},
		{ID: "arn", Name: "ARN", Attrs: Attrs{Wide: true, Sortable: true}},
	}
}

func TestHeaderIndexOf(t *testing.T) {
	h := testHeader()

	idx, ok := h.IndexOf("NAME", false)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	// Wide columns are skipped unless asked for.
	_, ok = h.IndexOf("ARN", false)
	assert.False(t, ok)
	idx, ok = h.IndexOf("ARN", true)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = h.IndexOf("BOGUS", true)
	assert.False(t, ok)
}

func TestHeaderIndexOfID(t *testing.T) {
	h := testHeader()

	idx, ok := h.IndexOfID("arn")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = h.IndexOfID("bogus")
	assert.False(t, ok)
}

func TestHeaderColumnNames(t *testing.T) {
	h := testHeader()

	assert.Equal(t, []string{"INSTANCE-ID", "NAME", "STATE"}, h.ColumnNames(false))
	assert.Equal(t, []string{"INSTANCE-ID", "NAME", "STATE", "ARN"}, h.ColumnNames(true))
	assert.Nil(t, Header{}.ColumnNames(true))
}

func TestHeaderSortableIDs(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "arn"}, testHeader().SortableIDs())
	assert.Empty(t, Header{{ID: "x", Name: "X"}}.SortableIDs())
}

func TestRowClone(t *testing.T) {
	r := Row{ID: "i-1", Fields: Fields{"a", "b"}}

	clone := r.Clone()
	clone.Fields[0] = "mutated"

	assert.Equal(t, "a", r.Fields[0])
	assert.Equal(t, 2, r.Len())
}
