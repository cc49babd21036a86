package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSetBasics(t *testing.T) {
	s := NewSelectionSet()

	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2))
	assert.True(t, s.Has(2))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	assert.False(t, s.Has(2))

	assert.True(t, s.Toggle(0))
	assert.False(t, s.Toggle(0))
	assert.Empty(t, s.All())
}

func TestSelectionSetAddRange(t *testing.T) {
	s := NewSelectionSet()
	s.Add(1)

	changed := s.AddRange(3)
	assert.Equal(t, []int{0, 2}, changed)
	assert.Equal(t, []int{0, 1, 2}, s.All())
}

func TestSelectionSetClear(t *testing.T) {
	s := NewSelectionSet()
	s.Add(3)
	s.Add(1)

	assert.Equal(t, []int{1, 3}, s.Clear())
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Clear())
}

func TestSelectionSetPrune(t *testing.T) {
	s := NewSelectionSet()
	for _, i := range []int{0, 1, 4, 9} {
		s.Add(i)
	}

	dropped := s.Prune(3)
	assert.Equal(t, []int{4, 9}, dropped)
	assert.Equal(t, []int{0, 1}, s.All())

	assert.Empty(t, s.Prune(3))
}

func TestPageModelSelection(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	tl := new(tableRecorder)
	m.AddListener(tl)

	m.SelectRow(1)
	assert.True(t, m.IsSelected(1))
	assert.Equal(t, []int{1}, m.SelectedRows())
	assert.Equal(t, 1, tl.fired)

	// Reselecting still broadcasts; consumers re-read state.
	m.SelectRow(1)
	assert.Equal(t, 2, tl.fired)

	m.UnselectRow(1)
	assert.False(t, m.IsSelected(1))

	m.ToggleRow(0)
	assert.True(t, m.IsSelected(0))
	m.ToggleRow(0)
	assert.False(t, m.IsSelected(0))
}

func TestPageModelSelectionRowEvents(t *testing.T) {
	m := newTestModel(t, "a", "b")
	rl := new(rowRecorder)
	m.AddRowListener(1, rl)

	m.SelectRow(1)
	require.Equal(t, []rowEvent{{index: 1, item: "b"}}, rl.events)

	// Unchanged membership fires no row event.
	m.SelectRow(1)
	assert.Len(t, rl.events, 1)

	m.UnselectRow(1)
	assert.Len(t, rl.events, 2)
}

func TestPageModelSelectAllRows(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	m.SelectRow(1)

	tl := new(tableRecorder)
	r0, r1 := new(rowRecorder), new(rowRecorder)
	m.AddListener(tl)
	m.AddRowListener(0, r0)
	m.AddRowListener(1, r1)

	m.SelectAllRows()

	assert.Equal(t, []int{0, 1, 2}, m.SelectedRows())
	// Only rows whose membership changed fire; one coarse broadcast total.
	assert.Equal(t, []rowEvent{{index: 0, item: "a"}}, r0.events)
	assert.Empty(t, r1.events)
	assert.Equal(t, 1, tl.fired)
}

func TestPageModelUnselectEveryRow(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	m.SelectAllRows()

	tl := new(tableRecorder)
	m.AddListener(tl)

	m.UnselectEveryRow()
	assert.Empty(t, m.SelectedRows())
	assert.Equal(t, 1, tl.fired)
}

func TestPageModelSelectionIsPositional(t *testing.T) {
	m := newTestModel(t, "a")
	rl := new(rowRecorder)
	m.AddRowListener(5, rl)

	// Positions outside the window are selectable; the item is nil.
	m.SelectRow(5)
	assert.True(t, m.IsSelected(5))
	require.Equal(t, []rowEvent{{index: 5, item: nil}}, rl.events)
}
