package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemAt(t *testing.T) {
	m := newTestModel(t, "a", "b")

	item, err := m.ItemAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", item)

	_, err = m.ItemAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.ItemAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestItemsSnapshot(t *testing.T) {
	m := newTestModel(t, "a", "b")

	snapshot := m.Items()
	snapshot[0] = "mutated"

	item, err := m.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item)
}

func TestInsertAt(t *testing.T) {
	m := newTestModel(t, "a", "c")
	tl := new(tableRecorder)
	rl := new(rowRecorder)
	m.AddListener(tl)
	m.AddRowListener(1, rl)

	require.NoError(t, m.InsertAt(1, "b"))
	assert.Equal(t, []Item{"a", "b", "c"}, m.Items())
	assert.Equal(t, []rowEvent{{index: 1, item: "b"}}, rl.events)
	assert.Equal(t, 1, tl.fired)

	// Index == length appends.
	require.NoError(t, m.InsertAt(3, "d"))
	assert.Equal(t, []Item{"a", "b", "c", "d"}, m.Items())

	err := m.InsertAt(9, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 4, m.TotalItems())
	assert.Equal(t, 2, tl.fired)
}

func TestInsert(t *testing.T) {
	m := newTestModel(t, "a")
	tl := new(tableRecorder)
	rl := new(rowRecorder)
	m.AddListener(tl)
	m.AddRowListener(1, rl)

	m.Insert("b")
	assert.Equal(t, []Item{"a", "b"}, m.Items())
	assert.Equal(t, []rowEvent{{index: 1, item: "b"}}, rl.events)
	assert.Equal(t, 1, tl.fired)
}

func TestReplace(t *testing.T) {
	m := newTestModel(t, "a", "b")
	tl := new(tableRecorder)
	rl := new(rowRecorder)
	m.AddListener(tl)
	m.AddRowListener(0, rl)

	require.NoError(t, m.Replace(0, "A"))
	assert.Equal(t, []Item{"A", "b"}, m.Items())
	assert.Equal(t, []rowEvent{{index: 0, item: "A"}}, rl.events)
	assert.Equal(t, 1, tl.fired)

	err := m.Replace(2, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 2, m.TotalItems())
}

func TestRemoveAt(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	tl := new(tableRecorder)
	rl := new(rowRecorder)
	m.AddListener(tl)
	m.AddRowListener(1, rl)

	require.NoError(t, m.RemoveAt(1))
	assert.Equal(t, []Item{"a", "c"}, m.Items())
	// The removed item rides along on the row notification.
	assert.Equal(t, []rowEvent{{index: 1, item: "b"}}, rl.events)
	assert.Equal(t, 1, tl.fired)

	err := m.RemoveAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 1, tl.fired)
}

func TestRemove(t *testing.T) {
	m := newTestModel(t, "a", "b", "b")

	require.NoError(t, m.Remove("b"))
	assert.Equal(t, []Item{"a", "b"}, m.Items())

	err := m.Remove("zzz")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 2, m.TotalItems())
}
