package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierTableListeners(t *testing.T) {
	n := NewNotifier()
	l1, l2 := new(tableRecorder), new(tableRecorder)

	n.AddListener(l1)
	n.AddListener(l2)
	n.FireTable()
	assert.Equal(t, 1, l1.fired)
	assert.Equal(t, 1, l2.fired)

	n.RemoveListener(l1)
	n.FireTable()
	assert.Equal(t, 1, l1.fired)
	assert.Equal(t, 2, l2.fired)
}

func TestNotifierRemoveByIdentity(t *testing.T) {
	n := NewNotifier()
	l1, l2 := new(tableRecorder), new(tableRecorder)
	n.AddListener(l1)

	// l2 is a distinct instance; removing it must not touch l1.
	n.RemoveListener(l2)
	n.FireTable()
	assert.Equal(t, 1, l1.fired)

	// Removing an absent listener is a no-op.
	n.RemoveListener(l2)
	n.FireTable()
	assert.Equal(t, 2, l1.fired)
}

func TestNotifierRowListeners(t *testing.T) {
	n := NewNotifier()
	r0, r1 := new(rowRecorder), new(rowRecorder)

	n.AddRowListener(0, r0)
	n.AddRowListener(1, r1)

	n.FireRow(0, "a")
	assert.Equal(t, []rowEvent{{index: 0, item: "a"}}, r0.events)
	assert.Empty(t, r1.events)

	n.FireRow(1, "b")
	assert.Equal(t, []rowEvent{{index: 1, item: "b"}}, r1.events)

	n.RemoveRowListener(0, r0)
	n.FireRow(0, "c")
	assert.Len(t, r0.events, 1)
}

func TestNotifierFireUnwatchedRow(t *testing.T) {
	n := NewNotifier()
	n.FireRow(7, "a")
	n.FireTable()
}

func TestNotifierRelease(t *testing.T) {
	n := NewNotifier()
	tl := new(tableRecorder)
	rl := new(rowRecorder)
	n.AddListener(tl)
	n.AddRowListener(0, rl)

	n.Release()
	n.FireTable()
	n.FireRow(0, "a")

	assert.Zero(t, tl.fired)
	assert.Empty(t, rl.events)
}
