package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrIndexOutOfRange is returned by the mutation API when an index falls
// outside the current dataset window. These are caller errors: they are
// raised synchronously and never captured as model state.
var ErrIndexOutOfRange = errors.New("row index out of range")

// notFound is the sentinel position for a missing item; it is out of
// range by construction, so removal of a missing item fails the same way
// an out-of-range index does.
const notFound = -1

// Items returns a snapshot of the current dataset window.
func (m *PageModel) Items() []Item {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return slices.Clone(m.items)
}

// ItemAt returns the item at the given window position.
func (m *PageModel) ItemAt(index int) (Item, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	if index < 0 || index >= len(m.items) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return m.items[index], nil
}

// InsertAt inserts an item at the given position, shifting subsequent
// rows right. The index may equal the window length (append).
func (m *PageModel) InsertAt(index int, item Item) error {
	m.mx.Lock()
	if index < 0 || index > len(m.items) {
		m.mx.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.items = slices.Insert(m.items, index, item)
	m.mx.Unlock()

	m.notifier.FireRow(index, item)
	m.notifier.FireTable()
	return nil
}

// Insert appends an item at the end of the window.
func (m *PageModel) Insert(item Item) {
	m.mx.Lock()
	index := len(m.items)
	m.items = append(m.items, item)
	m.mx.Unlock()

	m.notifier.FireRow(index, item)
	m.notifier.FireTable()
}

// Replace swaps the item at the given position.
func (m *PageModel) Replace(index int, item Item) error {
	m.mx.Lock()
	if index < 0 || index >= len(m.items) {
		m.mx.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.items[index] = item
	m.mx.Unlock()

	m.notifier.FireRow(index, item)
	m.notifier.FireTable()
	return nil
}

// RemoveAt removes the item at the given position, shifting subsequent
// rows left.
func (m *PageModel) RemoveAt(index int) error {
	m.mx.Lock()
	if index < 0 || index >= len(m.items) {
		m.mx.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	removed := m.items[index]
	m.items = slices.Delete(m.items, index, index+1)
	m.mx.Unlock()

	m.notifier.FireRow(index, removed)
	m.notifier.FireTable()
	return nil
}

// Remove locates the first item equal to the given one and removes it.
// A missing item fails exactly like an out-of-range index and mutates
// nothing.
func (m *PageModel) Remove(item Item) error {
	m.mx.RLock()
	index := indexOf(m.items, item)
	m.mx.RUnlock()

	return m.RemoveAt(index)
}

func indexOf(items []Item, item Item) int {
	for i, it := range items {
		if reflect.DeepEqual(it, item) {
			return i
		}
	}
	return notFound
}
