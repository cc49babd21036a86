package model

import "sort"

// SelectionSet tracks selected row positions within the current dataset
// window. Selection is positional, not identity-based: the set holds
// indices, not items.
//
// SelectionSet is not safe for concurrent use; the owning PageModel
// serializes access.
type SelectionSet struct {
	members map[int]struct{}
}

// NewSelectionSet returns an empty selection set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		members: make(map[int]struct{}),
	}
}

// Add selects the given index. Returns true if membership changed.
func (s *SelectionSet) Add(index int) bool {
	if _, ok := s.members[index]; ok {
		return false
	}
	s.members[index] = struct{}{}
	return true
}

// Remove unselects the given index. Returns true if membership changed.
func (s *SelectionSet) Remove(index int) bool {
	if _, ok := s.members[index]; !ok {
		return false
	}
	delete(s.members, index)
	return true
}

// Toggle flips the given index and returns its new membership.
func (s *SelectionSet) Toggle(index int) bool {
	if s.Remove(index) {
		return false
	}
	s.members[index] = struct{}{}
	return true
}

// Has returns true if the given index is selected.
func (s *SelectionSet) Has(index int) bool {
	_, ok := s.members[index]
	return ok
}

// AddRange selects every index in [0, n) and returns the indices whose
// membership changed, in ascending order.
func (s *SelectionSet) AddRange(n int) []int {
	var changed []int
	for i := 0; i < n; i++ {
		if s.Add(i) {
			changed = append(changed, i)
		}
	}
	return changed
}

// Clear unselects everything and returns the indices that were selected,
// in ascending order.
func (s *SelectionSet) Clear() []int {
	cleared := s.All()
	s.members = make(map[int]struct{})
	return cleared
}

// Prune drops indices outside [0, n) and returns them in ascending order.
// Called when a fetch replaces the window with fewer rows.
func (s *SelectionSet) Prune(n int) []int {
	var dropped []int
	for i := range s.members {
		if i < 0 || i >= n {
			dropped = append(dropped, i)
		}
	}
	sort.Ints(dropped)
	for _, i := range dropped {
		delete(s.members, i)
	}
	return dropped
}

// All returns a sorted snapshot of the selected indices.
func (s *SelectionSet) All() []int {
	all := make([]int, 0, len(s.members))
	for i := range s.members {
		all = append(all, i)
	}
	sort.Ints(all)
	return all
}

// Len returns the number of selected indices.
func (s *SelectionSet) Len() int {
	return len(s.members)
}

// SelectedRows returns a sorted snapshot of the selected positions.
func (m *PageModel) SelectedRows() []int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.selection.All()
}

// IsSelected reports whether the given position is selected.
func (m *PageModel) IsSelected(index int) bool {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.selection.Has(index)
}

// SelectRow selects the given position.
func (m *PageModel) SelectRow(index int) {
	m.mx.Lock()
	changed := m.selection.Add(index)
	item := m.itemOrNil(index)
	m.mx.Unlock()

	if changed {
		m.notifier.FireRow(index, item)
	}
	m.notifier.FireTable()
}

// UnselectRow unselects the given position.
func (m *PageModel) UnselectRow(index int) {
	m.mx.Lock()
	changed := m.selection.Remove(index)
	item := m.itemOrNil(index)
	m.mx.Unlock()

	if changed {
		m.notifier.FireRow(index, item)
	}
	m.notifier.FireTable()
}

// ToggleRow flips the selection of the given position.
func (m *PageModel) ToggleRow(index int) {
	m.mx.Lock()
	m.selection.Toggle(index)
	item := m.itemOrNil(index)
	m.mx.Unlock()

	m.notifier.FireRow(index, item)
	m.notifier.FireTable()
}

// SelectAllRows selects every position of the current window. Each index
// whose membership changed fires one row notification, batched before a
// single coarse broadcast.
func (m *PageModel) SelectAllRows() {
	m.mx.Lock()
	changed := m.selection.AddRange(len(m.items))
	items := make([]Item, len(changed))
	for i, idx := range changed {
		items[i] = m.itemOrNil(idx)
	}
	m.mx.Unlock()

	for i, idx := range changed {
		m.notifier.FireRow(idx, items[i])
	}
	m.notifier.FireTable()
}

// UnselectEveryRow clears the selection.
func (m *PageModel) UnselectEveryRow() {
	m.mx.Lock()
	cleared := m.selection.Clear()
	items := make([]Item, len(cleared))
	for i, idx := range cleared {
		items[i] = m.itemOrNil(idx)
	}
	m.mx.Unlock()

	for i, idx := range cleared {
		m.notifier.FireRow(idx, items[i])
	}
	m.notifier.FireTable()
}

// itemOrNil is a lock-held helper: selection is positional and may refer
// to positions the window does not currently cover.
func (m *PageModel) itemOrNil(index int) Item {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index]
}
