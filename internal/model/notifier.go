package model

import "sync"

// Notifier fans out the model's two notification tiers: per-row listeners
// keyed by row index, and coarse table listeners with no payload.
//
// Listener removal compares exact identity; removing a listener that is
// not registered is a no-op. Every per-row dispatch batch is followed by
// exactly one coarse broadcast: callers fire rows first, then the table.
type Notifier struct {
	rows  map[int][]RowListener
	table []TableListener
	mx    sync.RWMutex
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		rows: make(map[int][]RowListener),
	}
}

// AddRowListener registers a listener for the given row index.
func (n *Notifier) AddRowListener(index int, l RowListener) {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.rows[index] = append(n.rows[index], l)
}

// RemoveRowListener unregisters a listener from the given row index.
func (n *Notifier) RemoveRowListener(index int, l RowListener) {
	n.mx.Lock()
	defer n.mx.Unlock()

	listeners := n.rows[index]
	for i, registered := range listeners {
		if registered == l {
			n.rows[index] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// AddListener registers a coarse table listener.
func (n *Notifier) AddListener(l TableListener) {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.table = append(n.table, l)
}

// RemoveListener unregisters a coarse table listener.
func (n *Notifier) RemoveListener(l TableListener) {
	n.mx.Lock()
	defer n.mx.Unlock()

	for i, registered := range n.table {
		if registered == l {
			n.table = append(n.table[:i], n.table[i+1:]...)
			return
		}
	}
}

// FireRow notifies the listeners registered for the given row index.
func (n *Notifier) FireRow(index int, item Item) {
	n.mx.RLock()
	listeners := make([]RowListener, len(n.rows[index]))
	copy(listeners, n.rows[index])
	n.mx.RUnlock()

	for _, l := range listeners {
		l.RowChanged(index, item)
	}
}

// FireTable notifies every coarse table listener.
func (n *Notifier) FireTable() {
	n.mx.RLock()
	listeners := make([]TableListener, len(n.table))
	copy(listeners, n.table)
	n.mx.RUnlock()

	for _, l := range listeners {
		l.TableChanged()
	}
}

// Release drops every registered listener.
func (n *Notifier) Release() {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.rows = make(map[int][]RowListener)
	n.table = nil
}
