package ui

import (
	"fmt"

	"github.com/derailed/tview"
)

// Pages maintains the view stack over tview pages. Entries are keyed by
// a depth-qualified id so the same component name can appear at several
// depths, e.g. an object browser descending into its own prefixes.
type Pages struct {
	*tview.Pages
	stack []stackEntry
}

type stackEntry struct {
	id        string
	component Component
}

// NewPages returns a new pages manager.
func NewPages() *Pages {
	return &Pages{
		Pages: tview.NewPages(),
	}
}

// Push adds a component on top of the stack and switches to it.
func (p *Pages) Push(c Component) {
	id := fmt.Sprintf("%s@%d", c.Name(), len(p.stack))
	p.stack = append(p.stack, stackEntry{id: id, component: c})
	p.AddPage(id, c, true, true)
	p.SwitchToPage(id)
}

// Pop removes the top component and switches to the one below,
// returning it. Stopping the popped component is the caller's business.
func (p *Pages) Pop() (Component, bool) {
	if len(p.stack) == 0 {
		return nil, false
	}

	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.RemovePage(top.id)

	if len(p.stack) > 0 {
		next := p.stack[len(p.stack)-1]
		p.SwitchToPage(next.id)
		return next.component, true
	}

	return nil, true
}

// Top returns the component on top of the stack, nil when empty.
func (p *Pages) Top() Component {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1].component
}

// StackSize returns the stack depth.
func (p *Pages) StackSize() int {
	return len(p.stack)
}
