package ui

import (
	"context"
	"testing"

	"github.com/derailed/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComponent struct {
	*tview.Box
	name string
}

func newFakeComponent(name string) *fakeComponent {
	return &fakeComponent{Box: tview.NewBox(), name: name}
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Init(context.Context) error { return nil }

func (f *fakeComponent) Start() {}

func (f *fakeComponent) Stop() {}

func (f *fakeComponent) Hints() MenuHints { return nil }

func TestPagesStack(t *testing.T) {
	p := NewPages()
	assert.Nil(t, p.Top())
	assert.Zero(t, p.StackSize())

	a, b := newFakeComponent("a"), newFakeComponent("b")
	p.Push(a)
	p.Push(b)

	assert.Equal(t, 2, p.StackSize())
	assert.Same(t, b, p.Top().(*fakeComponent))

	below, ok := p.Pop()
	require.True(t, ok)
	assert.Same(t, a, below.(*fakeComponent))
	assert.Equal(t, 1, p.StackSize())

	below, ok = p.Pop()
	require.True(t, ok)
	assert.Nil(t, below)

	_, ok = p.Pop()
	assert.False(t, ok)
}

func TestPagesAllowsDuplicateNames(t *testing.T) {
	p := NewPages()
	outer, inner := newFakeComponent("s3/object"), newFakeComponent("s3/object")
	p.Push(outer)
	p.Push(inner)

	// Descending into the same resource keeps both depths addressable.
	assert.Equal(t, 2, p.StackSize())
	assert.Same(t, inner, p.Top().(*fakeComponent))

	below, ok := p.Pop()
	require.True(t, ok)
	assert.Same(t, outer, below.(*fakeComponent))
}
