package ui

import (
	"sort"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(evt *tcell.EventKey) *tcell.EventKey {
	return evt
}

func TestKeyActions(t *testing.T) {
	a := NewKeyActions()
	a.Add(KeyR, NewKeyAction("Refresh", noopHandler, true))
	a.Bulk(KeyMap{
		KeyF:           NewKeyAction("Next Page", noopHandler, true),
		tcell.KeyCtrlD: NewKeyAction("Prune Row", noopHandler, false),
	})

	action, ok := a.Get(KeyR)
	require.True(t, ok)
	assert.Equal(t, "Refresh", action.Description)

	_, ok = a.Get(KeyQ)
	assert.False(t, ok)

	a.Delete(KeyR, KeyF)
	_, ok = a.Get(KeyR)
	assert.False(t, ok)
	_, ok = a.Get(tcell.KeyCtrlD)
	assert.True(t, ok)
}

func TestKeyActionsHints(t *testing.T) {
	a := NewKeyActions()
	a.Bulk(KeyMap{
		KeyR:           NewKeyAction("Refresh", noopHandler, true),
		KeyF:           NewKeyAction("Next Page", noopHandler, true),
		tcell.KeyCtrlD: NewKeyAction("Prune Row", noopHandler, false),
	})

	hints := a.Hints()
	sort.Sort(hints)

	// Hidden actions stay out of the menu.
	require.Len(t, hints, 2)
	assert.Equal(t, "Next Page", hints[0].Description)
	assert.Equal(t, "f", hints[0].Mnemonic)
	assert.Equal(t, "Refresh", hints[1].Description)
}

func TestMenuHintsOrdering(t *testing.T) {
	hints := MenuHints{
		{Mnemonic: "s", Description: "Sort"},
		{Mnemonic: "2", Description: "Two"},
		{Mnemonic: "10", Description: "Ten"},
		{Mnemonic: "r", Description: "Refresh"},
	}
	sort.Sort(hints)

	// Numeric mnemonics first in numeric order, the rest by description.
	assert.Equal(t, "Two", hints[0].Description)
	assert.Equal(t, "Ten", hints[1].Description)
	assert.Equal(t, "Refresh", hints[2].Description)
	assert.Equal(t, "Sort", hints[3].Description)
}

func TestMenuHintIsBlank(t *testing.T) {
	assert.True(t, MenuHint{}.IsBlank())
	assert.False(t, MenuHint{Mnemonic: "r"}.IsBlank())
}
