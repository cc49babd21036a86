// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuFormat(t *testing.T) {
	m := NewMenu()

	assert.Empty(t, m.formatMenu(MenuHint{}, 1))
	assert.Equal(t,
		" [yellow::b]<2>[white::-] Two ",
		m.formatMenu(MenuHint{Mnemonic: "2", Description: "Two"}, 1),
	)

	// Short mnemonics pad out to the column's widest key.
	assert.Equal(t,
		" [yellow::b]<r     >[white::-] Refresh ",
		m.formatMenu(MenuHint{Mnemonic: "r", Description: "Refresh"}, 6),
	)
}

func TestMenuHydrate(t *testing.T) {
	m := NewMenu()
	m.HydrateMenu(MenuHints{
		{Mnemonic: "r", Description: "Refresh", Visible: true},
		{Mnemonic: "Ctrl-A", Description: "Mark All", Visible: true},
		{Mnemonic: "z", Description: "Hidden", Visible: false},
	})

	// Both visible hints land in the first column, padded alike.
	assert.Equal(t, " [yellow::b]<Ctrl-A>[white::-] Mark All ", m.GetCell(0, 0).Text)
	assert.Equal(t, " [yellow::b]<r     >[white::-] Refresh ", m.GetCell(1, 0).Text)
}
