// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuIndexFmt = " [yellow::b]<%d>[white::-] %s "
	menuPlainFmt = " [yellow::b]<%s>[white::-] %s "
	maxRows      = 6
)

// Menu presents key binding hints.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu populates the menu from hints.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	sort.Sort(hh)

	table := make([]MenuHints, maxRows+1)
	colCount := (len(hh) / maxRows) + 1
	for row := range maxRows {
		table[row] = make(MenuHints, colCount)
	}
	out := m.buildMenuTable(hh, table, colCount)

	for row := range out {
		for col := range len(out[row]) {
			c := tview.NewTableCell(out[row][col])
			c.SetBackgroundColor(tcell.ColorDefault)
			m.SetCell(row, col, c)
		}
	}
}

func (m *Menu) buildMenuTable(hh MenuHints, table []MenuHints, colCount int) [][]string {
	var row, col int
	maxKeys := make([]int, colCount)

	for _, h := range hh {
		if !h.Visible {
			continue
		}

		if maxKeys[col] < len(h.Mnemonic) {
			maxKeys[col] = len(h.Mnemonic)
		}
		table[row][col] = h
		row++
		if row >= maxRows {
			row, col = 0, col+1
		}
	}

	out := make([][]string, len(table))
	for r := range out {
		out[r] = make([]string, len(table[r]))
		for c := range table[r] {
			out[r][c] = m.formatMenu(table[r][c], maxKeys[c])
		}
	}

	return out
}

// formatMenu renders one hint, padding the mnemonic to the column's
// widest key so descriptions line up.
func (m *Menu) formatMenu(h MenuHint, width int) string {
	if h.Mnemonic == "" || h.Description == "" {
		return ""
	}

	if i, err := strconv.Atoi(h.Mnemonic); err == nil {
		return fmt.Sprintf(menuIndexFmt, i, h.Description)
	}

	return fmt.Sprintf(menuPlainFmt, fmt.Sprintf("%-*s", width, h.Mnemonic), h.Description)
}
