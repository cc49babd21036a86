// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/model"
	"github.com/pagr/pagr/internal/model1"
)

const (
	// PageTitleFmt formats the table title with resource, page, and count.
	PageTitleFmt = " <%s>[page %d][%s] "

	selectionMark = "◉ "
	noMark        = "  "
)

// PageStatus is the slice of page model state a table needs to render
// its chrome.
type PageStatus struct {
	Page    int
	State   model.RunState
	HasNext bool
	HasPrev bool
	Err     error
}

// PageTable displays one page of resources. Selection marks are
// positional: they track window indices handed in by the page model,
// not row ids.
type PageTable struct {
	*tview.Table

	resourceID *dao.ResourceID
	actions    *KeyActions
	colorer    model1.ColorerFunc
	data       *model1.TableData
	header     model1.Header
	sortModel  model.SortModel
	status     PageStatus
	selected   map[int]struct{}
	filterText string
	mx         sync.RWMutex
}

// NewPageTable returns a new page table for the given resource.
func NewPageTable(rid *dao.ResourceID) *PageTable {
	t := &PageTable{
		Table:      tview.NewTable(),
		resourceID: rid,
		actions:    NewKeyActions(),
		colorer:    model1.DefaultColorer,
		selected:   make(map[int]struct{}),
	}

	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetBorderColor(tcell.ColorWhite)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetFixed(1, 0)
	t.SetSelectable(true, false)

	return t
}

// Init initializes the table component.
func (t *PageTable) Init(context.Context) error {
	t.Select(1, 0)
	if t.resourceID != nil {
		t.SetTitle(fmt.Sprintf(PageTitleFmt, t.resourceID.String(), 0, "loading"))
	}
	t.showMessage("Loading...", tcell.ColorGray)
	t.SetInputCapture(t.keyboard)

	return nil
}

// ResourceID returns the resource identifier.
func (t *PageTable) ResourceID() *dao.ResourceID {
	return t.resourceID
}

// Actions returns the key actions.
func (t *PageTable) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *PageTable) Hints() MenuHints {
	return t.actions.Hints()
}

// SetColorer sets the row colorer.
func (t *PageTable) SetColorer(c model1.ColorerFunc) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.colorer = c
}

// keyboard handles table keyboard input with vim-style navigation.
func (t *PageTable) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()
	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if key == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.Select(rowCount-1, col)
			}
			return nil
		}
	}

	switch key {
	case tcell.KeyDown:
		if row < rowCount-1 {
			t.Select(row+1, col)
		}
		return nil
	case tcell.KeyUp:
		if row > 1 {
			t.Select(row-1, col)
		}
		return nil
	case tcell.KeyHome:
		if rowCount > 1 {
			t.Select(1, col)
		}
		return nil
	case tcell.KeyEnd:
		if rowCount > 1 {
			t.Select(rowCount-1, col)
		}
		return nil
	}

	actionKey := key
	if key == tcell.KeyRune {
		actionKey = tcell.Key(evt.Rune())
	}
	if action, ok := t.actions.Get(actionKey); ok {
		return action.Action(evt)
	}

	return evt
}

// SelectedRowIndex returns the window index of the current cursor row,
// or -1 when the cursor is off data.
func (t *PageTable) SelectedRowIndex() int {
	row, _ := t.GetSelection()
	if row < 1 || row > t.dataRowCount() {
		return -1
	}
	return row - 1
}

// SelectedRowID returns the row id stored on the cursor row.
func (t *PageTable) SelectedRowID() string {
	row, _ := t.GetSelection()
	if row < 1 {
		return ""
	}
	cell := t.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	if ref := cell.GetReference(); ref != nil {
		if id, ok := ref.(string); ok {
			return id
		}
	}
	return strings.TrimSpace(cell.Text)
}

func (t *PageTable) dataRowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if t.data == nil {
		return 0
	}
	return t.data.RowCount()
}

// Update redraws the whole table from the rendered page.
func (t *PageTable) Update(data *model1.TableData, selected []int, sort model.SortModel, status PageStatus) {
	t.mx.Lock()
	t.data = data
	t.sortModel = sort
	t.status = status
	t.selected = make(map[int]struct{}, len(selected))
	for _, idx := range selected {
		t.selected[idx] = struct{}{}
	}
	filter := t.filterText
	t.mx.Unlock()

	if status.State == model.StateError {
		msg := "fetch failed"
		if status.Err != nil {
			msg = status.Err.Error()
		}
		t.showMessage(msg, tcell.ColorRed)
		t.updateTitle()
		return
	}

	if data == nil || data.Empty() {
		t.showMessage("No resources found", tcell.ColorGray)
		t.updateTitle()
		return
	}

	t.render(data, filter)
}

// UpdateRow redraws a single data row in place, leaving the cursor and
// the rest of the table untouched.
func (t *PageTable) UpdateRow(index int, row model1.Row) {
	t.mx.RLock()
	data := t.data
	header := t.header
	filter := t.filterText
	t.mx.RUnlock()

	if data == nil || index < 0 || index >= data.RowCount() {
		return
	}
	data.SetRow(index, row)

	// A filtered view may not show the row at its window position, so
	// fall back to a full redraw.
	if filter != "" {
		t.render(data, filter)
		return
	}

	t.buildRow(row, header, index)
	t.updateTitle()
}

// SetFilter sets the client-side filter over the current page.
func (t *PageTable) SetFilter(filter string) {
	t.mx.Lock()
	t.filterText = filter
	data := t.data
	t.mx.Unlock()

	if data != nil {
		t.render(data, filter)
	}
}

// ClearFilter clears the filter.
func (t *PageTable) ClearFilter() {
	t.SetFilter("")
}

// Filtering returns true when a filter is applied.
func (t *PageTable) Filtering() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filterText != ""
}

func (t *PageTable) render(data *model1.TableData, filter string) {
	t.Clear()

	header := data.Header()
	t.buildHeader(header)

	filter = strings.ToLower(filter)
	for i, row := range data.Rows() {
		if filter != "" && !rowMatches(row, filter) {
			continue
		}
		t.buildRow(row, header, i)
	}

	t.updateTitle()
	if t.GetRowCount() > 1 {
		row, _ := t.GetSelection()
		if row < 1 || row >= t.GetRowCount() {
			t.Select(1, 0)
		}
	}
}

func rowMatches(row model1.Row, filter string) bool {
	for _, field := range row.Fields {
		if strings.Contains(strings.ToLower(field), filter) {
			return true
		}
	}
	return false
}

func (t *PageTable) buildHeader(header model1.Header) {
	t.mx.Lock()
	t.header = header
	sm := t.sortModel
	t.mx.Unlock()

	for col, h := range header {
		name := h.Name
		if sm.IsSorted() && h.ID == sm.Field {
			if sm.Descending {
				name += " ▼"
			} else {
				name += " ▲"
			}
		}

		cell := tview.NewTableCell(name)
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(h.Align)
		cell.SetExpansion(1)
		cell.SetSelectable(false)
		if sm.IsSorted() && h.ID == sm.Field {
			cell.SetAttributes(tcell.AttrBold)
		}
		t.SetCell(0, col, cell)
	}
}

// buildRow builds the ui row for the window index. The ui row sits one
// below the index to account for the header.
func (t *PageTable) buildRow(row model1.Row, header model1.Header, index int) {
	t.mx.RLock()
	_, marked := t.selected[index]
	colorer := t.colorer
	t.mx.RUnlock()

	// model1 colors come from the upstream tcell; convert to the fork's
	// color space for tview.
	color := tcell.ColorWhite
	if colorer != nil {
		color = tcell.Color(colorer("", header, row, marked))
	}

	for col, field := range row.Fields {
		if col >= len(header) {
			break
		}

		text := field
		if col == 0 {
			if marked {
				text = selectionMark + field
			} else {
				text = noMark + field
			}
		}

		cell := tview.NewTableCell(text)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(header[col].Align)
		cell.SetExpansion(1)
		cell.SetTextColor(color)
		if col == 0 {
			cell.SetReference(row.ID)
		}

		t.SetCell(index+1, col, cell)
	}
}

func (t *PageTable) showMessage(msg string, color tcell.Color) {
	t.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(color)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	t.SetCell(0, 0, cell)
}

func (t *PageTable) updateTitle() {
	t.mx.RLock()
	status := t.status
	filter := t.filterText
	t.mx.RUnlock()

	state := status.State.String()
	title := fmt.Sprintf(PageTitleFmt, t.resourceID.String(), status.Page+1, state)
	if filter != "" {
		title += fmt.Sprintf("/%s ", filter)
	}
	t.SetTitle(title)
}
