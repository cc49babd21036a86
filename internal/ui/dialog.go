// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// DialogCallback is called when a dialog is dismissed.
type DialogCallback func()

// Dialog is a modal overlay.
type Dialog struct {
	*tview.Modal
	pages  *Pages
	pageID string
	onDone DialogCallback
}

// NewDialog creates a new dialog over the given pages.
func NewDialog(pages *Pages, pageID string) *Dialog {
	d := &Dialog{
		Modal:  tview.NewModal(),
		pages:  pages,
		pageID: pageID,
	}

	d.SetBackgroundColor(tcell.ColorDefault)
	d.SetTextColor(tcell.ColorWhite)

	return d
}

// SetMessage sets the dialog message.
func (d *Dialog) SetMessage(msg string) *Dialog {
	d.Modal.SetText(msg)
	return d
}

// SetButtons configures dialog buttons.
func (d *Dialog) SetButtons(labels []string) *Dialog {
	d.AddButtons(labels)
	return d
}

// SetDoneCallback sets the callback for when the dialog closes.
func (d *Dialog) SetDoneCallback(fn DialogCallback) *Dialog {
	d.onDone = fn
	return d
}

// SetButtonHandler sets the button click handler.
func (d *Dialog) SetButtonHandler(handler func(int, string)) *Dialog {
	d.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		d.Dismiss()
		if handler != nil {
			handler(buttonIndex, buttonLabel)
		}
	})
	return d
}

// Show displays the dialog as a modal overlay.
func (d *Dialog) Show() {
	if d.pages != nil {
		d.pages.AddPage(d.pageID, d, true, true)
	}
}

// Dismiss removes the dialog from display.
func (d *Dialog) Dismiss() {
	if d.pages != nil {
		d.pages.RemovePage(d.pageID)
	}
	if d.onDone != nil {
		d.onDone()
	}
}

// ErrorDialog creates a styled error dialog with an OK button.
func ErrorDialog(pages *Pages, message string) *Dialog {
	d := NewDialog(pages, "error-dialog").
		SetMessage(message).
		SetButtons([]string{"OK"}).
		SetButtonHandler(func(int, string) {})
	d.SetTextColor(tcell.ColorRed)
	d.SetButtonBackgroundColor(tcell.ColorRed)
	d.SetButtonTextColor(tcell.ColorWhite)

	return d
}

// ConfirmDialog creates a yes/no dialog calling ack on confirmation.
func ConfirmDialog(pages *Pages, message string, ack func()) *Dialog {
	return NewDialog(pages, "confirm-dialog").
		SetMessage(message).
		SetButtons([]string{"Cancel", "OK"}).
		SetButtonHandler(func(_ int, label string) {
			if label == "OK" && ack != nil {
				ack()
			}
		})
}
