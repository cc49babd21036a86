// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogShowDismiss(t *testing.T) {
	pages := NewPages()

	var done bool
	d := NewDialog(pages, "confirm-dialog").
		SetMessage("Sure?").
		SetButtons([]string{"Cancel", "OK"}).
		SetDoneCallback(func() { done = true })

	d.Show()
	assert.True(t, pages.HasPage("confirm-dialog"))

	d.Dismiss()
	assert.False(t, pages.HasPage("confirm-dialog"))
	assert.True(t, done)
}

func TestDialogOverlaysNotOnStack(t *testing.T) {
	pages := NewPages()
	d := ErrorDialog(pages, "bad things")
	d.Show()

	// Dialogs float over the stack; Esc navigation never pops them.
	require.True(t, pages.HasPage("error-dialog"))
	assert.Zero(t, pages.StackSize())
}
