// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// PromptMode represents the current input mode.
type PromptMode int

const (
	// ModeNormal is the default navigation mode.
	ModeNormal PromptMode = iota
	// ModeCommand is for entering commands (: prefix).
	ModeCommand
	// ModeFilter is for filtering the current page (/ prefix).
	ModeFilter
)

// CmdPrompt accepts command and filter input.
type CmdPrompt struct {
	*tview.TextView

	mode      PromptMode
	text      string
	active    bool
	activeFn  func(bool)
	changeFn  func(PromptMode, string)
	executeFn func(PromptMode, string)
	cancelFn  func()
}

// NewCmdPrompt creates a new command prompt.
func NewCmdPrompt() *CmdPrompt {
	c := &CmdPrompt{
		TextView: tview.NewTextView(),
		mode:     ModeNormal,
	}

	c.SetDynamicColors(true)
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextColor(tcell.ColorWhite)
	c.refresh()

	return c
}

// SetActiveFn sets the callback for active state changes.
func (c *CmdPrompt) SetActiveFn(fn func(bool)) {
	c.activeFn = fn
}

// SetChangeFn sets the callback for text changes.
func (c *CmdPrompt) SetChangeFn(fn func(PromptMode, string)) {
	c.changeFn = fn
}

// SetExecuteFn sets the callback for confirmed input.
func (c *CmdPrompt) SetExecuteFn(fn func(PromptMode, string)) {
	c.executeFn = fn
}

// SetCancelFn sets the callback for cancelled input.
func (c *CmdPrompt) SetCancelFn(fn func()) {
	c.cancelFn = fn
}

// Activate enters command or filter mode.
func (c *CmdPrompt) Activate(mode PromptMode) {
	c.mode = mode
	c.text = ""
	c.active = true
	c.refresh()
	if c.activeFn != nil {
		c.activeFn(true)
	}
}

// Deactivate exits input mode.
func (c *CmdPrompt) Deactivate() {
	c.active = false
	c.mode = ModeNormal
	c.text = ""
	c.refresh()
	if c.activeFn != nil {
		c.activeFn(false)
	}
}

// IsActive returns whether input mode is active.
func (c *CmdPrompt) IsActive() bool {
	return c.active
}

// Mode returns the current mode.
func (c *CmdPrompt) Mode() PromptMode {
	return c.mode
}

// Text returns the current input text.
func (c *CmdPrompt) Text() string {
	return c.text
}

// HandleKey processes keyboard input when active.
func (c *CmdPrompt) HandleKey(evt *tcell.EventKey) *tcell.EventKey {
	if !c.active {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyEsc:
		c.Deactivate()
		if c.cancelFn != nil {
			c.cancelFn()
		}
		return nil

	case tcell.KeyEnter:
		text, mode := c.text, c.mode
		c.Deactivate()
		if c.executeFn != nil && text != "" {
			c.executeFn(mode, text)
		}
		return nil

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.text) > 0 {
			c.text = c.text[:len(c.text)-1]
			c.refresh()
			if c.changeFn != nil {
				c.changeFn(c.mode, c.text)
			}
		}
		return nil

	case tcell.KeyRune:
		c.text += string(evt.Rune())
		c.refresh()
		if c.changeFn != nil {
			c.changeFn(c.mode, c.text)
		}
		return nil
	}

	return evt
}

func (c *CmdPrompt) refresh() {
	var prefix string
	switch c.mode {
	case ModeCommand:
		prefix = ":"
	case ModeFilter:
		prefix = "/"
	}

	if c.active {
		c.SetText(prefix + c.text + "[black:white] [-:-]")
		return
	}
	if c.text != "" {
		c.SetText(prefix + c.text)
		return
	}
	c.SetText(">")
}
