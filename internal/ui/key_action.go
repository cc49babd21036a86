// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune key aliases.
const (
	KeySlash    tcell.Key = tcell.Key(int16('/'))
	KeyColon    tcell.Key = tcell.Key(int16(':'))
	KeySpace    tcell.Key = tcell.Key(int16(' '))
	KeyQ        tcell.Key = tcell.Key(int16('q'))
	KeyR        tcell.Key = tcell.Key(int16('r'))
	KeyS        tcell.Key = tcell.Key(int16('s'))
	KeyF        tcell.Key = tcell.Key(int16('f'))
	KeyB        tcell.Key = tcell.Key(int16('b'))
	KeyP        tcell.Key = tcell.Key(int16('p'))
	KeyD        tcell.Key = tcell.Key(int16('d'))
	KeyQuestion tcell.Key = tcell.Key(int16('?'))
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks mappings between keystrokes and actions.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add adds a new key action.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.actions[k] = ka
}

// Bulk adds a set of key actions.
func (a *KeyActions) Bulk(aa KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range aa {
		a.actions[k] = v
	}
}

// Get returns the action bound to a key, if any.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()
	v, ok := a.actions[k]
	return v, ok
}

// Delete removes key bindings.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Hints returns menu hints for the visible actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, v := range a.actions {
		if !v.Visible {
			continue
		}
		hh = append(hh, MenuHint{
			Mnemonic:    keyName(k),
			Description: v.Description,
			Visible:     true,
		})
	}
	return hh
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return string(rune(k))
}
