// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package view

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/wI2L/jsondiff"
	"gopkg.in/yaml.v3"

	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/model"
	"github.com/pagr/pagr/internal/ui"
)

// Describe displays one resource in detail. Refreshing re-fetches the
// resource and surfaces what changed as an RFC 6902 patch.
type Describe struct {
	*tview.TextView

	resourceID *dao.ResourceID
	factory    dao.Factory
	item       model.Item
	path       string
	actions    *ui.KeyActions
	app        *App
	mx         sync.RWMutex
}

// NewDescribe creates a new resource detail view.
func NewDescribe(rid *dao.ResourceID, item model.Item) *Describe {
	d := &Describe{
		TextView:   tview.NewTextView(),
		resourceID: rid,
		item:       item,
		actions:    ui.NewKeyActions(),
	}

	d.SetDynamicColors(true)
	d.SetWrap(false)
	d.SetScrollable(true)
	d.SetBorder(true)
	d.SetBorderPadding(0, 0, 1, 1)
	d.SetBorderColor(tcell.ColorAqua)

	return d
}

// SetApp sets the App reference.
func (d *Describe) SetApp(a *App) {
	d.app = a
	d.factory = a.GetFactory()
}

// SetPath sets the backend path used to re-fetch the resource.
func (d *Describe) SetPath(path string) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.path = path
}

// Name returns the view name.
func (d *Describe) Name() string {
	return "describe"
}

// Init initializes the describe view.
func (d *Describe) Init(context.Context) error {
	d.actions.Bulk(ui.KeyMap{
		ui.KeyR: ui.NewKeyAction("Refresh", d.refreshCmd, true),
	})
	d.SetInputCapture(d.keyboard)
	d.SetTitle(fmt.Sprintf(" <%s> describe ", d.resourceID.String()))

	return nil
}

// Start renders the resource.
func (d *Describe) Start() {
	d.render(nil)
}

// Stop clears the view.
func (d *Describe) Stop() {
	d.Clear()
}

// Hints returns menu hints.
func (d *Describe) Hints() ui.MenuHints {
	return d.actions.Hints()
}

func (d *Describe) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()
	if key == tcell.KeyRune {
		key = tcell.Key(evt.Rune())
	}
	if action, ok := d.actions.Get(key); ok {
		return action.Action(evt)
	}
	return evt
}

// refreshCmd re-fetches the resource when the backend supports point
// lookups and renders the change set against the previous snapshot.
func (d *Describe) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	d.mx.RLock()
	path := d.path
	old := d.item
	d.mx.RUnlock()

	if path == "" {
		d.app.Flash().Warn("Resource does not support re-fetch")
		return nil
	}

	go func() {
		pager, err := dao.PagerFor(d.factory, d.resourceID)
		if err != nil {
			d.app.Flash().Err(err)
			return
		}
		getter, ok := pager.(dao.Getter)
		if !ok {
			d.app.Flash().Warn("Resource does not support re-fetch")
			return
		}

		timeout, err := d.app.Config().Pagr.GetAPITimeout()
		if err != nil {
			timeout = 0
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		fresh, err := getter.Get(ctx, path)
		if err != nil {
			d.app.Flash().Err(err)
			return
		}

		patch := diffItems(old, fresh)
		d.mx.Lock()
		d.item = fresh
		d.mx.Unlock()

		d.app.QueueUpdateDraw(func() {
			d.render(patch)
		})
	}()

	return nil
}

func (d *Describe) render(patch jsondiff.Patch) {
	d.mx.RLock()
	item := d.item
	d.mx.RUnlock()

	d.Clear()

	if len(patch) > 0 {
		fmt.Fprintf(d, "[yellow::b]Changed since last view:[-::-]\n")
		for _, op := range patch {
			fmt.Fprintf(d, "[yellow::-]  %s %s[-::-]\n", op.Type, op.Path)
		}
		fmt.Fprintln(d)
	}

	raw := item
	if obj, ok := item.(dao.Object); ok {
		raw = obj.GetRaw()
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		fmt.Fprintf(d, "[red::-]marshal failed: %v[-::-]", err)
		return
	}
	fmt.Fprint(d, strings.TrimSpace(string(out)))
	d.ScrollToBeginning()
}

// diffItems returns the RFC 6902 operations between two snapshots of
// the same resource, nil when they are equal or not comparable.
func diffItems(oldItem, newItem model.Item) jsondiff.Patch {
	oldRaw, newRaw := rawOf(oldItem), rawOf(newItem)
	if oldRaw == nil || newRaw == nil {
		return nil
	}

	patch, err := jsondiff.Compare(oldRaw, newRaw)
	if err != nil {
		return nil
	}
	return patch
}

func rawOf(item model.Item) any {
	if obj, ok := item.(dao.Object); ok {
		return obj.GetRaw()
	}
	return item
}
