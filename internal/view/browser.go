// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"

	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/model"
	"github.com/pagr/pagr/internal/model1"
	"github.com/pagr/pagr/internal/render"
	"github.com/pagr/pagr/internal/ui"
)

// Browser pages through one resource type. It binds a dao pager to a
// page model and mirrors the model's window into the table: coarse
// change notifications rebuild the whole table, per-row notifications
// repaint a single row.
type Browser struct {
	*ui.PageTable

	app      *App
	factory  dao.Factory
	pager    dao.Pager
	pm       *model.PageModel
	renderer model1.Renderer
	path     string
	watched  int
	cancelFn context.CancelFunc
	mx       sync.RWMutex
}

// NewBrowser returns a new resource browser.
func NewBrowser(rid *dao.ResourceID) *Browser {
	return &Browser{
		PageTable: ui.NewPageTable(rid),
	}
}

// Name returns the view name.
func (b *Browser) Name() string {
	return b.ResourceID().String()
}

// SetApp sets the App reference.
func (b *Browser) SetApp(a *App) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.app = a
}

// SetFactory sets the AWS factory for this browser.
func (b *Browser) SetFactory(f dao.Factory) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.factory = f
}

// SetPath scopes the listing for hierarchical backends.
func (b *Browser) SetPath(path string) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.path = path
}

// Path returns the current listing path.
func (b *Browser) Path() string {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.path
}

// Init initializes the browser component.
func (b *Browser) Init(ctx context.Context) error {
	if err := b.PageTable.Init(ctx); err != nil {
		return err
	}

	b.renderer = render.For(b.ResourceID())
	if colorable, ok := b.renderer.(interface {
		ColorerFunc() model1.ColorerFunc
	}); ok {
		b.SetColorer(colorable.ColorerFunc())
	}

	b.bindKeys()
	return nil
}

// Start builds the page model and kicks off the initial fetch.
func (b *Browser) Start() {
	b.Stop()

	b.mx.Lock()
	pager, err := dao.PagerFor(b.factory, b.ResourceID())
	if err != nil {
		b.mx.Unlock()
		b.app.Flash().Err(err)
		return
	}
	b.pager = pager

	region := b.factory.Region()
	cfg := b.app.Config().Pagr
	opts := model.Options{
		PageSize:  cfg.PageSize,
		PageSizes: cfg.PageSizeOptions,
	}
	if cfg.CopyOnFetch {
		opts.Copy = func(i model.Item) model.Item { return dao.CopyObject(i) }
	}

	pm := model.NewPageModel(model.NewDAOFetcher(pager, region, b.path), opts)
	b.pm = pm

	ctx, cancel := context.WithCancel(context.Background())
	b.cancelFn = cancel
	b.mx.Unlock()

	pm.AddListener(b)
	pm.Init(ctx)

	b.refreshCrumbs()
}

// Stop tears down the page model and its listeners.
func (b *Browser) Stop() {
	b.mx.Lock()
	defer b.mx.Unlock()

	if b.cancelFn != nil {
		b.cancelFn()
		b.cancelFn = nil
	}
	if b.pm != nil {
		b.pm.RemoveListener(b)
		b.pm.Stop()
		b.pm = nil
		b.watched = 0
	}
}

// Model returns the underlying page model.
func (b *Browser) Model() *model.PageModel {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.pm
}

// TableChanged implements model.TableListener: rebuild the whole table
// from the current window.
func (b *Browser) TableChanged() {
	b.mx.RLock()
	pm := b.pm
	b.mx.RUnlock()
	if pm == nil {
		return
	}

	items := pm.Items()
	data := model1.NewTableData()
	data.SetHeader(b.renderer.Header(b.region()))
	rows := make(model1.Rows, 0, len(items))
	for i, item := range items {
		row := model1.NewRow(len(data.Header()))
		if err := b.renderer.Render(item, b.region(), &row); err != nil {
			slog.Error("Row render failed", "row", i, "error", err)
			row.ID = fmt.Sprintf("row-%d", i)
		}
		rows = append(rows, row)
	}
	data.SetRows(rows)

	status := b.pageStatus(pm)
	selected := pm.SelectedRows()
	b.syncRowListeners(pm, len(items))

	b.app.QueueUpdateDraw(func() {
		b.Update(data, selected, pm.SortModel(), status)
		b.refreshStatus(pm, status, len(items))
	})
}

// RowChanged implements model.RowListener: repaint one row in place.
func (b *Browser) RowChanged(index int, item model.Item) {
	b.mx.RLock()
	pm := b.pm
	b.mx.RUnlock()
	if pm == nil {
		return
	}

	row := model1.NewRow(0)
	if item != nil {
		if err := b.renderer.Render(item, b.region(), &row); err != nil {
			slog.Error("Row render failed", "row", index, "error", err)
			return
		}
	}

	b.app.QueueUpdateDraw(func() {
		b.UpdateRow(index, row)
	})
}

// syncRowListeners keeps the browser registered as a row listener for
// every index of the current window, and only those.
func (b *Browser) syncRowListeners(pm *model.PageModel, n int) {
	b.mx.Lock()
	defer b.mx.Unlock()

	for i := b.watched; i < n; i++ {
		pm.AddRowListener(i, b)
	}
	for i := n; i < b.watched; i++ {
		pm.RemoveRowListener(i, b)
	}
	b.watched = n
}

func (b *Browser) pageStatus(pm *model.PageModel) ui.PageStatus {
	return ui.PageStatus{
		Page:    pm.CurrentPage(),
		State:   pm.State(),
		HasNext: pm.HasNextPage(),
		HasPrev: pm.HasPreviousPage(),
		Err:     pm.Err(),
	}
}

func (b *Browser) refreshStatus(pm *model.PageModel, status ui.PageStatus, rows int) {
	b.app.Status().Refresh(status, pm.PageSize(), rows, len(pm.SelectedRows()))
}

func (b *Browser) refreshCrumbs() {
	crumbs := []string{b.ResourceID().String()}
	if p := b.Path(); p != "" {
		crumbs = append(crumbs, strings.Split(strings.Trim(p, "/"), "/")...)
	}
	b.app.Crumbs().Refresh(crumbs)
}

func (b *Browser) region() string {
	b.mx.RLock()
	defer b.mx.RUnlock()
	if b.factory == nil {
		return ""
	}
	return b.factory.Region()
}

func (b *Browser) bindKeys() {
	b.Actions().Bulk(ui.KeyMap{
		ui.KeyF:        ui.NewKeyAction("Next Page", b.nextPageCmd, true),
		ui.KeyB:        ui.NewKeyAction("Prev Page", b.prevPageCmd, true),
		tcell.KeyPgDn:  ui.NewKeyAction("Next Page", b.nextPageCmd, false),
		tcell.KeyPgUp:  ui.NewKeyAction("Prev Page", b.prevPageCmd, false),
		ui.KeyR:        ui.NewKeyAction("Refresh", b.refreshCmd, true),
		ui.KeyS:        ui.NewKeyAction("Sort", b.sortCmd, true),
		tcell.Key('S'): ui.NewKeyAction("Sort Next Col", b.sortNextColCmd, false),
		ui.KeyP:        ui.NewKeyAction("Page Size", b.pageSizeCmd, true),
		ui.KeySpace:    ui.NewKeyAction("Mark", b.toggleMarkCmd, true),
		tcell.KeyCtrlA: ui.NewKeyAction("Mark All", b.markAllCmd, true),
		tcell.Key('x'): ui.NewKeyAction("Clear Marks", b.clearMarksCmd, true),
		ui.KeyD:        ui.NewKeyAction("Describe", b.describeCmd, true),
		tcell.KeyEnter: ui.NewKeyAction("View", b.enterCmd, true),
	})

	// Window mutation stays unbound in read-only mode.
	if !b.app.Config().Pagr.ReadOnly {
		b.Actions().Add(tcell.KeyCtrlD, ui.NewKeyAction("Prune Row", b.pruneRowCmd, true))
	}
}

// run invokes a page model operation off the UI thread, flashing any
// error.
func (b *Browser) run(op func(ctx context.Context, pm *model.PageModel) error) {
	b.mx.RLock()
	pm := b.pm
	b.mx.RUnlock()
	if pm == nil {
		return
	}

	timeout, err := b.app.Config().Pagr.GetAPITimeout()
	if err != nil {
		timeout = 0
	}

	go func() {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if err := op(ctx, pm); err != nil {
			b.app.Flash().Err(err)
		}
	}()
}

func (b *Browser) nextPageCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		return pm.NextPage(ctx)
	})
	return nil
}

func (b *Browser) prevPageCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		return pm.PreviousPage(ctx)
	})
	return nil
}

func (b *Browser) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		return pm.Refresh(ctx, false)
	})
	return nil
}

// sortCmd swipes the active sort column through ascending, descending,
// and unsorted.
func (b *Browser) sortCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		field := pm.SortModel().Field
		if field == "" {
			ids := b.renderer.Header(b.region()).SortableIDs()
			if len(ids) == 0 {
				b.app.Flash().Warn("Resource has no sortable columns")
				return nil
			}
			field = ids[0]
		}
		return pm.SwipeSortModel(ctx, field)
	})
	return nil
}

// sortNextColCmd moves the sort to the next sortable column, ascending.
func (b *Browser) sortNextColCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		ids := b.renderer.Header(b.region()).SortableIDs()
		if len(ids) == 0 {
			b.app.Flash().Warn("Resource has no sortable columns")
			return nil
		}

		next := ids[0]
		if cur := pm.SortModel().Field; cur != "" {
			for i, id := range ids {
				if id == cur {
					next = ids[(i+1)%len(ids)]
					break
				}
			}
		}
		return pm.SwipeSortModel(ctx, next)
	})
	return nil
}

// pageSizeCmd cycles through the configured page sizes.
func (b *Browser) pageSizeCmd(*tcell.EventKey) *tcell.EventKey {
	b.run(func(ctx context.Context, pm *model.PageModel) error {
		sizes := pm.PageSizes()
		if len(sizes) == 0 {
			return nil
		}

		next := sizes[0]
		cur := pm.PageSize()
		for i, s := range sizes {
			if s == cur {
				next = sizes[(i+1)%len(sizes)]
				break
			}
		}
		b.app.Flash().Infof("Page size %d", next)
		return pm.SetPageSize(ctx, next)
	})
	return nil
}

func (b *Browser) toggleMarkCmd(*tcell.EventKey) *tcell.EventKey {
	pm, index := b.Model(), b.SelectedRowIndex()
	if pm == nil || index < 0 {
		return nil
	}
	pm.ToggleRow(index)
	return nil
}

func (b *Browser) markAllCmd(*tcell.EventKey) *tcell.EventKey {
	if pm := b.Model(); pm != nil {
		pm.SelectAllRows()
	}
	return nil
}

func (b *Browser) clearMarksCmd(*tcell.EventKey) *tcell.EventKey {
	if pm := b.Model(); pm != nil {
		pm.UnselectEveryRow()
	}
	return nil
}

// pruneRowCmd drops the cursor row from the window after confirmation.
// Local only: the next fetch brings it back.
func (b *Browser) pruneRowCmd(*tcell.EventKey) *tcell.EventKey {
	pm, index := b.Model(), b.SelectedRowIndex()
	if pm == nil || index < 0 {
		return nil
	}

	msg := fmt.Sprintf("Prune row %d from this page?", index+1)
	d := ui.ConfirmDialog(b.app.Content, msg, func() {
		if err := pm.RemoveAt(index); err != nil {
			b.app.Flash().Err(err)
		}
	})
	d.SetDoneCallback(func() {
		b.app.SetFocus(b.app.Content)
	})
	d.Show()
	b.app.SetFocus(d)
	return nil
}

func (b *Browser) describeCmd(*tcell.EventKey) *tcell.EventKey {
	pm, index := b.Model(), b.SelectedRowIndex()
	if pm == nil || index < 0 {
		return nil
	}

	item, err := pm.ItemAt(index)
	if err != nil {
		b.app.Flash().Err(err)
		return nil
	}

	d := NewDescribe(b.ResourceID(), item)
	d.SetApp(b.app)
	if obj, ok := item.(dao.Object); ok {
		d.SetPath(b.describePath(obj))
	}
	b.app.pushView(d)
	return nil
}

// describePath builds the point-lookup path for an object, empty when
// the backend has no usable one.
func (b *Browser) describePath(obj dao.Object) string {
	switch b.ResourceID().String() {
	case dao.S3ObjectRID.String():
		bucket, _ := splitBucketPath(b.Path())
		if bucket == "" {
			return ""
		}
		return bucket + "/" + obj.GetID()
	case dao.IAMUserRID.String(), dao.EKSClusterRID.String(), dao.CFNStackRID.String():
		return obj.GetName()
	case dao.CloudControlRID.String():
		return b.Path() + "|" + obj.GetID()
	default:
		return obj.GetID()
	}
}

// enterCmd descends into folder rows on hierarchical backends and
// describes everything else.
func (b *Browser) enterCmd(evt *tcell.EventKey) *tcell.EventKey {
	id := b.SelectedRowID()
	if strings.HasSuffix(id, "/") && b.ResourceID().String() == dao.S3ObjectRID.String() {
		bucket, _ := splitBucketPath(b.Path())
		child := NewBrowser(b.ResourceID())
		child.SetApp(b.app)
		child.SetFactory(b.factory)
		child.SetPath(bucket + "/" + id)
		b.app.pushView(child)
		return nil
	}
	return b.describeCmd(evt)
}

func splitBucketPath(path string) (bucket, prefix string) {
	bucket, prefix, _ = strings.Cut(path, "/")
	return bucket, prefix
}
