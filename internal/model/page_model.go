package model

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 25

// PageModel coordinates page fetches against a PageFetcher and owns the
// dataset window, selection, sort model, and pagination key cache. It
// materializes exactly one page of data at a time.
//
// All mutation funnels through a single mutex; listeners are invoked
// outside of it, per-row batches first, then one coarse broadcast.
type PageModel struct {
	fetcher   PageFetcher
	keys      *PageKeyStore
	selection *SelectionSet
	notifier  *Notifier
	copyFn    CopyFunc

	items     []Item
	page      int
	pageSize  int
	pageSizes []int
	sort      SortModel
	state     RunState
	err       error
	hasNext   bool
	bound     bool

	// gen invalidates in-flight fetches: a completion whose generation
	// no longer matches is discarded, so the last issued fetch wins.
	gen *atomic.Int64
	mx  sync.RWMutex
}

// NewPageModel returns a page model backed by the given fetcher.
func NewPageModel(fetcher PageFetcher, opts Options) *PageModel {
	size := opts.PageSize
	if size <= 0 {
		if len(opts.PageSizes) > 0 {
			size = opts.PageSizes[0]
		} else {
			size = DefaultPageSize
		}
	}

	return &PageModel{
		fetcher:   fetcher,
		keys:      NewPageKeyStore(),
		selection: NewSelectionSet(),
		notifier:  NewNotifier(),
		copyFn:    opts.Copy,
		pageSize:  size,
		pageSizes: opts.PageSizes,
		gen:       atomic.NewInt64(0),
	}
}

// Init binds the model and schedules the initial fetch asynchronously.
// Initializing a bound model is a no-op.
func (m *PageModel) Init(ctx context.Context) {
	m.mx.Lock()
	if m.bound {
		m.mx.Unlock()
		return
	}
	m.bound = true
	m.mx.Unlock()

	go func() {
		_ = m.Refresh(ctx, true)
	}()
}

// Stop releases the listener registries and invalidates any in-flight
// fetch. The model must not be reused afterwards.
func (m *PageModel) Stop() {
	m.gen.Inc()
	m.notifier.Release()
}

// State returns the current run state.
func (m *PageModel) State() RunState {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.state
}

// Err returns the error captured by the last failed fetch, or nil.
func (m *PageModel) Err() error {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.err
}

// TotalItems returns the number of rows in the current window.
func (m *PageModel) TotalItems() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return len(m.items)
}

// CurrentPage returns the zero-based page index.
func (m *PageModel) CurrentPage() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.page
}

// HasNextPage reports whether the last fetch returned a forward token.
func (m *PageModel) HasNextPage() bool {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.hasNext
}

// HasPreviousPage reports whether the model is past page 0.
func (m *PageModel) HasPreviousPage() bool {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.page > 0
}

// PageSize returns the active page size.
func (m *PageModel) PageSize() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.pageSize
}

// PageSizes returns the configured page size options.
func (m *PageModel) PageSizes() []int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return slices.Clone(m.pageSizes)
}

// SortModel returns the active sort model.
func (m *PageModel) SortModel() SortModel {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.sort
}

// Keys exposes the pagination key store.
func (m *PageModel) Keys() *PageKeyStore {
	return m.keys
}

// AddListener registers a coarse table listener.
func (m *PageModel) AddListener(l TableListener) {
	m.notifier.AddListener(l)
}

// RemoveListener unregisters a coarse table listener.
func (m *PageModel) RemoveListener(l TableListener) {
	m.notifier.RemoveListener(l)
}

// AddRowListener registers a per-row listener for the given index.
func (m *PageModel) AddRowListener(index int, l RowListener) {
	m.notifier.AddRowListener(index, l)
}

// RemoveRowListener unregisters a per-row listener from the given index.
func (m *PageModel) RemoveRowListener(index int, l RowListener) {
	m.notifier.RemoveRowListener(index, l)
}

// Refresh refetches the current page. With fromStart, the key cache is
// cleared and the model returns to page 0.
func (m *PageModel) Refresh(ctx context.Context, fromStart bool) error {
	m.mx.Lock()
	if fromStart {
		m.keys.Clear()
		m.page = 0
	}
	page := m.page
	m.mx.Unlock()

	return m.fetchPage(ctx, page)
}

// NextPage advances one page forward. The token for the next page may be
// absent when paging past the known end; the fetch then degrades to a
// token-less first-page request.
func (m *PageModel) NextPage(ctx context.Context) error {
	m.mx.RLock()
	page := m.page + 1
	m.mx.RUnlock()

	return m.fetchPage(ctx, page)
}

// PreviousPage goes back one page, reusing the token cached when that
// page was first reached going forward. At page 0 it is a no-op.
func (m *PageModel) PreviousPage(ctx context.Context) error {
	m.mx.RLock()
	page := m.page
	m.mx.RUnlock()
	if page == 0 {
		return nil
	}

	return m.fetchPage(ctx, page-1)
}

// SetPageSize changes the page size and restarts pagination from page 0.
// Cached tokens encode page boundaries, so they are dropped.
func (m *PageModel) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		size = DefaultPageSize
	}

	m.mx.Lock()
	if size == m.pageSize {
		m.mx.Unlock()
		return nil
	}
	m.pageSize = size
	m.keys.Clear()
	m.page = 0
	m.mx.Unlock()

	return m.fetchPage(ctx, 0)
}

// SetSortModel replaces the sort model and refetches from the start.
// Cursor tokens are sort-order dependent and never reused across sort
// changes.
func (m *PageModel) SetSortModel(ctx context.Context, sort SortModel) error {
	m.mx.Lock()
	m.sort = sort
	m.keys.Clear()
	m.page = 0
	m.mx.Unlock()

	return m.fetchPage(ctx, 0)
}

// SwipeSortModel advances the sort model's tri-state cycle for the given
// column and refetches from the start. See SortModel.Swipe.
func (m *PageModel) SwipeSortModel(ctx context.Context, column string) error {
	m.mx.RLock()
	next := m.sort.Swipe(column)
	m.mx.RUnlock()

	return m.SetSortModel(ctx, next)
}

// fetchPage drives one idle/error -> fetching -> idle/error transition.
func (m *PageModel) fetchPage(ctx context.Context, page int) error {
	m.mx.Lock()
	gen := m.gen.Inc()
	m.state = StateFetching
	m.page = page
	token, _ := m.keys.Get(page)
	req := PageRequest{
		PageSize:  m.pageSize,
		Sort:      m.sort,
		PageToken: token,
	}
	m.mx.Unlock()

	m.notifier.FireTable()

	res, err := m.fetcher.FetchPage(ctx, req)

	m.mx.Lock()
	if gen != m.gen.Load() {
		// A newer fetch was issued while this one was in flight.
		m.mx.Unlock()
		return nil
	}

	if err != nil {
		m.err = err
		m.state = StateError
		m.items = nil
		m.mx.Unlock()
		m.notifier.FireTable()
		return err
	}

	items := res.Items
	if m.copyFn != nil {
		items = make([]Item, len(res.Items))
		for i, it := range res.Items {
			items[i] = m.copyFn(it)
		}
	}
	m.mergeWindow(items)

	if res.NextPageToken != "" {
		m.keys.Set(page+1, res.NextPageToken)
	}
	m.hasNext = res.NextPageToken != ""
	m.selection.Prune(len(m.items))
	m.err = nil
	m.state = StateIdle
	m.mx.Unlock()

	m.notifier.FireTable()
	return nil
}

// mergeWindow makes the window equal to the fetched page: overwrite the
// overlapping prefix, append the remainder, trim any excess tail.
func (m *PageModel) mergeWindow(items []Item) {
	if len(m.items) == 0 {
		m.items = append(m.items, items...)
		return
	}

	n := len(items)
	for i := 0; i < n && i < len(m.items); i++ {
		m.items[i] = items[i]
	}
	if n > len(m.items) {
		m.items = append(m.items, items[len(m.items):]...)
	} else {
		m.items = m.items[:n]
	}
}
