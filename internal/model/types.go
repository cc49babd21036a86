package model

import (
	"context"
)

// Item is a single row item materialized in the dataset window. The model
// never inspects items; it stores, positions, and hands them back.
type Item any

// PageRequest carries everything a page source needs to produce one page.
type PageRequest struct {
	// PageSize is the maximum number of items to return.
	PageSize int
	// Sort is the active sort model. Zero value means source order.
	Sort SortModel
	// PageToken is the opaque cursor returned by a previous fetch.
	// Empty requests the first page.
	PageToken string
}

// PageResult is the outcome of a successful page fetch.
type PageResult struct {
	// Items holds exactly the requested page, in source order.
	Items []Item
	// NextPageToken is the cursor for the page after this one.
	// Empty means the source is exhausted.
	NextPageToken string
}

// PageFetcher retrieves one page of items from an external source. Tokens
// are opaque to the model and only valid for the sort model and page size
// they were issued under.
type PageFetcher interface {
	FetchPage(ctx context.Context, req PageRequest) (PageResult, error)
}

// PageFetcherFunc adapts a function to the PageFetcher interface.
type PageFetcherFunc func(ctx context.Context, req PageRequest) (PageResult, error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc) FetchPage(ctx context.Context, req PageRequest) (PageResult, error) {
	return f(ctx, req)
}

// RunState tracks the fetch coordinator's lifecycle.
type RunState int

const (
	// StateIdle indicates no fetch is in flight.
	StateIdle RunState = iota
	// StateFetching indicates a fetch has been issued and not yet resolved.
	StateFetching
	// StateError indicates the last fetch failed. A new fetch may be
	// issued at any time; error does not block retry.
	StateError
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// TableListener is notified after every state-affecting operation: fetch
// start and end, row mutations, selection changes, sort and page-size
// changes. The notification carries no payload; consumers re-read the
// model's public state.
type TableListener interface {
	TableChanged()
}

// RowListener is notified when a single row position changes: mutated,
// selected, or unselected.
type RowListener interface {
	RowChanged(index int, item Item)
}

// CopyFunc produces a defensive copy of a fetched item before it is
// stored in the dataset window.
type CopyFunc func(Item) Item

// Options configures a PageModel.
type Options struct {
	// PageSize is the initial page size. Normalized to DefaultPageSize
	// when out of range.
	PageSize int
	// PageSizes lists the page sizes the UI may cycle through.
	PageSizes []int
	// Copy, when non-nil, is applied to every fetched item before it is
	// stored.
	Copy CopyFunc
}
