package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type tableRecorder struct {
	fired int
}

func (r *tableRecorder) TableChanged() {
	r.fired++
}

type rowEvent struct {
	index int
	item  Item
}

type rowRecorder struct {
	events []rowEvent
}

func (r *rowRecorder) RowChanged(index int, item Item) {
	r.events = append(r.events, rowEvent{index: index, item: item})
}

func staticFetcher(items []Item, next string) PageFetcher {
	return PageFetcherFunc(func(context.Context, PageRequest) (PageResult, error) {
		return PageResult{Items: items, NextPageToken: next}, nil
	})
}

// newTestModel returns an idle model whose window holds the given items.
func newTestModel(t *testing.T, items ...Item) *PageModel {
	t.Helper()

	m := NewPageModel(staticFetcher(items, ""), Options{PageSize: 10})
	require.NoError(t, m.Refresh(context.Background(), true))
	require.Equal(t, StateIdle, m.State())

	return m
}
