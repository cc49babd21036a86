package model

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagr/pagr/internal/dao"
)

func memoryFetcher(names ...string) *DAOFetcher {
	objects := make([]dao.Object, 0, len(names))
	for i, name := range names {
		created := time.Date(2025, time.March, 1, i, 0, 0, 0, time.UTC)
		objects = append(objects, &dao.BaseObject{
			ID:        name,
			Name:      name,
			Region:    "us-east-1",
			CreatedAt: &created,
		})
	}
	return NewDAOFetcher(dao.NewMemoryPager(objects), "us-east-1", "")
}

func TestDAOFetcher(t *testing.T) {
	f := memoryFetcher("b", "a", "c")

	res, err := f.FetchPage(context.Background(), PageRequest{
		PageSize: 2,
		Sort:     SortModel{Field: "name"},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.NotEmpty(t, res.NextPageToken)

	obj, ok := res.Items[0].(dao.Object)
	require.True(t, ok)
	assert.Equal(t, "a", obj.GetName())
}

func TestPageModelOverMemoryPager(t *testing.T) {
	m := NewPageModel(memoryFetcher("e", "d", "c", "b", "a"), Options{PageSize: 2})
	ctx := context.Background()

	require.NoError(t, m.SetSortModel(ctx, SortModel{Field: "name"}))
	require.Equal(t, 2, m.TotalItems())
	assert.True(t, m.HasNextPage())

	require.NoError(t, m.NextPage(ctx))
	require.NoError(t, m.NextPage(ctx))
	assert.Equal(t, 2, m.CurrentPage())
	assert.False(t, m.HasNextPage())
	assert.Equal(t, 1, m.TotalItems())

	item, err := m.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "e", item.(dao.Object).GetName())

	// Walk back to the start on cached cursors.
	require.NoError(t, m.PreviousPage(ctx))
	require.NoError(t, m.PreviousPage(ctx))
	assert.Zero(t, m.CurrentPage())

	item, err = m.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item.(dao.Object).GetName())
}
