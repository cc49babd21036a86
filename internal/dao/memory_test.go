package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memObjects(names ...string) []Object {
	objects := make([]Object, 0, len(names))
	for i, name := range names {
		created := time.Date(2025, time.March, 1, i, 0, 0, 0, time.UTC)
		objects = append(objects, &BaseObject{
			ARN:       "arn:aws:demo:::item/" + name,
			ID:        name,
			Name:      name,
			Region:    "us-east-1",
			CreatedAt: &created,
		})
	}
	return objects
}

func names(objects []Object) []string {
	out := make([]string, 0, len(objects))
	for _, o := range objects {
		out = append(out, o.GetName())
	}
	return out
}

func TestMemoryPaging(t *testing.T) {
	m := NewMemoryPager(memObjects("a", "b", "c", "d", "e"))
	ctx := context.Background()

	res, err := m.ListPage(ctx, "us-east-1", PageRequest{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(res.Objects))
	require.NotEmpty(t, res.NextPageToken)

	res, err = m.ListPage(ctx, "us-east-1", PageRequest{PageSize: 2, PageToken: res.NextPageToken})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, names(res.Objects))
	require.NotEmpty(t, res.NextPageToken)

	// The last page is short and carries no forward token.
	res, err = m.ListPage(ctx, "us-east-1", PageRequest{PageSize: 2, PageToken: res.NextPageToken})
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, names(res.Objects))
	assert.Empty(t, res.NextPageToken)
}

func TestMemoryPagingUnbounded(t *testing.T) {
	m := NewMemoryPager(memObjects("a", "b", "c"))

	res, err := m.ListPage(context.Background(), "us-east-1", PageRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Objects, 3)
	assert.Empty(t, res.NextPageToken)
}

func TestMemorySorting(t *testing.T) {
	m := NewMemoryPager(memObjects("item-10", "item-2", "item-1"))
	ctx := context.Background()

	// Natural ordering: item-2 before item-10.
	res, err := m.ListPage(ctx, "us-east-1", PageRequest{SortField: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1", "item-2", "item-10"}, names(res.Objects))

	res, err = m.ListPage(ctx, "us-east-1", PageRequest{SortField: "name", SortDescending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"item-10", "item-2", "item-1"}, names(res.Objects))

	// No sort field keeps source order.
	res, err = m.ListPage(ctx, "us-east-1", PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"item-10", "item-2", "item-1"}, names(res.Objects))
}

func TestMemorySortCrossesPages(t *testing.T) {
	m := NewMemoryPager(memObjects("c", "a", "d", "b"))
	ctx := context.Background()

	res, err := m.ListPage(ctx, "us-east-1", PageRequest{PageSize: 2, SortField: "id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(res.Objects))

	res, err = m.ListPage(ctx, "us-east-1", PageRequest{
		PageSize:  2,
		SortField: "id",
		PageToken: res.NextPageToken,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, names(res.Objects))
}

func TestMemoryInvalidToken(t *testing.T) {
	m := NewMemoryPager(memObjects("a"))
	ctx := context.Background()

	_, err := m.ListPage(ctx, "us-east-1", PageRequest{PageToken: "!!not-base64!!"})
	assert.Error(t, err)

	// Well-formed but negative offsets are rejected too.
	_, err = m.ListPage(ctx, "us-east-1", PageRequest{PageToken: _tokenEncoder.EncodeToString([]byte("-3"))})
	assert.Error(t, err)
}

func TestMemoryOffsetPastEnd(t *testing.T) {
	m := NewMemoryPager(memObjects("a", "b"))

	res, err := m.ListPage(context.Background(), "us-east-1", PageRequest{
		PageSize:  2,
		PageToken: encodeOffsetToken(100),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Objects)
	assert.Empty(t, res.NextPageToken)
}

func TestMemoryGet(t *testing.T) {
	m := NewMemoryPager(memObjects("a", "b"))
	ctx := context.Background()

	obj, err := m.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", obj.GetName())

	_, err = m.Get(ctx, "zzz")
	assert.Error(t, err)
}

func TestMemorySeedsDemoData(t *testing.T) {
	m := &Memory{}

	res, err := m.ListPage(context.Background(), "us-east-1", PageRequest{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Objects, 10)
	assert.NotEmpty(t, res.NextPageToken)
	assert.Equal(t, "i-0000", res.Objects[0].GetID())
}

func TestOffsetTokenRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 1, 42, 100000} {
		got, err := decodeOffsetToken(encodeOffsetToken(offset))
		require.NoError(t, err)
		assert.Equal(t, offset, got)
	}

	got, err := decodeOffsetToken("")
	require.NoError(t, err)
	assert.Zero(t, got)
}
