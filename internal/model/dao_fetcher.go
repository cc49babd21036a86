package model

import (
	"context"

	"github.com/pagr/pagr/internal/dao"
)

// DAOFetcher adapts a dao.Pager to the PageFetcher interface, binding a
// region and an optional listing path at construction time.
type DAOFetcher struct {
	pager  dao.Pager
	region string
	path   string
}

// NewDAOFetcher returns a fetcher over the given pager.
func NewDAOFetcher(pager dao.Pager, region, path string) *DAOFetcher {
	return &DAOFetcher{
		pager:  pager,
		region: region,
		path:   path,
	}
}

// FetchPage implements PageFetcher.
func (f *DAOFetcher) FetchPage(ctx context.Context, req PageRequest) (PageResult, error) {
	res, err := f.pager.ListPage(ctx, f.region, dao.PageRequest{
		PageSize:       req.PageSize,
		SortField:      req.Sort.Field,
		SortDescending: req.Sort.Descending,
		PageToken:      req.PageToken,
		Path:           f.path,
	})
	if err != nil {
		return PageResult{}, err
	}

	items := make([]Item, len(res.Objects))
	for i, obj := range res.Objects {
		items[i] = obj
	}

	return PageResult{
		Items:         items,
		NextPageToken: res.NextPageToken,
	}, nil
}
