package dao

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/fvbommel/sortorder"
)

func init() {
	RegisterPager(&DemoRID, &Memory{})
}

var _tokenEncoder = base64.RawURLEncoding

// Memory serves pages from an in-memory object list. It backs offline
// mode and tests. Cursors are base64-encoded offsets, issued per sort
// order and page size like any other backend token.
type Memory struct {
	Resource
	objects []Object
	mx      sync.RWMutex
}

// NewMemoryPager returns a memory pager over the given objects.
func NewMemoryPager(objects []Object) *Memory {
	return &Memory{objects: objects}
}

// SetObjects replaces the backing object list.
func (m *Memory) SetObjects(objects []Object) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.objects = objects
}

// ListPage returns one page of objects, natural-sorted by the requested
// field.
func (m *Memory) ListPage(_ context.Context, _ string, req PageRequest) (PageResult, error) {
	m.mx.Lock()
	if m.objects == nil {
		m.objects = demoObjects()
	}
	snapshot := make([]Object, len(m.objects))
	copy(snapshot, m.objects)
	m.mx.Unlock()

	if req.SortField != "" {
		sort.SliceStable(snapshot, func(i, j int) bool {
			less := sortorder.NaturalLess(
				fieldValue(snapshot[i], req.SortField),
				fieldValue(snapshot[j], req.SortField),
			)
			if req.SortDescending {
				return !less
			}
			return less
		})
	}

	offset, err := decodeOffsetToken(req.PageToken)
	if err != nil {
		return PageResult{}, err
	}
	if offset > len(snapshot) {
		offset = len(snapshot)
	}

	size := req.PageSize
	if size <= 0 {
		size = len(snapshot)
	}
	end := offset + size
	if end > len(snapshot) {
		end = len(snapshot)
	}

	var next string
	if end < len(snapshot) {
		next = encodeOffsetToken(end)
	}

	return PageResult{
		Objects:       snapshot[offset:end],
		NextPageToken: next,
	}, nil
}

// Get retrieves a single object by ID.
func (m *Memory) Get(_ context.Context, path string) (Object, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	for _, obj := range m.objects {
		if obj.GetID() == path {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("object not found: %s", path)
}

func fieldValue(obj Object, field string) string {
	switch field {
	case "id":
		return obj.GetID()
	case "arn":
		return obj.GetARN()
	case "region":
		return obj.GetRegion()
	case "created":
		if t := obj.GetCreatedAt(); t != nil {
			return t.Format(time.RFC3339)
		}
		return ""
	default:
		return obj.GetName()
	}
}

func encodeOffsetToken(offset int) string {
	return _tokenEncoder.EncodeToString([]byte(strconv.Itoa(offset)))
}

func decodeOffsetToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := _tokenEncoder.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid page token: %w", err)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid page token: %s", token)
	}
	return offset, nil
}

// demoObjects seeds offline mode with a recognizable dataset.
func demoObjects() []Object {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	objects := make([]Object, 0, 64)
	for i := 0; i < 64; i++ {
		created := base.Add(time.Duration(i) * time.Hour)
		objects = append(objects, &BaseObject{
			ARN:       fmt.Sprintf("arn:aws:demo:::item/i-%04d", i),
			ID:        fmt.Sprintf("i-%04d", i),
			Name:      fmt.Sprintf("demo-item-%d", i),
			Region:    "us-east-1",
			Tags:      map[string]string{"env": "demo"},
			CreatedAt: &created,
		})
	}
	return objects
}
