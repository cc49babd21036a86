package dao

import (
	"maps"
	"sync"
	"time"
)

// BaseObject implements the Object interface with embedded fields.
type BaseObject struct {
	ARN       string
	ID        string
	Name      string
	Region    string
	Tags      map[string]string
	CreatedAt *time.Time
	Raw       any // Original backend object
}

// GetARN returns the resource ARN.
func (b *BaseObject) GetARN() string {
	return b.ARN
}

// GetID returns the resource ID.
func (b *BaseObject) GetID() string {
	return b.ID
}

// GetName returns the resource name.
func (b *BaseObject) GetName() string {
	return b.Name
}

// GetRegion returns the resource region.
func (b *BaseObject) GetRegion() string {
	return b.Region
}

// GetTags returns the resource tags.
func (b *BaseObject) GetTags() map[string]string {
	return b.Tags
}

// GetCreatedAt returns the creation timestamp.
func (b *BaseObject) GetCreatedAt() *time.Time {
	return b.CreatedAt
}

// GetRaw returns the original backend object.
func (b *BaseObject) GetRaw() any {
	return b.Raw
}

// Clone returns a copy with its own tag map. The raw backend object is
// shared; pagers never mutate it.
func (b *BaseObject) Clone() *BaseObject {
	clone := *b
	clone.Tags = maps.Clone(b.Tags)
	return &clone
}

// CopyObject clones an item when it is a BaseObject; anything else is
// returned as-is. Wired as the model's defensive-copy hook.
func CopyObject(item any) any {
	if o, ok := item.(*BaseObject); ok {
		return o.Clone()
	}
	return item
}

// Resource is the base struct all pagers embed. It provides factory
// access and resource identification.
type Resource struct {
	Factory
	rid *ResourceID
	mx  sync.RWMutex
}

// Init initializes the Resource with factory and resource ID.
func (r *Resource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *Resource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}
