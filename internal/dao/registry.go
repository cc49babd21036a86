package dao

import (
	"fmt"
	"reflect"
)

// Pagers maps resource ID strings to their pager implementations.
type Pagers map[string]Pager

// pagers holds all registered page sources.
var pagers = make(Pagers)

// RegisterPager adds a pager to the global registry.
func RegisterPager(rid *ResourceID, p Pager) {
	pagers[rid.String()] = p
}

// PagerFor returns a new initialized pager instance for the given
// resource ID.
func PagerFor(f Factory, rid *ResourceID) (Pager, error) {
	registered, ok := pagers[rid.String()]
	if !ok {
		return nil, fmt.Errorf("no pager for: %s", rid.String())
	}

	// Fresh instance per consumer so pagers can hold per-session state.
	pagerType := reflect.TypeOf(registered)
	if pagerType.Kind() == reflect.Ptr {
		pagerType = pagerType.Elem()
	}
	p, ok := reflect.New(pagerType).Interface().(Pager)
	if !ok {
		return nil, fmt.Errorf("failed to create pager for: %s", rid.String())
	}

	p.Init(f, rid)
	return p, nil
}

// ListPagers returns all registered resource IDs.
func ListPagers() []*ResourceID {
	rids := make([]*ResourceID, 0, len(pagers))
	for key := range pagers {
		rid := &ResourceID{}
		if err := rid.Parse(key); err == nil {
			rids = append(rids, rid)
		}
	}
	return rids
}
