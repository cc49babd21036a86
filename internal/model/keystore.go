package model

import "sync"

// PageKeyStore caches the forward cursor token for each page index.
//
// Tokens are written only while paging forward: fetching page n records the
// token for page n+1. Page 0 is always fetched token-less and never has an
// entry. Going back to a page relies on the token cached when that page was
// first reached going forward; there is no independent backward cursor.
type PageKeyStore struct {
	tokens map[int]string
	mx     sync.RWMutex
}

// NewPageKeyStore returns an empty key store.
func NewPageKeyStore() *PageKeyStore {
	return &PageKeyStore{
		tokens: make(map[int]string),
	}
}

// Get returns the cached token for the given page index.
func (s *PageKeyStore) Get(page int) (string, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	token, ok := s.tokens[page]
	return token, ok
}

// Set records the token for the given page index.
func (s *PageKeyStore) Set(page int, token string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.tokens[page] = token
}

// Clear drops every cached token. Called on from-start refreshes and
// whenever the sort model or page size changes, since tokens are only
// valid for the ordering and page size they were issued under.
func (s *PageKeyStore) Clear() {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.tokens = make(map[int]string)
}

// Len returns the number of cached tokens.
func (s *PageKeyStore) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.tokens)
}
