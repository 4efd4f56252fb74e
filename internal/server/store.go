package server

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KimNorgaard/go-exml"
)

var errStoreFull = errors.New("document store is full")

// Entry is one uploaded document. Its mutex serializes every access to the
// document, which is not safe for concurrent use on its own.
type Entry struct {
	ID       string
	Name     string
	Created  time.Time
	Warnings []string

	mu  sync.Mutex
	doc *exml.Document
}

// With calls fn with the document while holding the entry's lock.
func (e *Entry) With(fn func(doc *exml.Document) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.doc)
}

// Store keeps uploaded documents in memory, keyed by a random ID.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	max     int
	now     func() time.Time
}

// NewStore returns an empty store holding at most limit documents; zero means unbounded.
func NewStore(limit int) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		max:     limit,
		now:     time.Now,
	}
}

// Put adds doc under a fresh ID.
func (s *Store) Put(name string, doc *exml.Document, warnings []string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.entries) >= s.max {
		return nil, errStoreFull
	}
	e := &Entry{
		ID:       uuid.New().String(),
		Name:     name,
		Created:  s.now(),
		Warnings: warnings,
		doc:      doc,
	}
	s.entries[e.ID] = e
	return e, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// Delete removes the entry with the given ID and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// List returns all entries, oldest first.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Entry) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
