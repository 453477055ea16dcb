// Package memory provides an in-memory document store. It backs the service
// and repository tests and serves as the fallback backend when no database
// is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"eventgram/internal/store"
)

// Store is an in-memory store.Store. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]store.Document
	nextID      int
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]map[string]store.Document)}
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("doc-%d", s.nextID)
	col := s.collections[collection]
	if col == nil {
		col = make(map[string]store.Document)
		s.collections[collection] = col
	}
	col[id] = cloneDoc(doc)
	return id, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, store.ErrNoDocument
	}
	return cloneDoc(doc), nil
}

func (s *Store) Query(ctx context.Context, collection string, filters []store.Filter, orderBy store.Order) ([]store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		id  string
		doc store.Document
	}
	var results []entry
	for id, doc := range s.collections[collection] {
		if matchesAll(doc, filters) {
			results = append(results, entry{id: id, doc: doc})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if orderBy.Field != "" {
			ci, iok := compare(results[i].doc[orderBy.Field], results[j].doc[orderBy.Field])
			if iok && ci != 0 {
				if orderBy.Descending {
					return ci > 0
				}
				return ci < 0
			}
		}
		// Insertion order as a deterministic tiebreak.
		return docSeq(results[i].id) < docSeq(results[j].id)
	})

	out := make([]store.Document, 0, len(results))
	for _, e := range results {
		doc := cloneDoc(e.doc)
		doc[store.FieldID] = e.id
		out = append(out, doc)
	}
	return out, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc store.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.collections[collection]
	if _, ok := col[id]; !ok {
		return store.ErrNoDocument
	}
	col[id] = cloneDoc(doc)
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.collections[collection]
	if _, ok := col[id]; !ok {
		return store.ErrNoDocument
	}
	delete(col, id)
	return nil
}

func matchesAll(doc store.Document, filters []store.Filter) bool {
	for _, f := range filters {
		v, ok := doc[f.Field]
		if !ok {
			return false
		}
		cmp, comparable := compare(v, f.Value)
		if !comparable {
			return false
		}
		switch f.Op {
		case store.OpEq:
			if cmp != 0 {
				return false
			}
		case store.OpLte:
			if cmp > 0 {
				return false
			}
		case store.OpGte:
			if cmp < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compare orders two document values of the same kind. The second return is
// false when the values are not comparable.
func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case av.Before(bv):
			return -1, true
		case av.After(bv):
			return 1, true
		}
		return 0, true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		if av == bv {
			return 0, true
		}
		if !av {
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func docSeq(id string) int {
	var n int
	_, err := fmt.Sscanf(id, "doc-%d", &n)
	if err != nil {
		return 0
	}
	return n
}

func cloneDoc(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
