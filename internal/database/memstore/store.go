// Package memstore is an in-process document store with the same surface the
// seeder uses on MongoDB. It backs dry runs and tests.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrClosed = errors.New("memstore: store is closed")

// DuplicateKeyError mirrors the E11000 error a unique index raises.
type DuplicateKeyError struct {
	Collection string
	Field      string
	Value      interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key error collection: %s index: %s_1 dup key: { %s: %v }",
		e.Collection, e.Field, e.Field, e.Value)
}

type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	unique      map[string][]string
	closed      bool
}

func New() *Store {
	return &Store{
		collections: make(map[string][]bson.M),
		unique:      make(map[string][]string),
	}
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Store) DeleteAll(ctx context.Context, collection string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.collections, collection)
	return nil
}

// InsertMany behaves like an ordered insert: documents before a failing one
// stay inserted.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []interface{}) ([]primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		m, err := toDocument(doc)
		if err != nil {
			return ids, fmt.Errorf("memstore: encode %s document: %w", collection, err)
		}

		id, ok := m["_id"].(primitive.ObjectID)
		if !ok || id.IsZero() {
			id = primitive.NewObjectID()
			m["_id"] = id
		}

		if err := s.checkUnique(collection, m); err != nil {
			return ids, err
		}

		s.collections[collection] = append(s.collections[collection], m)
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return int64(len(s.collections[collection])), nil
}

// Distinct returns the distinct top-level values of field, flattening arrays
// the way the server does.
func (s *Store) Distinct(ctx context.Context, collection, field string) ([]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	seen := make(map[string]struct{})
	var values []interface{}
	add := func(v interface{}) {
		key := fmt.Sprintf("%T:%v", v, v)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		values = append(values, v)
	}

	for _, doc := range s.collections[collection] {
		v, ok := doc[field]
		if !ok {
			continue
		}
		if arr, isArr := v.(primitive.A); isArr {
			for _, item := range arr {
				add(item)
			}
			continue
		}
		add(v)
	}
	return values, nil
}

func (s *Store) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	for _, f := range s.unique[collection] {
		if f == field {
			return nil
		}
	}
	s.unique[collection] = append(s.unique[collection], field)
	return nil
}

// Documents returns a copy of the stored documents of a collection.
func (s *Store) Documents(collection string) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bson.M, len(s.collections[collection]))
	copy(out, s.collections[collection])
	return out
}

func (s *Store) checkUnique(collection string, doc bson.M) error {
	for _, field := range s.unique[collection] {
		value, ok := doc[field]
		if !ok {
			continue
		}
		key := fmt.Sprint(value)
		for _, existing := range s.collections[collection] {
			if other, ok := existing[field]; ok && fmt.Sprint(other) == key {
				return &DuplicateKeyError{Collection: collection, Field: field, Value: value}
			}
		}
	}
	return nil
}

func toDocument(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
