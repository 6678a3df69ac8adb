package state

import (
	"context"
	"errors"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

var errQuota = errors.New("quota exceeded")

// fakeStore is an in-memory port.Store with write failure injection.
type fakeStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	failWrite bool
	writes    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, port.ErrNotFound
	}
	return v, nil
}

func (s *fakeStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.failWrite {
		return errQuota
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *fakeStore) put(key, value string) {
	s.data[key] = []byte(value)
}

func (s *fakeStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return string(v), ok
}
