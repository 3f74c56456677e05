package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"creatures/internal/model"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	brains      map[string]model.BrainRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.brains = make(map[string]model.BrainRecord)
	return nil
}

func (s *MemoryStore) SaveBrain(_ context.Context, brain model.BrainRecord) error {
	if brain.ID == "" {
		return errors.New("brain id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.brains[brain.ID] = brain.Clone()
	return nil
}

func (s *MemoryStore) GetBrain(_ context.Context, id string) (model.BrainRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return model.BrainRecord{}, false, errNotInitialized
	}
	brain, ok := s.brains[id]
	if !ok {
		return model.BrainRecord{}, false, nil
	}
	return brain.Clone(), true, nil
}

func (s *MemoryStore) ListBrains(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errNotInitialized
	}
	ids := make([]string, 0, len(s.brains))
	for id := range s.brains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) DeleteBrain(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	delete(s.brains, id)
	return nil
}
