package recordstore

import (
	"context"
	"encoding/json"
	"sync"
)

type MemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string][]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{namespaces: make(map[string][]json.RawMessage)}
}

func (s *MemoryStore) Get(_ context.Context, namespace string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocs(s.namespaces[namespace]), nil
}

func (s *MemoryStore) Put(_ context.Context, namespace, id string, doc json.RawMessage) error {
	if err := checkDoc(id, doc); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces[namespace] = upsert(s.namespaces[namespace], id, append(json.RawMessage(nil), doc...))
	return nil
}
