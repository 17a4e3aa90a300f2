package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var unsafeNamespaceChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// FileStore keeps each namespace in its own JSON file under dir. Writes go
// through a temp file and rename so a crash never leaves a torn collection.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("record store: create %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(namespace string) string {
	return filepath.Join(s.dir, unsafeNamespaceChars.ReplaceAllString(namespace, "_")+".json")
}

func (s *FileStore) Get(_ context.Context, namespace string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(namespace)
}

func (s *FileStore) read(namespace string) ([]json.RawMessage, error) {
	blob, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("record store: read %s: %w", namespace, err)
	}
	return decodeCollection(namespace, blob), nil
}

func (s *FileStore) Put(_ context.Context, namespace, id string, doc json.RawMessage) error {
	if err := checkDoc(id, doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read(namespace)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(upsert(docs, id, doc))
	if err != nil {
		return fmt.Errorf("record store: encode %s: %w", namespace, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".ns-*")
	if err != nil {
		return fmt.Errorf("record store: write %s: %w", namespace, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("record store: write %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("record store: write %s: %w", namespace, err)
	}
	if err := os.Rename(tmp.Name(), s.path(namespace)); err != nil {
		return fmt.Errorf("record store: write %s: %w", namespace, err)
	}
	return nil
}
