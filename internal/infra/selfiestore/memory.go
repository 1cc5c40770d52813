package selfiestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/skintrack/skintrack/internal/domain/analysis"
)

// MemoryStorage keeps photos in memory for tests and local development.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data     []byte
	mimeType string
}

// NewMemoryStorage builds an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]memoryObject)}
}

func (s *MemoryStorage) Put(_ context.Context, key string, data []byte, mimeType string) (analysis.StoredObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = memoryObject{data: stored, mimeType: mimeType}
	return analysis.StoredObject{Key: key, Size: int64(len(stored)), MimeType: mimeType}, nil
}

func (s *MemoryStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

var _ analysis.ObjectStorage = (*MemoryStorage)(nil)
