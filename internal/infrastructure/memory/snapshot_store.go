package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore implementación en memoria del puerto SnapshotStore (tests y ejecuciones efímeras).
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewSnapshotStore crea un store vacío.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor para que el llamador no comparta el buffer interno.
func (s *SnapshotStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set guarda una copia del valor.
func (s *SnapshotStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Remove elimina la clave.
func (s *SnapshotStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys devuelve las claves presentes (diagnóstico y tests).
func (s *SnapshotStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Close no hace nada; existe para cumplir io.Closer como los demás adaptadores.
func (s *SnapshotStore) Close() error { return nil }
