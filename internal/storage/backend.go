package storage

import "sync"

// Backend is the durable key-value device underneath the Store. It mirrors a
// browser localStorage surface: whole values under string keys, no
// transactions, no change notification to other readers.
type Backend interface {
	Get(clave string) (string, bool, error)
	Set(clave, valor string) error
	Delete(clave string) error
}

// MemoryBackend is the in-process test double.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]string)}
}

func (b *MemoryBackend) Get(clave string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.entries[clave]
	return v, ok, nil
}

func (b *MemoryBackend) Set(clave, valor string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[clave] = valor
	return nil
}

func (b *MemoryBackend) Delete(clave string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, clave)
	return nil
}
