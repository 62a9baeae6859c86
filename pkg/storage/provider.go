// Package storage provides the key-value persistence boundary for chat state.
//
// The conversation store serializes its whole collection as one JSON value
// under a fixed key; providers only need Get and Set.
package storage

import "sync"

// Provider is the storage collaborator contract. A missing key is reported
// via ok=false, not an error.
type Provider interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryProvider is an in-process Provider used by tests and ephemeral runs.
type MemoryProvider struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{data: make(map[string]string)}
}

func (p *MemoryProvider) Get(key string) (string, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.data[key]
	return v, ok, nil
}

func (p *MemoryProvider) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
	return nil
}
