package network

import (
	"fmt"
	"sync"
)

// Registry holds configured Network implementations for lookup by ID.
type Registry struct {
	mu       sync.RWMutex
	networks map[string]Network
}

// NewRegistry creates an empty network registry.
func NewRegistry() *Registry {
	return &Registry{
		networks: make(map[string]Network),
	}
}

// Register adds a network to the registry. Returns an error if a network
// with the same ID is already registered.
func (r *Registry) Register(n Network) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := n.ID()
	if _, exists := r.networks[id]; exists {
		return fmt.Errorf("network: %q already registered", id)
	}
	r.networks[id] = n
	return nil
}

// Get returns the network with the given ID.
func (r *Registry) Get(id string) (Network, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.networks[id]
	return n, ok
}

// All returns all registered networks.
func (r *Registry) All() []Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	networks := make([]Network, 0, len(r.networks))
	for _, n := range r.networks {
		networks = append(networks, n)
	}
	return networks
}

// IDs returns the IDs of all registered networks.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.networks))
	for id := range r.networks {
		ids = append(ids, id)
	}
	return ids
}
