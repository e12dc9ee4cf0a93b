package checkpoint

import "sync"

// Memory is an in-memory Store implementation.
// Suitable for development and testing; data is lost on restart.
type Memory struct {
	mu      sync.RWMutex
	ledgers map[string]uint32
}

// NewMemory creates a new in-memory checkpoint store.
func NewMemory() *Memory {
	return &Memory{
		ledgers: make(map[string]uint32),
	}
}

// Load returns the last saved ledger for the network, or 0 if not found.
func (m *Memory) Load(networkID string) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ledgers[networkID], nil
}

// Save stores the ledger sequence for the network.
func (m *Memory) Save(networkID string, ledger uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[networkID] = ledger
	return nil
}
