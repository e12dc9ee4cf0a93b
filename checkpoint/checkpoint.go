// Package checkpoint provides progress tracking for ledger scanning.
package checkpoint

// Store tracks the last processed ledger sequence for each network,
// allowing resumable event scanning.
type Store interface {
	// Load returns the last saved ledger sequence for the given network ID.
	// Returns 0 if no progress has been saved.
	Load(networkID string) (uint32, error)

	// Save persists the last processed ledger sequence for the given network ID.
	Save(networkID string, ledger uint32) error
}
