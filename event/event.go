// Package event defines the core data structures for Soroban contract events.
package event

import (
	"time"
)

// Type identifies the category of an emitted event.
type Type string

const (
	// TypeContract covers events emitted by contract code via the event host function.
	TypeContract Type = "contract"

	// TypeSystem covers lifecycle events emitted by the host (e.g. contract updates).
	TypeSystem Type = "system"

	// TypeDiagnostic covers debug events; only present when the node records them.
	TypeDiagnostic Type = "diagnostic"
)

// Event represents a single event emitted by a Soroban contract.
// All XDR-typed fields (topics, value) are carried as base64 strings exactly
// as returned by the RPC; the decoder package turns them into Go values.
type Event struct {
	// Network identifies which registered network this event came from.
	Network string

	// ID is the event's unique identifier, ordered within the ledger stream.
	ID string

	// Type is the event category ("contract", "system", "diagnostic").
	Type Type

	// Ledger is the sequence number of the ledger the event was emitted in.
	Ledger uint32

	// LedgerClosedAt is the close time of the owning ledger.
	LedgerClosedAt time.Time

	// ContractID is the strkey-encoded address of the emitting contract.
	ContractID string

	// Topics holds the event topic values as base64-encoded ScVal XDR.
	// Topics[0] is conventionally the event name symbol.
	Topics []string

	// Value holds the event data payload as base64-encoded ScVal XDR.
	Value string

	// TxHash is the hex-encoded hash of the transaction that emitted the event.
	TxHash string

	// InSuccessfulContractCall reports whether the emitting invocation succeeded.
	InSuccessfulContractCall bool
}
