// Example: replay — backfill contract events from a fixed ledger range.
//
// Usage:
//
//	CONTRACT_ID=C... FROM_LEDGER=500000 TO_LEDGER=500100 go run ./example/replay
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hedeqiang/beacon"
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network/soroban"
	"github.com/hedeqiang/beacon/retry"
)

func main() {
	contractID := os.Getenv("CONTRACT_ID")
	if contractID == "" {
		log.Fatal("CONTRACT_ID environment variable is required")
	}
	from := mustLedger("FROM_LEDGER")
	to := mustLedger("TO_LEDGER")

	b := beacon.New(
		beacon.WithRetry(retry.Exponential(3)),
	)

	if err := b.AddNetwork(soroban.Testnet()); err != nil {
		log.Fatal(err)
	}

	q := filter.NewQuery(filter.WithContracts(event.MustParseContractID(contractID)))

	var count int
	err := b.Backfill("testnet", q, from, to, func(ev event.Event) {
		count++
		fmt.Printf("event [%s] ledger=%d contract=%s\n", ev.ID, ev.Ledger, ev.ContractID)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("replayed %d events from ledgers [%d, %d]\n", count, from, to)
}

func mustLedger(name string) uint32 {
	v := os.Getenv(name)
	if v == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	seq, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return uint32(seq)
}
