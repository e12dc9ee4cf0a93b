// Example: basic — poll contract events from Soroban testnet.
//
// Usage:
//
//	CONTRACT_ID=C... go run ./example/basic
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hedeqiang/beacon"
	"github.com/hedeqiang/beacon/checkpoint"
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	mw "github.com/hedeqiang/beacon/middleware"
	"github.com/hedeqiang/beacon/network/soroban"
	"github.com/hedeqiang/beacon/retry"
)

func main() {
	contractID := os.Getenv("CONTRACT_ID")
	if contractID == "" {
		log.Fatal("CONTRACT_ID environment variable is required")
	}

	// 1. Create Beacon instance
	b := beacon.New(
		beacon.WithCheckpoint(checkpoint.NewFile("./progress_basic.json")),
		beacon.WithRetry(retry.Exponential(3)),
		beacon.WithPollInterval(5*time.Second),
	)

	// 2. Register the testnet RPC endpoint
	if err := b.AddNetwork(soroban.Testnet()); err != nil {
		log.Fatal(err)
	}

	// 3. Check the endpoint is reachable before watching
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := b.Health(ctx, "testnet"); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	// 4. Add logging middleware
	b.Use(mw.NewLogger(nil))

	// 5. Watch events from the contract
	q := filter.NewQuery(filter.WithContracts(event.MustParseContractID(contractID)))

	err := b.Watch("testnet", q, func(ev event.Event) {
		fmt.Printf("processed event [%s] in ledger %d\n", ev.ID, ev.Ledger)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Beacon is listening for contract events... Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	fmt.Println("\nShutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	b.Shutdown(shutdownCtx)
}
