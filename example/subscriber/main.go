// Example: subscriber — fan events out to multiple subscribers.
//
// Usage:
//
//	CONTRACT_ID=C... go run ./example/subscriber
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
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network/soroban"
	"github.com/hedeqiang/beacon/subscriber"
)

func main() {
	contractID := os.Getenv("CONTRACT_ID")
	if contractID == "" {
		log.Fatal("CONTRACT_ID environment variable is required")
	}

	b := beacon.New(
		beacon.WithPollInterval(5 * time.Second),
	)

	if err := b.AddNetwork(soroban.Testnet()); err != nil {
		log.Fatal(err)
	}

	// Fan out: a channel consumer plus an inline callback.
	broadcast := subscriber.NewBroadcast()

	ch := subscriber.NewChannel(64)
	broadcast.Add(ch)
	broadcast.Add(subscriber.NewCallback(func(ev event.Event) {
		fmt.Printf("callback: event [%s] ledger=%d\n", ev.ID, ev.Ledger)
	}))

	go func() {
		for ev := range ch.Events() {
			fmt.Printf("channel:  event [%s] tx=%s\n", ev.ID, ev.TxHash)
		}
	}()

	q := filter.NewQuery(filter.WithContracts(event.MustParseContractID(contractID)))

	if err := b.Watch("testnet", q, broadcast.Send); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Beacon is broadcasting contract events... Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	b.Shutdown(ctx)
	broadcast.Close()
}
