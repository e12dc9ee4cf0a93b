// Example: decoded — poll contract events and decode their XDR payloads.
//
// Usage:
//
//	CONTRACT_ID=C... go run ./example/decoded
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
	"github.com/hedeqiang/beacon/decoder"
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network/soroban"
)

func main() {
	contractID := os.Getenv("CONTRACT_ID")
	if contractID == "" {
		log.Fatal("CONTRACT_ID environment variable is required")
	}

	b := beacon.New(
		beacon.WithDecoder(decoder.NewXDR()),
		beacon.WithPollInterval(5*time.Second),
	)

	if err := b.AddNetwork(soroban.Testnet()); err != nil {
		log.Fatal(err)
	}

	q := filter.NewQuery(filter.WithContracts(event.MustParseContractID(contractID)))

	err := b.WatchDecoded("testnet", q, func(de *decoder.DecodedEvent) {
		fmt.Println(de.String())
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Beacon is decoding contract events... Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	b.Shutdown(ctx)
}
