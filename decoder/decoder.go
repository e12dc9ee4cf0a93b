// Package decoder turns the base64 XDR payloads carried by contract events
// into plain Go values.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hedeqiang/beacon/event"
)

// ErrDecode is returned when an event payload cannot be decoded.
var ErrDecode = errors.New("decoder: decode failed")

// Decoder decodes raw contract events into structured data.
type Decoder interface {
	// Decode parses an event's topics and value into a DecodedEvent.
	// Returns an error wrapping ErrDecode if the payload cannot be parsed.
	Decode(ev event.Event) (*DecodedEvent, error)
}

// DecodedEvent contains the decoded representation of a contract event.
type DecodedEvent struct {
	// Name is the event name taken from the first topic when it is a symbol
	// (the Soroban convention), empty otherwise.
	Name string

	// Topics holds the decoded topic values, in order.
	Topics []interface{}

	// Value holds the decoded data payload.
	Value interface{}

	// Raw is the original unmodified event.
	Raw event.Event
}

// String returns a human-readable representation of the decoded event.
func (e *DecodedEvent) String() string {
	var b strings.Builder
	name := e.Name
	if name == "" {
		name = "event"
	}
	fmt.Fprintf(&b, "%s(", name)

	for i, t := range e.Topics {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", t)
	}
	b.WriteString(")")

	fmt.Fprintf(&b, " value=%v network=%s ledger=%d tx=%s",
		e.Value, e.Raw.Network, e.Raw.Ledger, e.Raw.TxHash)

	return b.String()
}
