package decoder

import (
	"github.com/hedeqiang/beacon/event"
)

// Raw is a pass-through decoder that wraps the event without touching its
// XDR payloads. Useful when the caller forwards events as-is.
type Raw struct{}

// NewRaw creates a new raw pass-through decoder.
func NewRaw() *Raw {
	return &Raw{}
}

// Decode wraps the event in a DecodedEvent, keeping topics and value in
// their base64 form.
func (r *Raw) Decode(ev event.Event) (*DecodedEvent, error) {
	topics := make([]interface{}, len(ev.Topics))
	for i, t := range ev.Topics {
		topics[i] = t
	}
	return &DecodedEvent{
		Topics: topics,
		Value:  ev.Value,
		Raw:    ev,
	}, nil
}
