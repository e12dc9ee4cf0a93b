package filter

import (
	"github.com/hedeqiang/beacon/event"
)

// TopicFilter matches events that carry any of the specified base64 ScVal
// values at the configured topic position.
type TopicFilter struct {
	position int
	values   map[string]struct{}
}

// NewTopicFilter creates a filter that matches events with any of the given
// values at the specified topic position (0-based).
func NewTopicFilter(position int, values ...string) *TopicFilter {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return &TopicFilter{position: position, values: m}
}

// Match reports whether the event has a matching topic at the configured position.
func (f *TopicFilter) Match(ev event.Event) bool {
	if f.position >= len(ev.Topics) {
		return false
	}
	_, ok := f.values[ev.Topics[f.position]]
	return ok
}
