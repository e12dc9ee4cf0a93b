package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedeqiang/beacon/event"
)

func TestChannelDelivers(t *testing.T) {
	c := NewChannel(4)
	defer c.Close()

	c.Send(event.Event{ID: "a"})
	c.Send(event.Event{ID: "b"})

	ev := <-c.Events()
	assert.Equal(t, "a", ev.ID)
	ev = <-c.Events()
	assert.Equal(t, "b", ev.ID)
}

func TestChannelDropsWhenFull(t *testing.T) {
	c := NewChannel(1)
	defer c.Close()

	c.Send(event.Event{ID: "kept"})
	c.Send(event.Event{ID: "dropped"}) // buffer full, must not block

	ev := <-c.Events()
	assert.Equal(t, "kept", ev.ID)

	select {
	case ev := <-c.Events():
		t.Fatalf("unexpected event %s", ev.ID)
	default:
	}
}

func TestCallback(t *testing.T) {
	var got []string
	c := NewCallback(func(ev event.Event) {
		got = append(got, ev.ID)
	})

	c.Send(event.Event{ID: "1"})
	c.Send(event.Event{ID: "2"})
	require.Equal(t, []string{"1", "2"}, got)

	c.Close()
	c.Send(event.Event{ID: "3"}) // ignored after close
	assert.Equal(t, []string{"1", "2"}, got)

	c.Close() // double close is safe
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcast()
	assert.Zero(t, b.Len())

	var first, second int
	b.Add(NewCallback(func(event.Event) { first++ }))
	b.Add(NewCallback(func(event.Event) { second++ }))
	require.Equal(t, 2, b.Len())

	b.Send(event.Event{ID: "x"})
	b.Send(event.Event{ID: "y"})

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)

	b.Close()
	assert.Zero(t, b.Len())
	b.Send(event.Event{ID: "z"}) // no subscribers remain
	assert.Equal(t, 2, first)
}
