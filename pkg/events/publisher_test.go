package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()

	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for event")
	}

	return Event{}
}

func TestPublishToTypedSubscriber(t *testing.T) {
	p := NewPublisher()

	resolved := make(chan Event, 1)
	p.Subscribe(EventColorResolved, func(ev Event) { resolved <- ev })

	p.Publish(Event{Type: EventColorResolved, ConnectionID: "c1", Payload: "w"})

	ev := receive(t, resolved)
	assert.Equal(t, EventColorResolved, ev.Type)
	assert.Equal(t, "c1", ev.ConnectionID)
	assert.Equal(t, "w", ev.Payload)
}

func TestPublishSkipsOtherTypes(t *testing.T) {
	p := NewPublisher()

	resolved := make(chan Event, 1)
	p.Subscribe(EventColorResolved, func(ev Event) { resolved <- ev })

	p.Publish(Event{Type: EventColorUnresolved})

	select {
	case ev := <-resolved:
		t.Fatalf("unexpected event %s", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeAll(t *testing.T) {
	p := NewPublisher()

	all := make(chan Event, 2)
	p.SubscribeAll(func(ev Event) { all <- ev })

	p.Publish(Event{Type: EventConnectionOpened})
	p.Publish(Event{Type: EventConnectionClosed})

	seen := map[EventType]bool{}
	seen[receive(t, all).Type] = true
	seen[receive(t, all).Type] = true

	assert.True(t, seen[EventConnectionOpened])
	assert.True(t, seen[EventConnectionClosed])
}
