package realtime

import (
	"testing"

	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewHub(log)
}

func TestHubBroadcastToSubscribers(t *testing.T) {
	hub := testHub(t)
	groupID := uuid.New()
	channel := GroupChannel(groupID)

	subscriber := hub.NewClient(uuid.New())
	bystander := hub.NewClient(uuid.New())
	hub.Subscribe(subscriber, channel)
	hub.Subscribe(bystander, GroupChannel(uuid.New()))

	hub.Broadcast(Message{Channel: channel, Event: EventSessionLogged})

	select {
	case msg := <-subscriber.Outbound:
		if msg.Event != EventSessionLogged {
			t.Fatalf("event = %s, want SessionLogged", msg.Event)
		}
	default:
		t.Fatalf("subscriber received nothing")
	}

	select {
	case msg := <-bystander.Outbound:
		t.Fatalf("bystander received %+v, want nothing", msg)
	default:
	}
}

func TestHubRemoveClientStopsDelivery(t *testing.T) {
	hub := testHub(t)
	channel := GroupChannel(uuid.New())

	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, channel)
	hub.RemoveClient(client)

	hub.Broadcast(Message{Channel: channel, Event: EventSessionLogged})

	select {
	case msg := <-client.Outbound:
		t.Fatalf("removed client received %+v", msg)
	default:
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := testHub(t)
	channel := GroupChannel(uuid.New())

	client := hub.NewClient(uuid.New())
	hub.Subscribe(client, channel)

	for i := 0; i < cap(client.Outbound)+5; i++ {
		hub.Broadcast(Message{Channel: channel, Event: EventSessionLogged})
	}
	if got := len(client.Outbound); got != cap(client.Outbound) {
		t.Fatalf("buffered = %d, want full buffer %d", got, cap(client.Outbound))
	}
}
